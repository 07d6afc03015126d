// @title           Chmura Plików API
// @version         1.0
// @description     Backend magazynu plików: konta, foldery, pliki i dziennik zmian.
// @host            localhost
// @schemes         http https
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"net/http"

	"chmura-plikow/internal/api"
	"chmura-plikow/internal/config"
	"chmura-plikow/internal/database"
	"chmura-plikow/internal/service"
	"chmura-plikow/internal/store"
	"chmura-plikow/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	_ "chmura-plikow/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

type stores struct {
	users    store.UserStore
	folders  store.FolderStore
	files    store.FileMetadataStore
	contents store.FileContentStore
	sessions store.SessionStore
	events   store.EventStore
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Nie można wczytać konfiguracji: %v", err)
	}

	var st stores
	if cfg.DB.Source != "" {
		dbpool, err := pgxpool.New(context.Background(), cfg.DB.Source)
		if err != nil {
			log.Fatalf("Nie można połączyć się z bazą danych: %v", err)
		}
		defer dbpool.Close()

		if err := dbpool.Ping(context.Background()); err != nil {
			log.Fatalf("Nie można pingować bazy danych: %v", err)
		}
		log.Println("Pomyślnie połączono z bazą danych")

		db := database.NewStore(dbpool)
		st = stores{
			users:    db.Users,
			folders:  db.Folders,
			files:    db.Files,
			contents: db.Contents,
			sessions: db.Sessions,
			events:   db.Events,
		}
	} else {
		log.Println("Brak db.source, używam magazynu w pamięci")
		st = stores{
			users:    store.NewMemoryUserStore(),
			folders:  store.NewMemoryFolderStore(),
			files:    store.NewMemoryFileMetadataStore(),
			contents: store.NewMemoryFileContentStore(),
			sessions: store.NewMemorySessionStore(),
			events:   store.NewMemoryEventStore(),
		}
	}

	wsHub := websocket.NewHub()
	go wsHub.Run()

	sessions := service.NewValidatingSessionStore(st.sessions)
	authService := service.NewAuthService(st.users, st.folders, sessions)
	folderService := service.NewFolderService(st.folders, st.files, st.contents)
	fileService := service.NewFileService(st.folders, st.files, st.contents)
	journal := service.NewJournal(st.events, wsHub)

	server := api.NewServer(cfg, authService, folderService, fileService, journal, wsHub)

	authLimiter := api.NewRateLimiter(rate.Limit(1), 10)
	defer authLimiter.Stop()

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(api.MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("https://localhost/swagger/doc.json"),
	))

	r.Get("/ws", server.ServeWsHandler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Serwer plików działa! Dokumentacja dostępna pod /swagger/index.html"))
	})

	r.Get("/health", server.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(authLimiter.Middleware)
		r.Post("/api/v1/auth/register", server.RegisterHandler)
		r.Post("/api/v1/auth/login", server.LoginHandler)
	})
	r.Post("/api/v1/auth/logout", server.LogoutHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(server.AuthMiddleware)
		r.Get("/me", server.GetCurrentUserHandler)
		r.Get("/folders/root", server.GetRootFolderHandler)
		r.Get("/folders/{folderId}", server.GetFolderHandler)
		r.Get("/folders/{folderId}/content", server.GetFolderContentHandler)
		r.Post("/folders/{folderId}/folders", server.CreateFolderHandler)
		r.Post("/folders/{folderId}/files", server.UploadFileHandler)
		r.Patch("/folders/{folderId}", server.RenameFolderHandler)
		r.Delete("/folders/{folderId}", server.DeleteFolderHandler)
		r.Get("/files/{fileId}", server.GetFileHandler)
		r.Get("/files/{fileId}/content", server.DownloadFileHandler)
		r.Patch("/files/{fileId}", server.RenameFileHandler)
		r.Delete("/files/{fileId}", server.DeleteFileHandler)
		r.Get("/events", server.ListEventsHandler)
	})

	addr := ":" + cfg.Server.Port
	log.Printf("Uruchamianie serwera na porcie %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Nie można uruchomić serwera: %v", err)
	}
}
