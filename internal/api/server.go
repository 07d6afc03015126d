package api

import (
	"context"
	"net/http"

	"chmura-plikow/internal/config"
	"chmura-plikow/internal/service"
	"chmura-plikow/internal/websocket"
)

type Server struct {
	config  *config.Config
	auth    *service.AuthService
	folders *service.FolderService
	files   *service.FileService
	journal *service.Journal
	wsHub   *websocket.Hub
}

func NewServer(
	cfg *config.Config,
	auth *service.AuthService,
	folders *service.FolderService,
	files *service.FileService,
	journal *service.Journal,
	wsHub *websocket.Hub,
) *Server {
	return &Server{
		config:  cfg,
		auth:    auth,
		folders: folders,
		files:   files,
		journal: journal,
		wsHub:   wsHub,
	}
}

// @Summary      Health check
// @Description  Reports whether the server is up.
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string "OK"
// @Router       /health [get]
func (s *Server) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) recordEvent(ctx context.Context, userID, eventType string, payload interface{}) {
	if s.journal == nil {
		return
	}
	s.journal.Record(ctx, userID, eventType, payload)
}
