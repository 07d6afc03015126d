package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"

	"chmura-plikow/internal/config"
	"chmura-plikow/internal/models"
	"chmura-plikow/internal/service"
	"chmura-plikow/internal/store"
	"chmura-plikow/internal/websocket"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	users := store.NewMemoryUserStore()
	folders := store.NewMemoryFolderStore()
	files := store.NewMemoryFileMetadataStore()
	contents := store.NewMemoryFileContentStore()
	sessions := service.NewValidatingSessionStore(store.NewMemorySessionStore())
	events := store.NewMemoryEventStore()

	wsHub := websocket.NewHub()
	go wsHub.Run()

	server := NewServer(
		&config.Config{},
		service.NewAuthService(users, folders, sessions),
		service.NewFolderService(folders, files, contents),
		service.NewFileService(folders, files, contents),
		service.NewJournal(events, wsHub),
		wsHub,
	)

	// Ten sam stos middleware co w cmd/server/main.go.
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Get("/health", server.HealthCheckHandler)
	r.Get("/ws", server.ServeWsHandler)
	r.Post("/api/v1/auth/register", server.RegisterHandler)
	r.Post("/api/v1/auth/login", server.LoginHandler)
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

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, ts *httptest.Server, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func registerAndLogin(t *testing.T, ts *httptest.Server, login string) string {
	t.Helper()

	resp := doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", "", RegisterRequest{Login: login, Password: "Haslo1234"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", "", LoginRequest{Login: login, Password: "Haslo1234"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tokenResp TokenResponse
	decode(t, resp, &tokenResp)
	require.NotEmpty(t, tokenResp.Token)
	require.WithinDuration(t, time.Now().Add(48*time.Hour), tokenResp.ExpiresAt, time.Minute)
	return tokenResp.Token
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", "", RegisterRequest{Login: "ab", Password: "Haslo1234"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", "", RegisterRequest{Login: "jkowalski", Password: "haslo"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", "", RegisterRequest{Login: "jkowalski", Password: "Haslo1234"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", "", RegisterRequest{Login: "jkowalski", Password: "Inne1234x"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ts := newTestServer(t)
	registerAndLogin(t, ts, "jkowalski")

	resp := doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", "", LoginRequest{Login: "jkowalski", Password: "ZleHaslo1"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodGet, "/api/v1/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, ts, http.MethodGet, "/api/v1/me", "nieznany-token", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestLogoutInvalidatesToken(t *testing.T) {
	ts := newTestServer(t)
	token := registerAndLogin(t, ts, "jkowalski")

	resp := doJSON(t, ts, http.MethodGet, "/api/v1/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, ts, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, ts, http.MethodGet, "/api/v1/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Powtórne wylogowanie nadal zwraca 204.
	resp = doJSON(t, ts, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func TestGetCurrentUser(t *testing.T) {
	ts := newTestServer(t)
	token := registerAndLogin(t, ts, "jkowalski")

	resp := doJSON(t, ts, http.MethodGet, "/api/v1/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user UserResponse
	decode(t, resp, &user)
	require.Equal(t, "jkowalski", user.Login)
	require.NotEmpty(t, user.ID)
}

func TestFolderLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := registerAndLogin(t, ts, "jkowalski")

	resp := doJSON(t, ts, http.MethodGet, "/api/v1/folders/root", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var root models.Folder
	decode(t, resp, &root)
	require.Equal(t, "Root", root.Name)
	require.Nil(t, root.ParentID)

	resp = doJSON(t, ts, http.MethodPost, "/api/v1/folders/"+root.ID+"/folders", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Folder
	decode(t, resp, &created)
	require.Equal(t, "New Folder", created.Name)

	resp = doJSON(t, ts, http.MethodPatch, "/api/v1/folders/"+created.ID, token, RenameRequest{Name: "Dokumenty"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var renamed models.Folder
	decode(t, resp, &renamed)
	require.Equal(t, "Dokumenty", renamed.Name)

	resp = doJSON(t, ts, http.MethodGet, "/api/v1/folders/"+root.ID+"/content", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var content service.FolderContent
	decode(t, resp, &content)
	require.Len(t, content.Folders, 1)
	require.Equal(t, "Dokumenty", content.Folders[0].Name)
	require.Empty(t, content.Files)

	resp = doJSON(t, ts, http.MethodDelete, "/api/v1/folders/"+created.ID, token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, ts, http.MethodGet, "/api/v1/folders/"+created.ID, token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestFoldersAreIsolatedBetweenUsers(t *testing.T) {
	ts := newTestServer(t)
	ownerToken := registerAndLogin(t, ts, "jkowalski")
	otherToken := registerAndLogin(t, ts, "anowak")

	resp := doJSON(t, ts, http.MethodGet, "/api/v1/folders/root", ownerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var root models.Folder
	decode(t, resp, &root)

	// Cudzy folder wygląda jak nieistniejący.
	resp = doJSON(t, ts, http.MethodGet, "/api/v1/folders/"+root.ID, otherToken, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, ts, http.MethodDelete, "/api/v1/folders/"+root.ID, otherToken, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func uploadFile(t *testing.T, ts *httptest.Server, token, folderID, name, mimeType string, payload []byte) models.FileMetadata {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/v1/folders/"+folderID+"/files", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var metadata models.FileMetadata
	decode(t, resp, &metadata)
	return metadata
}

func TestFileLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := registerAndLogin(t, ts, "jkowalski")

	resp := doJSON(t, ts, http.MethodGet, "/api/v1/folders/root", token, nil)
	var root models.Folder
	decode(t, resp, &root)

	payload := []byte{1, 2, 3, 4, 5}
	metadata := uploadFile(t, ts, token, root.ID, "zdjecie.png", "image/png", payload)
	require.Equal(t, "zdjecie.png", metadata.Name)
	require.Equal(t, models.FileTypeImage, metadata.FileType)
	require.Equal(t, int64(5), metadata.SizeBytes)

	resp = doJSON(t, ts, http.MethodGet, "/api/v1/files/"+metadata.ID+"/content", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/octet-stream", resp.Header.Get("Content-Type"))
	require.Contains(t, resp.Header.Get("Content-Disposition"), "zdjecie.png")
	downloaded, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, payload, downloaded)

	resp = doJSON(t, ts, http.MethodPatch, "/api/v1/files/"+metadata.ID, token, RenameRequest{Name: "urlop.png"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var renamed models.FileMetadata
	decode(t, resp, &renamed)
	require.Equal(t, "urlop.png", renamed.Name)
	require.Equal(t, metadata.FileType, renamed.FileType)

	resp = doJSON(t, ts, http.MethodDelete, "/api/v1/files/"+metadata.ID, token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, ts, http.MethodGet, "/api/v1/files/"+metadata.ID, token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestEventsJournal(t *testing.T) {
	ts := newTestServer(t)
	token := registerAndLogin(t, ts, "jkowalski")

	resp := doJSON(t, ts, http.MethodGet, "/api/v1/folders/root", token, nil)
	var root models.Folder
	decode(t, resp, &root)

	resp = doJSON(t, ts, http.MethodPost, "/api/v1/folders/"+root.ID+"/folders", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, ts, http.MethodGet, "/api/v1/events", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var events []models.Event
	decode(t, resp, &events)

	types := make([]string, 0, len(events))
	for _, event := range events {
		types = append(types, event.EventType)
	}
	require.Contains(t, types, "user_registered")
	require.Contains(t, types, "folder_created")

	resp = doJSON(t, ts, http.MethodGet, "/api/v1/events?since=zepsute", token, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	future := time.Now().Add(time.Hour).Format(time.RFC3339)
	resp = doJSON(t, ts, http.MethodGet, "/api/v1/events?since="+future, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var none []models.Event
	decode(t, resp, &none)
	require.Empty(t, none)
}
