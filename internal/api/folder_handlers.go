package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type RenameRequest struct {
	Name string `json:"name" example:"Faktury 2026"`
}

// @Summary      Get the root folder
// @Description  Returns the caller's root folder, created at registration.
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Folder
// @Failure      401  {string}  string "Unauthorized"
// @Failure      404  {string}  string "Root folder not found"
// @Router       /folders/root [get]
func (s *Server) GetRootFolderHandler(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())

	root, err := s.folders.Root(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(root)
}

// @Summary      Get a folder
// @Description  Returns one folder owned by the caller.
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Folder ID"
// @Success      200       {object}  models.Folder
// @Failure      401       {string}  string "Unauthorized"
// @Failure      404       {string}  string "Not found"
// @Router       /folders/{folderId} [get]
func (s *Server) GetFolderHandler(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	folderID := chi.URLParam(r, "folderId")

	folder, err := s.folders.Get(r.Context(), folderID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(folder)
}

// @Summary      List folder content
// @Description  Returns the immediate child folders and files of a folder, each list sorted by name.
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Folder ID"
// @Success      200       {object}  service.FolderContent
// @Failure      401       {string}  string "Unauthorized"
// @Failure      404       {string}  string "Not found"
// @Router       /folders/{folderId}/content [get]
func (s *Server) GetFolderContentHandler(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	folderID := chi.URLParam(r, "folderId")

	content, err := s.folders.Content(r.Context(), folderID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(content)
}

// @Summary      Create a folder
// @Description  Creates a folder under the given parent. The name is assigned automatically: "New Folder", then "New Folder (1)" and so on.
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Parent folder ID"
// @Success      201       {object}  models.Folder
// @Failure      401       {string}  string "Unauthorized"
// @Failure      404       {string}  string "Not found"
// @Router       /folders/{folderId}/folders [post]
func (s *Server) CreateFolderHandler(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	parentID := chi.URLParam(r, "folderId")

	folder, err := s.folders.Create(r.Context(), parentID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	s.recordEvent(r.Context(), userID, "folder_created", folder)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(folder)
}

// @Summary      Rename a folder
// @Description  Replaces the folder's name. ID, parent and owner stay unchanged.
// @Tags         folders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        folderId       path      string         true  "Folder ID"
// @Param        renameRequest  body      RenameRequest  true  "New name"
// @Success      200            {object}  models.Folder
// @Failure      400            {string}  string "Invalid request body"
// @Failure      401            {string}  string "Unauthorized"
// @Failure      404            {string}  string "Not found"
// @Router       /folders/{folderId} [patch]
func (s *Server) RenameFolderHandler(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	folderID := chi.URLParam(r, "folderId")

	var req RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	folder, err := s.folders.Rename(r.Context(), folderID, userID, req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	s.recordEvent(r.Context(), userID, "folder_renamed", folder)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(folder)
}

// @Summary      Delete a folder
// @Description  Deletes the folder together with all descendant folders, files and their contents.
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Folder ID"
// @Success      204       {string}  string "No Content"
// @Failure      401       {string}  string "Unauthorized"
// @Failure      404       {string}  string "Not found"
// @Router       /folders/{folderId} [delete]
func (s *Server) DeleteFolderHandler(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	folderID := chi.URLParam(r, "folderId")

	if err := s.folders.Remove(r.Context(), folderID, userID); err != nil {
		writeServiceError(w, err)
		return
	}

	s.recordEvent(r.Context(), userID, "folder_removed", map[string]string{"id": folderID})

	w.WriteHeader(http.StatusNoContent)
}
