package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"chmura-plikow/internal/service"
)

// maxUploadSize ogranicza rozmiar pojedynczego pliku do 1 GiB.
const maxUploadSize = 1 << 30

// @Summary      Upload a file
// @Description  Stores a file in the destination folder. Expects multipart/form-data with the file under the "file" field. The logical type is derived from the declared MIME type.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Destination folder ID"
// @Param        file      formData  file    true  "File to upload"
// @Success      201       {object}  models.FileMetadata
// @Failure      400       {string}  string "Missing or oversized file"
// @Failure      401       {string}  string "Unauthorized"
// @Failure      404       {string}  string "Not found"
// @Failure      500       {string}  string "Internal Server Error"
// @Router       /folders/{folderId}/files [post]
func (s *Server) UploadFileHandler(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	folderID := chi.URLParam(r, "folderId")

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Could not parse multipart form, file may be too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing 'file' form field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("ERROR: failed to read uploaded file %q: %v", header.Filename, err)
		http.Error(w, "Failed to read uploaded file", http.StatusInternalServerError)
		return
	}

	metadata, err := s.files.Upload(r.Context(), service.UploadFileParams{
		Name:      header.Filename,
		MimeType:  header.Header.Get("Content-Type"),
		SizeBytes: int64(len(data)),
		ParentID:  folderID,
		OwnerID:   userID,
		Content:   data,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	s.recordEvent(r.Context(), userID, "file_uploaded", metadata)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(metadata)
}

// @Summary      Get file metadata
// @Description  Returns the metadata of one file owned by the caller.
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        fileId  path      string  true  "File ID"
// @Success      200     {object}  models.FileMetadata
// @Failure      401     {string}  string "Unauthorized"
// @Failure      404     {string}  string "Not found"
// @Router       /files/{fileId} [get]
func (s *Server) GetFileHandler(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	fileID := chi.URLParam(r, "fileId")

	metadata, err := s.files.GetMetadata(r.Context(), fileID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(metadata)
}

// @Summary      Download file content
// @Description  Streams the raw bytes of a file owned by the caller as an attachment.
// @Tags         files
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        fileId  path      string  true  "File ID"
// @Success      200     {file}    file
// @Failure      401     {string}  string "Unauthorized"
// @Failure      404     {string}  string "Not found"
// @Router       /files/{fileId}/content [get]
func (s *Server) DownloadFileHandler(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	fileID := chi.URLParam(r, "fileId")

	metadata, err := s.files.GetMetadata(r.Context(), fileID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	data, err := s.files.Download(r.Context(), fileID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", metadata.Name))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	if _, err := w.Write(data); err != nil {
		log.Printf("WARN: failed to write file %s to response: %v", fileID, err)
	}
}

// @Summary      Rename a file
// @Description  Replaces the file's name. ID, type, size, parent and owner stay unchanged.
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        fileId         path      string         true  "File ID"
// @Param        renameRequest  body      RenameRequest  true  "New name"
// @Success      200            {object}  models.FileMetadata
// @Failure      400            {string}  string "Invalid request body"
// @Failure      401            {string}  string "Unauthorized"
// @Failure      404            {string}  string "Not found"
// @Router       /files/{fileId} [patch]
func (s *Server) RenameFileHandler(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	fileID := chi.URLParam(r, "fileId")

	var req RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	metadata, err := s.files.Rename(r.Context(), fileID, userID, req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	s.recordEvent(r.Context(), userID, "file_renamed", metadata)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(metadata)
}

// @Summary      Delete a file
// @Description  Deletes the file's metadata and content together.
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        fileId  path      string  true  "File ID"
// @Success      204     {string}  string "No Content"
// @Failure      401     {string}  string "Unauthorized"
// @Failure      404     {string}  string "Not found"
// @Router       /files/{fileId} [delete]
func (s *Server) DeleteFileHandler(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	fileID := chi.URLParam(r, "fileId")

	if err := s.files.Remove(r.Context(), fileID, userID); err != nil {
		writeServiceError(w, err)
		return
	}

	s.recordEvent(r.Context(), userID, "file_removed", map[string]string{"id": fileID})

	w.WriteHeader(http.StatusNoContent)
}
