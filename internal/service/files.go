package service

import (
	"context"

	"chmura-plikow/internal/models"
	"chmura-plikow/internal/store"
)

// FileService owns file upload, renaming, removal and the content read-side.
type FileService struct {
	folders  store.FolderStore
	files    store.FileMetadataStore
	contents store.FileContentStore
}

func NewFileService(folders store.FolderStore, files store.FileMetadataStore, contents store.FileContentStore) *FileService {
	return &FileService{
		folders:  folders,
		files:    files,
		contents: contents,
	}
}

type UploadFileParams struct {
	Name      string
	MimeType  string
	SizeBytes int64
	ParentID  string
	OwnerID   string
	Content   []byte
}

// Upload stores a new file in the destination folder, which must exist and
// be owned by the uploader. The content record is written first, then the
// metadata record under the same ID.
func (s *FileService) Upload(ctx context.Context, arg UploadFileParams) (*models.FileMetadata, error) {
	folder, err := s.folders.Get(ctx, arg.ParentID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrFolderNotFound
	}
	if folder.OwnerID != arg.OwnerID {
		return nil, ErrOwnershipViolated
	}

	id, err := GenerateID()
	if err != nil {
		return nil, err
	}

	if err := s.contents.Put(ctx, models.FileContent{ID: id, Data: arg.Content}); err != nil {
		return nil, err
	}

	metadata := models.FileMetadata{
		ID:        id,
		Name:      arg.Name,
		FileType:  FileTypeFromMime(arg.MimeType),
		SizeBytes: arg.SizeBytes,
		ParentID:  arg.ParentID,
		OwnerID:   arg.OwnerID,
	}
	if err := s.files.Put(ctx, metadata); err != nil {
		return nil, err
	}
	return &metadata, nil
}

// Rename replaces the file's name, keeping ID, type, size, parent and owner.
func (s *FileService) Rename(ctx context.Context, fileID, ownerID, newName string) (*models.FileMetadata, error) {
	metadata, err := s.files.Get(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if metadata == nil {
		return nil, ErrFileNotFound
	}
	if metadata.OwnerID != ownerID {
		return nil, ErrOwnershipViolated
	}

	renamed := *metadata
	renamed.Name = newName
	if err := s.files.Put(ctx, renamed); err != nil {
		return nil, err
	}
	return &renamed, nil
}

// Remove deletes the metadata and the content of a file. Both deletions must
// find a record for the operation to succeed.
func (s *FileService) Remove(ctx context.Context, fileID, ownerID string) error {
	metadata, err := s.files.Get(ctx, fileID)
	if err != nil {
		return err
	}
	if metadata == nil {
		return ErrFileNotFound
	}
	if metadata.OwnerID != ownerID {
		return ErrOwnershipViolated
	}
	return removeFilePair(ctx, s.files, s.contents, fileID)
}

// GetMetadata returns the metadata of a file owned by the caller. A file
// owned by someone else is reported as not found.
func (s *FileService) GetMetadata(ctx context.Context, fileID, ownerID string) (*models.FileMetadata, error) {
	metadata, err := s.files.Get(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if metadata == nil || metadata.OwnerID != ownerID {
		return nil, ErrFileNotFound
	}
	return metadata, nil
}

// Download returns the raw content of a file owned by the caller. A file
// owned by someone else is reported as not found.
func (s *FileService) Download(ctx context.Context, fileID, ownerID string) ([]byte, error) {
	metadata, err := s.files.Get(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if metadata == nil || metadata.OwnerID != ownerID {
		return nil, ErrFileNotFound
	}

	content, err := s.contents.Get(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrFileNotFound
	}
	return content.Data, nil
}

// removeFilePair deletes the metadata and content records of one file.
// Metadata goes first so a concurrent reader cannot resolve metadata whose
// content is already gone.
func removeFilePair(ctx context.Context, files store.FileMetadataStore, contents store.FileContentStore, fileID string) error {
	metadata, err := files.Delete(ctx, fileID)
	if err != nil {
		return err
	}
	if metadata == nil {
		return ErrFileNotFound
	}
	content, err := contents.Delete(ctx, fileID)
	if err != nil {
		return err
	}
	if content == nil {
		return ErrFileNotFound
	}
	return nil
}
