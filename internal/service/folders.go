package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"chmura-plikow/internal/models"
	"chmura-plikow/internal/store"
)

const defaultFolderName = "New Folder"

// FolderService owns the folder tree: creation, renaming, cascading removal
// and the folder read-side.
type FolderService struct {
	folders  store.FolderStore
	files    store.FileMetadataStore
	contents store.FileContentStore
}

func NewFolderService(folders store.FolderStore, files store.FileMetadataStore, contents store.FileContentStore) *FolderService {
	return &FolderService{
		folders:  folders,
		files:    files,
		contents: contents,
	}
}

// Create adds a new folder under the given parent. The parent must exist and
// be owned by the caller. The name is generated: "New Folder" for the first
// one, then "New Folder (N)" where N counts the owner's existing siblings
// whose name starts with "New Folder".
func (s *FolderService) Create(ctx context.Context, parentID, ownerID string) (*models.Folder, error) {
	parent, err := s.folders.Get(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrFolderNotFound
	}
	if parent.OwnerID != ownerID {
		return nil, ErrOwnershipViolated
	}

	name, err := s.nextDefaultName(ctx, parentID, ownerID)
	if err != nil {
		return nil, err
	}
	id, err := GenerateID()
	if err != nil {
		return nil, err
	}

	folder := models.Folder{
		ID:       id,
		Name:     name,
		ParentID: &parentID,
		OwnerID:  ownerID,
	}
	if err := s.folders.Put(ctx, folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

func (s *FolderService) nextDefaultName(ctx context.Context, parentID, ownerID string) (string, error) {
	siblings, err := s.folders.Children(ctx, parentID)
	if err != nil {
		return "", err
	}

	count := 0
	for _, sibling := range siblings {
		if sibling.OwnerID == ownerID && strings.HasPrefix(sibling.Name, defaultFolderName) {
			count++
		}
	}
	if count == 0 {
		return defaultFolderName, nil
	}
	return fmt.Sprintf("%s (%d)", defaultFolderName, count), nil
}

// Rename replaces the folder's name, keeping ID, parent and owner. Put
// overwrites the record under the same ID, so a reader never observes the
// folder missing or duplicated.
func (s *FolderService) Rename(ctx context.Context, folderID, ownerID, newName string) (*models.Folder, error) {
	folder, err := s.folders.Get(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrFolderNotFound
	}
	if folder.OwnerID != ownerID {
		return nil, ErrOwnershipViolated
	}

	renamed := *folder
	renamed.Name = newName
	if err := s.folders.Put(ctx, renamed); err != nil {
		return nil, err
	}
	return &renamed, nil
}

// Remove deletes a folder and everything beneath it: descendant folders,
// their files and the file contents. The walk uses an explicit stack instead
// of recursion; it terminates because folders are never reparented, so the
// namespace is a finite tree.
func (s *FolderService) Remove(ctx context.Context, folderID, ownerID string) error {
	folder, err := s.folders.Get(ctx, folderID)
	if err != nil {
		return err
	}
	if folder == nil {
		return ErrFolderNotFound
	}
	if folder.OwnerID != ownerID {
		return ErrOwnershipViolated
	}

	stack := []string{folderID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		files, err := s.files.InFolder(ctx, id)
		if err != nil {
			return err
		}
		for _, file := range files {
			if err := removeFilePair(ctx, s.files, s.contents, file.ID); err != nil {
				return err
			}
		}

		children, err := s.folders.Children(ctx, id)
		if err != nil {
			return err
		}
		for _, child := range children {
			stack = append(stack, child.ID)
		}

		if _, err := s.folders.Delete(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Get returns a single folder by ID for its owner. A folder owned by someone
// else is reported as not found.
func (s *FolderService) Get(ctx context.Context, folderID, ownerID string) (*models.Folder, error) {
	folder, err := s.folders.Get(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil || folder.OwnerID != ownerID {
		return nil, ErrFolderNotFound
	}
	return folder, nil
}

// Root returns the owner's root folder.
func (s *FolderService) Root(ctx context.Context, ownerID string) (*models.Folder, error) {
	root, err := s.folders.Root(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, ErrRootFolderNotFound
	}
	return root, nil
}

// FolderContent is the read-side projection of one folder: its immediate
// child folders and files, each sorted by name.
type FolderContent struct {
	Folders []models.Folder       `json:"folders"`
	Files   []models.FileMetadata `json:"files"`
}

// Content assembles the FolderContent projection for a folder of the owner.
func (s *FolderService) Content(ctx context.Context, folderID, ownerID string) (*FolderContent, error) {
	if _, err := s.Get(ctx, folderID, ownerID); err != nil {
		return nil, err
	}

	folders, err := s.folders.Children(ctx, folderID)
	if err != nil {
		return nil, err
	}
	files, err := s.files.InFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}

	sort.Slice(folders, func(i, j int) bool { return folders[i].Name < folders[j].Name })
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	return &FolderContent{Folders: folders, Files: files}, nil
}
