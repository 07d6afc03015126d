package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"chmura-plikow/internal/models"
)

// MemoryUserStore is the in-memory UserStore.
type MemoryUserStore struct {
	*Memory[string, models.User]
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{NewMemory[string, models.User]()}
}

func (s *MemoryUserStore) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	users, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.Login == login {
			return &user, nil
		}
	}
	return nil, nil
}

// MemoryFolderStore is the in-memory FolderStore.
type MemoryFolderStore struct {
	*Memory[string, models.Folder]
}

func NewMemoryFolderStore() *MemoryFolderStore {
	return &MemoryFolderStore{NewMemory[string, models.Folder]()}
}

func (s *MemoryFolderStore) Children(ctx context.Context, parentID string) ([]models.Folder, error) {
	folders, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	children := []models.Folder{}
	for _, folder := range folders {
		if folder.ParentID != nil && *folder.ParentID == parentID {
			children = append(children, folder)
		}
	}
	return children, nil
}

func (s *MemoryFolderStore) Root(ctx context.Context, ownerID string) (*models.Folder, error) {
	folders, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, folder := range folders {
		if folder.ParentID == nil && folder.OwnerID == ownerID {
			return &folder, nil
		}
	}
	return nil, nil
}

// MemoryFileMetadataStore is the in-memory FileMetadataStore.
type MemoryFileMetadataStore struct {
	*Memory[string, models.FileMetadata]
}

func NewMemoryFileMetadataStore() *MemoryFileMetadataStore {
	return &MemoryFileMetadataStore{NewMemory[string, models.FileMetadata]()}
}

func (s *MemoryFileMetadataStore) InFolder(ctx context.Context, parentID string) ([]models.FileMetadata, error) {
	files, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	inFolder := []models.FileMetadata{}
	for _, file := range files {
		if file.ParentID == parentID {
			inFolder = append(inFolder, file)
		}
	}
	return inFolder, nil
}

// MemoryFileContentStore is the in-memory FileContentStore.
type MemoryFileContentStore struct {
	*Memory[string, models.FileContent]
}

func NewMemoryFileContentStore() *MemoryFileContentStore {
	return &MemoryFileContentStore{NewMemory[string, models.FileContent]()}
}

// MemorySessionStore is the in-memory SessionStore.
type MemorySessionStore struct {
	*Memory[string, models.Session]
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{NewMemory[string, models.Session]()}
}

// MemoryEventStore is the in-memory EventStore. Events are kept in append
// order, which is also time order.
type MemoryEventStore struct {
	mu     sync.RWMutex
	events []models.Event
}

func NewMemoryEventStore() *MemoryEventStore {
	return &MemoryEventStore{}
}

func (s *MemoryEventStore) Append(_ context.Context, event models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	return nil
}

func (s *MemoryEventStore) Since(_ context.Context, userID string, since time.Time) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.Event{}
	for _, event := range s.events {
		if event.UserID == userID && event.EventTime.After(since) {
			matched = append(matched, event)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].EventTime.Before(matched[j].EventTime)
	})
	if len(matched) > EventPageSize {
		matched = matched[:EventPageSize]
	}
	return matched, nil
}
