// Package store defines the persistence contract of the application and its
// in-memory reference implementation. Processes only ever see the interfaces
// declared here; the relational backend in internal/database implements the
// same interfaces with identical semantics.
package store

import (
	"context"
	"time"

	"chmura-plikow/internal/models"
)

// Record is a persisted entity addressed by a unique key within its store.
type Record[I comparable] interface {
	Key() I
}

// Store is the generic record-store contract. Put inserts or fully
// overwrites the record sharing its key. Get and Delete return nil (and no
// error) when the record is absent; Delete additionally returns the prior
// value when one was removed. Implementations must be safe for concurrent
// callers.
type Store[I comparable, R Record[I]] interface {
	GetAll(ctx context.Context) ([]R, error)
	Get(ctx context.Context, id I) (*R, error)
	Put(ctx context.Context, record R) error
	Delete(ctx context.Context, id I) (*R, error)
}

// UserStore persists registered users together with their credentials.
type UserStore interface {
	Store[string, models.User]

	// GetByLogin returns the user with the given login name, or nil.
	GetByLogin(ctx context.Context, login string) (*models.User, error)
}

// FolderStore persists the folder trees of all users.
type FolderStore interface {
	Store[string, models.Folder]

	// Children returns the immediate child folders of the given folder,
	// in no particular order.
	Children(ctx context.Context, parentID string) ([]models.Folder, error)

	// Root returns the parent-less folder of the given owner, or nil.
	Root(ctx context.Context, ownerID string) (*models.Folder, error)
}

// FileMetadataStore persists file metadata records.
type FileMetadataStore interface {
	Store[string, models.FileMetadata]

	// InFolder returns the files directly inside the given folder,
	// in no particular order.
	InFolder(ctx context.Context, parentID string) ([]models.FileMetadata, error)
}

// FileContentStore persists binary file payloads, keyed by file ID.
type FileContentStore interface {
	Store[string, models.FileContent]
}

// SessionStore persists login sessions, keyed by token.
type SessionStore interface {
	Store[string, models.Session]
}

// EventPageSize caps how many events a single Since call returns. Clients
// page through the journal by advancing the since timestamp.
const EventPageSize = 100

// EventStore is the append-only change journal of the application.
type EventStore interface {
	Append(ctx context.Context, event models.Event) error

	// Since returns the events of a user that happened after the given
	// instant, oldest first, at most EventPageSize per call.
	Since(ctx context.Context, userID string, since time.Time) ([]models.Event, error)
}
