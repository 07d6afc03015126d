package service

import (
	"context"
	"time"

	"chmura-plikow/internal/models"
	"chmura-plikow/internal/store"
)

// ValidatingSessionStore decorates a raw SessionStore with expiry checking.
// Get reports ErrTokenNotFound for absent tokens and, for expired sessions,
// deletes the record and reports ErrTokenExpired; expired sessions are
// purged lazily on the access that discovers them, there is no background
// sweep. All other operations pass through unchanged.
type ValidatingSessionStore struct {
	store.SessionStore
}

func NewValidatingSessionStore(raw store.SessionStore) *ValidatingSessionStore {
	return &ValidatingSessionStore{SessionStore: raw}
}

func (s *ValidatingSessionStore) Get(ctx context.Context, token string) (*models.Session, error) {
	session, err := s.SessionStore.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrTokenNotFound
	}
	if !session.ExpiresAt.After(time.Now()) {
		if _, err := s.SessionStore.Delete(ctx, token); err != nil {
			return nil, err
		}
		return nil, ErrTokenExpired
	}
	return session, nil
}
