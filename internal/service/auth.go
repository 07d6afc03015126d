package service

import (
	"context"
	"time"

	"chmura-plikow/internal/models"
	"chmura-plikow/internal/store"
)

// SessionTTL is the validity window of a freshly issued session.
const SessionTTL = 48 * time.Hour

const rootFolderName = "Root"

// AuthService owns registration, authentication and the session lifecycle.
type AuthService struct {
	users    store.UserStore
	folders  store.FolderStore
	sessions store.SessionStore
}

// NewAuthService builds an AuthService. Pass the session store wrapped in
// NewValidatingSessionStore so that Validate applies expiry checking.
func NewAuthService(users store.UserStore, folders store.FolderStore, sessions store.SessionStore) *AuthService {
	return &AuthService{
		users:    users,
		folders:  folders,
		sessions: sessions,
	}
}

// Register validates the credentials, persists a new user and creates the
// user's root folder. A user is never left without a root: if the folder
// write fails the error is surfaced to the caller.
func (s *AuthService) Register(ctx context.Context, login, password string) (*models.User, error) {
	if err := ValidateLogin(login); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	userID, err := GenerateID()
	if err != nil {
		return nil, err
	}
	user := models.User{
		ID:           userID,
		Login:        login,
		PasswordHash: HashPassword(password),
	}
	if err := s.users.Put(ctx, user); err != nil {
		return nil, err
	}

	rootID, err := GenerateID()
	if err != nil {
		return nil, err
	}
	root := models.Folder{
		ID:      rootID,
		Name:    rootFolderName,
		OwnerID: userID,
	}
	if err := s.folders.Put(ctx, root); err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate checks the credentials against the stored digest and, on
// success, mints a fresh session valid for SessionTTL.
func (s *AuthService) Authenticate(ctx context.Context, login, password string) (*models.Session, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash != HashPassword(password) {
		return nil, ErrUserNotAuthenticated
	}

	token, err := GenerateID()
	if err != nil {
		return nil, err
	}
	session := models.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(SessionTTL),
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Validate resolves a token to the owner's user ID. Fails with
// ErrTokenNotFound or ErrTokenExpired (via the validating decorator).
func (s *AuthService) Validate(ctx context.Context, token string) (string, error) {
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", ErrTokenNotFound
	}
	return session.UserID, nil
}

// Logout deletes the session for the token. Deleting an absent token is not
// an error, so logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	_, err := s.sessions.Delete(ctx, token)
	return err
}

// GetUser returns the public profile of a user.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
