package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"chmura-plikow/internal/models"
)

type Sessions struct {
	db DBTX
}

func (s *Sessions) GetAll(ctx context.Context) ([]models.Session, error) {
	query := `SELECT token, user_id, expires_at FROM sessions`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var session models.Session
		if err := rows.Scan(&session.Token, &session.UserID, &session.ExpiresAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if sessions == nil {
		return []models.Session{}, nil
	}

	return sessions, nil
}

func (s *Sessions) Get(ctx context.Context, token string) (*models.Session, error) {
	query := `SELECT token, user_id, expires_at FROM sessions WHERE token = $1`

	var session models.Session
	err := s.db.QueryRow(ctx, query, token).Scan(&session.Token, &session.UserID, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (s *Sessions) Put(ctx context.Context, session models.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE SET user_id = $2, expires_at = $3
	`
	_, err := s.db.Exec(ctx, query, session.Token, session.UserID, session.ExpiresAt)
	return err
}

func (s *Sessions) Delete(ctx context.Context, token string) (*models.Session, error) {
	query := `DELETE FROM sessions WHERE token = $1 RETURNING token, user_id, expires_at`

	var session models.Session
	err := s.db.QueryRow(ctx, query, token).Scan(&session.Token, &session.UserID, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}
