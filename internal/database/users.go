package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"chmura-plikow/internal/models"
)

type Users struct {
	db DBTX
}

func (s *Users) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, login, password_hash FROM users`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Login, &user.PasswordHash); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if users == nil {
		return []models.User{}, nil
	}

	return users, nil
}

func (s *Users) Get(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT id, login, password_hash FROM users WHERE id = $1`

	var user models.User
	err := s.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Login, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *Users) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	query := `SELECT id, login, password_hash FROM users WHERE login = $1`

	var user models.User
	err := s.db.QueryRow(ctx, query, login).Scan(&user.ID, &user.Login, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *Users) Put(ctx context.Context, user models.User) error {
	query := `
		INSERT INTO users (id, login, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET login = $2, password_hash = $3
	`
	_, err := s.db.Exec(ctx, query, user.ID, user.Login, user.PasswordHash)
	return err
}

func (s *Users) Delete(ctx context.Context, id string) (*models.User, error) {
	query := `DELETE FROM users WHERE id = $1 RETURNING id, login, password_hash`

	var user models.User
	err := s.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Login, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
