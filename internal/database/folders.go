package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"chmura-plikow/internal/models"
)

type Folders struct {
	db DBTX
}

func (s *Folders) GetAll(ctx context.Context) ([]models.Folder, error) {
	query := `SELECT id, name, parent_id, owner_id FROM folders`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFolders(rows)
}

func (s *Folders) Get(ctx context.Context, id string) (*models.Folder, error) {
	query := `SELECT id, name, parent_id, owner_id FROM folders WHERE id = $1`

	var folder models.Folder
	err := s.db.QueryRow(ctx, query, id).Scan(&folder.ID, &folder.Name, &folder.ParentID, &folder.OwnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &folder, nil
}

func (s *Folders) Put(ctx context.Context, folder models.Folder) error {
	query := `
		INSERT INTO folders (id, name, parent_id, owner_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET name = $2, parent_id = $3, owner_id = $4
	`
	_, err := s.db.Exec(ctx, query, folder.ID, folder.Name, folder.ParentID, folder.OwnerID)
	return err
}

func (s *Folders) Delete(ctx context.Context, id string) (*models.Folder, error) {
	query := `DELETE FROM folders WHERE id = $1 RETURNING id, name, parent_id, owner_id`

	var folder models.Folder
	err := s.db.QueryRow(ctx, query, id).Scan(&folder.ID, &folder.Name, &folder.ParentID, &folder.OwnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &folder, nil
}

func (s *Folders) Children(ctx context.Context, parentID string) ([]models.Folder, error) {
	query := `
		SELECT id, name, parent_id, owner_id
		FROM folders
		WHERE parent_id = $1
		ORDER BY name
	`
	rows, err := s.db.Query(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFolders(rows)
}

func (s *Folders) Root(ctx context.Context, ownerID string) (*models.Folder, error) {
	query := `SELECT id, name, parent_id, owner_id FROM folders WHERE owner_id = $1 AND parent_id IS NULL`

	var folder models.Folder
	err := s.db.QueryRow(ctx, query, ownerID).Scan(&folder.ID, &folder.Name, &folder.ParentID, &folder.OwnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &folder, nil
}

func scanFolders(rows pgx.Rows) ([]models.Folder, error) {
	var folders []models.Folder
	for rows.Next() {
		var folder models.Folder
		if err := rows.Scan(&folder.ID, &folder.Name, &folder.ParentID, &folder.OwnerID); err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if folders == nil {
		return []models.Folder{}, nil
	}

	return folders, nil
}
