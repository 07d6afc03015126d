package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"chmura-plikow/internal/models"
)

type Files struct {
	db DBTX
}

func (s *Files) GetAll(ctx context.Context) ([]models.FileMetadata, error) {
	query := `SELECT id, name, file_type, size_bytes, parent_id, owner_id FROM files`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFiles(rows)
}

func (s *Files) Get(ctx context.Context, id string) (*models.FileMetadata, error) {
	query := `SELECT id, name, file_type, size_bytes, parent_id, owner_id FROM files WHERE id = $1`

	var file models.FileMetadata
	err := s.db.QueryRow(ctx, query, id).Scan(
		&file.ID, &file.Name, &file.FileType, &file.SizeBytes, &file.ParentID, &file.OwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func (s *Files) Put(ctx context.Context, file models.FileMetadata) error {
	query := `
		INSERT INTO files (id, name, file_type, size_bytes, parent_id, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET name = $2, file_type = $3, size_bytes = $4, parent_id = $5, owner_id = $6
	`
	_, err := s.db.Exec(ctx, query, file.ID, file.Name, file.FileType, file.SizeBytes, file.ParentID, file.OwnerID)
	return err
}

func (s *Files) Delete(ctx context.Context, id string) (*models.FileMetadata, error) {
	query := `DELETE FROM files WHERE id = $1 RETURNING id, name, file_type, size_bytes, parent_id, owner_id`

	var file models.FileMetadata
	err := s.db.QueryRow(ctx, query, id).Scan(
		&file.ID, &file.Name, &file.FileType, &file.SizeBytes, &file.ParentID, &file.OwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func (s *Files) InFolder(ctx context.Context, parentID string) ([]models.FileMetadata, error) {
	query := `
		SELECT id, name, file_type, size_bytes, parent_id, owner_id
		FROM files
		WHERE parent_id = $1
		ORDER BY name
	`
	rows, err := s.db.Query(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFiles(rows)
}

func scanFiles(rows pgx.Rows) ([]models.FileMetadata, error) {
	var files []models.FileMetadata
	for rows.Next() {
		var file models.FileMetadata
		if err := rows.Scan(
			&file.ID, &file.Name, &file.FileType, &file.SizeBytes, &file.ParentID, &file.OwnerID,
		); err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if files == nil {
		return []models.FileMetadata{}, nil
	}

	return files, nil
}

type Contents struct {
	db DBTX
}

func (s *Contents) GetAll(ctx context.Context) ([]models.FileContent, error) {
	query := `SELECT id, data FROM file_contents`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contents []models.FileContent
	for rows.Next() {
		var content models.FileContent
		if err := rows.Scan(&content.ID, &content.Data); err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if contents == nil {
		return []models.FileContent{}, nil
	}

	return contents, nil
}

func (s *Contents) Get(ctx context.Context, id string) (*models.FileContent, error) {
	query := `SELECT id, data FROM file_contents WHERE id = $1`

	var content models.FileContent
	err := s.db.QueryRow(ctx, query, id).Scan(&content.ID, &content.Data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

func (s *Contents) Put(ctx context.Context, content models.FileContent) error {
	query := `
		INSERT INTO file_contents (id, data)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET data = $2
	`
	_, err := s.db.Exec(ctx, query, content.ID, content.Data)
	return err
}

func (s *Contents) Delete(ctx context.Context, id string) (*models.FileContent, error) {
	query := `DELETE FROM file_contents WHERE id = $1 RETURNING id, data`

	var content models.FileContent
	err := s.db.QueryRow(ctx, query, id).Scan(&content.ID, &content.Data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}
