// Package database is the PostgreSQL implementation of the store
// interfaces from internal/store. Semantics match the in-memory reference
// implementation: Put overwrites by primary key, Get and Delete return nil
// on a miss.
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Store bundles the per-entity stores over one connection pool.
type Store struct {
	pool *pgxpool.Pool

	Users    *Users
	Folders  *Folders
	Files    *Files
	Contents *Contents
	Sessions *Sessions
	Events   *Events
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:     pool,
		Users:    &Users{db: pool},
		Folders:  &Folders{db: pool},
		Files:    &Files{db: pool},
		Contents: &Contents{db: pool},
		Sessions: &Sessions{db: pool},
		Events:   &Events{db: pool},
	}
}

// ExecTx runs fn against a Store bound to a single transaction and commits
// it when fn succeeds.
func (s *Store) ExecTx(ctx context.Context, fn func(*Store) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	txStore := &Store{
		Users:    &Users{db: tx},
		Folders:  &Folders{db: tx},
		Files:    &Files{db: tx},
		Contents: &Contents{db: tx},
		Sessions: &Sessions{db: tx},
		Events:   &Events{db: tx},
	}
	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}

func (s *Store) GetPool() *pgxpool.Pool {
	return s.pool
}
