// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidGroup = errors.New("group not found")
	ErrDuplicate    = errors.New("already exists")
)

// Errors returned by Store methods. Each wraps one of the classes above,
// so callers can match either the class or the specific error.
var (
	ErrVoterNotFound     = fmt.Errorf("voter %w", ErrNotFound)
	ErrCandidateNotFound = fmt.Errorf("candidate %w", ErrNotFound)
	ErrVoterGroup        = fmt.Errorf("voter %w", ErrInvalidGroup)
	ErrCandidateGroup    = fmt.Errorf("candidate %w", ErrInvalidGroup)
	ErrVoterExists       = fmt.Errorf("voter %w", ErrDuplicate)
	ErrCandidateExists   = fmt.Errorf("candidate %w", ErrDuplicate)
)

// Store holds the group, candidate and voter registries and the vote ledger.
// Every exported operation runs in its own transaction.
type Store struct {
	conn *sql.DB
}

func New(conn *sql.DB) *Store {
	return &Store{conn: conn}
}

// runInTx executes fn inside a transaction, committing only if fn succeeds.
func (s *Store) runInTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// lookupGroupID resolves a group name, returning notFound when it does not exist.
func lookupGroupID(ctx context.Context, tx *sql.Tx, name string, notFound error) (string, error) {
	var id string
	err := tx.QueryRowContext(ctx, `
		SELECT id FROM voting_group WHERE name = $1
	`, name).Scan(&id)

	if err == sql.ErrNoRows {
		return "", notFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query group: %w", err)
	}
	return id, nil
}
