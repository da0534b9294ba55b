// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/class-ballot/db"
	"github.com/danielhkuo/class-ballot/models"
)

// RegisterCandidate creates a candidate and returns its id.
func (s *Store) RegisterCandidate(ctx context.Context, req models.RegisterCandidateRequest) (string, error) {
	id := uuid.NewString()

	err := s.runInTx(ctx, func(tx *sql.Tx) error {
		gid, err := lookupGroupID(ctx, tx, req.Group, ErrCandidateGroup)
		if err != nil {
			return err
		}

		if _, err := lookupCandidateID(ctx, tx, req.Name, req.Surname, gid); err == nil {
			return ErrCandidateExists
		} else if err != ErrCandidateNotFound {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO candidate (id, name, surname, group_id, statement, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, id, req.Name, req.Surname, gid, req.Statement, time.Now())
		if db.IsUniqueViolation(err) {
			return ErrCandidateExists
		}
		if err != nil {
			return fmt.Errorf("failed to insert candidate: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// GetCandidate looks a candidate up by identity.
func (s *Store) GetCandidate(ctx context.Context, ident models.Identity) (*models.Candidate, error) {
	var c models.Candidate

	err := s.runInTx(ctx, func(tx *sql.Tx) error {
		gid, err := lookupGroupID(ctx, tx, ident.Group, ErrCandidateGroup)
		if err != nil {
			return err
		}

		err = tx.QueryRowContext(ctx, `
			SELECT id, name, surname, statement
			FROM candidate
			WHERE name = $1 AND surname = $2 AND group_id = $3
		`, ident.Name, ident.Surname, gid).Scan(&c.ID, &c.Name, &c.Surname, &c.Statement)
		if err == sql.ErrNoRows {
			return ErrCandidateNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to query candidate: %w", err)
		}
		c.Group = ident.Group
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// IsCandidate reports whether ident is a registered candidate. An unknown
// group is not an error; nobody can be a candidate in it.
func (s *Store) IsCandidate(ctx context.Context, ident models.Identity) (bool, error) {
	_, err := s.GetCandidate(ctx, ident)
	switch err {
	case nil:
		return true, nil
	case ErrCandidateGroup, ErrCandidateNotFound:
		return false, nil
	default:
		return false, err
	}
}

// RemoveCandidate deletes a candidate. Votes cast for the candidate are
// withdrawn in the same transaction; the number withdrawn is returned.
func (s *Store) RemoveCandidate(ctx context.Context, ident models.Identity) (int, error) {
	var cleared int64

	err := s.runInTx(ctx, func(tx *sql.Tx) error {
		gid, err := lookupGroupID(ctx, tx, ident.Group, ErrCandidateGroup)
		if err != nil {
			return err
		}

		cid, err := lookupCandidateID(ctx, tx, ident.Name, ident.Surname, gid)
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM vote WHERE candidate_id = $1`, cid)
		if err != nil {
			return fmt.Errorf("failed to clear votes: %w", err)
		}
		if cleared, err = res.RowsAffected(); err != nil {
			return fmt.Errorf("failed to count cleared votes: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM candidate WHERE id = $1`, cid); err != nil {
			return fmt.Errorf("failed to delete candidate: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return int(cleared), nil
}

// ListCandidates returns every candidate ordered by group, surname and name.
func (s *Store) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	candidates := []models.Candidate{}

	err := s.runInTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT c.id, c.name, c.surname, c.statement, g.name
			FROM candidate c
			JOIN voting_group g ON g.id = c.group_id
			ORDER BY g.name, c.surname, c.name
		`)
		if err != nil {
			return fmt.Errorf("failed to query candidates: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var c models.Candidate
			if err := rows.Scan(&c.ID, &c.Name, &c.Surname, &c.Statement, &c.Group); err != nil {
				return fmt.Errorf("failed to scan candidate: %w", err)
			}
			candidates = append(candidates, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return candidates, nil
}

func lookupCandidateID(ctx context.Context, tx *sql.Tx, name, surname, gid string) (string, error) {
	var id string
	err := tx.QueryRowContext(ctx, `
		SELECT id FROM candidate
		WHERE name = $1 AND surname = $2 AND group_id = $3
	`, name, surname, gid).Scan(&id)

	if err == sql.ErrNoRows {
		return "", ErrCandidateNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query candidate: %w", err)
	}
	return id, nil
}
