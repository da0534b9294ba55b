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

// RegisterVoter creates a voter with no vote and returns its id.
func (s *Store) RegisterVoter(ctx context.Context, ident models.Identity) (string, error) {
	id := uuid.NewString()

	err := s.runInTx(ctx, func(tx *sql.Tx) error {
		gid, err := lookupGroupID(ctx, tx, ident.Group, ErrVoterGroup)
		if err != nil {
			return err
		}

		if _, err := lookupVoterID(ctx, tx, ident.Name, ident.Surname, gid); err == nil {
			return ErrVoterExists
		} else if err != ErrVoterNotFound {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO voter (id, name, surname, group_id, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, id, ident.Name, ident.Surname, gid, time.Now())
		if db.IsUniqueViolation(err) {
			return ErrVoterExists
		}
		if err != nil {
			return fmt.Errorf("failed to insert voter: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// GetVoter looks a voter up by identity.
func (s *Store) GetVoter(ctx context.Context, ident models.Identity) (*models.Voter, error) {
	var v models.Voter

	err := s.runInTx(ctx, func(tx *sql.Tx) error {
		id, err := resolveVoter(ctx, tx, ident)
		if err != nil {
			return err
		}
		v = models.Voter{ID: id, Name: ident.Name, Surname: ident.Surname, Group: ident.Group}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// ListVoters returns every voter ordered by group, surname and name.
func (s *Store) ListVoters(ctx context.Context) ([]models.Voter, error) {
	voters := []models.Voter{}

	err := s.runInTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT v.id, v.name, v.surname, g.name
			FROM voter v
			JOIN voting_group g ON g.id = v.group_id
			ORDER BY g.name, v.surname, v.name
		`)
		if err != nil {
			return fmt.Errorf("failed to query voters: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var v models.Voter
			if err := rows.Scan(&v.ID, &v.Name, &v.Surname, &v.Group); err != nil {
				return fmt.Errorf("failed to scan voter: %w", err)
			}
			voters = append(voters, v)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return voters, nil
}

// resolveVoter maps an identity to a voter id inside tx.
func resolveVoter(ctx context.Context, tx *sql.Tx, ident models.Identity) (string, error) {
	gid, err := lookupGroupID(ctx, tx, ident.Group, ErrVoterGroup)
	if err != nil {
		return "", err
	}
	return lookupVoterID(ctx, tx, ident.Name, ident.Surname, gid)
}

func lookupVoterID(ctx context.Context, tx *sql.Tx, name, surname, gid string) (string, error) {
	var id string
	err := tx.QueryRowContext(ctx, `
		SELECT id FROM voter
		WHERE name = $1 AND surname = $2 AND group_id = $3
	`, name, surname, gid).Scan(&id)

	if err == sql.ErrNoRows {
		return "", ErrVoterNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query voter: %w", err)
	}
	return id, nil
}
