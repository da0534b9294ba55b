// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// ListGroups returns all group names ordered by name.
func (s *Store) ListGroups(ctx context.Context) ([]string, error) {
	groups := []string{}

	err := s.runInTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `SELECT name FROM voting_group ORDER BY name`)
		if err != nil {
			return fmt.Errorf("failed to query groups: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return fmt.Errorf("failed to scan group: %w", err)
			}
			groups = append(groups, name)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return groups, nil
}

// SeedGroups inserts names when the group table is empty and returns how
// many were inserted. A populated table is left untouched.
func (s *Store) SeedGroups(ctx context.Context, names []string) (int, error) {
	inserted := 0

	err := s.runInTx(ctx, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM voting_group`).Scan(&count); err != nil {
			return fmt.Errorf("failed to count groups: %w", err)
		}
		if count > 0 {
			return nil
		}

		seen := make(map[string]bool, len(names))
		for _, name := range names {
			if seen[name] {
				continue
			}
			seen[name] = true

			_, err := tx.ExecContext(ctx, `
				INSERT INTO voting_group (id, name) VALUES ($1, $2)
			`, uuid.NewString(), name)
			if err != nil {
				return fmt.Errorf("failed to insert group %q: %w", name, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}
