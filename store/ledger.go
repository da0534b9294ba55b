// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/class-ballot/models"
)

// Cast records that voter supports candidate, replacing any earlier vote.
// Lookups are checked in order: voter group, voter, candidate group,
// candidate. On error the voter's previous vote is left as it was.
func (s *Store) Cast(ctx context.Context, voter, candidate models.Identity) error {
	return s.runInTx(ctx, func(tx *sql.Tx) error {
		voterID, err := resolveVoter(ctx, tx, voter)
		if err != nil {
			return err
		}

		gid, err := lookupGroupID(ctx, tx, candidate.Group, ErrCandidateGroup)
		if err != nil {
			return err
		}
		candidateID, err := lookupCandidateID(ctx, tx, candidate.Name, candidate.Surname, gid)
		if err != nil {
			return err
		}

		// vote.voter_id is the primary key, so this is the only edge for the voter
		_, err = tx.ExecContext(ctx, `
			INSERT INTO vote (voter_id, candidate_id, cast_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (voter_id) DO UPDATE
			SET candidate_id = excluded.candidate_id, cast_at = excluded.cast_at
		`, voterID, candidateID, time.Now())
		if err != nil {
			return fmt.Errorf("failed to record vote: %w", err)
		}
		return nil
	})
}

// Withdraw removes the voter's vote. It reports whether there was one;
// withdrawing when not voting is not an error.
func (s *Store) Withdraw(ctx context.Context, voter models.Identity) (bool, error) {
	var removed bool

	err := s.runInTx(ctx, func(tx *sql.Tx) error {
		voterID, err := resolveVoter(ctx, tx, voter)
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM vote WHERE voter_id = $1`, voterID)
		if err != nil {
			return fmt.Errorf("failed to delete vote: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to count deleted votes: %w", err)
		}
		removed = n > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	return removed, nil
}

// Query returns the candidate the voter currently supports, or nil.
func (s *Store) Query(ctx context.Context, voter models.Identity) (*models.VotingFor, error) {
	var result *models.VotingFor

	err := s.runInTx(ctx, func(tx *sql.Tx) error {
		voterID, err := resolveVoter(ctx, tx, voter)
		if err != nil {
			return err
		}

		var vf models.VotingFor
		err = tx.QueryRowContext(ctx, `
			SELECT c.id, c.name, c.surname, g.name
			FROM vote v
			JOIN candidate c ON c.id = v.candidate_id
			JOIN voting_group g ON g.id = c.group_id
			WHERE v.voter_id = $1
		`, voterID).Scan(&vf.ID, &vf.Name, &vf.Surname, &vf.Group)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to query vote: %w", err)
		}
		result = &vf
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Tally counts votes for every candidate, broken down by the voter's group.
// Candidates without votes are included with a zero total and an empty
// breakdown. Results are ordered by candidate group, surname and name.
func (s *Store) Tally(ctx context.Context) ([]models.CandidateStats, error) {
	stats := []models.CandidateStats{}

	err := s.runInTx(ctx, func(tx *sql.Tx) error {
		// One row per (candidate, voter group).
		rows, err := tx.QueryContext(ctx, `
			SELECT c.id, c.name, c.surname, cg.name, c.statement, vg.name, COUNT(v.voter_id)
			FROM candidate c
			JOIN voting_group cg ON cg.id = c.group_id
			LEFT JOIN vote v ON v.candidate_id = c.id
			LEFT JOIN voter u ON u.id = v.voter_id
			LEFT JOIN voting_group vg ON vg.id = u.group_id
			GROUP BY c.id, c.name, c.surname, cg.name, c.statement, vg.name
			ORDER BY cg.name, c.surname, c.name, c.id
		`)
		if err != nil {
			return fmt.Errorf("failed to query tally: %w", err)
		}
		defer rows.Close()

		index := make(map[string]int)
		for rows.Next() {
			var (
				c          models.CandidateStats
				voterGroup sql.NullString
				count      int
			)
			if err := rows.Scan(&c.CandidateID, &c.Name, &c.Surname, &c.Group, &c.Statement, &voterGroup, &count); err != nil {
				return fmt.Errorf("failed to scan tally row: %w", err)
			}

			i, ok := index[c.CandidateID]
			if !ok {
				c.VotesByGroup = map[string]int{}
				stats = append(stats, c)
				i = len(stats) - 1
				index[c.CandidateID] = i
			}

			if voterGroup.Valid && count > 0 {
				stats[i].VotesByGroup[voterGroup.String] += count
				stats[i].TotalVotes += count
			}
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}
