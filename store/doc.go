// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the group, candidate and voter registries and the vote
ledger, all backed by one *sql.DB.

Voters and candidates are addressed by models.Identity (name, surname,
group). Each exported method runs in its own transaction, so a failed
operation changes nothing.

# Errors

Errors fall into three classes, matched with errors.Is:

	ErrInvalidGroup  the identity's group does not exist
	ErrNotFound      no voter or candidate with that identity
	ErrDuplicate     the identity is already registered

The concrete errors (ErrVoterGroup, ErrCandidateNotFound, ...) wrap one class
and name the entity in their message.

# Votes

A voter has at most one vote. Cast replaces it, Withdraw removes it, and
RemoveCandidate clears every vote for the removed candidate. Tally reports
every candidate with a breakdown by the voter's group.
*/
package store
