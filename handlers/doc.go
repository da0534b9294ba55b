// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the class-ballot API.

# Handler Types

Each handler is a struct holding the shared *store.Store:

  - GroupHandler: list groups
  - CandidateHandler: register, check, remove and list candidates
  - VoterHandler: register and list voters
  - VoteHandler: cast, withdraw and query votes
  - StatsHandler: tally as JSON or as a text table

Handlers are created via constructor functions:

	voteHandler := handlers.NewVoteHandler(st)

# Identities

Voters and candidates are addressed by name, surname and group. Fields are
trimmed, must be non-empty, and are capped at models.MaxNameLength and
models.MaxGroupLength. POST /votes nests two identities under "voter" and
"candidate".

# Errors

Store errors map to status codes in writeStoreError:

	store.ErrInvalidGroup, store.ErrDuplicate → 400
	store.ErrNotFound                          → 404
	anything else                              → 500 "Database error"

The response body is a models.ErrorResponse whose message names the failing
entity, e.g. "voter not found" or "candidate group not found".
*/
package handlers
