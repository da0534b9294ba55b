// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the class-ballot API.

# Route Registration

NewRouter creates a ServeMux with all endpoints, wrapped in CORS:

	handler := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Groups:

	GET /groups

Candidates:

	GET  /candidates         - List candidates
	POST /candidates         - Register a candidate
	POST /candidates/check   - Is this identity a candidate
	POST /candidates/remove  - Remove a candidate and clear their votes

Voters:

	GET  /voters - List voters
	POST /voters - Register a voter

Votes:

	POST /votes          - Cast or replace a vote
	POST /votes/withdraw - Withdraw a vote
	POST /votes/query    - Who a voter is voting for

Tally:

	GET /stats       - Per-candidate totals and per-group breakdown
	GET /stats/table - The same as a text table

Every route except /health and / is wrapped in middleware.WithLogging.
*/
package router
