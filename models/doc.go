// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - Identity: name, surname, group (voters, candidate lookups)
  - RegisterCandidateRequest: name, surname, group, statement
  - CastVoteRequest: voter (Identity), candidate (Identity)

# Response Types

Types for JSON responses:

  - MessageResponse: message
  - GroupsResponse: groups
  - IsCandidateResponse: is_candidate
  - CandidatesResponse: candidates
  - VotersResponse: voters
  - QueryVoteResponse: voting_for (object or null)
  - StatsResponse: stats
  - ErrorResponse: error, message

# Domain Types

  - Candidate: registered candidate with statement and group name
  - Voter: registered voter
  - VotingFor: the candidate a voter currently supports
  - CandidateStats: total votes and per-group breakdown for one candidate

Internal IDs are tagged json:"-" everywhere except VotingFor, which
exposes the candidate id.

# Limits

	MaxNameLength  = 50 // name and surname
	MaxGroupLength = 10
*/
package models
