// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the class-ballot API server.

class-ballot runs a class representative election: groups (classes),
candidates with a statement, voters, and one changeable vote per voter,
tallied per candidate with a breakdown by the voter's group.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=ballot.db go run .

Or with flags:

	go run . -p 8000 -d ballot.db -t sqlite

A .env file in the working directory is loaded first; variables already set
in the environment win.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SEED_GROUPS (-groups): Comma-separated groups seeded into an empty registry
  - LOG_LEVEL (-log-level): debug, info, warn or error
  - CORS_ORIGIN (-origin): Allowed origin, "*" mirrors the caller

# Report Mode

	go run . -d ballot.db -report

prints the current tally as a table and exits without serving.

# Architecture

  - store: Registries and the vote ledger, one transaction per operation
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - report: Text tally tables
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
