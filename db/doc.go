// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Drivers

Open picks a driver from cliparse.Config.DatabaseType:

  - "sqlite": modernc.org/sqlite, DatabaseURL is a file path
  - "postgres": github.com/lib/pq, DatabaseURL is a connection string

SQLite connections enable foreign keys and a busy timeout, and the pool is
limited to one connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - voting_group: Group names
  - candidate: Candidates with their statement, unique per (name, surname, group)
  - voter: Voters, unique per (name, surname, group)
  - vote: At most one row per voter, keyed by voter_id

# Relationships

	voting_group 1──* candidate
	voting_group 1──* voter
	voter 1──0..1 vote *──1 candidate

# Errors

IsUniqueViolation reports whether an error is a unique or primary key
violation from either driver.
*/
package db
