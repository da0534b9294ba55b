// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: Connection string or SQLite file (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - SeedGroups: Class names inserted when the group table is empty
  - LogLevel: slog level (default: info)
  - CORSOrigin: Access-Control-Allow-Origin value (default: *)
  - Report: Print the tally table and exit instead of serving

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-groups     Seed groups, comma-separated
	-log-level  Log level
	-origin     Allowed CORS origin
	-report     Print tally and exit

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SEED_GROUPS   → -groups
	LOG_LEVEL     → -log-level
	CORS_ORIGIN   → -origin

CLI flags take precedence over environment variables. LoadDotEnv can be
called before ParseFlags to populate the environment from a .env file;
variables already present in the environment are not overwritten.
*/
package cliparse
