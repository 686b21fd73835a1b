// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags and
environment variables.

Flags take precedence over environment variables. Secrets (session
signing secret, admin password) should come from the environment; the
flags exist for local development only.

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

  - PORT (-p): listen port (default 5000)
  - DATABASE_URL (-d): postgres URL or sqlite file path (default ratings.db)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default sqlite)
  - ROSTER_PATH (-roster): entrant roster YAML file (default roster.yaml)
  - SCORE_MAX (-score-max): rating scale upper bound (default 10)
  - SESSION_SECRET: required, signs the admin session cookie
  - ADMIN_PASSWORD: required, shared admin password
*/
package cliparse
