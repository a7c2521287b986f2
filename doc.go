// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Emerge API server.

Emerge is a mood journal backend. Users check in with a 1-5 mood level
and an optional reflection; the server scores the reflection's sentiment,
fits a trend over recent days, flags when support may help, and tells a
virtual companion how to behave.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=emerge.db USER_TOKEN_SALT=... ENCRYPTION_KEY=... go run .

Or with flags:

	go run . -p 8000 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string or SQLite file
  - USER_TOKEN_SALT (-token-salt): Secret for user token HMAC
  - ENCRYPTION_KEY (-encryption-key): base64 32-byte key for notes at rest

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - LEXICON_PATH (-lexicon): YAML sentiment lexicon (default: built in)
  - ALLOWED_ORIGINS (-origins): Comma-separated CORS origins
  - RATE_LIMIT_RPM (-rate-limit): Requests per minute per client (default: 60)

# Architecture

  - analysis: Sentiment scoring, trend fitting, companion mapping
  - handlers: HTTP request handlers (users, reflections, insights)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, rate limiting, JSON helpers
  - metrics: Prometheus counters
  - models: Request/response types
  - auth: User tokens and encryption at rest
  - db: Drivers, schema and mood storage
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
