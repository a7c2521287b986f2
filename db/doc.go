// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database, creates the schema and stores mood entries.

# Drivers

Two backends are supported:

  - postgres: github.com/lib/pq
  - sqlite: modernc.org/sqlite (pure Go, no cgo)

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

SQLite connections are capped at one, which also keeps ":memory:"
databases shared across queries.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL runs on both backends.

# Tables

  - app_user: Registered users ("user" is reserved in PostgreSQL)
  - mood_entry: One row per check-in; mood note and reflection are
    stored encrypted and never decrypted by the server

	app_user 1──* mood_entry

# Store

SQLStore implements MoodStore. Queries are written with PostgreSQL $n
placeholders and rebound to ?n for SQLite.

DailySeries collapses several entries on the same day into one
observation (mean score), ordered by date. The result always has
distinct ascending dates, which is what the analysis package expects.

LatestEntry returns ErrNotFound when the user has no entries.
*/
package db
