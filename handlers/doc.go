// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Emerge API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - UserHandler: Anonymous user registration
  - ReflectionHandler: Mood check-ins with sentiment scoring
  - InsightsHandler: Trend analysis and companion state

Handlers are created via constructor functions:

	users := handlers.NewUserHandler(store, cfg)
	reflections := handlers.NewReflectionHandler(store, cfg, analyzer, cipher, m)
	insights := handlers.NewInsightsHandler(store, cfg, analyzer, m)

# Authentication

POST /users returns a user_id and user_token. Every other API call sends
them as X-User-ID and X-User-Token. A token that validates but names an
unregistered user is rejected with 401.

# Check-ins

	POST /api/v1/reflections/analyze → Analyze

Body: mood_level (1-5, required), mood_note, reflection_text,
recorded_date (YYYY-MM-DD, defaults to today UTC). The mood note is
scored, or the reflection if there is no note. Both texts are
encrypted before storage. The response carries the sentiment scores and
the stored entry's ID as analysis_id.

# Insights

	POST /api/v1/insights/trend     → Trend
	POST /api/v1/insights/companion → Companion

Both take an optional days window (default 7, max 365) ending today.
Entries are collapsed to one score per day before the trend is fitted.
Trend also reports needs_support, judged on the slope and the latest
day's score. Companion uses current_mood_level when given, otherwise
the level of the most recent entry; with neither it returns 400.

An empty request body means "use defaults".
*/
package handlers
