// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Emerge API.

# Route Registration

NewRouter creates a ServeMux with all endpoints and wraps it in CORS:

	handler := router.NewRouter(router.Deps{
		Store:    db.NewSQLStore(conn, cfg.DatabaseType),
		Config:   cfg,
		Analyzer: analyzer,
		Cipher:   cipher,
		Metrics:  m,
	})

# Endpoints

Operational:

	GET /health  - {"status":"ok","backend":"go"}
	GET /metrics - Prometheus exposition
	GET /        - Banner

Users:

	POST /users - Register, returns user_id and user_token

Check-ins and insights (require X-User-ID and X-User-Token):

	POST /api/v1/reflections/analyze - Store a mood check-in
	POST /api/v1/insights/trend      - Mood trend over a window
	POST /api/v1/insights/companion  - Companion behaviour

# Middleware

API routes are wrapped with request logging and the per-client rate
limiter (cfg.RateLimitRPM; 0 disables it). Health, metrics and the banner
are not rate limited.
*/
package router
