// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# CORS Middleware

Enable cross-origin requests from the configured frontend origins:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigins)(mux),
	}

Matching origins are echoed back with methods GET, POST, OPTIONS and
headers Content-Type, Authorization, X-User-ID, X-User-Token. A "*" entry
allows any origin. Other origins get no CORS headers.

# Rate Limiting

RateLimiter keeps a token bucket (golang.org/x/time/rate) per client:

	rl := middleware.NewRateLimiter(cfg.RateLimitRPM, cfg.UserTokenSalt)
	mux.HandleFunc("POST /api/v1/insights/trend", rl.Wrap(handler))

Requests whose X-User-ID and X-User-Token verify get a per-user bucket.
All other requests, including ones with an unverified X-User-ID, are keyed
by client IP.
Rejected requests get 429 with a JSON error body. A nil *RateLimiter
allows everything.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.MoodEntryCreate
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

An empty body returns io.EOF, which handlers with optional bodies treat
as "use defaults".

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
