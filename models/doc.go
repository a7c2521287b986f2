// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - MoodEntryCreate: mood_level (1-5), mood_note, reflection_text, recorded_date
  - TrendRequest: days (1..365; omitted means 7, an explicit 0 is rejected)
  - CompanionRequest: days, current_mood_level

# Response Types

Types for JSON responses:

  - RegisterUserResponse: user_id, user_token
  - EmotionAnalysisResponse: sentiment_polarity, sentiment_subjectivity, analysis_id, message
  - TrendResponse: status, trend_direction, slope, volatility, recommendation, needs_support
  - CompanionStateResponse: action, happiness_modifier, suggested_interaction
  - HealthResponse: status, backend
  - ErrorResponse: error, message

# Domain Types

  - MoodEntry: one stored check-in. Note and reflection text are held
    encrypted and never serialized.

Analysis value types (series, trend, companion state) live in package
analysis so the core has no dependency on these transport shapes.
*/
package models
