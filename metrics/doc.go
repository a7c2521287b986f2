// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus counters for mood analysis: reflections
// scored, sentiment fallbacks, trend directions, support signals and
// companion actions. Handler serves them on GET /metrics.
package metrics
