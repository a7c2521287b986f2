// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort         = 8000
	DefaultRateLimitRPM = 60
)

// DefaultOrigins are the frontend dev servers
var DefaultOrigins = []string{"http://localhost:5173", "http://localhost:8080"}

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	UserTokenSalt  string
	EncryptionKey  string
	LexiconPath    string
	AllowedOrigins []string
	RateLimitRPM   int
}

// ParseFlags loads .env (if present), then parses flags with environment
// variables as fallback. Flags always win.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	fs := flag.NewFlagSet("emerge", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	origins := fs.String("origins", "", "Comma-separated CORS origins")
	rateLimit := fs.String("rate-limit", "", "Requests per minute per client (0 disables)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.UserTokenSalt, "token-salt", "", "User token salt (prefer env)")
	fs.StringVar(&cfg.EncryptionKey, "encryption-key", "", "Base64 32-byte key for text at rest (prefer env)")

	fs.StringVar(&cfg.LexiconPath, "lexicon", "", "Optional YAML sentiment lexicon")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.LexiconPath == "" {
		cfg.LexiconPath = os.Getenv("LEXICON_PATH")
	}

	if *origins == "" {
		*origins = os.Getenv("ALLOWED_ORIGINS")
	}
	cfg.AllowedOrigins = splitList(*origins)
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = DefaultOrigins
	}

	if *rateLimit == "" {
		*rateLimit = os.Getenv("RATE_LIMIT_RPM")
	}
	cfg.RateLimitRPM = DefaultRateLimitRPM
	if *rateLimit != "" {
		rpm, err := strconv.Atoi(*rateLimit)
		if err != nil || rpm < 0 {
			return Config{}, errors.New("invalid rate limit")
		}
		cfg.RateLimitRPM = rpm
	}

	// Secrets - MUST be provided
	if cfg.UserTokenSalt == "" {
		cfg.UserTokenSalt = os.Getenv("USER_TOKEN_SALT")
	}
	if cfg.UserTokenSalt == "" {
		return Config{}, errors.New("USER_TOKEN_SALT required")
	}

	if cfg.EncryptionKey == "" {
		cfg.EncryptionKey = os.Getenv("ENCRYPTION_KEY")
	}
	if cfg.EncryptionKey == "" {
		return Config{}, errors.New("ENCRYPTION_KEY required")
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
