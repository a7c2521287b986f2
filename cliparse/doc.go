// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (godotenv). Variables
already present in the environment are not overwritten by it.

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: sqlite (default) or postgres
  - UserTokenSalt: Secret for user token HMAC (required)
  - EncryptionKey: Base64 32-byte key for notes at rest (required)
  - LexiconPath: Optional YAML sentiment lexicon
  - AllowedOrigins: CORS origins (default: the Vite and preview dev servers)
  - RateLimitRPM: Per-client requests per minute (default: 60, 0 disables)

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	--token-salt     User token salt
	--encryption-key Encryption key
	--lexicon        Lexicon path
	--origins        Comma-separated CORS origins
	--rate-limit     Requests per minute

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	USER_TOKEN_SALT  → --token-salt
	ENCRYPTION_KEY   → --encryption-key
	LEXICON_PATH     → --lexicon
	ALLOWED_ORIGINS  → --origins
	RATE_LIMIT_RPM   → --rate-limit

CLI flags take precedence over environment variables.
*/
package cliparse
