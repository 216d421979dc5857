// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

Environment variables are decoded first (caarlos0/env), then CLI flags
override them. LoadDotEnv fills the environment from a .env file without
replacing variables that are already set.

# Config Fields

  - Port: Server listen port (default: 3001)
  - DatabaseURL: PostgreSQL connection string or SQLite file (default: spins.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminKey: Secret for admin routes; empty disables the check
  - AllowedOrigins, FrontendURL: CORS allow-list
  - SpecialPrizeChance: Probability of the special prize (default: 0.01)
  - SMTPHost, SMTPPort, EmailUser, EmailPassword: Prize email delivery
  - NotifyTimeout: Per-email deadline (default: 30s)

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	-admin-key       Admin key
	-frontend-url    Extra CORS origin
	-special-chance  Special prize probability

# Environment Variables

	PORT, DATABASE_URL, DATABASE_TYPE, ADMIN_KEY,
	ALLOWED_ORIGINS (comma separated), FRONTEND_URL,
	SPECIAL_PRIZE_CHANCE, SMTP_HOST, SMTP_PORT,
	EMAIL_USER, EMAIL_PASSWORD, NOTIFY_TIMEOUT

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - the port is outside 1-65535
  - DATABASE_URL is empty
  - DATABASE_TYPE is not sqlite or postgres
  - SPECIAL_PRIZE_CHANCE is outside [0, 1]
*/
package cliparse
