// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the fortune wheel API server.

Participants spin a promotional prize wheel once per national ID. One
scarce special prize can be won at most once; every other outcome is drawn
uniformly from the regular entries. Winners are emailed in the background
and administrators mark prizes as disbursed.

# Starting the Server

Configuration comes from a .env file, the environment, and CLI flags (flags
win):

	go run .

Or with flags:

	go run . -p 3001 -t postgres -d "postgres://..."

# Configuration

  - PORT (-p): Server port (default: 3001)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): DSN or SQLite file (default: spins.db)
  - ADMIN_KEY (-admin-key): Required X-Admin-Key for admin routes; empty disables the check
  - ALLOWED_ORIGINS, FRONTEND_URL (-frontend-url): CORS allow-list
  - SPECIAL_PRIZE_CHANCE (-special-chance): Probability of the special prize (default: 0.01)
  - SMTP_HOST, SMTP_PORT, EMAIL_USER, EMAIL_PASSWORD: Prize email delivery
  - NOTIFY_TIMEOUT: Per-email timeout (default: 30s)

Without EMAIL_USER and EMAIL_PASSWORD the server logs notifications instead
of sending them.

# Architecture

  - prize: Wheel catalog and weighted selection
  - wheel: Spin orchestration (eligibility, availability, persistence)
  - db: Schema and spin storage for SQLite and PostgreSQL
  - notify: Asynchronous prize emails
  - handlers, router, middleware: HTTP surface
  - models: Request/response types and validation
  - auth: Spin identifiers and admin key checks
  - metrics: Prometheus collectors
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
