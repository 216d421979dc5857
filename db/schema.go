// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The statements are valid for both PostgreSQL and SQLite.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Spins
CREATE TABLE IF NOT EXISTS spin (
    id TEXT PRIMARY KEY,
    customer_name TEXT NOT NULL,
    national_id TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL,
    phone_number TEXT NOT NULL,
    branch TEXT NOT NULL DEFAULT '',
    award TEXT NOT NULL,
    is_special_prize BOOLEAN NOT NULL DEFAULT FALSE,
    is_disbursed BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_spin_created_at ON spin(created_at);

-- At most one row may hold the special prize
CREATE UNIQUE INDEX IF NOT EXISTS idx_spin_single_special ON spin(is_special_prize) WHERE is_special_prize;
`
