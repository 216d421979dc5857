// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles schema creation and spin persistence.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and indexes.
The same statements run on PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite).

# Tables

  - spin: one row per participation

# Constraints

  - spin.id primary key
  - spin.national_id unique: one spin per participant
  - idx_spin_single_special: partial unique index, at most one special prize

# Spin Store

SpinStore wraps *sql.DB with the operations the service needs:

	store := db.NewSpinStore(conn, clockwork.NewRealClock())
	err := store.Create(ctx, &spin)
	spins, err := store.List(ctx)               // newest first
	spin, err := store.GetByNationalID(ctx, id) // ErrNotFound when absent
	n, err := store.CountSpecialPrizeAwarded(ctx)
	err = store.SetDisbursed(ctx, id)           // idempotent

Unique violations from either driver come back as ErrDuplicateID,
ErrDuplicateNationalID or ErrSpecialPrizeTaken. Booleans are scanned into
Go bools, so SQLite's 0/1 storage never leaks out.
*/
package db
