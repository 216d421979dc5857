// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/fortune-wheel/models"
)

var (
	ErrNotFound            = errors.New("spin not found")
	ErrMissingField        = errors.New("missing required field")
	ErrDuplicateID         = errors.New("spin id already exists")
	ErrDuplicateNationalID = errors.New("national id already has a spin")
	ErrSpecialPrizeTaken   = errors.New("special prize already awarded")
)

const spinColumns = `id, customer_name, national_id, email, phone_number, branch,
	award, is_special_prize, is_disbursed, created_at`

// SpinStore persists spins in a relational database.
type SpinStore struct {
	db    *sql.DB
	clock clockwork.Clock
}

func NewSpinStore(db *sql.DB, clock clockwork.Clock) *SpinStore {
	return &SpinStore{db: db, clock: clock}
}

// Create inserts a new spin. CreatedAt is stamped from the store clock when
// unset. Constraint violations are reported as ErrDuplicateID,
// ErrDuplicateNationalID or ErrSpecialPrizeTaken.
func (s *SpinStore) Create(ctx context.Context, spin *models.Spin) error {
	if err := checkRequired(spin); err != nil {
		return err
	}
	if spin.CreatedAt.IsZero() {
		spin.CreatedAt = s.clock.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO spin (`+spinColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, spin.ID, spin.CustomerName, spin.NationalID, spin.Email, spin.PhoneNumber, spin.Branch,
		spin.Award, spin.IsSpecialPrize, spin.IsDisbursed, spin.CreatedAt)
	if err != nil {
		if conflict := classifyConflict(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("insert spin: %w", err)
	}
	return nil
}

// List returns every spin, newest first.
func (s *SpinStore) List(ctx context.Context) ([]models.Spin, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+spinColumns+`
		FROM spin
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query spins: %w", err)
	}
	defer rows.Close()

	spins := []models.Spin{}
	for rows.Next() {
		var spin models.Spin
		if err := scanSpin(rows, &spin); err != nil {
			return nil, fmt.Errorf("scan spin: %w", err)
		}
		spins = append(spins, spin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate spins: %w", err)
	}
	return spins, nil
}

// GetByNationalID returns the spin for a national ID, or ErrNotFound.
func (s *SpinStore) GetByNationalID(ctx context.Context, nationalID string) (*models.Spin, error) {
	return s.getOne(ctx, "national_id", nationalID)
}

// GetByID returns the spin with the given id, or ErrNotFound.
func (s *SpinStore) GetByID(ctx context.Context, id string) (*models.Spin, error) {
	return s.getOne(ctx, "id", id)
}

func (s *SpinStore) getOne(ctx context.Context, column, value string) (*models.Spin, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+spinColumns+`
		FROM spin
		WHERE `+column+` = $1
	`, value)

	var spin models.Spin
	err := scanSpin(row, &spin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query spin by %s: %w", column, err)
	}
	return &spin, nil
}

// CountSpecialPrizeAwarded returns how many spins hold the special prize.
func (s *SpinStore) CountSpecialPrizeAwarded(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM spin WHERE is_special_prize = $1
	`, true).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count special prizes: %w", err)
	}
	return count, nil
}

// SetDisbursed marks a spin's prize as handed over. Calling it again on the
// same id succeeds; an unknown id returns ErrNotFound.
func (s *SpinStore) SetDisbursed(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE spin SET is_disbursed = $1 WHERE id = $2
	`, true, id)
	if err != nil {
		return fmt.Errorf("update disbursement: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update disbursement: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSpin(sc scanner, spin *models.Spin) error {
	return sc.Scan(
		&spin.ID,
		&spin.CustomerName,
		&spin.NationalID,
		&spin.Email,
		&spin.PhoneNumber,
		&spin.Branch,
		&spin.Award,
		&spin.IsSpecialPrize,
		&spin.IsDisbursed,
		&spin.CreatedAt,
	)
}

func checkRequired(spin *models.Spin) error {
	fields := []struct {
		name, value string
	}{
		{"id", spin.ID},
		{"customerName", spin.CustomerName},
		{"nationalId", spin.NationalID},
		{"email", spin.Email},
		{"phoneNumber", spin.PhoneNumber},
		{"award", spin.Award},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}

// classifyConflict maps unique-constraint violations from either driver to
// the store's sentinel errors. Other errors return nil.
func classifyConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return conflictFor(pqErr.Constraint)
	}

	// SQLite names the column, e.g. "UNIQUE constraint failed: spin.national_id"
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) && liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
		strings.Contains(liteErr.Error(), "UNIQUE constraint failed") {
		return conflictFor(liteErr.Error())
	}
	return nil
}

func conflictFor(name string) error {
	switch {
	case strings.Contains(name, "national_id"):
		return ErrDuplicateNationalID
	case strings.Contains(name, "special"):
		return ErrSpecialPrizeTaken
	case strings.Contains(name, "pkey"), strings.Contains(name, "spin.id"):
		return ErrDuplicateID
	}
	return fmt.Errorf("unique constraint violated: %s", name)
}
