// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/danielhkuo/fortune-wheel/auth"
	"github.com/danielhkuo/fortune-wheel/db"
	"github.com/danielhkuo/fortune-wheel/metrics"
	"github.com/danielhkuo/fortune-wheel/models"
	"github.com/danielhkuo/fortune-wheel/prize"
)

var (
	ErrAlreadyParticipated     = errors.New("national id has already participated")
	ErrSpecialPrizeUnavailable = errors.New("special prize is no longer available")
	ErrMissingID               = errors.New("spin id is required")
	ErrNotFound                = db.ErrNotFound
)

// Store is the persistence the service needs. *db.SpinStore implements it.
type Store interface {
	Create(ctx context.Context, spin *models.Spin) error
	List(ctx context.Context) ([]models.Spin, error)
	GetByNationalID(ctx context.Context, nationalID string) (*models.Spin, error)
	CountSpecialPrizeAwarded(ctx context.Context) (int, error)
	SetDisbursed(ctx context.Context, id string) error
}

// Dispatcher delivers prize notifications without blocking.
type Dispatcher interface {
	Dispatch(spin models.Spin)
}

// Service runs the spin flow: eligibility, special prize availability,
// selection, persistence and notification.
type Service struct {
	store    Store
	selector *prize.Selector
	notifier Dispatcher
	src      prize.Source

	// mu serializes award-affecting writes so check-then-insert cannot race
	// inside this process. Storage constraints cover other processes.
	mu sync.Mutex
}

func NewService(store Store, selector *prize.Selector, notifier Dispatcher, src prize.Source) *Service {
	return &Service{
		store:    store,
		selector: selector,
		notifier: notifier,
		src:      src,
	}
}

// Catalog returns the wheel the service draws from.
func (s *Service) Catalog() prize.Catalog {
	return s.selector.Catalog()
}

// CheckEligibility returns the participant's earlier spin, or nil if they
// have not played. Storage failures are returned as errors.
func (s *Service) CheckEligibility(ctx context.Context, nationalID string) (*models.Spin, error) {
	spin, err := s.store.GetByNationalID(ctx, nationalID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("check eligibility: %w", err)
	}
	return spin, nil
}

// SpecialPrizeAwarded reports whether any spin holds the special prize.
func (s *Service) SpecialPrizeAwarded(ctx context.Context) (bool, error) {
	count, err := s.store.CountSpecialPrizeAwarded(ctx)
	if err != nil {
		return false, fmt.Errorf("check special prize: %w", err)
	}
	return count > 0, nil
}

// SpecialPrizeAvailable fails closed: a storage error means not available.
func (s *Service) SpecialPrizeAvailable(ctx context.Context) bool {
	awarded, err := s.SpecialPrizeAwarded(ctx)
	if err != nil {
		slog.Error("special prize check failed, treating as awarded", "error", err)
		return false
	}
	return !awarded
}

// Play validates the request, draws an outcome and records the spin.
// The outcome always comes from the selector; award and isSpecialPrize in
// the request are ignored.
func (s *Service) Play(ctx context.Context, req models.CreateSpinRequest) (*models.Spin, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		metrics.ObserveRejection("invalid")
		return nil, err
	}

	s.mu.Lock()
	spin, err := s.play(ctx, req)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	idx, _ := s.Catalog().Lookup(spin.Award)
	loss := s.Catalog().Entry(idx).Loss
	switch {
	case spin.IsSpecialPrize:
		metrics.ObserveSpin(metrics.OutcomeSpecial)
	case loss:
		metrics.ObserveSpin(metrics.OutcomeLoss)
	default:
		metrics.ObserveSpin(metrics.OutcomePrize)
	}

	// Losers get no email.
	if !loss {
		s.notifier.Dispatch(*spin)
	}

	slog.Info("spin recorded",
		"spin_id", spin.ID,
		"award", spin.Award,
		"special", spin.IsSpecialPrize,
	)
	return spin, nil
}

func (s *Service) play(ctx context.Context, req models.CreateSpinRequest) (*models.Spin, error) {
	existing, err := s.CheckEligibility(ctx, req.NationalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		metrics.ObserveRejection("duplicate")
		return nil, ErrAlreadyParticipated
	}

	if req.Award != "" || req.IsSpecialPrize != nil {
		slog.Warn("ignoring client-supplied outcome", "national_id", req.NationalID, "award", req.Award)
	}

	available := s.SpecialPrizeAvailable(ctx)
	idx := s.selector.Select(available, s.src)

	spin := &models.Spin{
		ID:           auth.NewSpinID(),
		CustomerName: req.CustomerName,
		NationalID:   req.NationalID,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Branch:       req.Branch,
	}
	s.assign(spin, idx)

	err = s.store.Create(ctx, spin)
	if errors.Is(err, db.ErrSpecialPrizeTaken) {
		// Another writer won the special prize first; draw again without it.
		slog.Warn("special prize taken concurrently, redrawing", "spin_id", spin.ID)
		s.assign(spin, s.selector.Select(false, s.src))
		err = s.store.Create(ctx, spin)
	}

	switch {
	case err == nil:
		return spin, nil
	case errors.Is(err, db.ErrDuplicateNationalID):
		metrics.ObserveRejection("duplicate")
		return nil, ErrAlreadyParticipated
	case errors.Is(err, db.ErrSpecialPrizeTaken):
		metrics.ObserveRejection("special_unavailable")
		return nil, ErrSpecialPrizeUnavailable
	}
	return nil, fmt.Errorf("record spin: %w", err)
}

func (s *Service) assign(spin *models.Spin, idx int) {
	entry := s.Catalog().Entry(idx)
	spin.Award = entry.Name
	spin.IsSpecialPrize = entry.Special
}

// List returns every spin, newest first.
func (s *Service) List(ctx context.Context) ([]models.Spin, error) {
	return s.store.List(ctx)
}

// GetByNationalID returns the participant's spin or ErrNotFound.
func (s *Service) GetByNationalID(ctx context.Context, nationalID string) (*models.Spin, error) {
	return s.store.GetByNationalID(ctx, nationalID)
}

// Disburse marks a spin's prize as handed over.
func (s *Service) Disburse(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrMissingID
	}
	// Nothing we issued can match a malformed id
	if !auth.ValidateSpinID(id) {
		return ErrNotFound
	}
	if err := s.store.SetDisbursed(ctx, id); err != nil {
		return err
	}
	metrics.ObserveDisbursement()
	slog.Info("prize disbursed", "spin_id", id)
	return nil
}
