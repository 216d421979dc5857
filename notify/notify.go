// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/fortune-wheel/metrics"
	"github.com/danielhkuo/fortune-wheel/models"
)

var errPanicked = errors.New("notifier panicked")

// Notifier tells a participant about their prize.
type Notifier interface {
	Notify(ctx context.Context, spin models.Spin) error
}

// LogNotifier only logs. Used when no mail server is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, spin models.Spin) error {
	slog.Info("notification skipped, email not configured",
		"spin_id", spin.ID,
		"award", spin.Award,
	)
	return nil
}

// Dispatcher sends notifications on background goroutines. Failures are
// logged and counted, never returned to the caller.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	wg       sync.WaitGroup
}

func NewDispatcher(n Notifier, timeout time.Duration) *Dispatcher {
	return &Dispatcher{notifier: n, timeout: timeout}
}

// Dispatch returns immediately; the notification runs in its own goroutine.
func (d *Dispatcher) Dispatch(spin models.Spin) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("notifier panicked", "spin_id", spin.ID, "panic", r)
				metrics.ObserveNotification(errPanicked)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		err := d.notifier.Notify(ctx, spin)
		metrics.ObserveNotification(err)
		if err != nil {
			slog.Error("failed to send prize notification",
				"error", err,
				"spin_id", spin.ID,
			)
			return
		}
		slog.Info("prize notification sent", "spin_id", spin.ID)
	}()
}

// Wait blocks until every dispatched notification has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
