// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/dental-site/internal/config"
	"github.com/MKhiriev/dental-site/internal/logger"
)

// ForwardWorker periodically resends stored bookings whose webhook
// delivery failed.
type ForwardWorker struct {
	forwarder PendingForwarder
	interval  time.Duration
	batchSize int
	busy      atomic.Bool

	logger *logger.Logger
}

func NewForwardWorker(forwarder PendingForwarder, cfg config.Workers, log *logger.Logger) *ForwardWorker {
	return &ForwardWorker{
		forwarder: forwarder,
		interval:  cfg.ForwardInterval,
		batchSize: cfg.ForwardBatchSize,
		logger:    log,
	}
}

// Run resends pending bookings every interval until ctx is cancelled.
// A run still in progress when the next tick fires makes that tick a
// no-op.
func (w *ForwardWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Int("batch_size", w.batchSize).Msg("forward worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("forward worker stopped")
			return
		case <-ticker.C:
			w.tryRun(ctx)
		}
	}
}

func (w *ForwardWorker) tryRun(ctx context.Context) {
	if !w.busy.CompareAndSwap(false, true) {
		return
	}
	defer w.busy.Store(false)

	w.runOnce(ctx)
}

func (w *ForwardWorker) runOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()
	ctx = w.logger.WithContext(ctx)

	n, err := w.forwarder.ForwardPending(ctx, w.batchSize)
	if err != nil {
		w.logger.Err(err).Str("func", "ForwardWorker.runOnce").Msg("error forwarding pending bookings")
		return
	}
	if n > 0 {
		w.logger.Debug().Int("forwarded", n).Msg("forward run finished")
	}
}
