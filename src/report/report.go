// Package report runs the recent-transactions report.
package report

import (
	"context"
	"fmt"
	"io"

	"plaid-report/src/logger"
	"plaid-report/src/render"
	"plaid-report/src/store"
)

// Report fetches the most recent transactions from a store and renders them.
type Report struct {
	store    store.Store
	renderer render.Renderer
	log      logger.Logger
}

// New creates a report over st. A nil log discards diagnostics.
func New(st store.Store, renderer render.Renderer, log logger.Logger) *Report {
	if log == nil {
		log = logger.NewSilentLogger()
	}
	return &Report{
		store:    st,
		renderer: renderer,
		log:      log,
	}
}

// Run writes the report to w.
func (r *Report) Run(ctx context.Context, w io.Writer) error {
	txns, err := r.store.RecentTransactions(ctx)
	if err != nil {
		return err
	}
	r.log.Debug("fetched %d transactions", len(txns))

	if err := r.renderer.Render(w, txns); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
