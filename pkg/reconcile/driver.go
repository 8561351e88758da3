package reconcile

import (
	"context"

	"github.com/arthur-debert/configmapper/pkg/logging"
	"github.com/arthur-debert/configmapper/pkg/types"
)

// EntryReconciler converges one entry.
type EntryReconciler interface {
	Reconcile(ctx context.Context, entry types.Entry) types.Outcome
}

// Reporter is told about every outcome as soon as it is known.
type Reporter interface {
	Report(outcome types.Outcome)
}

// Driver runs a list of entries in order.
type Driver struct {
	reconciler EntryReconciler
	reporter   Reporter
}

// NewDriver creates a driver. reporter may be nil.
func NewDriver(reconciler EntryReconciler, reporter Reporter) *Driver {
	return &Driver{reconciler: reconciler, reporter: reporter}
}

// Run reconciles every entry sequentially. A failed entry does not stop the
// run; the summary records every outcome in input order.
func (d *Driver) Run(ctx context.Context, entries []types.Entry) types.Summary {
	logger := logging.GetLogger("reconcile.driver")
	logger.Info().Int("entries", len(entries)).Msg("Starting reconciliation")

	var summary types.Summary
	for _, entry := range entries {
		outcome := d.reconciler.Reconcile(ctx, entry)
		summary.Add(outcome)
		if d.reporter != nil {
			d.reporter.Report(outcome)
		}
	}

	logger.Info().
		Int("converged", summary.Converged).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Int("invalid", summary.Invalid).
		Msg("Reconciliation finished")

	return summary
}
