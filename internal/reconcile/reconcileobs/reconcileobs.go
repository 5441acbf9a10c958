package reconcileobs

import (
	"context"

	"brainrot-value-bot/internal/interfaces"
	"brainrot-value-bot/internal/logger"
	"brainrot-value-bot/internal/trace"
	"brainrot-value-bot/internal/types"
)

// observableReconciler wraps a Reconciler with logging and tracing.
type observableReconciler struct {
	inner interfaces.Reconciler
}

// Compile-time interface check
var _ interfaces.Reconciler = (*observableReconciler)(nil)

// Wrap wraps a reconciler with observability middleware.
func Wrap(inner interfaces.Reconciler) interfaces.Reconciler {
	return &observableReconciler{inner: inner}
}

func (or *observableReconciler) Reconcile(ctx context.Context, candidates map[string]types.AutoCandidate) ([]types.Change, error) {
	ctx, span := trace.StartSpan(ctx, "reconcile.Reconcile")
	defer span.End()

	logger.Debug(ctx, "Starting reconciliation", "candidates", len(candidates))

	changes, err := or.inner.Reconcile(ctx, candidates)
	if err != nil {
		logger.ErrorWithErr(ctx, "Reconciliation failed", err, "candidates", len(candidates))
		return nil, err
	}

	logger.Debug(ctx, "Reconciliation finished", "candidates", len(candidates), "changes", len(changes))
	return changes, nil
}
