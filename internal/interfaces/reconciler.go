package interfaces

import (
	"context"

	"brainrot-value-bot/internal/types"
)

// Reconciler folds one batch of auto candidates into the canonical data
// set and reports the materially-changed items.
type Reconciler interface {
	Reconcile(ctx context.Context, candidates map[string]types.AutoCandidate) ([]types.Change, error)
}
