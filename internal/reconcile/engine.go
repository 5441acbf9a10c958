package reconcile

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"brainrot-value-bot/internal/logger"
	"brainrot-value-bot/internal/store"
	"brainrot-value-bot/internal/types"
)

// Engine merges scraped auto candidates with administrator overrides into
// the canonical data set. Overrides always win; a stale or malformed
// scrape can never clobber them.
type Engine struct {
	files *store.Files
}

func New(files *store.Files) *Engine {
	return &Engine{files: files}
}

// Reconcile folds one candidate batch into the data store and returns the
// materially-changed items, in name order. The whole batch is persisted
// in a single write before any change is reported, so a persistence
// failure yields no changes and therefore no notifications.
//
// Running twice with the same batch and unchanged overrides is a no-op
// the second time.
func (e *Engine) Reconcile(ctx context.Context, candidates map[string]types.AutoCandidate) ([]types.Change, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	cycle := uuid.NewString()
	logger.Debug(ctx, "Reconciling candidate batch", "cycle", cycle, "candidates", len(candidates))

	overrides, err := e.files.Overrides()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(candidates))
	for name := range candidates {
		names = append(names, name)
	}
	sort.Strings(names)

	var changes []types.Change
	err = e.files.UpdateData(func(data map[string]types.ValuationRecord) error {
		for _, name := range names {
			auto := candidates[name]
			override := overrides[name]
			current, exists := data[name]

			effective := effectiveRecord(auto, override, current, exists)

			// Value or demand moved, or the item is new: that is a
			// material change worth announcing.
			if !exists || current.Value != effective.Value || current.Demand != effective.Demand {
				data[name] = effective
				changes = append(changes, types.Change{
					Name:   name,
					Value:  effective.Value,
					Demand: effective.Demand,
					Icon:   effective.Icon,
					Source: effective.Source,
				})
				continue
			}

			// Icon or source drifted without a material change: refresh
			// the stored record silently.
			if current != effective {
				data[name] = effective
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, ch := range changes {
		logger.ValueChange(ctx, ch.Name, ch.Value, string(ch.Demand), string(ch.Source), "cycle", cycle)
	}
	logger.Info(ctx, "Reconciliation complete", "cycle", cycle, "candidates", len(candidates), "changes", len(changes))
	return changes, nil
}

// effectiveRecord computes one item's effective state. Value and demand
// prefer the override, then the fresh candidate. The icon prefers the
// override, then the previously stored icon, then the candidate default:
// curated icons survive scrapes.
func effectiveRecord(auto types.AutoCandidate, override types.OverrideRecord, current types.ValuationRecord, exists bool) types.ValuationRecord {
	rec := types.ValuationRecord{
		Value:  auto.Value,
		Demand: auto.Demand,
		Icon:   auto.Icon,
		Source: types.SourceAuto,
	}
	if exists && current.Icon != "" {
		rec.Icon = current.Icon
	}

	if override.Value != nil {
		rec.Value = *override.Value
	}
	if override.Demand != nil {
		rec.Demand = *override.Demand
	}
	if override.Icon != nil {
		rec.Icon = *override.Icon
	}
	if override.HasValueOrDemand() {
		rec.Source = types.SourceManual
	}
	return rec
}
