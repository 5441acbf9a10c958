package interfaces

import (
	"context"

	"brainrot-value-bot/internal/types"
)

// Fetcher pulls raw value rows from the external source.
type Fetcher interface {
	Fetch(ctx context.Context) ([]types.RawItem, error)
}
