package ports

import (
	"context"

	"daostats/domain/dataset"
)

// DatasetReader loads the governance dataset from whatever source backs it.
// Fetch retries and fallback paths live behind implementations; the stats
// layer only ever sees a validated Dataset.
type DatasetReader interface {
	Read(ctx context.Context) (*dataset.Dataset, error)
}
