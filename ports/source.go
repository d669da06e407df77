package ports

import (
	"context"

	"htnscope/domain/cohort"
)

// DatasetSource supplies raw survey rows to the enrichment pipeline.
// Implementations read from flat files or a database table; enrichment is
// identical regardless of origin.
type DatasetSource interface {
	Read(ctx context.Context) (*cohort.RawTable, error)
}
