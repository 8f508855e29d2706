package domain

import (
	"context"
	"time"
)

// ClassifierPort runs classification passes over in-memory batches
type ClassifierPort interface {
	// Classify resolves activity for every voyage in the input scope
	Classify(ctx context.Context, in ClassifyInput) (ClassifyOutput, error)

	// RunRange classifies only voyages whose start date falls inside the
	// window, paging through them with the configured worker pool
	RunRange(ctx context.Context, in ClassifyInput, start, end time.Time) (ClassifyOutput, error)
}

// FilterPort applies the drilling cascade to a record batch
type FilterPort interface {
	Filter(ctx context.Context, in FilterInput) (FilterOutput, error)
}
