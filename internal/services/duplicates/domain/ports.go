package domain

import "context"

// ScannerPort runs duplicate detection over voyage events
type ScannerPort interface {
	Scan(ctx context.Context, in ScanInput) (ScanOutput, error)
}
