// Package domain holds DTOs for duplicates http contracts
package domain

import "github.com/Ancientfall/logisticsdashboard-sub006/internal/core/record"

// ScanRequest is one duplicate scan over voyage events
type ScanRequest struct {
	Events []record.VoyageEvent `json:"voyageEvents" validate:"required"`
}
