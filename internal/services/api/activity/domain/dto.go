// Package domain holds DTOs for activity http contracts
package domain

import "github.com/Ancientfall/logisticsdashboard-sub006/internal/core/record"

// ClassifyRequest scopes one classification pass
// when start and end are both present only voyages starting inside the window
// classify; dates are ISO days compared in UTC
type ClassifyRequest struct {
	AssetFilter string            `json:"assetFilter" validate:"required,min=1,max=100" example:"Thunder Horse"`
	Start       string            `json:"start,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-02-01"`
	End         string            `json:"end,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-02-28"`
	Voyages     []record.Voyage   `json:"voyages" validate:"required"`
	Manifests   []record.Manifest `json:"manifests"`
}

// FilterRequest scopes one drilling cascade pass
type FilterRequest struct {
	Selection string                  `json:"selection" validate:"required,min=1,max=100" example:"Thunder Horse (Drilling)"`
	Voyages   []record.Voyage         `json:"voyages" validate:"required"`
	Manifests []record.Manifest       `json:"manifests"`
	Events    []record.VoyageEvent    `json:"voyageEvents"`
	Bulks     []record.BulkAction     `json:"bulkActions"`
	Costs     []record.CostAllocation `json:"costAllocations"`
}
