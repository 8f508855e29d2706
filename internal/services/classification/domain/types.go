// Package domain defines the batch types and ports for voyage classification
package domain

import (
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/cascade"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/classify"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/record"
)

// Batch carries one upload of related record collections
// collections are independent; joins happen through the linker, never by id
type Batch struct {
	Voyages   []record.Voyage         `json:"voyages"`
	Manifests []record.Manifest       `json:"manifests"`
	Events    []record.VoyageEvent    `json:"voyageEvents"`
	Bulks     []record.BulkAction     `json:"bulkActions"`
	Costs     []record.CostAllocation `json:"costAllocations"`
}

// ClassifyInput scopes one classification pass to an asset
type ClassifyInput struct {
	AssetFilter string            `json:"assetFilter"`
	Voyages     []record.Voyage   `json:"voyages"`
	Manifests   []record.Manifest `json:"manifests"`
}

// VoyageRow is one classified voyage in transport form
type VoyageRow struct {
	VoyageID        string `json:"voyageId"`
	Vessel          string `json:"vessel"`
	Asset           string `json:"asset"`
	Activity        string `json:"activity"`
	DrillingCount   int    `json:"drillingCount"`
	ProductionCount int    `json:"productionCount"`
	Manifests       int    `json:"manifests"`
	Mixed           bool   `json:"mixed"`
}

// ClassifyOutput is one classification pass result
// Rows follow the input voyage order so output is reproducible
type ClassifyOutput struct {
	BatchID string           `json:"batchId"`
	Asset   string           `json:"asset"`
	Rows    []VoyageRow      `json:"rows"`
	Summary classify.Summary `json:"summary"`
}

// FilterInput scopes one cascade pass to a dashboard selection
type FilterInput struct {
	Selection string `json:"selection"`
	Batch
}

// Reports groups the per collection cascade outcomes
type Reports struct {
	Manifests cascade.Report `json:"manifests"`
	Events    cascade.Report `json:"voyageEvents"`
	Bulks     cascade.Report `json:"bulkActions"`
	Costs     cascade.Report `json:"costAllocations"`
}

// FilterOutput carries the filtered collections and their reports
// Voyages pass through untouched; only the four dependent collections filter
type FilterOutput struct {
	BatchID   string            `json:"batchId"`
	Selection cascade.Selection `json:"selection"`
	Filtered  Batch             `json:"filtered"`
	Reports   Reports           `json:"reports"`
}
