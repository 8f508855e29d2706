// Package domain defines types and ports for the duplicates service
package domain

import (
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/dupdetect"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/record"
)

// ScanInput is one duplicate scan request
type ScanInput struct {
	Events []record.VoyageEvent `json:"voyageEvents"`
}

// GroupRow is one duplicate group in transport form
type GroupRow struct {
	Signature        string               `json:"signature"`
	Size             int                  `json:"size"`
	Severity         string               `json:"severity"`
	Explanation      string               `json:"explanation"`
	HasVoyageNumbers bool                 `json:"hasVoyageNumbers"`
	Events           []record.VoyageEvent `json:"events"`
}

// ScanOutput is the duplicate report in transport form
type ScanOutput struct {
	ReportID             string                         `json:"reportId"`
	TotalEvents          int                            `json:"totalEvents"`
	TotalDuplicates      int                            `json:"totalDuplicates"`
	Groups               []GroupRow                     `json:"groups"`
	BySeverity           dupdetect.SeverityCounts       `json:"bySeverity"`
	MissingVoyageNumbers dupdetect.MissingVoyageNumbers `json:"missingVoyageNumbers"`
}
