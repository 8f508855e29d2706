// Package record defines the offshore logistics record kinds that flow through
// the classification, filtering, and duplicate detection cores.
//
// All types are immutable inputs: the cores never mutate them, and every field
// is treated as optional. A zero time.Time means the source row had no usable
// timestamp; nil float pointers mean the column was absent, not zero
package record

import "time"

// Voyage is one vessel round trip from the voyage list export
type Voyage struct {
	ID           string    `json:"id"`
	Vessel       string    `json:"vessel"`
	VoyageNumber string    `json:"voyageNumber,omitempty"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Locations    string    `json:"locations,omitempty"`
	LocationList []string  `json:"locationList,omitempty"`
	Year         int       `json:"year,omitempty"`
}

// RouteText returns the voyage's route description, joining the location list
// when the free-text field is empty
func (v Voyage) RouteText() string {
	if v.Locations != "" {
		return v.Locations
	}
	out := ""
	for i, loc := range v.LocationList {
		if i > 0 {
			out += " -> "
		}
		out += loc
	}
	return out
}

// Manifest is one cargo manifest tied to a vessel call. Manifests carry no
// voyage identifier; they join to voyages only through the linker
type Manifest struct {
	ID               string    `json:"id"`
	ManifestNumber   string    `json:"manifestNumber,omitempty"`
	Transporter      string    `json:"transporter"`
	ManifestDate     time.Time `json:"manifestDate"`
	From             string    `json:"from,omitempty"`
	OffshoreLocation string    `json:"offshoreLocation,omitempty"`
	Type             string    `json:"type,omitempty"`
	CostCode         string    `json:"costCode,omitempty"`
	Remarks          string    `json:"remarks,omitempty"`
	DeckLbs          float64   `json:"deckLbs,omitempty"`
	Lifts            int       `json:"lifts,omitempty"`
	Year             int       `json:"year,omitempty"`
}

// VoyageEvent is one timestamped operational event from the vessel tracker
type VoyageEvent struct {
	ID           string    `json:"id"`
	Vessel       string    `json:"vessel"`
	VoyageNumber string    `json:"voyageNumber,omitempty"`
	Event        string    `json:"event,omitempty"`
	ParentEvent  string    `json:"parentEvent,omitempty"`
	Location     string    `json:"location,omitempty"`
	EventDate    time.Time `json:"eventDate"`
	Hours        *float64  `json:"hours,omitempty"`
	FinalHours   *float64  `json:"finalHours,omitempty"`
	Mission      string    `json:"mission,omitempty"`
	Quay         string    `json:"quay,omitempty"`
	Remarks      string    `json:"remarks,omitempty"`
	Year         int       `json:"year,omitempty"`
}

// ResolvedHours returns Hours, falling back to FinalHours, else 0
func (e VoyageEvent) ResolvedHours() float64 {
	if e.Hours != nil {
		return *e.Hours
	}
	if e.FinalHours != nil {
		return *e.FinalHours
	}
	return 0
}

// BulkAction is one bulk material transfer between a port and a facility
type BulkAction struct {
	ID              string    `json:"id"`
	Vessel          string    `json:"vessel"`
	VoyageNumber    string    `json:"voyageNumber,omitempty"`
	StartDate       time.Time `json:"startDate"`
	Action          string    `json:"action,omitempty"`
	BulkType        string    `json:"bulkType,omitempty"`
	BulkDescription string    `json:"bulkDescription,omitempty"`
	AtPort          string    `json:"atPort,omitempty"`
	DestinationPort string    `json:"destinationPort,omitempty"`
	Qty             float64   `json:"qty,omitempty"`
	Unit            string    `json:"unit,omitempty"`
	Remarks         string    `json:"remarks,omitempty"`
	IsDrillingFluid bool      `json:"isDrillingFluid,omitempty"`
}

// PortText returns the action's destination text, preferring the explicit
// destination port over the at-port field
func (b BulkAction) PortText() string {
	if b.DestinationPort != "" {
		return b.DestinationPort
	}
	return b.AtPort
}

// CostAllocation is one cost accounting line. It has no vessel or time fields
// and is only ever filtered on text
type CostAllocation struct {
	LCNumber          string `json:"lcNumber"`
	RigLocation       string `json:"rigLocation,omitempty"`
	LocationReference string `json:"locationReference,omitempty"`
	Description       string `json:"description,omitempty"`
	ProjectType       string `json:"projectType,omitempty"`
	Department        string `json:"department,omitempty"`
}

// LocationText returns the allocation's location-bearing text, preferring the
// rig location over the location reference
func (c CostAllocation) LocationText() string {
	if c.RigLocation != "" {
		return c.RigLocation
	}
	return c.LocationReference
}
