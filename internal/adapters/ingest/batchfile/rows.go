package batchfile

import "github.com/Ancientfall/logisticsdashboard-sub006/internal/core/record"

// Wire rows mirror the record kinds with lenient field decoding. Conversion
// only firms flex values up into core types; it never drops fields

type voyageRow struct {
	ID           string   `json:"id"`
	Vessel       string   `json:"vessel"`
	VoyageNumber string   `json:"voyageNumber"`
	StartDate    FlexTime `json:"startDate"`
	EndDate      FlexTime `json:"endDate"`
	Locations    string   `json:"locations"`
	LocationList []string `json:"locationList"`
	Year         FlexInt  `json:"year"`
}

func (w voyageRow) record() record.Voyage {
	return record.Voyage{
		ID:           w.ID,
		Vessel:       w.Vessel,
		VoyageNumber: w.VoyageNumber,
		StartDate:    w.StartDate.Time,
		EndDate:      w.EndDate.Time,
		Locations:    w.Locations,
		LocationList: w.LocationList,
		Year:         int(w.Year),
	}
}

type manifestRow struct {
	ID               string    `json:"id"`
	ManifestNumber   string    `json:"manifestNumber"`
	Transporter      string    `json:"transporter"`
	ManifestDate     FlexTime  `json:"manifestDate"`
	From             string    `json:"from"`
	OffshoreLocation string    `json:"offshoreLocation"`
	Type             string    `json:"type"`
	CostCode         string    `json:"costCode"`
	Remarks          string    `json:"remarks"`
	DeckLbs          FlexFloat `json:"deckLbs"`
	Lifts            FlexInt   `json:"lifts"`
	Year             FlexInt   `json:"year"`
}

func (w manifestRow) record() record.Manifest {
	return record.Manifest{
		ID:               w.ID,
		ManifestNumber:   w.ManifestNumber,
		Transporter:      w.Transporter,
		ManifestDate:     w.ManifestDate.Time,
		From:             w.From,
		OffshoreLocation: w.OffshoreLocation,
		Type:             w.Type,
		CostCode:         w.CostCode,
		Remarks:          w.Remarks,
		DeckLbs:          float64(w.DeckLbs),
		Lifts:            int(w.Lifts),
		Year:             int(w.Year),
	}
}

type eventRow struct {
	ID           string     `json:"id"`
	Vessel       string     `json:"vessel"`
	VoyageNumber string     `json:"voyageNumber"`
	Event        string     `json:"event"`
	ParentEvent  string     `json:"parentEvent"`
	Location     string     `json:"location"`
	EventDate    FlexTime   `json:"eventDate"`
	Hours        *FlexFloat `json:"hours"`
	FinalHours   *FlexFloat `json:"finalHours"`
	Mission      string     `json:"mission"`
	Quay         string     `json:"quay"`
	Remarks      string     `json:"remarks"`
	Year         FlexInt    `json:"year"`
}

func (w eventRow) record() record.VoyageEvent {
	ev := record.VoyageEvent{
		ID:           w.ID,
		Vessel:       w.Vessel,
		VoyageNumber: w.VoyageNumber,
		Event:        w.Event,
		ParentEvent:  w.ParentEvent,
		Location:     w.Location,
		EventDate:    w.EventDate.Time,
		Mission:      w.Mission,
		Quay:         w.Quay,
		Remarks:      w.Remarks,
		Year:         int(w.Year),
	}
	// absent hours stay nil so downstream fallbacks still apply
	if w.Hours != nil {
		h := float64(*w.Hours)
		ev.Hours = &h
	}
	if w.FinalHours != nil {
		h := float64(*w.FinalHours)
		ev.FinalHours = &h
	}
	return ev
}

type bulkRow struct {
	ID              string    `json:"id"`
	Vessel          string    `json:"vessel"`
	VoyageNumber    string    `json:"voyageNumber"`
	StartDate       FlexTime  `json:"startDate"`
	Action          string    `json:"action"`
	BulkType        string    `json:"bulkType"`
	BulkDescription string    `json:"bulkDescription"`
	AtPort          string    `json:"atPort"`
	DestinationPort string    `json:"destinationPort"`
	Qty             FlexFloat `json:"qty"`
	Unit            string    `json:"unit"`
	Remarks         string    `json:"remarks"`
	IsDrillingFluid bool      `json:"isDrillingFluid"`
}

func (w bulkRow) record() record.BulkAction {
	return record.BulkAction{
		ID:              w.ID,
		Vessel:          w.Vessel,
		VoyageNumber:    w.VoyageNumber,
		StartDate:       w.StartDate.Time,
		Action:          w.Action,
		BulkType:        w.BulkType,
		BulkDescription: w.BulkDescription,
		AtPort:          w.AtPort,
		DestinationPort: w.DestinationPort,
		Qty:             float64(w.Qty),
		Unit:            w.Unit,
		Remarks:         w.Remarks,
		IsDrillingFluid: w.IsDrillingFluid,
	}
}

type costRow struct {
	LCNumber          string `json:"lcNumber"`
	RigLocation       string `json:"rigLocation"`
	LocationReference string `json:"locationReference"`
	Description       string `json:"description"`
	ProjectType       string `json:"projectType"`
	Department        string `json:"department"`
}

func (w costRow) record() record.CostAllocation {
	return record.CostAllocation{
		LCNumber:          w.LCNumber,
		RigLocation:       w.RigLocation,
		LocationReference: w.LocationReference,
		Description:       w.Description,
		ProjectType:       w.ProjectType,
		Department:        w.Department,
	}
}
