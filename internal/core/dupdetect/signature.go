// Package dupdetect finds near duplicate voyage events by exact collision of
// a normalized signature, scores each collision group's severity, and
// explains the likely cause. It runs independently of classification, over
// the raw event collection, and never raises on malformed records: absent
// fields degrade to sentinels
package dupdetect

import (
	"strconv"
	"strings"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/normalize"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/record"
)

// Sentinels substituted into signatures when a field is absent
const (
	NoVoyage = "NO_VOYAGE"
	NoDate   = "NO_DATE"
)

// Signature builds the normalized identity string for one event:
//
//	vessel|voyageNumber|event|parentEvent|eventDate|location|hours
//
// Two events with equal signatures are the same logical occurrence no matter
// how their source rows were cased, padded, or keyed. Hours resolve through
// the final hours fallback and are fixed to two decimals; dates collapse to
// the UTC calendar day
func Signature(e record.VoyageEvent) string {
	num := normalize.VoyageNumber(e.VoyageNumber)
	if num == "" {
		num = NoVoyage
	}
	date := NoDate
	if !e.EventDate.IsZero() {
		date = e.EventDate.UTC().Format("2006-01-02")
	}
	hours := strconv.FormatFloat(e.ResolvedHours(), 'f', 2, 64)

	return strings.Join([]string{
		normalize.Vessel(e.Vessel),
		num,
		normalize.Fold(e.Event),
		normalize.Fold(e.ParentEvent),
		date,
		normalize.Fold(e.Location),
		hours,
	}, "|")
}

// hasRealVoyageNumber reports whether the event carries a non sentinel number
func hasRealVoyageNumber(e record.VoyageEvent) bool {
	return normalize.VoyageNumber(e.VoyageNumber) != ""
}
