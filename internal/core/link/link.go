// Package link matches voyages to manifests, voyage events, and bulk actions.
// The record kinds share no common key, so linkage is exact normalized vessel
// name equality plus a symmetric time window around the voyage start. Absent
// timestamps exclude a candidate; they are never defaulted into a match
package link

import (
	"time"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/normalize"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/record"
)

const day = 24 * time.Hour

// Rule is one record kind's linkage policy
type Rule struct {
	Tolerance       time.Duration
	UseVoyageNumber bool
}

// Per kind rules. Event timestamps are the least precise upstream and get the
// widest slack, narrowed back by voyage number equality when both sides carry
// one
var (
	ManifestRule = Rule{Tolerance: 2 * day}
	EventRule    = Rule{Tolerance: 7 * day, UseVoyageNumber: true}
	BulkRule     = Rule{Tolerance: 3 * day}
)

// Anchor is the voyage side of a match, pre-normalized once so it can be
// probed against many candidates
type Anchor struct {
	Vessel       string    // folded vessel name
	VoyageNumber string    // normalized; empty when the voyage has none
	At           time.Time // voyage start; zero means the anchor never matches
}

// AnchorOf builds an anchor from a voyage
func AnchorOf(v record.Voyage) Anchor {
	return Anchor{
		Vessel:       normalize.Vessel(v.Vessel),
		VoyageNumber: normalize.VoyageNumber(v.VoyageNumber),
		At:           v.StartDate,
	}
}

// Fields is the candidate side of a match, in raw form
type Fields struct {
	Vessel       string
	VoyageNumber string
	At           time.Time
}

// ManifestFields adapts a manifest for matching
func ManifestFields(m record.Manifest) Fields {
	return Fields{Vessel: m.Transporter, At: m.ManifestDate}
}

// EventFields adapts a voyage event for matching
func EventFields(e record.VoyageEvent) Fields {
	return Fields{Vessel: e.Vessel, VoyageNumber: e.VoyageNumber, At: e.EventDate}
}

// BulkFields adapts a bulk action for matching
func BulkFields(b record.BulkAction) Fields {
	return Fields{Vessel: b.Vessel, VoyageNumber: b.VoyageNumber, At: b.StartDate}
}

// Match reports whether a single candidate satisfies the rule against the
// anchor. A nameless vessel on either side never matches; identity cannot be
// asserted without a name
func Match(a Anchor, f Fields, r Rule) bool {
	if a.At.IsZero() || f.At.IsZero() {
		return false
	}
	if a.Vessel == "" {
		return false
	}
	if normalize.Vessel(f.Vessel) != a.Vessel {
		return false
	}
	d := f.At.Sub(a.At)
	if d < 0 {
		d = -d
	}
	if d > r.Tolerance {
		return false
	}
	if r.UseVoyageNumber && a.VoyageNumber != "" {
		if cn := normalize.VoyageNumber(f.VoyageNumber); cn != "" && cn != a.VoyageNumber {
			return false
		}
	}
	return true
}

// Matches filters candidates against the anchor under the rule, preserving
// input order and never mutating the input
func Matches[T any](a Anchor, xs []T, key func(T) Fields, r Rule) []T {
	var out []T
	for _, x := range xs {
		if Match(a, key(x), r) {
			out = append(out, x)
		}
	}
	return out
}
