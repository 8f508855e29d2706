package dupdetect

import (
	"fmt"
	"sort"
	"time"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/assetrule"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/normalize"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/record"
	ptime "github.com/Ancientfall/logisticsdashboard-sub006/internal/platform/time"
)

// Severity ranks how actionable a duplicate group is
type Severity int

// Severity levels, lowest first so the zero value is the safe default
const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

// String returns the severity label
func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "High"
	case SeverityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// Group is one set of events sharing a signature, in input order
type Group struct {
	Signature        string
	Events           []record.VoyageEvent
	Severity         Severity
	Explanation      string
	HasVoyageNumbers bool // at least one member carries a real voyage number
}

// Size returns the number of events in the group
func (g Group) Size() int { return len(g.Events) }

// SeverityCounts tallies groups per severity level
type SeverityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// CauseSample is one sampled event lacking a voyage number, tagged with its
// likely cause
type CauseSample struct {
	EventID string    `json:"eventId,omitempty"`
	Vessel  string    `json:"vessel"`
	Event   string    `json:"event"`
	Date    time.Time `json:"date"`
	Cause   string    `json:"cause"`
}

// MissingVoyageNumbers is the diagnostic view over events without a number
type MissingVoyageNumbers struct {
	Total   int            `json:"total"`
	Samples []CauseSample  `json:"samples"` // at most sampleCap entries
	ByCause map[string]int `json:"byCause"` // tallied over the samples
}

// Report is the full duplicate detection outcome
type Report struct {
	TotalEvents          int
	TotalDuplicates      int // all but the first record of each group
	Groups               []Group
	BySeverity           SeverityCounts
	MissingVoyageNumbers MissingVoyageNumbers
}

// sampleCap bounds the missing voyage number diagnostic sample
const sampleCap = 10

// Detector groups events by signature and scores the collisions. Stateless;
// one instance may serve concurrent scans
type Detector struct {
	rules *assetrule.Pack
}

// New builds a Detector; the rule pack supplies the missing voyage number
// cause keywords
func New(rules *assetrule.Pack) *Detector { return &Detector{rules: rules} }

// Scan detects duplicate groups over the event collection. Grouping is exact
// signature equality with insertion order preserved inside each bucket;
// groups are ordered by severity, then size, then signature so reports are
// reproducible run to run
func (d *Detector) Scan(events []record.VoyageEvent) Report {
	rep := Report{
		TotalEvents: len(events),
		MissingVoyageNumbers: MissingVoyageNumbers{
			ByCause: map[string]int{},
		},
	}

	buckets := map[string][]record.VoyageEvent{}
	order := make([]string, 0, len(events))
	for _, e := range events {
		sig := Signature(e)
		if _, seen := buckets[sig]; !seen {
			order = append(order, sig)
		}
		buckets[sig] = append(buckets[sig], e)

		if !hasRealVoyageNumber(e) {
			rep.MissingVoyageNumbers.Total++
			if len(rep.MissingVoyageNumbers.Samples) < sampleCap {
				s := d.sampleOf(e)
				rep.MissingVoyageNumbers.Samples = append(rep.MissingVoyageNumbers.Samples, s)
				rep.MissingVoyageNumbers.ByCause[s.Cause]++
			}
		}
	}

	for _, sig := range order {
		evs := buckets[sig]
		if len(evs) < 2 {
			continue
		}
		g := Group{Signature: sig, Events: evs}
		d.analyze(&g)
		rep.Groups = append(rep.Groups, g)
		rep.TotalDuplicates += len(evs) - 1
		switch g.Severity {
		case SeverityHigh:
			rep.BySeverity.High++
		case SeverityMedium:
			rep.BySeverity.Medium++
		default:
			rep.BySeverity.Low++
		}
	}

	sort.SliceStable(rep.Groups, func(i, j int) bool {
		a, b := rep.Groups[i], rep.Groups[j]
		if a.Severity != b.Severity {
			return a.Severity > b.Severity
		}
		if a.Size() != b.Size() {
			return a.Size() > b.Size()
		}
		return a.Signature < b.Signature
	})

	return rep
}

// analyze scores one group's severity and picks its explanation.
// Uniformity checks run on the resolved raw values, not the signature
// components: rounding to two decimals or collapsing to the calendar day can
// put diverging source values in one bucket, and that divergence is exactly
// what the explanations surface
func (d *Detector) analyze(g *Group) {
	size := g.Size()

	for _, e := range g.Events {
		if hasRealVoyageNumber(e) {
			g.HasVoyageNumbers = true
			break
		}
	}

	hoursUniform := true
	first := g.Events[0].ResolvedHours()
	for _, e := range g.Events[1:] {
		if e.ResolvedHours() != first {
			hoursUniform = false
			break
		}
	}

	// all dates present and on the same UTC day; a group of dateless records
	// does not count as sharing a date
	datesUniform := !g.Events[0].EventDate.IsZero()
	for i := 1; i < size && datesUniform; i++ {
		if !ptime.SameDay(g.Events[0].EventDate, g.Events[i].EventDate) {
			datesUniform = false
		}
	}

	switch {
	case g.HasVoyageNumbers && hoursUniform && datesUniform && size > 2:
		g.Severity = SeverityHigh
	case size > 1 && datesUniform:
		g.Severity = SeverityMedium
	default:
		g.Severity = SeverityLow
	}

	switch {
	case !g.HasVoyageNumbers:
		g.Explanation = fmt.Sprintf(
			"%d records share vessel, event, and timing but none carries a voyage number; likely the same activity logged without voyage context", size)
	case hoursUniform && datesUniform:
		g.Explanation = fmt.Sprintf(
			"%d identical records with matching hours and dates; true duplicates from repeated ingestion", size)
	case datesUniform:
		g.Explanation = fmt.Sprintf(
			"%d records on the same date with different hours; likely data entry variation of one activity", size)
	default:
		g.Explanation = fmt.Sprintf(
			"%d similar records; review before removing", size)
	}
}

// sampleOf tags one number-less event with its likely cause
func (d *Detector) sampleOf(e record.VoyageEvent) CauseSample {
	text := normalize.Fold(e.Event + " " + e.ParentEvent + " " + e.Mission + " " + e.Remarks)
	return CauseSample{
		EventID: e.ID,
		Vessel:  e.Vessel,
		Event:   e.Event,
		Date:    e.EventDate,
		Cause:   d.rules.Cause(text),
	}
}
