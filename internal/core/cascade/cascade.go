// Package cascade filters the four record collections down to drilling-only
// subsets, given the classifier's drilling voyage set. Each record kind has
// its own rule because each carries different join fields; cost allocations
// have no vessel or time fields at all and are filtered purely on text.
//
// Two guards keep the cascade conservative. A scope guard leaves every
// collection untouched unless the caller's filter selection names a supported
// asset in drilling mode. A fallback guard returns the unfiltered input when
// no voyage classified as Drilling, so data that cannot be confidently
// attributed is never discarded
package cascade

import (
	"strings"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/assetrule"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/link"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/normalize"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/record"
)

// Selection is the parsed cascade scope from a dashboard filter string
type Selection struct {
	Asset    string // canonical asset name; empty when no supported asset named
	Drilling bool   // the selection carried the literal "(Drilling)" qualifier
}

// ParseSelection extracts the cascade scope from a filter string such as
// "Thunder Horse (Drilling)". Anything else parses to an inactive selection
func ParseSelection(rules *assetrule.Pack, filter string) Selection {
	var sel Selection
	if a, ok := rules.AssetFor(filter); ok {
		sel.Asset = a.Name
	}
	sel.Drilling = strings.Contains(normalize.Fold(filter), "(drilling)")
	return sel
}

// Active reports whether the selection names a supported asset in drilling mode
func (s Selection) Active() bool { return s.Asset != "" && s.Drilling }

// Report describes one collection's filtering outcome
type Report struct {
	Original     int  `json:"original"`
	DrillingOnly int  `json:"drillingOnly"`
	Removed      int  `json:"removed"`
	Skipped      bool `json:"skipped,omitempty"`  // scope guard: selection not active
	Fallback     bool `json:"fallback,omitempty"` // empty drilling set: input passed through
}

// Filter holds one cascade invocation's scope. Construct with New, then apply
// the per collection methods in any order; the filter itself is read-only and
// safe for concurrent use
type Filter struct {
	rules   *assetrule.Pack
	sel     Selection
	asset   assetrule.Asset
	anchors []link.Anchor // anchors of the drilling voyages
}

// New builds a Filter scoped to the selection and the drilling voyage id set
func New(
	rules *assetrule.Pack,
	sel Selection,
	voyages []record.Voyage,
	drilling map[string]struct{},
) *Filter {
	f := &Filter{rules: rules, sel: sel}
	if a, ok := rules.AssetByName(sel.Asset); ok {
		f.asset = a
	}
	for _, v := range voyages {
		if _, ok := drilling[v.ID]; ok {
			f.anchors = append(f.anchors, link.AnchorOf(v))
		}
	}
	return f
}

// passRep builds the pass-through report for a collection of n records
func (f *Filter) passRep(n int) (Report, bool) {
	if !f.sel.Active() || f.asset.Name == "" {
		return Report{Original: n, DrillingOnly: n, Skipped: true}, true
	}
	if len(f.anchors) == 0 {
		return Report{Original: n, DrillingOnly: n, Fallback: true}, true
	}
	return Report{}, false
}

// linksToDrilling reports whether the candidate matches any drilling voyage
func (f *Filter) linksToDrilling(fl link.Fields, r link.Rule) bool {
	for _, a := range f.anchors {
		if link.Match(a, fl, r) {
			return true
		}
	}
	return false
}

// Manifests keeps manifests that link to a drilling voyage within two days
func (f *Filter) Manifests(in []record.Manifest) ([]record.Manifest, Report) {
	if rep, pass := f.passRep(len(in)); pass {
		return in, rep
	}
	out := make([]record.Manifest, 0, len(in))
	for _, m := range in {
		if f.linksToDrilling(link.ManifestFields(m), link.ManifestRule) {
			out = append(out, m)
		}
	}
	return out, Report{Original: len(in), DrillingOnly: len(out), Removed: len(in) - len(out)}
}

// Events keeps events that link to a drilling voyage within seven days, with
// voyage number equality when both sides carry one
func (f *Filter) Events(in []record.VoyageEvent) ([]record.VoyageEvent, Report) {
	if rep, pass := f.passRep(len(in)); pass {
		return in, rep
	}
	out := make([]record.VoyageEvent, 0, len(in))
	for _, e := range in {
		if f.linksToDrilling(link.EventFields(e), link.EventRule) {
			out = append(out, e)
		}
	}
	return out, Report{Original: len(in), DrillingOnly: len(out), Removed: len(in) - len(out)}
}

// Bulks keeps actions whose destination references the asset and that either
// carry drilling or completion fluids (short-circuit accept) or link to a
// drilling voyage within three days
func (f *Filter) Bulks(in []record.BulkAction) ([]record.BulkAction, Report) {
	if rep, pass := f.passRep(len(in)); pass {
		return in, rep
	}
	out := make([]record.BulkAction, 0, len(in))
	for _, b := range in {
		if !f.asset.References(normalize.Fold(b.PortText())) {
			continue
		}
		if b.IsDrillingFluid || f.fluidText(b) ||
			f.linksToDrilling(link.BulkFields(b), link.BulkRule) {
			out = append(out, b)
		}
	}
	return out, Report{Original: len(in), DrillingOnly: len(out), Removed: len(in) - len(out)}
}

// fluidText reports whether the action's bulk type or description names a
// drilling or completion fluid
func (f *Filter) fluidText(b record.BulkAction) bool {
	text := normalize.Fold(b.BulkType + " " + b.BulkDescription)
	for _, kw := range f.rules.DrillingFluids {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// CostAllocations keeps rows whose location text references the asset and
// whose project type or department indicates drilling or completions, or
// whose location text itself says drilling. Text only; no linkage possible
func (f *Filter) CostAllocations(in []record.CostAllocation) ([]record.CostAllocation, Report) {
	if rep, pass := f.passRep(len(in)); pass {
		return in, rep
	}
	out := make([]record.CostAllocation, 0, len(in))
	for _, ca := range in {
		loc := normalize.Fold(ca.LocationText() + " " + ca.Description)
		if !f.asset.References(loc) {
			continue
		}
		if f.costProject(ca) || containsAny(loc, f.rules.Drilling) {
			out = append(out, ca)
		}
	}
	return out, Report{Original: len(in), DrillingOnly: len(out), Removed: len(in) - len(out)}
}

// costProject reports whether the row's project type or department names
// drilling or completions work
func (f *Filter) costProject(ca record.CostAllocation) bool {
	text := normalize.Fold(ca.ProjectType + " " + ca.Department)
	return containsAny(text, f.rules.CostDrilling) || containsAny(text, f.rules.CostCompletions)
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if t != "" && strings.Contains(s, t) {
			return true
		}
	}
	return false
}
