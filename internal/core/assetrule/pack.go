// Package assetrule loads and compiles the keyword rules from the embedded
// rules.json. It folds every term once at load so the classifiers and filters
// can run plain substring containment on normalized text
package assetrule

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/normalize"
)

//go:embed rules.json
var embedded []byte

type rawAsset struct {
	Name              string   `json:"name"`
	Aliases           []string `json:"aliases"`
	ProductionMarkers []string `json:"production_markers"`
	DrillingMarkers   []string `json:"drilling_markers"`
}

type rawGenericMarkers struct {
	Production []string `json:"production"`
	Drilling   []string `json:"drilling"`
}

type rawCostTypes struct {
	Drilling    []string `json:"drilling"`
	Completions []string `json:"completions"`
}

type rawCause struct {
	Cause    string   `json:"cause"`
	Keywords []string `json:"keywords"`
}

type rawPack struct {
	Version        int               `json:"version"`
	Meta           map[string]any    `json:"meta"`
	Assets         []rawAsset        `json:"assets"`
	GenericMarkers rawGenericMarkers `json:"generic_markers"`
	DrillingFluids []string          `json:"drilling_fluids"`
	CostTypes      rawCostTypes      `json:"cost_project_types"`
	Causes         []rawCause        `json:"missing_voyage_causes"`
}

// Asset holds the compiled keyword sets for one deepwater asset.
// All terms are pre-folded
type Asset struct {
	Name              string
	Aliases           []string
	ProductionMarkers []string
	DrillingMarkers   []string
}

// References reports whether the folded text mentions the asset by any alias
func (a Asset) References(folded string) bool {
	return containsAny(folded, a.Aliases)
}

// CauseRule classifies free text into one likely cause for a missing voyage
// number. Rules are evaluated in pack order; first hit wins
type CauseRule struct {
	Cause    string
	Keywords []string
}

// Matches reports whether the folded text hits any of the rule's keywords
func (c CauseRule) Matches(folded string) bool {
	return containsAny(folded, c.Keywords)
}

// Pack is the compiled rule pack shared by the classifiers and filters
type Pack struct {
	Version int
	Meta    map[string]any

	// Assets in rules.json order (stable for reports)
	Assets []Asset

	// Generic facility markers; production is always evaluated before drilling
	Production []string
	Drilling   []string

	// Bulk cargo descriptions that identify drilling or completion fluids
	DrillingFluids []string

	// Cost allocation project type / department keywords
	CostDrilling    []string
	CostCompletions []string

	// Missing voyage number cause rules in priority order
	Causes []CauseRule
}

// Load returns the compiled pack from the embedded rules.json
func Load() (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("assetrule: parse rules.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("assetrule: unsupported rules.json version %d (want 1)", rp.Version)
	}
	if len(rp.Assets) == 0 {
		return nil, fmt.Errorf("assetrule: rules.json has no assets")
	}

	p := &Pack{
		Version:         rp.Version,
		Meta:            rp.Meta,
		Production:      foldTerms(rp.GenericMarkers.Production),
		Drilling:        foldTerms(rp.GenericMarkers.Drilling),
		DrillingFluids:  foldTerms(rp.DrillingFluids),
		CostDrilling:    foldTerms(rp.CostTypes.Drilling),
		CostCompletions: foldTerms(rp.CostTypes.Completions),
	}
	if len(p.Production) == 0 || len(p.Drilling) == 0 {
		return nil, fmt.Errorf("assetrule: generic markers must have production and drilling terms")
	}

	for _, ra := range rp.Assets {
		a := Asset{
			Name:              ra.Name,
			Aliases:           foldTerms(ra.Aliases),
			ProductionMarkers: foldTerms(ra.ProductionMarkers),
			DrillingMarkers:   foldTerms(ra.DrillingMarkers),
		}
		if a.Name == "" || len(a.Aliases) == 0 {
			return nil, fmt.Errorf("assetrule: asset %q needs a name and at least one alias", ra.Name)
		}
		p.Assets = append(p.Assets, a)
	}

	for _, rc := range rp.Causes {
		c := CauseRule{Cause: rc.Cause, Keywords: foldTerms(rc.Keywords)}
		if c.Cause == "" || len(c.Keywords) == 0 {
			return nil, fmt.Errorf("assetrule: cause rule %q needs a cause and keywords", rc.Cause)
		}
		p.Causes = append(p.Causes, c)
	}

	return p, nil
}

// Must loads the pack or panics; intended for init-time wiring and tests
func Must() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

// AssetFor returns the first asset whose alias appears in the text.
// Text is folded here; callers pass raw field values
func (p *Pack) AssetFor(text string) (Asset, bool) {
	f := normalize.Fold(text)
	if f == "" {
		return Asset{}, false
	}
	for _, a := range p.Assets {
		if a.References(f) {
			return a, true
		}
	}
	return Asset{}, false
}

// AssetByName returns the asset with the given canonical name
func (p *Pack) AssetByName(name string) (Asset, bool) {
	f := normalize.Fold(name)
	for _, a := range p.Assets {
		if normalize.Fold(a.Name) == f {
			return a, true
		}
	}
	return Asset{}, false
}

// Cause returns the first matching cause rule for the folded text, or
// "unknown" when nothing hits
func (p *Pack) Cause(folded string) string {
	for _, c := range p.Causes {
		if c.Matches(folded) {
			return c.Cause
		}
	}
	return "unknown"
}

// foldTerms folds, dedupes, and drops empties; order of first appearance wins
// except for a final stable sort by length descending so longer, more specific
// terms are probed first during containment scans
func foldTerms(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		f := normalize.Fold(s)
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

// containsAny reports whether any term is a substring of the folded text
func containsAny(folded string, terms []string) bool {
	for _, t := range terms {
		if t != "" && strings.Contains(folded, t) {
			return true
		}
	}
	return false
}
