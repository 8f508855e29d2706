// Package classify decides, per voyage, whether the underlying activity was
// drilling or production for the tracked deepwater assets. It aggregates
// keyword verdicts over the manifests linked to each voyage and resolves
// mixed evidence with a strict majority policy.
//
// The package is pure: no I/O, no logging, no state between calls. Callers
// narrate excluded or ambiguous voyages through their own logger
package classify

import (
	"strings"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/assetrule"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/normalize"
)

// Facility is the coarse verdict for one location string
type Facility int

// Facility verdicts
const (
	FacilityUnknown Facility = iota
	FacilityDrilling
	FacilityProduction
)

// String returns the verdict label
func (f Facility) String() string {
	switch f {
	case FacilityDrilling:
		return "Drilling"
	case FacilityProduction:
		return "Production"
	default:
		return "Unknown"
	}
}

// Classifier applies the compiled asset rule pack
type Classifier struct {
	rules *assetrule.Pack

	// marker unions precomputed at construction: generic terms plus every
	// asset qualified form
	production []string
	drilling   []string
}

// New builds a Classifier over the rule pack
func New(rules *assetrule.Pack) *Classifier {
	c := &Classifier{rules: rules}
	c.production = append(c.production, rules.Production...)
	c.drilling = append(c.drilling, rules.Drilling...)
	for _, a := range rules.Assets {
		c.production = append(c.production, a.ProductionMarkers...)
		c.drilling = append(c.drilling, a.DrillingMarkers...)
	}
	return c
}

// Facility classifies a free text location by keyword containment.
// Production markers are checked before drilling markers; a string
// matching both classifies Production
func (c *Classifier) Facility(location string) Facility {
	f := normalize.Fold(location)
	if f == "" {
		return FacilityUnknown
	}
	for _, m := range c.production {
		if strings.Contains(f, m) {
			return FacilityProduction
		}
	}
	for _, m := range c.drilling {
		if strings.Contains(f, m) {
			return FacilityDrilling
		}
	}
	return FacilityUnknown
}

// Rules exposes the pack the classifier was built over
func (c *Classifier) Rules() *assetrule.Pack { return c.rules }
