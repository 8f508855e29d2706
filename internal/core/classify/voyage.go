package classify

import (
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/link"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/normalize"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/record"
)

// Activity is the resolved per-voyage verdict
type Activity int

// Activity verdicts. Unknown means no linked manifest referenced the asset;
// NoEvidence means manifests were present but none of them classified either
// way. The two are distinct so the aggregation step can exclude NoEvidence
// from totals without losing the Unknown tally
const (
	ActivityUnknown Activity = iota
	ActivityNoEvidence
	ActivityDrilling
	ActivityProduction
)

// String returns the verdict label
func (a Activity) String() string {
	switch a {
	case ActivityDrilling:
		return "Drilling"
	case ActivityProduction:
		return "Production"
	case ActivityNoEvidence:
		return "NoEvidence"
	default:
		return "Unknown"
	}
}

// Result is one voyage's classification with its evidence counts
type Result struct {
	VoyageID        string
	Asset           string
	Activity        Activity
	DrillingCount   int
	ProductionCount int
	Manifests       int  // linked manifests that referenced the asset
	Mixed           bool // both counts were positive before majority resolution
}

// Classify classifies every voyage whose route references the asset named by
// the filter string. An asset filter naming neither supported asset yields an
// empty map; classification is scoped to the two tracked assets on purpose.
//
// Stateless and idempotent: the same inputs produce the same map every time
func (c *Classifier) Classify(
	voyages []record.Voyage,
	manifests []record.Manifest,
	assetFilter string,
) map[string]Result {
	out := map[string]Result{}
	asset, ok := c.rules.AssetFor(assetFilter)
	if !ok {
		return out
	}

	for _, v := range voyages {
		if !asset.References(normalize.Fold(v.RouteText())) {
			continue
		}

		linked := link.Matches(link.AnchorOf(v), manifests, link.ManifestFields, link.ManifestRule)

		var dc, pc, n int
		for _, m := range linked {
			if !asset.References(normalize.Fold(m.OffshoreLocation)) {
				continue
			}
			n++
			switch c.Facility(m.OffshoreLocation) {
			case FacilityDrilling:
				dc++
			case FacilityProduction:
				pc++
			}
		}

		res := Result{
			VoyageID:        v.ID,
			Asset:           asset.Name,
			DrillingCount:   dc,
			ProductionCount: pc,
			Manifests:       n,
		}
		switch {
		case n == 0:
			res.Activity = ActivityUnknown
		case dc == 0 && pc == 0:
			res.Activity = ActivityNoEvidence
		case pc == 0:
			res.Activity = ActivityDrilling
		case dc == 0:
			res.Activity = ActivityProduction
		default:
			// mixed evidence: strict majority, ties resolve to Production
			res.Mixed = true
			if dc > pc {
				res.Activity = ActivityDrilling
			} else {
				res.Activity = ActivityProduction
			}
		}
		out[v.ID] = res
	}
	return out
}

// DrillingIDs extracts the set of voyage ids that resolved to Drilling; it is
// the only input the filter cascade consumes
func DrillingIDs(results map[string]Result) map[string]struct{} {
	out := make(map[string]struct{}, len(results))
	for id, r := range results {
		if r.Activity == ActivityDrilling {
			out[id] = struct{}{}
		}
	}
	return out
}
