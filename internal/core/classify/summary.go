package classify

// Summary aggregates one classification run. Voyages that had manifests but
// no classifiable evidence are excluded from both the numerator and the
// denominator; counting them anywhere would skew the drilling share
type Summary struct {
	Asset       string  `json:"asset"`
	Voyages     int     `json:"voyages"` // counted voyages (NoEvidence excluded)
	Drilling    int     `json:"drilling"`
	Production  int     `json:"production"`
	Mixed       int     `json:"mixed"`   // resolved mixed verdicts among the counted
	Unknown     int     `json:"unknown"` // voyages with zero asset manifests
	NoEvidence  int     `json:"noEvidence"`
	DrillingPct float64 `json:"drillingPct"`
}

// Summarize folds classification results into a Summary. Ordering of the
// input map is irrelevant; the aggregation is commutative
func Summarize(results map[string]Result) Summary {
	var s Summary
	for _, r := range results {
		if s.Asset == "" {
			s.Asset = r.Asset
		}
		switch r.Activity {
		case ActivityNoEvidence:
			s.NoEvidence++
			continue
		case ActivityDrilling:
			s.Drilling++
		case ActivityProduction:
			s.Production++
		case ActivityUnknown:
			s.Unknown++
		}
		if r.Mixed {
			s.Mixed++
		}
		s.Voyages++
	}
	if s.Voyages > 0 {
		s.DrillingPct = 100 * float64(s.Drilling) / float64(s.Voyages)
	}
	return s
}
