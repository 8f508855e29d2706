package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/cascade"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/classify"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/services/classification/domain"
)

// Filter classifies the batch under the selection's asset, then cascades the
// drilling verdict through the dependent collections. Voyages pass through;
// manifests, events, bulk actions, and cost allocations narrow to the rows
// attributable to drilling voyages
func (s *Service) Filter(ctx context.Context, in domain.FilterInput) (domain.FilterOutput, error) {
	if err := ctx.Err(); err != nil {
		return domain.FilterOutput{}, err
	}

	sel := cascade.ParseSelection(s.Rules, in.Selection)
	results := s.Cls.Classify(in.Voyages, in.Manifests, in.Selection)
	f := cascade.New(s.Rules, sel, in.Voyages, classify.DrillingIDs(results))

	out := domain.FilterOutput{
		BatchID:   uuid.NewString(),
		Selection: sel,
	}
	out.Filtered.Voyages = in.Voyages
	out.Filtered.Manifests, out.Reports.Manifests = f.Manifests(in.Manifests)
	out.Filtered.Events, out.Reports.Events = f.Events(in.Events)
	out.Filtered.Bulks, out.Reports.Bulks = f.Bulks(in.Bulks)
	out.Filtered.Costs, out.Reports.Costs = f.CostAllocations(in.Costs)
	return out, nil
}
