// Package service implements the classification service
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/assetrule"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/classify"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/record"
	ptime "github.com/Ancientfall/logisticsdashboard-sub006/internal/platform/time"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/services/classification/domain"
)

// Config for the classification service
type Config struct {
	Workers  int
	PageSize int
}

// Service implements domain.ClassifierPort and domain.FilterPort
type Service struct {
	Rules *assetrule.Pack
	Cls   *classify.Classifier
	Cfg   Config
}

// New constructs a classification service
func New(rp *assetrule.Pack, cfg Config) *Service {
	w := cfg.Workers
	if w <= 0 {
		w = 1
	}
	ps := cfg.PageSize
	if ps <= 0 {
		ps = 500
	}
	return &Service{
		Rules: rp,
		Cls:   classify.New(rp),
		Cfg:   Config{Workers: w, PageSize: ps},
	}
}

// Classify resolves activity for every voyage in the input scope
func (s *Service) Classify(ctx context.Context, in domain.ClassifyInput) (domain.ClassifyOutput, error) {
	if err := ctx.Err(); err != nil {
		return domain.ClassifyOutput{}, err
	}
	results := s.Cls.Classify(in.Voyages, in.Manifests, in.AssetFilter)
	return s.output(in.AssetFilter, in.Voyages, results), nil
}

// RunRange classifies only voyages whose start date falls inside [start, end],
// compared at UTC day granularity, paging through them with the worker pool
func (s *Service) RunRange(
	ctx context.Context,
	in domain.ClassifyInput,
	start, end time.Time,
) (domain.ClassifyOutput, error) {
	start = ptime.Day(start)
	end = ptime.Day(end)
	if end.Before(start) {
		return domain.ClassifyOutput{}, errors.New("end before start")
	}

	scoped := make([]record.Voyage, 0, len(in.Voyages))
	for _, v := range in.Voyages {
		d := ptime.Day(v.StartDate)
		if d.IsZero() || d.Before(start) || d.After(end) {
			continue
		}
		scoped = append(scoped, v)
	}

	merged := make(map[string]classify.Result, len(scoped))
	for off := 0; off < len(scoped); off += s.Cfg.PageSize {
		if err := ctx.Err(); err != nil {
			return domain.ClassifyOutput{}, err
		}
		page := scoped[off:min(off+s.Cfg.PageSize, len(scoped))]

		out := make([]map[string]classify.Result, len(page))
		sem := make(chan struct{}, s.Cfg.Workers)
		wg := sync.WaitGroup{}
		for i := range page {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer func() { <-sem; wg.Done() }()
				out[i] = s.Cls.Classify(page[i:i+1], in.Manifests, in.AssetFilter)
			}(i)
		}
		wg.Wait()

		for _, m := range out {
			for id, r := range m {
				merged[id] = r
			}
		}
	}

	return s.output(in.AssetFilter, scoped, merged), nil
}

// output shapes a result map into transport form, rows in input voyage order
func (s *Service) output(
	filter string,
	voyages []record.Voyage,
	results map[string]classify.Result,
) domain.ClassifyOutput {
	out := domain.ClassifyOutput{
		BatchID: uuid.NewString(),
		Summary: classify.Summarize(results),
	}
	if a, ok := s.Rules.AssetFor(filter); ok {
		out.Asset = a.Name
	}
	out.Rows = make([]domain.VoyageRow, 0, len(results))
	for _, v := range voyages {
		r, ok := results[v.ID]
		if !ok {
			continue
		}
		out.Rows = append(out.Rows, domain.VoyageRow{
			VoyageID:        r.VoyageID,
			Vessel:          v.Vessel,
			Asset:           r.Asset,
			Activity:        r.Activity.String(),
			DrillingCount:   r.DrillingCount,
			ProductionCount: r.ProductionCount,
			Manifests:       r.Manifests,
			Mixed:           r.Mixed,
		})
	}
	return out
}
