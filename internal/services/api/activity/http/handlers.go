// Package http provides http transport for activity classification
package http

import (
	stdhttp "net/http"
	"time"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit/httpkit"
	perrs "github.com/Ancientfall/logisticsdashboard-sub006/internal/platform/errors"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/services/api/activity/domain"
	clsdom "github.com/Ancientfall/logisticsdashboard-sub006/internal/services/classification/domain"
)

// Ports are the worker ports the handlers delegate to
type Ports struct {
	Classifier clsdom.ClassifierPort
	Filter     clsdom.FilterPort
}

// Register mounts activity endpoints on the given router
func Register(r httpkit.Router, p Ports) {
	h := &handlers{ports: p}
	httpkit.PostJSON[domain.ClassifyRequest](r, "/classify", h.classify)
	httpkit.PostJSON[domain.FilterRequest](r, "/filter", h.filter)
}

type handlers struct{ ports Ports }

const dayLayout = "2006-01-02"

// swagger:route POST /activity/classify Activity activityClassify
// @Summary Classify voyages as drilling or production
// @Tags Activity
// @Accept json
// @Produce json
// @Param payload body domain.ClassifyRequest true "Batch"
// @Success 200 {object} clsdom.ClassifyOutput "ok"
// @Router /activity/classify [post]
func (h *handlers) classify(r *stdhttp.Request, in domain.ClassifyRequest) (any, error) {
	ci := clsdom.ClassifyInput{
		AssetFilter: in.AssetFilter,
		Voyages:     in.Voyages,
		Manifests:   in.Manifests,
	}
	switch {
	case in.Start == "" && in.End == "":
		return h.ports.Classifier.Classify(r.Context(), ci)
	case in.Start != "" && in.End != "":
		start, err := time.Parse(dayLayout, in.Start)
		if err != nil {
			return nil, perrs.InvalidArgf("start: %v", err)
		}
		end, err := time.Parse(dayLayout, in.End)
		if err != nil {
			return nil, perrs.InvalidArgf("end: %v", err)
		}
		return h.ports.Classifier.RunRange(r.Context(), ci, start, end)
	default:
		return nil, perrs.InvalidArgf("start and end must be provided together")
	}
}

// swagger:route POST /activity/filter Activity activityFilter
// @Summary Filter record collections to drilling-only subsets
// @Tags Activity
// @Accept json
// @Produce json
// @Param payload body domain.FilterRequest true "Batch"
// @Success 200 {object} clsdom.FilterOutput "ok"
// @Router /activity/filter [post]
func (h *handlers) filter(r *stdhttp.Request, in domain.FilterRequest) (any, error) {
	return h.ports.Filter.Filter(r.Context(), clsdom.FilterInput{
		Selection: in.Selection,
		Batch: clsdom.Batch{
			Voyages:   in.Voyages,
			Manifests: in.Manifests,
			Events:    in.Events,
			Bulks:     in.Bulks,
			Costs:     in.Costs,
		},
	})
}
