// Package module implements the classification module
package module

import (
	"net/http"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/assetrule"
	modkit "github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit/httpkit"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/services/classification/domain"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/services/classification/service"
)

// Ports exposed by the classification module
type Ports struct {
	Classifier domain.ClassifierPort
	Filter     domain.FilterPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new classification module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	_ = modkit.Build(append([]modkit.Option{
		modkit.WithName("classification"),
	}, opts...)...)

	// Merge config + overrides
	cfg := FromConfig(deps.Cfg)
	if overrides.Workers != 0 {
		cfg.Workers = overrides.Workers
	}
	if overrides.PageSize != 0 {
		cfg.PageSize = overrides.PageSize
	}

	// Shared rule pack for the classifier and the cascade
	rp, err := assetrule.Load()
	if err != nil {
		panic(err)
	}

	svc := service.New(rp, service.Config{
		Workers:  cfg.Workers,
		PageSize: cfg.PageSize,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Classifier: svc,
		Filter:     svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "classification" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares satisfies modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
