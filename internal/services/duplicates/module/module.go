// Package module implements the duplicates module
package module

import (
	"net/http"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/assetrule"
	modkit "github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit/httpkit"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/services/duplicates/domain"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/services/duplicates/service"
)

// Ports exposed by the duplicates module
type Ports struct {
	Scanner domain.ScannerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new duplicates module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	_ = modkit.Build(append([]modkit.Option{
		modkit.WithName("duplicates"),
	}, opts...)...)

	rp, err := assetrule.Load()
	if err != nil {
		panic(err)
	}

	m := &Module{deps: deps}
	m.ports = Ports{Scanner: service.New(rp)}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "duplicates" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares satisfies modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
