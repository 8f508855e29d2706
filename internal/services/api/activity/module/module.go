// Package module wires activity into the API using modkit
package module

import (
	"net/http"

	modkit "github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit/httpkit"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit/swaggerkit"

	ahttp "github.com/Ancientfall/logisticsdashboard-sub006/internal/services/api/activity/http"
	clsdom "github.com/Ancientfall/logisticsdashboard-sub006/internal/services/classification/domain"
)

func init() {
	swaggerkit.Register(func(spec map[string]any) {
		tags, _ := spec["tags"].([]any)
		spec["tags"] = append(tags, map[string]any{
			"name":        "Activity",
			"description": "Voyage activity classification and drilling filters",
		})
	})
}

// Module implements the activity API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// Ports declares the required injected worker port(s) for this API module
type Ports struct {
	Classifier clsdom.ClassifierPort
	Filter     clsdom.FilterPort
}

// New constructs the activity module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("activity"),
		modkit.WithPrefix("/activity"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Classifier == nil || injected.Filter == nil {
		panic("activity API module requires Classifier and Filter ports (from services/classification)")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
	}
	m.ports = injected

	external := b.Register
	m.register = func(r httpkit.Router) {
		ahttp.Register(r, ahttp.Ports{
			Classifier: injected.Classifier,
			Filter:     injected.Filter,
		})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
