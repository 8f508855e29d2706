// Package module wires duplicates into the API using modkit
package module

import (
	"net/http"

	modkit "github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit/httpkit"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit/swaggerkit"

	dhttp "github.com/Ancientfall/logisticsdashboard-sub006/internal/services/api/duplicates/http"
	dupdom "github.com/Ancientfall/logisticsdashboard-sub006/internal/services/duplicates/domain"
)

func init() {
	swaggerkit.Register(func(spec map[string]any) {
		tags, _ := spec["tags"].([]any)
		spec["tags"] = append(tags, map[string]any{
			"name":        "Duplicates",
			"description": "Duplicate voyage event detection",
		})
	})
}

// Module implements the duplicates API module
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
	Scanner dupdom.ScannerPort
}

// New constructs the duplicates module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("duplicates"),
		modkit.WithPrefix("/duplicates"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Scanner == nil {
		panic("duplicates API module requires Scanner port (from services/duplicates)")
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
		dhttp.Register(r, injected.Scanner)
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
