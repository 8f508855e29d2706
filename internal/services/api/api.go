// Package api provides the HTTP API for the application
package api

import (
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/platform/config"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/platform/logger"
	phttp "github.com/Ancientfall/logisticsdashboard-sub006/internal/platform/net/http"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit/httpkit"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit/module"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit/swaggerkit"

	activitymod "github.com/Ancientfall/logisticsdashboard-sub006/internal/services/api/activity/module"
	dupapimod "github.com/Ancientfall/logisticsdashboard-sub006/internal/services/api/duplicates/module"
	metamod "github.com/Ancientfall/logisticsdashboard-sub006/internal/services/api/meta/module"

	// Worker modules (own the Classifier, Filter, and Scanner ports)
	classmod "github.com/Ancientfall/logisticsdashboard-sub006/internal/services/classification/module"
	dupmod "github.com/Ancientfall/logisticsdashboard-sub006/internal/services/duplicates/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Construct the WORKER modules first and extract their ports
	classification := classmod.New(deps, classmod.Options{})
	clsPorts := module.MustPortsOf[classmod.Ports](classification)

	duplicates := dupmod.New(deps)
	dupPorts := module.MustPortsOf[dupmod.Ports](duplicates)

	// Inject the worker ports into the API modules
	activityAPI := activitymod.New(
		deps,
		modkit.WithPorts(activitymod.Ports{
			Classifier: clsPorts.Classifier,
			Filter:     clsPorts.Filter,
		}),
	)
	duplicatesAPI := dupapimod.New(
		deps,
		modkit.WithPorts(dupapimod.Ports{
			Scanner: dupPorts.Scanner,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		classification, // include workers so their ports are registered
		duplicates,
		activityAPI,
		duplicatesAPI,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
