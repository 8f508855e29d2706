package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/adapters/ingest/batchfile"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit/module"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/platform/config"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/platform/logger"

	clsdom "github.com/Ancientfall/logisticsdashboard-sub006/internal/services/classification/domain"
	clsmod "github.com/Ancientfall/logisticsdashboard-sub006/internal/services/classification/module"
)

// report is everything one classification run produces
type report struct {
	Classification clsdom.ClassifyOutput `json:"classification"`
	Filter         *clsdom.FilterOutput  `json:"filter,omitempty"`
	Ingest         batchfile.BatchStats  `json:"ingest"`
}

func mustSetEnv(k, v string) {
	if v != "" {
		_ = os.Setenv(k, v)
	}
}

func main() {
	root := config.New()

	var (
		voyagesPath   = flag.String("voyages", "", "voyage list file (jsonl, .gz ok)")
		manifestsPath = flag.String("manifests", "", "manifest file (jsonl, .gz ok)")
		eventsPath    = flag.String("events", "", "voyage event file (jsonl, .gz ok)")
		bulksPath     = flag.String("bulks", "", "bulk action file (jsonl, .gz ok)")
		costsPath     = flag.String("costs", "", "cost allocation file (jsonl, .gz ok)")
		filter        = flag.String("filter", "", `asset selection, e.g. "Thunder Horse (Drilling)"`)
		startStr      = flag.String("start", "", "inclusive start day, e.g. 2024-02-01")
		endStr        = flag.String("end", "", "inclusive end day, e.g. 2024-02-29")
		workers       = flag.Int("workers", 2, "concurrency (>=1)")
		page          = flag.Int("page", 500, "page size (voyages)")
		runFilter     = flag.Bool("cascade", true, "also filter dependent records for the selection")
		outPath       = flag.String("out", "", "report file (default stdout)")
	)
	flag.Parse()

	if *voyagesPath == "" {
		log.Fatal("-voyages is required")
	}
	if *filter == "" {
		log.Fatal(`-filter is required, e.g. "Thunder Horse (Drilling)"`)
	}
	if (*startStr == "") != (*endStr == "") {
		log.Fatal("start/end must be provided together (day resolution)")
	}

	var start, end time.Time
	if *startStr != "" {
		var err error
		start, err = time.Parse("2006-01-02", *startStr)
		if err != nil {
			log.Fatalf("bad -start: %v", err)
		}
		end, err = time.Parse("2006-01-02", *endStr)
		if err != nil {
			log.Fatalf("bad -end: %v", err)
		}
		if end.Before(start) {
			log.Fatal("end must be >= start")
		}
	}

	logger.Init(logger.FromEnv())
	l := logger.Get()

	batch, stats, err := batchfile.ReadBatch(batchfile.Files{
		Voyages:   *voyagesPath,
		Manifests: *manifestsPath,
		Events:    *eventsPath,
		Bulks:     *bulksPath,
		Costs:     *costsPath,
	})
	if err != nil {
		l.Fatal().Err(err).Msg("batch read failed")
	}
	l.Info().
		Int("voyages", len(batch.Voyages)).
		Int("manifests", len(batch.Manifests)).
		Int("events", len(batch.Events)).
		Int("skipped", stats.Total().Skipped).
		Msg("batch loaded")

	// Pass CLI flags into CORE_CLASSIFY_* so the module can read its own config
	mustSetEnv("CORE_CLASSIFY_WORKERS", strconv.Itoa(*workers))
	mustSetEnv("CORE_CLASSIFY_PAGE_SIZE", strconv.Itoa(*page))

	deps := modkit.Deps{
		Cfg: root,
		Log: *l,
	}

	cm := clsmod.New(deps, clsmod.Options{
		Workers:  *workers,
		PageSize: *page,
	})
	module.Register(cm.Name(), cm.Ports())
	ports := module.MustPortsOf[clsmod.Ports](cm)

	ctx := context.Background()
	in := clsdom.ClassifyInput{
		AssetFilter: *filter,
		Voyages:     batch.Voyages,
		Manifests:   batch.Manifests,
	}

	var out clsdom.ClassifyOutput
	if *startStr != "" {
		out, err = ports.Classifier.RunRange(ctx, in, start.UTC(), end.UTC())
	} else {
		out, err = ports.Classifier.Classify(ctx, in)
	}
	if err != nil {
		l.Fatal().Err(err).Msg("classification failed")
	}

	rep := report{Classification: out, Ingest: stats}
	if *runFilter {
		fout, err := ports.Filter.Filter(ctx, clsdom.FilterInput{
			Selection: *filter,
			Batch: clsdom.Batch{
				Voyages:   batch.Voyages,
				Manifests: batch.Manifests,
				Events:    batch.Events,
				Bulks:     batch.Bulks,
				Costs:     batch.Costs,
			},
		})
		if err != nil {
			l.Fatal().Err(err).Msg("filter cascade failed")
		}
		rep.Filter = &fout
	}

	writeReport(l, rep, *outPath)
}

// writeReport encodes the report as indented JSON to stdout or the named file
func writeReport(l *logger.Logger, rep report, path string) {
	buf, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		l.Fatal().Err(err).Msg("report encode failed")
	}
	buf = append(buf, '\n')

	if path == "" {
		if _, err := os.Stdout.Write(buf); err != nil {
			l.Fatal().Err(err).Msg("report write failed")
		}
		return
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		l.Fatal().Err(err).Msg("report write failed")
	}
	l.Info().Str("file", path).Int("bytes", len(buf)).Msg("report written")
}
