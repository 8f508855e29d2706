package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/adapters/ingest/batchfile"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit/module"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/platform/config"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/platform/logger"

	dupdom "github.com/Ancientfall/logisticsdashboard-sub006/internal/services/duplicates/domain"
	dupmod "github.com/Ancientfall/logisticsdashboard-sub006/internal/services/duplicates/module"
)

// report pairs the duplicate scan with its ingest counters
type report struct {
	Scan   dupdom.ScanOutput `json:"scan"`
	Ingest batchfile.Stats   `json:"ingest"`
}

func main() {
	var (
		eventsPath = flag.String("events", "", "voyage event file (jsonl, .gz ok)")
		outPath    = flag.String("out", "", "report file (default stdout)")
	)
	flag.Parse()

	if *eventsPath == "" {
		log.Fatal("-events is required")
	}

	logger.Init(logger.FromEnv())
	l := logger.Get()

	rc, err := batchfile.Open(*eventsPath)
	if err != nil {
		l.Fatal().Err(err).Msg("event file open failed")
	}
	events, stats, err := batchfile.ReadVoyageEvents(rc)
	if cerr := rc.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		l.Fatal().Err(err).Msg("event read failed")
	}

	deps := modkit.Deps{
		Cfg: config.New(),
		Log: *l,
	}

	dm := dupmod.New(deps)
	module.Register(dm.Name(), dm.Ports())
	ports := module.MustPortsOf[dupmod.Ports](dm)

	out, err := ports.Scanner.Scan(context.Background(), dupdom.ScanInput{Events: events})
	if err != nil {
		l.Fatal().Err(err).Msg("duplicate scan failed")
	}
	l.Info().
		Int("events", out.TotalEvents).
		Int("duplicates", out.TotalDuplicates).
		Int("groups", len(out.Groups)).
		Msg("scan complete")

	writeReport(l, report{Scan: out, Ingest: stats}, *outPath)
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
