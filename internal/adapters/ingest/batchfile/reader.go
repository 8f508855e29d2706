package batchfile

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/record"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/platform/logger"
)

const maxLineBytes = 4 * 1024 * 1024

// Stats counts what one reader saw while scanning a file
type Stats struct {
	Lines   int   `json:"lines"`   // non-blank lines seen
	Decoded int   `json:"decoded"` // lines that produced a record
	Skipped int   `json:"skipped"` // malformed lines dropped
	Bytes   int64 `json:"bytes"`   // bytes consumed, newlines included
}

// decodeLines streams r line by line, decoding each line into W and converting
// it with conv. Malformed lines are counted and skipped, never fatal
func decodeLines[W, T any](r io.Reader, conv func(W) T) ([]T, Stats, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	var (
		out []T
		st  Stats
	)
	for sc.Scan() {
		raw := sc.Bytes()
		st.Bytes += int64(len(raw) + 1) // include newline
		line := bytes.TrimSpace(raw)
		if len(line) == 0 {
			continue
		}
		st.Lines++

		var w W
		if err := json.Unmarshal(line, &w); err != nil {
			st.Skipped++
			continue
		}
		st.Decoded++
		out = append(out, conv(w))
	}
	if err := sc.Err(); err != nil {
		return out, st, err
	}
	return out, st, nil
}

// ReadVoyages decodes the voyage list from line-delimited JSON
func ReadVoyages(r io.Reader) ([]record.Voyage, Stats, error) {
	return decodeLines(r, voyageRow.record)
}

// ReadManifests decodes cargo manifests from line-delimited JSON
func ReadManifests(r io.Reader) ([]record.Manifest, Stats, error) {
	return decodeLines(r, manifestRow.record)
}

// ReadVoyageEvents decodes voyage events from line-delimited JSON
func ReadVoyageEvents(r io.Reader) ([]record.VoyageEvent, Stats, error) {
	return decodeLines(r, eventRow.record)
}

// ReadBulkActions decodes bulk actions from line-delimited JSON
func ReadBulkActions(r io.Reader) ([]record.BulkAction, Stats, error) {
	return decodeLines(r, bulkRow.record)
}

// ReadCostAllocations decodes cost allocation lines from line-delimited JSON
func ReadCostAllocations(r io.Reader) ([]record.CostAllocation, Stats, error) {
	return decodeLines(r, costRow.record)
}

// Open opens path for reading, transparently decompressing .gz files
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		if cerr := f.Close(); cerr != nil {
			return nil, cerr
		}
		return nil, err
	}
	return &gzipFile{gz: gz, f: f}, nil
}

// gzipFile closes both the gzip stream and the backing file
type gzipFile struct {
	gz *gzip.Reader
	f  *os.File
}

func (g *gzipFile) Read(p []byte) (int, error) { return g.gz.Read(p) }

// Close closes the gzip stream first and reports the first error seen
func (g *gzipFile) Close() error {
	first := g.gz.Close()
	if err := g.f.Close(); err != nil && first == nil {
		first = err
	}
	return first
}

// readFile opens and fully decodes one batch file; empty paths load nothing
func readFile[W, T any](path string, conv func(W) T) ([]T, Stats, error) {
	if path == "" {
		return nil, Stats{}, nil
	}
	rc, err := Open(path)
	if err != nil {
		return nil, Stats{}, err
	}
	out, st, err := decodeLines(rc, conv)
	if cerr := rc.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return out, st, err
	}
	logger.Named("batchfile").Debug().
		Str("file", path).
		Int("decoded", st.Decoded).
		Int("skipped", st.Skipped).
		Msg("batchfile: loaded")
	return out, st, nil
}

// Files names the source file for each record kind; kinds with empty names
// are simply absent from the batch
type Files struct {
	Voyages   string
	Manifests string
	Events    string
	Bulks     string
	Costs     string
}

// Batch is the five record collections loaded into memory
type Batch struct {
	Voyages   []record.Voyage
	Manifests []record.Manifest
	Events    []record.VoyageEvent
	Bulks     []record.BulkAction
	Costs     []record.CostAllocation
}

// BatchStats holds per-kind read stats for one batch load
type BatchStats struct {
	Voyages   Stats `json:"voyages"`
	Manifests Stats `json:"manifests"`
	Events    Stats `json:"voyageEvents"`
	Bulks     Stats `json:"bulkActions"`
	Costs     Stats `json:"costAllocations"`
}

// Total sums the per-kind counters
func (s BatchStats) Total() Stats {
	var total Stats
	for _, st := range []Stats{s.Voyages, s.Manifests, s.Events, s.Bulks, s.Costs} {
		total.Lines += st.Lines
		total.Decoded += st.Decoded
		total.Skipped += st.Skipped
		total.Bytes += st.Bytes
	}
	return total
}

// ReadBatch loads every named file into one in-memory batch
func ReadBatch(files Files) (Batch, BatchStats, error) {
	var (
		b   Batch
		st  BatchStats
		err error
	)
	if b.Voyages, st.Voyages, err = readFile(files.Voyages, voyageRow.record); err != nil {
		return b, st, err
	}
	if b.Manifests, st.Manifests, err = readFile(files.Manifests, manifestRow.record); err != nil {
		return b, st, err
	}
	if b.Events, st.Events, err = readFile(files.Events, eventRow.record); err != nil {
		return b, st, err
	}
	if b.Bulks, st.Bulks, err = readFile(files.Bulks, bulkRow.record); err != nil {
		return b, st, err
	}
	if b.Costs, st.Costs, err = readFile(files.Costs, costRow.record); err != nil {
		return b, st, err
	}
	return b, st, nil
}
