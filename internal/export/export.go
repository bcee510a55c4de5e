// Package export writes the pricing grid, the radial diagram and the
// service cards to a directory as standalone files.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"

	"github.com/julianshen/pricemap/internal/diagram"
	"github.com/julianshen/pricemap/internal/output"
)

// DefaultConcurrency bounds the number of files written at once.
const DefaultConcurrency = 4

// Bundle is the immutable input of one export.
type Bundle struct {
	Report  *output.Report
	Diagram diagram.Diagram
	Cards   []diagram.Card
}

// Artifact is one file produced by an export.
type Artifact struct {
	Name string
	Path string
	Size int
}

// artifact renders one file's content.
type artifact struct {
	name   string
	render func(Bundle) ([]byte, error)
}

var artifacts = []artifact{
	{"grid.json", func(b Bundle) ([]byte, error) { return output.NewJSONFormatter().Format(b.Report) }},
	{"grid.md", func(b Bundle) ([]byte, error) { return output.NewMarkdownFormatter().Format(b.Report) }},
	{"diagram.svg", func(b Bundle) ([]byte, error) {
		var buf bytes.Buffer
		err := diagram.RenderSVG(&buf, b.Diagram)
		return buf.Bytes(), err
	}},
	{"diagram.json", func(b Bundle) ([]byte, error) { return json.MarshalIndent(b.Diagram, "", "  ") }},
	{"services.json", func(b Bundle) ([]byte, error) { return json.MarshalIndent(b.Cards, "", "  ") }},
}

// Exporter writes bundles into Dir.
type Exporter struct {
	Dir         string
	Concurrency int
	Log         zerolog.Logger
}

// NewExporter creates an Exporter for dir with default concurrency.
func NewExporter(dir string, log zerolog.Logger) *Exporter {
	return &Exporter{Dir: dir, Concurrency: DefaultConcurrency, Log: log}
}

// Export renders and writes every artifact concurrently. All artifacts are
// attempted; the returned error joins every failure. The returned list is
// sorted by name and only contains files that were written.
func (e *Exporter) Export(ctx context.Context, b Bundle) ([]Artifact, error) {
	if b.Report == nil {
		return nil, fmt.Errorf("export: bundle has no report")
	}
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	workers := e.Concurrency
	if workers < 1 {
		workers = 1
	}
	p := pool.New().WithMaxGoroutines(workers).WithErrors().WithContext(ctx)
	var mu sync.Mutex
	var written []Artifact

	for _, a := range artifacts {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := a.render(b)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", a.name, err)
			}
			path := filepath.Join(e.Dir, a.name)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", a.name, err)
			}
			e.Log.Debug().Str("file", path).Int("bytes", len(data)).Msg("exported")

			mu.Lock()
			written = append(written, Artifact{Name: a.name, Path: path, Size: len(data)})
			mu.Unlock()
			return nil
		})
	}

	err := p.Wait()
	sort.Slice(written, func(i, j int) bool { return written[i].Name < written[j].Name })
	return written, err
}

// Names lists the file names an export produces.
func Names() []string {
	names := make([]string, len(artifacts))
	for i, a := range artifacts {
		names[i] = a.name
	}
	return names
}
