package pipeline

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fbxgraph/pkg/errors"
	"github.com/matzehuels/fbxgraph/pkg/graph"
	"github.com/matzehuels/fbxgraph/pkg/observability"
)

// countingWriter tracks the number of bytes written.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

// writeFile creates path and fills it with fn. If fn or closing the file
// fails, the partial file is removed.
func (r *Runner) writeFile(ctx context.Context, path string, fn func(w *countingWriter) error) error {
	if err := r.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create directory for %s", path)
	}
	f, err := r.Fs.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}

	cw := &countingWriter{w: f}
	werr := fn(cw)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		if rerr := r.Fs.Remove(path); rerr != nil {
			r.Logger.Warn("could not remove partial file", "path", path, "error", rerr)
		}
		observability.Output().OnDiscard(ctx, path, werr)
		return errors.Wrap(errors.ErrCodeIO, werr, "write %s", path)
	}

	observability.Output().OnWrite(ctx, path, cw.n)
	return nil
}

// renderSVG renders DOT text with Graphviz.
func (r *Runner) renderSVG(ctx context.Context, passName, dot string) ([]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, passName, FormatSVG)
	start := time.Now()

	svg, err := graph.RenderSVG(ctx, dot)
	hooks.OnRenderComplete(ctx, passName, FormatSVG, time.Since(start), err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "render %s graph", passName)
	}
	return svg, nil
}

// checkDOT parses written DOT text with Graphviz. Names are written raw, so
// a scene can yield text Graphviz rejects; that is logged, not returned.
func (r *Runner) checkDOT(ctx context.Context, passName, dot string, logger *log.Logger) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, passName, FormatDOT)
	start := time.Now()

	err := graph.Validate(ctx, dot)
	hooks.OnRenderComplete(ctx, passName, FormatDOT, time.Since(start), err)
	if err != nil {
		logger.Warn("graph does not parse in Graphviz", "pass", passName, "error", err)
	}
}

// replaceExt swaps the extension of path for ext.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}
