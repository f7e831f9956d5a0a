package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fbxgraph/pkg/observability"
)

// logHooks reports pipeline and output events at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.PipelineHooks = (*logHooks)(nil)
	_ observability.OutputHooks   = (*logHooks)(nil)
)

// registerLogHooks routes observability events to l.
func registerLogHooks(l *log.Logger) {
	h := &logHooks{logger: l}
	observability.SetPipelineHooks(h)
	observability.SetOutputHooks(h)
}

func (h *logHooks) OnLoadStart(_ context.Context, path string) {
	h.logger.Debug("load start", "path", path)
}

func (h *logHooks) OnLoadComplete(_ context.Context, path string, nodeCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "path", path, "duration", d, "err", err)
		return
	}
	h.logger.Debug("load complete", "path", path, "nodes", nodeCount, "duration", d)
}

func (h *logHooks) OnProjectStart(_ context.Context, pass string) {
	h.logger.Debug("projection start", "pass", pass)
}

func (h *logHooks) OnProjectComplete(_ context.Context, pass string, nodeCount, edgeCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("projection failed", "pass", pass, "duration", d, "err", err)
		return
	}
	h.logger.Debug("projection complete", "pass", pass, "nodes", nodeCount, "edges", edgeCount, "duration", d)
}

func (h *logHooks) OnRenderStart(_ context.Context, pass, format string) {
	h.logger.Debug("render start", "pass", pass, "format", format)
}

func (h *logHooks) OnRenderComplete(_ context.Context, pass, format string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "pass", pass, "format", format, "err", err)
		return
	}
	h.logger.Debug("render complete", "pass", pass, "format", format, "duration", d)
}

func (h *logHooks) OnWrite(_ context.Context, path string, size int) {
	h.logger.Debug("wrote file", "path", path, "bytes", size)
}

func (h *logHooks) OnDiscard(_ context.Context, path string, cause error) {
	h.logger.Warn("discarded partial file", "path", path, "err", cause)
}
