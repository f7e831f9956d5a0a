package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/matzehuels/fbxgraph/pkg/fbx"
	"github.com/matzehuels/fbxgraph/pkg/graph"
	"github.com/matzehuels/fbxgraph/pkg/observability"
	"github.com/matzehuels/fbxgraph/pkg/project"
	"github.com/matzehuels/fbxgraph/pkg/scene"
)

// Loader reads a scene from a filesystem.
type Loader func(ctx context.Context, fs afero.Fs, path string) (*scene.Scene, error)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the filesystem, loader and logger - it
// doesn't store pipeline results.
type Runner struct {
	Fs     afero.Fs
	Load   Loader
	Logger *log.Logger
}

// NewRunner creates a runner reading and writing through fs.
// If fs is nil, the OS filesystem is used.
// If loader is nil, fbx.Load is used.
func NewRunner(fs afero.Fs, loader Loader, logger *log.Logger) *Runner {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if loader == nil {
		loader = fbx.Load
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Fs:     fs,
		Load:   loader,
		Logger: logger,
	}
}

// pass describes one projection and its output.
type pass struct {
	name    string
	file    string
	style   graph.Style
	project func(project.Source, project.Options) (*graph.Graph, error)
}

func passes(opts Options) []pass {
	return []pass{
		{PassHierarchy, HierarchyFile, graph.HierarchyStyle.WithFillColor(opts.FillColor), project.Hierarchy},
		{PassAnimation, AnimationFile, graph.AnimationStyle.WithFillColor(opts.FillColor), project.Animation},
	}
}

// Execute runs the complete load → project → write pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Load
	s, err := r.LoadScene(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Scene = s.Scene
	result.Stats.LoadTime = s.loadTime
	result.Stats.SceneNodes, result.Stats.CurveCount = s.nodes, s.curves

	popts := project.Options{MaxDepth: opts.MaxDepth, Curve: opts.CurveOptions(s.Scene)}

	for _, p := range passes(opts) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Stage 2: Project
		g, elapsed, err := r.runPass(ctx, p, s.Scene, popts, opts.Logger)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.name, err)
		}
		result.Stats.ProjectTime += elapsed

		switch p.name {
		case PassHierarchy:
			result.Hierarchy = g
			result.Stats.HierarchyNodes, result.Stats.HierarchyEdges = g.NodeCount(), g.EdgeCount()
		case PassAnimation:
			result.Animation = g
			result.Stats.AnimationNodes, result.Stats.AnimationEdges = g.NodeCount(), g.EdgeCount()
		}

		// Stage 3: Write
		writeStart := time.Now()
		files, err := r.writePass(ctx, p, g, opts)
		result.Files = append(result.Files, files...)
		if err != nil {
			return result, fmt.Errorf("%s: %w", p.name, err)
		}
		result.Stats.WriteTime += time.Since(writeStart)
	}

	opts.Logger.Info("wrote graphs",
		"files", len(result.Files),
		"duration", result.Stats.WriteTime)
	return result, nil
}

// LoadedScene is a scene together with load statistics.
type LoadedScene struct {
	*scene.Scene
	nodes    int
	curves   int
	loadTime time.Duration
}

// NodeCount returns the number of hierarchy nodes, root included.
func (s *LoadedScene) NodeCount() int { return s.nodes }

// CurveCount returns the number of channel curves across all layers.
func (s *LoadedScene) CurveCount() int { return s.curves }

// LoadScene runs only the load stage.
func (r *Runner) LoadScene(ctx context.Context, opts Options) (*LoadedScene, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Input)
	start := time.Now()

	s, err := r.Load(ctx, r.Fs, opts.Input)
	elapsed := time.Since(start)
	if err != nil {
		hooks.OnLoadComplete(ctx, opts.Input, 0, elapsed, err)
		return nil, err
	}

	loaded := &LoadedScene{Scene: s, loadTime: elapsed}
	s.Walk(func(n *scene.Node, _ int) bool {
		loaded.nodes++
		loaded.curves += n.CurveCount()
		return true
	})
	hooks.OnLoadComplete(ctx, opts.Input, loaded.nodes, elapsed, nil)

	opts.Logger.Info("loaded scene",
		"nodes", loaded.nodes,
		"stacks", len(s.Stacks),
		"curves", loaded.curves,
		"duration", elapsed)
	if s.FrameRate > 0 {
		opts.Logger.Debug("scene frame rate", "fps", s.FrameRate)
	}
	return loaded, nil
}

func (r *Runner) runPass(ctx context.Context, p pass, s *scene.Scene, popts project.Options, logger *log.Logger) (*graph.Graph, time.Duration, error) {
	hooks := observability.Pipeline()
	hooks.OnProjectStart(ctx, p.name)
	start := time.Now()

	g, err := p.project(s, popts)
	elapsed := time.Since(start)
	if err != nil {
		hooks.OnProjectComplete(ctx, p.name, 0, 0, elapsed, err)
		return nil, elapsed, err
	}
	hooks.OnProjectComplete(ctx, p.name, g.NodeCount(), g.EdgeCount(), elapsed, nil)
	logger.Debug("projected graph",
		"pass", p.name,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", elapsed)
	return g, elapsed, nil
}

// writePass writes the DOT file of a pass and, if requested, its SVG
// rendering. It returns the files that were written.
func (r *Runner) writePass(ctx context.Context, p pass, g *graph.Graph, opts Options) ([]string, error) {
	var written []string

	dotPath := filepath.Join(opts.Dir, p.file)
	if err := r.writeFile(ctx, dotPath, func(w *countingWriter) error {
		return g.WriteDOT(w, p.style)
	}); err != nil {
		return written, err
	}
	written = append(written, dotPath)

	dot := graph.ToDOT(g, p.style)
	if !opts.SVG {
		r.checkDOT(ctx, p.name, dot, opts.Logger)
		return written, nil
	}
	svgPath := replaceExt(dotPath, FormatSVG)
	svg, err := r.renderSVG(ctx, p.name, dot)
	if err != nil {
		return written, err
	}
	if err := r.writeFile(ctx, svgPath, func(w *countingWriter) error {
		_, err := w.Write(svg)
		return err
	}); err != nil {
		return written, err
	}
	return append(written, svgPath), nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
