// Package pipeline provides the scene-to-graph pipeline for fbxgraph.
//
// This package implements the complete load → project → write pipeline used
// by the CLI. By centralizing this logic, the commands stay thin and the whole
// run can be exercised against an in-memory filesystem.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate the scene file
//  2. Project: Build the hierarchy graph and the animation graph
//  3. Write: Serialize both graphs as DOT (and optionally SVG) files
//
// The two projections are independent: each pass builds its own graph.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(afero.NewOsFs(), nil, logger)
//	opts := pipeline.Options{
//	    Input: "robot.fbx",
//	    SVG:   true,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Files) // [dag.dot dag.svg animstack.dot animstack.svg]
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fbxgraph/pkg/curveinfo"
	"github.com/matzehuels/fbxgraph/pkg/errors"
	"github.com/matzehuels/fbxgraph/pkg/graph"
	"github.com/matzehuels/fbxgraph/pkg/scene"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// HierarchyFile is the output file of the hierarchy pass.
	HierarchyFile = "dag.dot"

	// AnimationFile is the output file of the animation pass.
	AnimationFile = "animstack.dot"

	// DefaultDir is the default output directory.
	DefaultDir = "."

	// DefaultTimeMode is the default key time format.
	DefaultTimeMode = curveinfo.TimeModeFrames
)

// Pass names used in logs and observability events.
const (
	PassHierarchy = "hierarchy"
	PassAnimation = "animation"
)

// Format constants for output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Input is the scene file to load.
	Input string

	// Dir is the directory receiving the output files.
	Dir string

	// SVG additionally renders each graph to SVG next to its DOT file.
	SVG bool

	// TimeMode selects how curve key times are printed ("frames" or "seconds").
	TimeMode string

	// FrameRate overrides the scene frame rate used for frame numbers.
	// Zero uses the scene's rate, falling back to 30.
	FrameRate float64

	// MaxDepth bounds the hierarchy depth. Zero means unlimited.
	MaxDepth int

	// FillColor is the node fill color.
	FillColor string

	// Logger receives progress messages. Defaults to a discarding logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the loaded scene.
	Scene *scene.Scene

	// Hierarchy is the graph of the hierarchy pass.
	Hierarchy *graph.Graph

	// Animation is the graph of the animation pass.
	Animation *graph.Graph

	// Files lists the written files in write order.
	Files []string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SceneNodes     int
	CurveCount     int
	HierarchyNodes int
	HierarchyEdges int
	AnimationNodes int
	AnimationEdges int
	LoadTime       time.Duration
	ProjectTime    time.Duration
	WriteTime      time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateTimeMode checks that a time mode is valid.
func ValidateTimeMode(mode string) error {
	if _, err := curveinfo.ParseTimeMode(mode); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "time_mode")
	}
	return nil
}

// ValidateFrameRate checks that a frame rate override is usable.
func ValidateFrameRate(rate float64) error {
	if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid frame_rate: %v (must be a positive number)", rate)
	}
	return nil
}

// ValidateMaxDepth checks that a depth bound is usable.
func ValidateMaxDepth(depth int) error {
	if depth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid max_depth: %d (must be 0 or more)", depth)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateInputPath(o.Input); err != nil {
		return err
	}
	if err := o.ValidateOutput(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateOutput validates and defaults everything except the input path.
func (o *Options) ValidateOutput() error {
	if err := ValidateTimeMode(o.TimeMode); err != nil {
		return err
	}
	if err := ValidateFrameRate(o.FrameRate); err != nil {
		return err
	}
	if err := ValidateMaxDepth(o.MaxDepth); err != nil {
		return err
	}

	if o.TimeMode == "" {
		o.TimeMode = string(DefaultTimeMode)
	}
	if o.Dir == "" {
		o.Dir = DefaultDir
	}
	if o.FillColor == "" {
		o.FillColor = graph.DefaultFillColor
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// CurveOptions returns the key table options for s.
func (o *Options) CurveOptions(s *scene.Scene) curveinfo.Options {
	rate := o.FrameRate
	if rate == 0 && s != nil {
		rate = s.FrameRate
	}
	return curveinfo.Options{
		TimeMode:  curveinfo.TimeMode(o.TimeMode),
		FrameRate: rate,
	}
}
