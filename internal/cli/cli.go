package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fbxgraph/internal/config"
	"github.com/matzehuels/fbxgraph/pkg/buildinfo"
	"github.com/matzehuels/fbxgraph/pkg/errors"
	"github.com/matzehuels/fbxgraph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "fbxgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Fs is the filesystem for scene input, config files and graph output.
	Fs afero.Fs

	verbose    bool
	configPath string
	cfg        *config.Config
}

// New creates a new CLI instance writing logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Fs:     afero.NewOsFs(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// graphFlags holds the flags of the root command.
type graphFlags struct {
	dir       string
	svg       bool
	timeMode  string
	frameRate float64
	maxDepth  int
	fillColor string
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var flags graphFlags

	root := &cobra.Command{
		Use:   appName + " <input.fbx>",
		Short: "fbxgraph projects FBX scenes into Graphviz graphs",
		Long: `fbxgraph reads an FBX scene and writes two Graphviz DOT files:
dag.dot with the node hierarchy and animstack.dot with the animation stacks,
layers, animated nodes and their transform curves.`,
		Version:       buildinfo.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(cmd, args); err != nil {
				return err
			}
			opts := c.graphOptions(cmd, &flags)
			opts.Input = args[0]
			return c.runGraph(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML config file")

	f := root.Flags()
	f.StringVarP(&flags.dir, "out", "o", "", "output directory (default: current directory)")
	f.BoolVar(&flags.svg, "svg", false, "also render each graph to SVG")
	f.StringVar(&flags.timeMode, "time-mode", "", "key time format: frames (default), seconds")
	f.Float64Var(&flags.frameRate, "frame-rate", 0, "frame rate for key frame numbers (default: scene rate or 30)")
	f.IntVar(&flags.maxDepth, "max-depth", 0, "maximum hierarchy depth, 0 for unlimited")
	f.StringVar(&flags.fillColor, "fill-color", "", "node fill color (default: #40e0d0)")

	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup configures logging before any command runs.
func (c *CLI) setup(cmd *cobra.Command) error {
	verbose := c.verbose
	if c.configPath != "" {
		cfg, err := config.Load(c.Fs, c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
		verbose = verbose || cfg.Log.Verbose
	}

	level := LogInfo
	if verbose {
		level = LogDebug
		registerLogHooks(c.Logger)
	}
	c.SetLogLevel(level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// checkArgs requires exactly one input file. A missing argument prints the
// usage text.
func checkArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 1:
		return errors.ValidateInputPath(args[0])
	case 0:
		_ = cmd.Usage()
		return errors.New(errors.ErrCodeInvalidInput, "no input file provided")
	default:
		return errors.New(errors.ErrCodeInvalidInput, "expected one input file, got %d", len(args))
	}
}

// graphOptions merges the config file with the flags. Flags set on the
// command line win.
func (c *CLI) graphOptions(cmd *cobra.Command, flags *graphFlags) pipeline.Options {
	var opts pipeline.Options
	if c.cfg != nil {
		opts = c.cfg.Options()
	}

	f := cmd.Flags()
	if f.Changed("out") {
		opts.Dir = flags.dir
	}
	if f.Changed("svg") {
		opts.SVG = flags.svg
	}
	if f.Changed("time-mode") {
		opts.TimeMode = flags.timeMode
	}
	if f.Changed("frame-rate") {
		opts.FrameRate = flags.frameRate
	}
	if f.Changed("max-depth") {
		opts.MaxDepth = flags.maxDepth
	}
	if f.Changed("fill-color") {
		opts.FillColor = flags.fillColor
	}
	return opts
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Fs, nil, c.Logger)
}

// runGraph executes the pipeline and reports the written files on w.
func (c *CLI) runGraph(ctx context.Context, w io.Writer, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("Projected " + opts.Input)

	printSuccess(w, "Projected %s", opts.Input)
	printStats(w, pipeline.PassHierarchy, result.Stats.HierarchyNodes, result.Stats.HierarchyEdges)
	printStats(w, pipeline.PassAnimation, result.Stats.AnimationNodes, result.Stats.AnimationEdges)
	for _, f := range result.Files {
		printFile(w, f)
	}
	return nil
}
