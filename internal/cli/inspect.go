package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fbxgraph/pkg/pipeline"
	"github.com/matzehuels/fbxgraph/pkg/scene"
)

// inspectOpts holds the flags of the inspect command.
type inspectOpts struct {
	nodes bool // list every hierarchy node
}

// inspectCommand creates the inspect command that summarizes a scene.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect <input.fbx>",
		Short: "Summarize the hierarchy and animation of an FBX scene",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(cmd, args); err != nil {
				return err
			}
			return c.runInspect(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.nodes, "nodes", false, "list all hierarchy nodes")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, w io.Writer, input string, opts inspectOpts) error {
	s, err := c.newRunner().LoadScene(ctx, pipeline.Options{Input: input})
	if err != nil {
		return err
	}

	fmt.Fprintln(w, StyleTitle.Render(input))
	printKeyValue(w, "nodes", strconv.Itoa(s.NodeCount()))
	printKeyValue(w, "stacks", strconv.Itoa(len(s.Stacks)))
	printKeyValue(w, "curves", strconv.Itoa(s.CurveCount()))
	if s.FrameRate > 0 {
		printKeyValue(w, "frame rate", strconv.FormatFloat(s.FrameRate, 'g', -1, 64))
	}

	if s.Root == nil {
		printDetail(w, "scene has no root node")
	}

	if opts.nodes && s.Root != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, renderTable([]string{"Node", "Type", "Depth", "Children"}, nodeRows(s.Scene)))
	}

	rows := layerRows(s.Scene)
	if len(rows) == 0 {
		printInfo(w, "no animation stacks")
		return nil
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, renderTable([]string{"Stack", "Layer", "Animated", "Curves"}, rows))
	return nil
}

// nodeRows lists the hierarchy in pre-order.
func nodeRows(s *scene.Scene) [][]string {
	var rows [][]string
	s.Walk(func(n *scene.Node, depth int) bool {
		label := n.TypeLabel()
		if label == "" {
			label = "-"
		}
		rows = append(rows, []string{n.Name, label, strconv.Itoa(depth), strconv.Itoa(len(n.Children))})
		return true
	})
	return rows
}

// layerRows counts animated nodes and curves per layer.
func layerRows(s *scene.Scene) [][]string {
	var rows [][]string
	for _, stack := range s.Stacks {
		if stack == nil {
			continue
		}
		if len(stack.Layers) == 0 {
			rows = append(rows, []string{stack.Name, "-", "0", "0"})
			continue
		}
		for _, layer := range stack.Layers {
			if layer == nil {
				continue
			}
			var animated, curves int
			s.Walk(func(n *scene.Node, _ int) bool {
				if !n.Animated(layer) {
					return true
				}
				animated++
				for _, ch := range scene.Channels() {
					if n.Curve(layer, ch) != nil {
						curves++
					}
				}
				return true
			})
			rows = append(rows, []string{stack.Name, layer.Name, strconv.Itoa(animated), strconv.Itoa(curves)})
		}
	}
	return rows
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader
			}
			if col == 0 {
				return StyleValue
			}
			return StyleNumber
		})
	return t.Render()
}
