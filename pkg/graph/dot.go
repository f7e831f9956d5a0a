package graph

import (
	"bytes"
	"fmt"
	"io"
)

// Shapes used by the predefined styles.
const (
	ShapeBox     = "box"
	ShapeDiamond = "diamond"
	ShapeEllipse = "ellipse"
)

// DefaultFillColor is the node fill color expected by downstream tooling.
const DefaultFillColor = "#40e0d0"

// meshType is the node type drawn as a diamond in the hierarchy style.
const meshType = "mesh"

// Style configures how nodes are rendered by [Graph.WriteDOT].
type Style struct {
	// Shape chooses the DOT shape for a node.
	Shape func(Node) string
	// IncludeInfo appends the node's Info fragment to its label.
	IncludeInfo bool
	// FillColor overrides DefaultFillColor when non-empty.
	FillColor string
}

// HierarchyStyle renders scene hierarchy graphs: untyped nodes (the scene
// root, plain transforms) as boxes, meshes as diamonds and everything else as
// ellipses. Info fragments are not shown.
var HierarchyStyle = Style{Shape: hierarchyShape}

// AnimationStyle renders animation graphs: every node is a box and labels
// include the Info fragment (curve key tables).
var AnimationStyle = Style{
	Shape:       func(Node) string { return ShapeBox },
	IncludeInfo: true,
}

func hierarchyShape(n Node) string {
	switch n.Type() {
	case "":
		return ShapeBox
	case meshType:
		return ShapeDiamond
	default:
		return ShapeEllipse
	}
}

// WithFillColor returns a copy of s using the given fill color.
func (s Style) WithFillColor(color string) Style {
	s.FillColor = color
	return s
}

// ToDOT converts g to DOT text using style.
//
// The layout is fixed: a digraph header named after the graph, a "# Nodes"
// block with one HTML-labeled declaration per node, a "# Edges" block with one
// "src -> dst;" line per edge, and the closing brace.
func ToDOT(g *Graph, style Style) string {
	var buf bytes.Buffer
	fill := style.FillColor
	if fill == "" {
		fill = DefaultFillColor
	}
	shape := style.Shape
	if shape == nil {
		shape = hierarchyShape
	}

	fmt.Fprintf(&buf, "digraph %s {\n\n", g.name)

	buf.WriteString("# Nodes\n")
	for _, n := range g.nodes {
		writeNode(&buf, n, shape(n), fill, style.IncludeInfo)
	}

	buf.WriteString("# Edges\n")
	for _, e := range g.edges {
		writeEdge(&buf, e)
	}

	buf.WriteString("\n}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, n Node, shape, fill string, withInfo bool) {
	fmt.Fprintf(buf, "%s [\n", n.name)
	buf.WriteString("  label = <\n")
	buf.WriteString("  <table border='0' cellborder='0' cellspacing='1'>\n")
	fmt.Fprintf(buf, "  <tr><td align=\"center\"><b>%s</b></td></tr>\n", n.name)
	fmt.Fprintf(buf, "  <tr><td align=\"center\">(%s)</td></tr>\n", n.typ)
	if withInfo {
		buf.WriteString(n.info)
	}
	buf.WriteString("  </table>> \n")
	fmt.Fprintf(buf, "  shape = %s\n", shape)
	fmt.Fprintf(buf, "  fillcolor = %q\n", fill)
	buf.WriteString("  style=\"filled\"\n")
	buf.WriteString("]\n\n")
}

func writeEdge(buf *bytes.Buffer, e Edge) {
	if e.name != "" {
		fmt.Fprintf(buf, "%s -> %s [label=%q];\n", e.src.name, e.dst.name, e.name)
		return
	}
	fmt.Fprintf(buf, "%s -> %s;\n", e.src.name, e.dst.name)
}

// WriteDOT writes g to w as DOT text using style.
func (g *Graph) WriteDOT(w io.Writer, style Style) error {
	if _, err := io.WriteString(w, ToDOT(g, style)); err != nil {
		return fmt.Errorf("write %s: %w", g.name, err)
	}
	return nil
}

// WriteHierarchy writes g using [HierarchyStyle].
func (g *Graph) WriteHierarchy(w io.Writer) error {
	return g.WriteDOT(w, HierarchyStyle)
}

// WriteAnimation writes g using [AnimationStyle].
func (g *Graph) WriteAnimation(w io.Writer) error {
	return g.WriteDOT(w, AnimationStyle)
}
