package graph

import "strings"

// nameSeparator replaces spaces in node names.
const nameSeparator = "_"

// Node is a graph vertex: a display name, a free-text category label and an
// optional pre-rendered label fragment.
//
// Node is a value type. Setters must be called before the node is added to a
// graph; the graph keeps its own copy.
type Node struct {
	name string
	typ  string
	info string
}

// NewNode creates a node whose name is normalized for use as a DOT identifier.
func NewNode(name, typ string) Node {
	return Node{name: NormalizeName(name), typ: typ}
}

// NormalizeName replaces every space in name with an underscore.
func NormalizeName(name string) string {
	return strings.ReplaceAll(name, " ", nameSeparator)
}

// Name returns the normalized node name.
func (n Node) Name() string { return n.name }

// Type returns the category label.
func (n Node) Type() string { return n.typ }

// Info returns the label fragment, or "" if none was set.
func (n Node) Info() string { return n.info }

// SetName replaces the name, normalizing it.
func (n *Node) SetName(name string) { n.name = NormalizeName(name) }

// SetType replaces the category label.
func (n *Node) SetType(typ string) { n.typ = typ }

// SetInfo replaces the label fragment.
func (n *Node) SetInfo(info string) { n.info = info }

// Edge is a directed connection holding copies of its endpoints as they were
// when the edge was created.
type Edge struct {
	src  Node
	dst  Node
	name string
	id   int
}

// NewEdge creates an unnamed edge from src to dst. The ID is assigned when the
// edge is added to a graph.
func NewEdge(src, dst Node) Edge {
	return Edge{src: src, dst: dst}
}

// WithName returns a copy of e carrying the given display name.
func (e Edge) WithName(name string) Edge {
	e.name = name
	return e
}

// Src returns the source node copy.
func (e Edge) Src() Node { return e.src }

// Dst returns the destination node copy.
func (e Edge) Dst() Node { return e.dst }

// Name returns the display name, or "".
func (e Edge) Name() string { return e.name }

// ID returns the identifier assigned by the owning graph, or 0 for an edge
// that was never added.
func (e Edge) ID() int { return e.id }

// Graph is an append-only directed graph with insertion-ordered nodes and
// edges. The zero value is not usable; create graphs with [New].
type Graph struct {
	name   string
	nodes  []Node
	edges  []Edge
	nextID int
}

// New creates an empty graph. The name becomes the DOT graph identifier.
func New(name string) *Graph {
	return &Graph{name: name, nextID: 1}
}

// Name returns the graph name.
func (g *Graph) Name() string { return g.name }

// AddNode appends a copy of n.
func (g *Graph) AddNode(n Node) {
	g.nodes = append(g.nodes, n)
}

// AddEdge appends a copy of e, assigning it the next edge ID, and returns the
// stored edge.
func (g *Graph) AddEdge(e Edge) Edge {
	e.id = g.nextID
	g.nextID++
	g.edges = append(g.edges, e)
	return e
}

// Connect creates an edge from src to dst and appends it.
func (g *Graph) Connect(src, dst Node) Edge {
	return g.AddEdge(NewEdge(src, dst))
}

// Nodes returns the nodes in insertion order. The slice must not be modified.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns the edges in insertion order. The slice must not be modified.
func (g *Graph) Edges() []Edge { return g.edges }

// NodeCount returns the number of node entries, duplicates included.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
