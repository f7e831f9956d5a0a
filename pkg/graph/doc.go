// Package graph provides the directed-graph intermediate representation that
// scene projections are built into, and its DOT serialization.
//
// # Model
//
// A [Graph] owns two insertion-ordered sequences: [Node] values and [Edge]
// values. Both are plain values. A node is copied into the graph when it is
// added, and an edge carries its own copies of both endpoints, so edges never
// point back into the node list:
//
//	g := graph.New("dag_scene")
//	root := graph.NewNode("Root", "")
//	cube := graph.NewNode("Cube", "mesh")
//	g.AddNode(root)
//	g.AddNode(cube)
//	g.Connect(root, cube)
//
// The graph deliberately does not deduplicate: adding a node with a name that
// is already present appends a second entry. Projections rely on this and
// re-emit a parent once per outgoing edge.
//
// Node names are normalized at construction by replacing every space with an
// underscore, so that they are valid unquoted DOT identifiers ("Box 1"
// becomes "Box_1").
//
// # Edge Identity
//
// Edge IDs come from a counter owned by the graph, starting at 1. They are
// stable for a given insertion sequence and independent between graphs.
//
// # Serialization
//
// One serializer, [Graph.WriteDOT], is parameterized by a [Style] that
// chooses the node shape and whether the node's Info fragment is part of the
// label. Two styles are predefined:
//
//   - [HierarchyStyle]: box for untyped nodes, diamond for meshes, ellipse otherwise
//   - [AnimationStyle]: box for every node, labels include the Info fragment
//
// Output is deterministic: header, nodes block, edges block, in insertion
// order.
//
// # Rendering
//
// [RenderSVG] hands a DOT document to Graphviz (via go-graphviz) and returns
// SVG. [Validate] only parses it, which is enough to prove that the text is
// openable by a DOT renderer.
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. Separate graphs share no state.
package graph
