// Package project turns a scene into graphs.
//
// Two independent passes are provided, each producing a fresh [graph.Graph]:
//
//   - [Hierarchy] mirrors the parent/child structure of the scene as the
//     "dag_scene" graph. Every parent/child relation becomes one edge.
//   - [Animation] lists, per animation stack and layer, the nodes that carry
//     transform curves in that layer, as the "dag_animstack" graph. Each
//     animated channel becomes a property node followed by a curve node whose
//     label holds the curve's key table.
//
// Both passes walk the scene with an explicit worklist, so deep hierarchies do
// not grow the goroutine stack. [Options.MaxDepth] optionally bounds the walk.
//
// # Node emission
//
// Graph nodes are appended as the walk emits them and duplicates are expected:
// in the hierarchy pass a non-root parent is emitted once per child edge. The
// DOT output therefore repeats node statements, which Graphviz merges by name.
package project
