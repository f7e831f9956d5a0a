package project

import (
	"github.com/matzehuels/fbxgraph/pkg/curveinfo"
	"github.com/matzehuels/fbxgraph/pkg/errors"
	"github.com/matzehuels/fbxgraph/pkg/graph"
	"github.com/matzehuels/fbxgraph/pkg/scene"
)

// Graph names written as the DOT digraph identifiers.
const (
	HierarchyGraphName = "dag_scene"
	AnimationGraphName = "dag_animstack"
)

// Node types of the animation graph.
const (
	TypeAnimStack = "AnimationStack"
	TypeAnimLayer = "AnimationLayer"
	TypeProperty  = "property"
)

// curveSuffix is appended to a property node name to name its curve node.
const curveSuffix = "_animCurve"

// Source is a read-only view of a scene. *scene.Scene satisfies it.
type Source interface {
	RootNode() *scene.Node
	AnimStacks() []*scene.AnimStack
}

// Options configures both passes.
type Options struct {
	// MaxDepth bounds the hierarchy depth walked below the root. Zero means
	// unlimited. Exceeding it fails the pass with ErrCodeDepthExceeded.
	MaxDepth int

	// Curve configures the key tables of animation curve nodes.
	Curve curveinfo.Options
}

func (o Options) checkDepth(n *scene.Node, depth int) error {
	if o.MaxDepth > 0 && depth > o.MaxDepth {
		return errors.New(errors.ErrCodeDepthExceeded, "node %q at depth %d exceeds max depth %d", n.Name, depth, o.MaxDepth)
	}
	return nil
}

func sceneNode(n *scene.Node) graph.Node {
	return graph.NewNode(n.Name, n.TypeLabel())
}

// visitor rejects nodes reached twice, which would otherwise make a cyclic
// source loop forever.
type visitor map[*scene.Node]bool

func (v visitor) enter(n *scene.Node) error {
	if n == nil {
		return errors.New(errors.ErrCodeSceneInvalid, "nil node in hierarchy")
	}
	if v[n] {
		return errors.New(errors.ErrCodeSceneInvalid, "node %q reached more than once", n.Name)
	}
	v[n] = true
	return nil
}
