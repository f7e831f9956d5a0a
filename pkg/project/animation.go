package project

import (
	"github.com/matzehuels/fbxgraph/pkg/curveinfo"
	"github.com/matzehuels/fbxgraph/pkg/graph"
	"github.com/matzehuels/fbxgraph/pkg/scene"
)

// Animation projects the animation stacks of src.
//
// For every stack a stack node is emitted, and for every layer of the stack a
// layer node plus a stack→layer edge. The whole hierarchy is then walked in
// pre-order; a node with at least one channel curve in the layer is emitted
// with a layer→node edge, followed by a property node and a curve node per
// populated channel in TX..SZ order. Nodes without curves are skipped but
// their descendants are still visited.
//
// A source without a root yields an empty graph.
func Animation(src Source, opts Options) (*graph.Graph, error) {
	g := graph.New(AnimationGraphName)

	root := src.RootNode()
	if root == nil {
		return g, nil
	}

	// Walk once up front so structural errors surface before any output and
	// the per-layer passes can reuse the order.
	order, err := preorder(root, opts)
	if err != nil {
		return nil, err
	}

	for _, stack := range src.AnimStacks() {
		if stack == nil {
			continue
		}
		stackNode := graph.NewNode(stack.Name, TypeAnimStack)
		g.AddNode(stackNode)

		for _, layer := range stack.Layers {
			if layer == nil {
				continue
			}
			layerNode := graph.NewNode(layer.Name, TypeAnimLayer)
			g.AddNode(layerNode)
			g.Connect(stackNode, layerNode)

			for _, n := range order {
				if !n.Animated(layer) {
					continue
				}
				addAnimatedNode(g, layerNode, n, layer, opts.Curve)
			}
		}
	}
	return g, nil
}

func addAnimatedNode(g *graph.Graph, layerNode graph.Node, n *scene.Node, layer *scene.AnimLayer, curveOpts curveinfo.Options) {
	animNode := sceneNode(n)
	g.AddNode(animNode)
	g.Connect(layerNode, animNode)

	for _, ch := range scene.Channels() {
		c := n.Curve(layer, ch)
		if c == nil {
			continue
		}
		propName := n.Name + "_" + ch.String()

		propNode := graph.NewNode(propName, TypeProperty)
		g.AddNode(propNode)
		g.Connect(animNode, propNode)

		curveNode := graph.NewNode(propName+curveSuffix, TypeProperty)
		curveNode.SetInfo(curveinfo.Format(c, curveOpts))
		g.AddNode(curveNode)
		g.Connect(propNode, curveNode)
	}
}

// preorder lists the hierarchy below and including root in depth-first
// pre-order.
func preorder(root *scene.Node, opts Options) ([]*scene.Node, error) {
	type item struct {
		node  *scene.Node
		depth int
	}

	var out []*scene.Node
	seen := visitor{}
	stack := []item{{node: root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := seen.enter(it.node); err != nil {
			return nil, err
		}
		if err := opts.checkDepth(it.node, it.depth); err != nil {
			return nil, err
		}
		out = append(out, it.node)

		for i := len(it.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{it.node.Children[i], it.depth + 1})
		}
	}
	return out, nil
}
