package project

import (
	"github.com/matzehuels/fbxgraph/pkg/graph"
	"github.com/matzehuels/fbxgraph/pkg/scene"
)

// Hierarchy projects the parent/child structure of src.
//
// The root is emitted once and its graph node is reused for every root→child
// edge. Below the root, each parent→child edge emits the parent again, then
// the child, then the edge, before descending into the child. A source
// without a root yields an empty graph.
func Hierarchy(src Source, opts Options) (*graph.Graph, error) {
	g := graph.New(HierarchyGraphName)

	root := src.RootNode()
	if root == nil {
		return g, nil
	}

	type frame struct {
		node  *scene.Node
		depth int
		next  int // index of the next child to visit
	}

	seen := visitor{}
	if err := seen.enter(root); err != nil {
		return nil, err
	}
	rootNode := sceneNode(root)
	g.AddNode(rootNode)

	stack := []*frame{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.next >= len(f.node.Children) {
			stack = stack[:len(stack)-1]
			continue
		}
		child := f.node.Children[f.next]
		f.next++

		if err := seen.enter(child); err != nil {
			return nil, err
		}
		if err := opts.checkDepth(child, f.depth+1); err != nil {
			return nil, err
		}

		parent := rootNode
		if f.node != root {
			parent = sceneNode(f.node)
			g.AddNode(parent)
		}
		childNode := sceneNode(child)
		g.AddNode(childNode)
		g.Connect(parent, childNode)

		stack = append(stack, &frame{node: child, depth: f.depth + 1})
	}
	return g, nil
}
