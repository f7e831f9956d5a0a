// Package pkg provides the core libraries for fbxgraph scene visualization.
//
// # Overview
//
// fbxgraph reads a 3D scene from a binary FBX file and projects it into two
// Graphviz digraphs: the node hierarchy and the animation structure. The pkg
// directory is organized into these areas:
//
//  1. [scene] - In-memory scene model (nodes, attributes, stacks, curves)
//  2. [fbx] - Binary FBX codec and scene builder
//  3. [project] - Hierarchy and animation projections
//  4. [graph] - Graph model, DOT serialization and Graphviz rendering
//  5. [pipeline] - Orchestration (load → project → write)
//
// # Architecture
//
// The typical data flow through fbxgraph:
//
//	robot.fbx
//	    ↓
//	[fbx] package (decode records, build scene)
//	    ↓
//	[scene] package (validated hierarchy + animation)
//	    ↓
//	[project] package (hierarchy pass, animation pass)
//	    ↓
//	[graph] package (DOT text, optional SVG)
//	    ↓
//	dag.dot, animstack.dot
//
// # Quick Start
//
// Load a scene and print its hierarchy graph:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/spf13/afero"
//
//	    "github.com/matzehuels/fbxgraph/pkg/fbx"
//	    "github.com/matzehuels/fbxgraph/pkg/graph"
//	    "github.com/matzehuels/fbxgraph/pkg/project"
//	)
//
//	s, _ := fbx.Load(context.Background(), afero.NewOsFs(), "robot.fbx")
//	g, _ := project.Hierarchy(s, project.Options{})
//	g.WriteHierarchy(os.Stdout)
//
// # Main Packages
//
// [curveinfo] - HTML-like key table attached to animation curve nodes.
//
// [errors] - Coded errors shared by every stage.
//
// [observability] - Hooks for load, projection and output events.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/project/...    # Specific package
//	go test -run Example ./...   # Examples only
//
// [scene]: https://pkg.go.dev/github.com/matzehuels/fbxgraph/pkg/scene
// [fbx]: https://pkg.go.dev/github.com/matzehuels/fbxgraph/pkg/fbx
// [project]: https://pkg.go.dev/github.com/matzehuels/fbxgraph/pkg/project
// [graph]: https://pkg.go.dev/github.com/matzehuels/fbxgraph/pkg/graph
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/fbxgraph/pkg/pipeline
// [curveinfo]: https://pkg.go.dev/github.com/matzehuels/fbxgraph/pkg/curveinfo
// [errors]: https://pkg.go.dev/github.com/matzehuels/fbxgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/fbxgraph/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/fbxgraph/pkg/buildinfo
package pkg
