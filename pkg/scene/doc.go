// Package scene is the in-memory scene model consumed by projections.
//
// A [Scene] has an optional root [Node], an ordered list of animation stacks
// and a frame rate. Nodes form a tree through their ordered Children; each
// node carries a list of typed [Attribute] values (mesh, light, camera, ...)
// and, per animation layer, up to nine channel curves (local translation,
// rotation and scaling on X, Y and Z).
//
// # Labels
//
// Attribute categories and curve key enums render through lookup tables
// defined once in this package. Values outside a table never fail; they
// render as a fallback sentinel ("unknown" for categories, "?" for key
// enums).
//
// # Time
//
// Key times are integer ticks on the FBX time base, [TicksPerSecond] ticks
// per second.
//
// # Loading
//
// This package has no file format knowledge. The fbx package builds scenes
// from binary FBX files; tests build them directly:
//
//	root := scene.NewNode("Root")
//	cube := root.AddChild(scene.NewNode("Cube", scene.Attribute{Category: scene.CategoryMesh}))
//	s := &scene.Scene{Root: root}
package scene
