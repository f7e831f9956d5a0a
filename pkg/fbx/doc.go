// Package fbx reads binary FBX files into [scene.Scene] values.
//
// Loading happens in two steps. [Decode] parses the binary container into a
// generic [Document]: a tree of named records, each carrying a list of typed
// properties. [Build] then interprets the well-known records of that tree:
//
//   - Objects: Model, NodeAttribute, Geometry, AnimationStack,
//     AnimationLayer, AnimationCurveNode and AnimationCurve objects
//   - Connections: the "OO" and "OP" links between those objects
//   - GlobalSettings: the scene frame rate
//
// [Load] runs both steps against a file on an [afero.Fs] and validates the
// result, reporting each stage with its own error code.
//
// # Binary layout
//
// A file starts with the 23-byte magic "Kaydara FBX Binary  \x00\x1a\x00"
// followed by a little-endian uint32 version. Records follow until a null
// record. From version 7500 on, record header offsets are 64 bit wide.
//
// Property values decode to Go types by their type code:
//
//	Y int16     C bool      I int32     F float32
//	D float64   L int64     S string    R []byte
//	f []float32 d []float64 l []int64   i []int32   b []bool
//
// Array properties may be zlib-compressed.
//
// Only the binary encoding is supported. ASCII FBX files fail with
// [ErrNotBinary].
package fbx
