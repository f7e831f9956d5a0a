package scene

import "strings"

// Category is the kind of data attached to a scene node.
type Category int

// Attribute categories, in FBX SDK order.
const (
	CategoryUnidentified Category = iota
	CategoryNull
	CategoryMarker
	CategorySkeleton
	CategoryMesh
	CategoryNurbs
	CategoryPatch
	CategoryCamera
	CategoryCameraStereo
	CategoryCameraSwitcher
	CategoryLight
	CategoryOpticalReference
	CategoryOpticalMarker
	CategoryNurbsCurve
	CategoryTrimNurbsSurface
	CategoryBoundary
	CategoryNurbsSurface
	CategoryShape
	CategoryLODGroup
	CategorySubDiv
)

// UnknownCategoryLabel is the label of any category missing from the table.
const UnknownCategoryLabel = "unknown"

var categoryLabels = map[Category]string{
	CategoryUnidentified:     "unidentified",
	CategoryNull:             "null",
	CategoryMarker:           "marker",
	CategorySkeleton:         "skeleton",
	CategoryMesh:             "mesh",
	CategoryNurbs:            "nurbs",
	CategoryPatch:            "patch",
	CategoryCamera:           "camera",
	CategoryCameraStereo:     "stereo",
	CategoryCameraSwitcher:   "camera switcher",
	CategoryLight:            "light",
	CategoryOpticalReference: "optical reference",
	CategoryOpticalMarker:    "marker",
	CategoryNurbsCurve:       "nurbs curve",
	CategoryTrimNurbsSurface: "trim nurbs surface",
	CategoryBoundary:         "boundary",
	CategoryNurbsSurface:     "nurbs surface",
	CategoryShape:            "shape",
	CategoryLODGroup:         "lodgroup",
	CategorySubDiv:           "subdiv",
}

// String returns the lowercase display label of c.
func (c Category) String() string {
	if s, ok := categoryLabels[c]; ok {
		return s
	}
	return UnknownCategoryLabel
}

// Attribute is one piece of typed data attached to a node.
type Attribute struct {
	Name     string
	Category Category
}

// TypeLabel concatenates the category labels of attrs in order, with no
// separator. It returns "" for no attributes.
func TypeLabel(attrs []Attribute) string {
	var b strings.Builder
	for _, a := range attrs {
		b.WriteString(a.Category.String())
	}
	return b.String()
}
