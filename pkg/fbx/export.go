package fbx

import "github.com/matzehuels/fbxgraph/pkg/scene"

// categoryClasses picks the object written for each attribute category.
var categoryClasses = map[scene.Category]struct{ class, subclass string }{
	scene.CategoryUnidentified:     {classAttribute, "Unknown"},
	scene.CategoryNull:             {classAttribute, "Null"},
	scene.CategoryMarker:           {classAttribute, "Marker"},
	scene.CategorySkeleton:         {classAttribute, "LimbNode"},
	scene.CategoryMesh:             {classGeometry, "Mesh"},
	scene.CategoryNurbs:            {classGeometry, "Nurbs"},
	scene.CategoryPatch:            {classGeometry, "Patch"},
	scene.CategoryCamera:           {classAttribute, "Camera"},
	scene.CategoryCameraStereo:     {classAttribute, "CameraStereo"},
	scene.CategoryCameraSwitcher:   {classAttribute, "CameraSwitcher"},
	scene.CategoryLight:            {classAttribute, "Light"},
	scene.CategoryOpticalReference: {classAttribute, "OpticalReference"},
	scene.CategoryOpticalMarker:    {classAttribute, "OpticalMarker"},
	scene.CategoryNurbsCurve:       {classGeometry, "NurbsCurve"},
	scene.CategoryTrimNurbsSurface: {classGeometry, "TrimNurbsSurface"},
	scene.CategoryBoundary:         {classGeometry, "Boundary"},
	scene.CategoryNurbsSurface:     {classGeometry, "NurbsSurface"},
	scene.CategoryShape:            {classGeometry, "Shape"},
	scene.CategoryLODGroup:         {classAttribute, "LodGroup"},
	scene.CategorySubDiv:           {classGeometry, "SubDiv"},
}

var transformProps = []struct {
	prop string
	name string
	base scene.Channel
}{
	{"Lcl Translation", "T", scene.ChannelTX},
	{"Lcl Rotation", "R", scene.ChannelRX},
	{"Lcl Scaling", "S", scene.ChannelSX},
}

var componentProps = []string{"d|X", "d|Y", "d|Z"}

type exporter struct {
	nextID  int64
	objects *Record
	conns   *Record
}

// FromScene converts s into a document that Build turns back into an
// equivalent scene. The root node maps to the implicit object 0, so its name,
// attributes and curves are not written; Build names it RootName.
func FromScene(s *scene.Scene) *Document {
	e := &exporter{
		objects: NewRecord(recObjects),
		conns:   NewRecord(recConnections),
	}

	layerIDs := make(map[*scene.AnimLayer]int64)
	var layers []*scene.AnimLayer
	for _, st := range s.Stacks {
		stackID := e.object(classStack, st.Name, "")
		for _, l := range st.Layers {
			id := e.object(classLayer, l.Name, "")
			layerIDs[l] = id
			layers = append(layers, l)
			e.connect(id, stackID)
		}
	}

	if s.Root != nil {
		type item struct {
			node     *scene.Node
			parentID int64
		}
		var stack []item
		for i := len(s.Root.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{s.Root.Children[i], 0})
		}
		for len(stack) > 0 {
			it := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			id := e.object(classModel, it.node.Name, "Null")
			e.connect(id, it.parentID)
			for _, a := range it.node.Attributes {
				cls := categoryClasses[a.Category]
				if cls.class == "" {
					cls = categoryClasses[scene.CategoryUnidentified]
				}
				e.connect(e.object(cls.class, a.Name, cls.subclass), id)
			}
			for _, l := range layers {
				e.curves(it.node, l, id, layerIDs[l])
			}

			for i := len(it.node.Children) - 1; i >= 0; i-- {
				stack = append(stack, item{it.node.Children[i], id})
			}
		}
	}

	doc := &Document{Version: DefaultVersion}
	if s.FrameRate > 0 {
		doc.Records = append(doc.Records, NewRecord(recGlobal).Add(
			NewRecord(recProperties).Add(
				NewRecord(recProperty, "TimeMode", "enum", "", "", int32(timeModeCustom)),
				NewRecord(recProperty, "CustomFrameRate", "double", "Number", "", s.FrameRate),
			),
		))
	}
	doc.Records = append(doc.Records, e.objects, e.conns)
	return doc
}

func (e *exporter) object(class, name, subclass string) int64 {
	e.nextID++
	e.objects.Add(NewRecord(class, e.nextID, name+nameSeparator+class, subclass))
	return e.nextID
}

func (e *exporter) connect(child, parent int64) {
	e.conns.Add(NewRecord(recConnection, connObjObj, child, parent))
}

func (e *exporter) connectProp(child, parent int64, prop string) {
	e.conns.Add(NewRecord(recConnection, connObjProp, child, parent, prop))
}

func (e *exporter) curves(n *scene.Node, layer *scene.AnimLayer, modelID, layerID int64) {
	for _, tp := range transformProps {
		cnID := int64(-1)
		for off, comp := range componentProps {
			c := n.Curve(layer, tp.base+scene.Channel(off))
			if c == nil {
				continue
			}
			if cnID < 0 {
				cnID = e.object(classCurveNode, tp.name, "")
				e.connect(cnID, layerID)
				e.connectProp(cnID, modelID, tp.prop)
			}
			e.nextID++
			curveID := e.nextID
			e.objects.Add(curveRecord(curveID, c))
			e.connectProp(curveID, cnID, comp)
		}
	}
}

func curveRecord(id int64, c *scene.Curve) *Record {
	times := make([]int64, len(c.Keys))
	values := make([]float32, len(c.Keys))
	var flags, counts []int32
	for i, k := range c.Keys {
		times[i] = int64(k.Time)
		values[i] = k.Value
		f := int32(encodeKeyFlags(k))
		if n := len(flags); n > 0 && flags[n-1] == f {
			counts[n-1]++
			continue
		}
		flags = append(flags, f)
		counts = append(counts, 1)
	}
	return NewRecord(classCurve, id, nameSeparator+classCurve, "").Add(
		NewRecord(keyTime, times),
		NewRecord(keyValueFloat, values),
		NewRecord(keyAttrFlags, flags),
		NewRecord(keyAttrRefCount, counts),
	)
}
