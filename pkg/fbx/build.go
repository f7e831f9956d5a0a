package fbx

import (
	"fmt"

	"github.com/matzehuels/fbxgraph/pkg/scene"
)

// RootName is the name of the implicit scene root, object 0.
const RootName = "RootNode"

// Record and connection names interpreted by Build.
const (
	recObjects     = "Objects"
	recConnections = "Connections"
	recConnection  = "C"
	recGlobal      = "GlobalSettings"
	recProperties  = "Properties70"
	recProperty    = "P"

	classModel      = "Model"
	classAttribute  = "NodeAttribute"
	classGeometry   = "Geometry"
	classStack      = "AnimationStack"
	classLayer      = "AnimationLayer"
	classCurveNode  = "AnimationCurveNode"
	classCurve      = "AnimationCurve"
	connObjObj      = "OO"
	connObjProp     = "OP"
	keyTime         = "KeyTime"
	keyValueFloat   = "KeyValueFloat"
	keyAttrFlags    = "KeyAttrFlags"
	keyAttrRefCount = "KeyAttrRefCount"
)

// Transform properties animated by curve nodes, mapped to their X channel.
var transformChannels = map[string]scene.Channel{
	"Lcl Translation": scene.ChannelTX,
	"Lcl Rotation":    scene.ChannelRX,
	"Lcl Scaling":     scene.ChannelSX,
}

// Curve node components, as channel offsets.
var componentOffsets = map[string]scene.Channel{
	"d|X": 0,
	"d|Y": 1,
	"d|Z": 2,
}

// attributeClasses maps NodeAttribute and Geometry subclasses to categories.
var attributeClasses = map[string]scene.Category{
	"Null":             scene.CategoryNull,
	"Marker":           scene.CategoryMarker,
	"Root":             scene.CategorySkeleton,
	"Limb":             scene.CategorySkeleton,
	"LimbNode":         scene.CategorySkeleton,
	"Skeleton":         scene.CategorySkeleton,
	"Mesh":             scene.CategoryMesh,
	"Nurb":             scene.CategoryNurbs,
	"Nurbs":            scene.CategoryNurbs,
	"Patch":            scene.CategoryPatch,
	"Camera":           scene.CategoryCamera,
	"CameraStereo":     scene.CategoryCameraStereo,
	"CameraSwitcher":   scene.CategoryCameraSwitcher,
	"Light":            scene.CategoryLight,
	"OpticalReference": scene.CategoryOpticalReference,
	"OpticalMarker":    scene.CategoryOpticalMarker,
	"NurbsCurve":       scene.CategoryNurbsCurve,
	"TrimNurbsSurface": scene.CategoryTrimNurbsSurface,
	"Boundary":         scene.CategoryBoundary,
	"NurbsSurface":     scene.CategoryNurbsSurface,
	"Shape":            scene.CategoryShape,
	"LodGroup":         scene.CategoryLODGroup,
	"SubDiv":           scene.CategorySubDiv,
}

// AttributeCategory returns the category of a NodeAttribute or Geometry
// subclass. Unrecognized classes are CategoryUnidentified.
func AttributeCategory(class string) scene.Category {
	if c, ok := attributeClasses[class]; ok {
		return c
	}
	return scene.CategoryUnidentified
}

// Frame rates of the GlobalSettings TimeMode enum. Index 0 is the default
// mode and 14 selects CustomFrameRate.
var timeModeRates = []float64{
	0, 120, 100, 60, 50, 48, 30, 30, 29.97002997, 29.97002997, 25, 24, 1000,
	23.976, 0, 96, 72, 59.94, 119.88,
}

const timeModeCustom = 14

type object struct {
	class    string
	subclass string
	name     string
	rec      *Record
}

type curveTarget struct {
	node *scene.Node
	base scene.Channel
}

type sceneBuilder struct {
	doc     *Document
	objects map[int64]*object

	models map[int64]*scene.Node
	stacks map[int64]*scene.AnimStack
	layers map[int64]*scene.AnimLayer
	curves map[int64]*scene.Curve

	curveNodeLayers  map[int64][]*scene.AnimLayer
	curveNodeTargets map[int64]curveTarget
	curveNodeCurves  map[int64]map[scene.Channel]*scene.Curve
	curveNodeOrder   []int64
}

// Build interprets doc as a scene. The hierarchy hangs below a RootNode node;
// models not connected to it are dropped.
func Build(doc *Document) (*scene.Scene, error) {
	b := &sceneBuilder{
		doc:              doc,
		objects:          make(map[int64]*object),
		models:           make(map[int64]*scene.Node),
		stacks:           make(map[int64]*scene.AnimStack),
		layers:           make(map[int64]*scene.AnimLayer),
		curves:           make(map[int64]*scene.Curve),
		curveNodeLayers:  make(map[int64][]*scene.AnimLayer),
		curveNodeTargets: make(map[int64]curveTarget),
		curveNodeCurves:  make(map[int64]map[scene.Channel]*scene.Curve),
	}

	root := scene.NewNode(RootName)
	b.models[0] = root
	s := &scene.Scene{Root: root}

	if err := b.readObjects(s); err != nil {
		return nil, err
	}
	if err := b.readConnections(); err != nil {
		return nil, err
	}
	b.attachCurves()

	rate, err := b.frameRate()
	if err != nil {
		return nil, err
	}
	s.FrameRate = rate
	return s, nil
}

func (b *sceneBuilder) readObjects(s *scene.Scene) error {
	objs := b.doc.Find(recObjects)
	if objs == nil {
		return nil
	}
	for _, rec := range objs.Children {
		id, err := rec.Int64(0)
		if err != nil {
			return err
		}
		if id == 0 {
			return fmt.Errorf("%s object uses reserved id 0", rec.Name)
		}
		if _, dup := b.objects[id]; dup {
			return fmt.Errorf("duplicate object id %d", id)
		}
		fullName, err := rec.String(1)
		if err != nil {
			return err
		}
		obj := &object{class: rec.Name, name: ObjectName(fullName), rec: rec}
		if len(rec.Props) > 2 {
			if obj.subclass, err = rec.String(2); err != nil {
				return err
			}
		}
		b.objects[id] = obj

		switch obj.class {
		case classModel:
			b.models[id] = scene.NewNode(obj.name)
		case classStack:
			st := &scene.AnimStack{Name: obj.name}
			b.stacks[id] = st
			s.Stacks = append(s.Stacks, st)
		case classLayer:
			b.layers[id] = &scene.AnimLayer{Name: obj.name}
		case classCurveNode:
			b.curveNodeOrder = append(b.curveNodeOrder, id)
		case classCurve:
			c, err := readCurve(rec)
			if err != nil {
				return fmt.Errorf("curve %q: %w", obj.name, err)
			}
			b.curves[id] = c
		}
	}
	return nil
}

func (b *sceneBuilder) readConnections() error {
	conns := b.doc.Find(recConnections)
	if conns == nil {
		return nil
	}
	for _, c := range conns.Children {
		if c.Name != recConnection {
			continue
		}
		kind, err := c.String(0)
		if err != nil {
			return err
		}
		child, err := c.Int64(1)
		if err != nil {
			return err
		}
		parent, err := c.Int64(2)
		if err != nil {
			return err
		}

		switch kind {
		case connObjObj:
			b.connectObjects(child, parent)
		case connObjProp:
			prop, err := c.String(3)
			if err != nil {
				return err
			}
			b.connectProperty(child, parent, prop)
		}
	}
	return nil
}

func (b *sceneBuilder) connectObjects(child, parent int64) {
	obj := b.objects[child]
	if obj == nil {
		return
	}
	switch obj.class {
	case classModel:
		if p, ok := b.models[parent]; ok {
			p.AddChild(b.models[child])
		}
	case classAttribute, classGeometry:
		if m, ok := b.models[parent]; ok && parent != 0 {
			m.Attributes = append(m.Attributes, scene.Attribute{
				Name:     obj.name,
				Category: AttributeCategory(obj.subclass),
			})
		}
	case classLayer:
		if st, ok := b.stacks[parent]; ok {
			st.Layers = append(st.Layers, b.layers[child])
		}
	case classCurveNode:
		if l, ok := b.layers[parent]; ok {
			b.curveNodeLayers[child] = append(b.curveNodeLayers[child], l)
		}
	}
}

func (b *sceneBuilder) connectProperty(child, parent int64, prop string) {
	obj := b.objects[child]
	if obj == nil {
		return
	}
	switch obj.class {
	case classCurveNode:
		base, ok := transformChannels[prop]
		if m, isModel := b.models[parent]; ok && isModel {
			b.curveNodeTargets[child] = curveTarget{node: m, base: base}
		}
	case classCurve:
		off, ok := componentOffsets[prop]
		if !ok {
			return
		}
		if pobj := b.objects[parent]; pobj == nil || pobj.class != classCurveNode {
			return
		}
		set := b.curveNodeCurves[parent]
		if set == nil {
			set = make(map[scene.Channel]*scene.Curve)
			b.curveNodeCurves[parent] = set
		}
		set[off] = b.curves[child]
	}
}

func (b *sceneBuilder) attachCurves() {
	for _, id := range b.curveNodeOrder {
		target, ok := b.curveNodeTargets[id]
		if !ok {
			continue
		}
		for _, layer := range b.curveNodeLayers[id] {
			for off, c := range b.curveNodeCurves[id] {
				target.node.SetCurve(layer, target.base+off, c)
			}
		}
	}
}

func readCurve(rec *Record) (*scene.Curve, error) {
	timesRec := rec.Child(keyTime)
	valuesRec := rec.Child(keyValueFloat)
	if timesRec == nil || valuesRec == nil {
		return &scene.Curve{}, nil
	}
	times, err := timesRec.Int64s(0)
	if err != nil {
		return nil, err
	}
	values, err := valuesRec.Float32s(0)
	if err != nil {
		return nil, err
	}
	if len(times) != len(values) {
		return nil, fmt.Errorf("%d key times but %d values", len(times), len(values))
	}

	keys := make([]scene.Key, len(times))
	for i := range keys {
		keys[i] = scene.Key{Time: scene.Time(times[i]), Value: values[i]}
	}

	flagsRec := rec.Child(keyAttrFlags)
	countsRec := rec.Child(keyAttrRefCount)
	if flagsRec == nil || countsRec == nil {
		return &scene.Curve{Keys: keys}, nil
	}
	flags, err := flagsRec.Int32s(0)
	if err != nil {
		return nil, err
	}
	counts, err := countsRec.Int32s(0)
	if err != nil {
		return nil, err
	}
	if len(flags) != len(counts) {
		return nil, fmt.Errorf("%d key flags but %d reference counts", len(flags), len(counts))
	}

	// Each flag value applies to the next counts[i] keys.
	k := 0
	for i, f := range flags {
		n := int(counts[i])
		if n < 0 || n > len(keys)-k {
			return nil, fmt.Errorf("key flag %d covers %d keys, %d left", i, n, len(keys)-k)
		}
		for j := 0; j < n; j++ {
			decodeKeyFlags(&keys[k], uint32(f))
			k++
		}
	}
	if k != len(keys) {
		return nil, fmt.Errorf("key flags cover %d of %d keys", k, len(keys))
	}
	return &scene.Curve{Keys: keys}, nil
}

// frameRate reads GlobalSettings. Zero means the file does not say.
func (b *sceneBuilder) frameRate() (float64, error) {
	props := b.doc.Find(recGlobal).Child(recProperties)
	if props == nil {
		return 0, nil
	}
	var mode int64 = -1
	var custom float64
	for _, p := range props.Children {
		if p.Name != recProperty || len(p.Props) < 5 {
			continue
		}
		name, err := p.String(0)
		if err != nil {
			return 0, err
		}
		switch name {
		case "TimeMode":
			if mode, err = p.Int64(4); err != nil {
				return 0, err
			}
		case "CustomFrameRate":
			if custom, err = p.Float64(4); err != nil {
				return 0, err
			}
		}
	}
	switch {
	case mode == timeModeCustom:
		return custom, nil
	case mode >= 0 && int(mode) < len(timeModeRates):
		return timeModeRates[mode], nil
	}
	return 0, nil
}
