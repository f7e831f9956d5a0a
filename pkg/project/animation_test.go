package project

import (
	"strings"
	"testing"

	"github.com/matzehuels/fbxgraph/pkg/curveinfo"
	"github.com/matzehuels/fbxgraph/pkg/errors"
	"github.com/matzehuels/fbxgraph/pkg/graph"
	"github.com/matzehuels/fbxgraph/pkg/scene"
)

func linearCurve(values ...float32) *scene.Curve {
	c := &scene.Curve{}
	for i, v := range values {
		c.Keys = append(c.Keys, scene.Key{
			Time:          scene.Time(i) * scene.TicksPerSecond,
			Value:         v,
			Interpolation: scene.InterpolationLinear,
		})
	}
	return c
}

func nodeNames(g *graph.Graph) []string {
	var out []string
	for _, n := range g.Nodes() {
		out = append(out, n.Name())
	}
	return out
}

func TestAnimation_Structure(t *testing.T) {
	s := sampleScene()
	take := &scene.AnimStack{Name: "Take 001"}
	base := take.AddLayer("BaseLayer")
	s.Stacks = []*scene.AnimStack{take}

	cube := s.Root.Children[0]
	hand := cube.Children[0].Children[0]
	cube.SetCurve(base, scene.ChannelSX, linearCurve(1, 2))
	cube.SetCurve(base, scene.ChannelTX, linearCurve(0, 5))
	hand.SetCurve(base, scene.ChannelRZ, linearCurve(0, 90, 180))

	g, err := Animation(s, Options{})
	if err != nil {
		t.Fatalf("Animation() error: %v", err)
	}
	if g.Name() != AnimationGraphName {
		t.Errorf("Name() = %q, want %q", g.Name(), AnimationGraphName)
	}

	wantNodes := []string{
		"Take_001", "BaseLayer",
		"Cube", "Cube_TX", "Cube_TX_animCurve", "Cube_SX", "Cube_SX_animCurve",
		"Hand", "Hand_RZ", "Hand_RZ_animCurve",
	}
	if got := nodeNames(g); strings.Join(got, " ") != strings.Join(wantNodes, " ") {
		t.Errorf("nodes = %v, want %v", got, wantNodes)
	}

	wantEdges := []string{
		"Take_001->BaseLayer",
		"BaseLayer->Cube", "Cube->Cube_TX", "Cube_TX->Cube_TX_animCurve",
		"Cube->Cube_SX", "Cube_SX->Cube_SX_animCurve",
		"BaseLayer->Hand", "Hand->Hand_RZ", "Hand_RZ->Hand_RZ_animCurve",
	}
	if got := edgePairs(g); strings.Join(got, " ") != strings.Join(wantEdges, " ") {
		t.Errorf("edges = %v, want %v", got, wantEdges)
	}
}

func TestAnimation_NodeTypes(t *testing.T) {
	s := sampleScene()
	take := &scene.AnimStack{Name: "Take"}
	layer := take.AddLayer("Layer")
	s.Stacks = []*scene.AnimStack{take}
	s.Root.Children[0].SetCurve(layer, scene.ChannelTY, linearCurve(0, 1))

	g, err := Animation(s, Options{})
	if err != nil {
		t.Fatalf("Animation() error: %v", err)
	}
	want := map[string]string{
		"Take":              TypeAnimStack,
		"Layer":             TypeAnimLayer,
		"Cube":              "mesh",
		"Cube_TY":           TypeProperty,
		"Cube_TY_animCurve": TypeProperty,
	}
	for _, n := range g.Nodes() {
		if w, ok := want[n.Name()]; ok && n.Type() != w {
			t.Errorf("type of %s = %q, want %q", n.Name(), n.Type(), w)
		}
	}
}

func TestAnimation_CurveInfo(t *testing.T) {
	s := sampleScene()
	take := &scene.AnimStack{Name: "Take"}
	layer := take.AddLayer("Layer")
	s.Stacks = []*scene.AnimStack{take}
	c := linearCurve(0, 1)
	s.Root.Children[1].SetCurve(layer, scene.ChannelRX, c)

	opts := Options{Curve: curveinfo.Options{FrameRate: 24}}
	g, err := Animation(s, opts)
	if err != nil {
		t.Fatalf("Animation() error: %v", err)
	}
	curveNodes := 0
	for _, n := range g.Nodes() {
		switch n.Name() {
		case "Light_RX_animCurve":
			curveNodes++
			if want := curveinfo.Format(c, opts.Curve); n.Info() != want {
				t.Errorf("curve node info = %q, want %q", n.Info(), want)
			}
		default:
			if n.Info() != "" {
				t.Errorf("node %s has unexpected info %q", n.Name(), n.Info())
			}
		}
	}
	// The curve node is declared once, already carrying its key table.
	if curveNodes != 1 {
		t.Errorf("curve node declared %d times, want 1", curveNodes)
	}
}

func TestAnimation_SkipsUnanimated(t *testing.T) {
	s := sampleScene()
	take := &scene.AnimStack{Name: "Take"}
	take.AddLayer("First")
	second := take.AddLayer("Second")
	s.Stacks = []*scene.AnimStack{take}

	hand := s.Root.Children[0].Children[0].Children[0]
	hand.SetCurve(second, scene.ChannelSY, linearCurve(1, 3))

	g, err := Animation(s, Options{})
	if err != nil {
		t.Fatalf("Animation() error: %v", err)
	}
	// Only Hand is animated, and only in the second layer. Its unanimated
	// ancestors are absent but the walk still reaches it.
	want := []string{"Take", "First", "Second", "Hand", "Hand_SY", "Hand_SY_animCurve"}
	wantEdges := []string{
		"Take->First", "Take->Second",
		"Second->Hand", "Hand->Hand_SY", "Hand_SY->Hand_SY_animCurve",
	}
	if got := nodeNames(g); strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("nodes = %v, want %v", got, want)
	}
	if got := edgePairs(g); strings.Join(got, " ") != strings.Join(wantEdges, " ") {
		t.Errorf("edges = %v, want %v", got, wantEdges)
	}
}

func TestAnimation_SingleChannel(t *testing.T) {
	root := scene.NewNode("Root")
	ball := root.AddChild(scene.NewNode("Ball"))
	take := &scene.AnimStack{Name: "Take"}
	layer := take.AddLayer("Layer")
	ball.SetCurve(layer, scene.ChannelTZ, linearCurve(0, 1, 0))

	g, err := Animation(&scene.Scene{Root: root, Stacks: []*scene.AnimStack{take}}, Options{})
	if err != nil {
		t.Fatalf("Animation() error: %v", err)
	}
	props, curves := 0, 0
	for _, n := range g.Nodes() {
		if n.Type() != TypeProperty {
			continue
		}
		if strings.HasSuffix(n.Name(), "_animCurve") {
			curves++
		} else {
			props++
		}
	}
	if props != 1 || curves != 1 {
		t.Errorf("got %d property and %d curve nodes, want 1 and 1", props, curves)
	}
}

func TestAnimation_MultipleStacks(t *testing.T) {
	s := sampleScene()
	walk := &scene.AnimStack{Name: "Walk"}
	run := &scene.AnimStack{Name: "Run"}
	wl := walk.AddLayer("WalkLayer")
	rl := run.AddLayer("RunLayer")
	s.Stacks = []*scene.AnimStack{walk, run}

	cube := s.Root.Children[0]
	cube.SetCurve(wl, scene.ChannelTX, linearCurve(0))
	cube.SetCurve(rl, scene.ChannelTX, linearCurve(0))

	g, err := Animation(s, Options{})
	if err != nil {
		t.Fatalf("Animation() error: %v", err)
	}
	want := []string{
		"Walk->WalkLayer", "WalkLayer->Cube", "Cube->Cube_TX", "Cube_TX->Cube_TX_animCurve",
		"Run->RunLayer", "RunLayer->Cube", "Cube->Cube_TX", "Cube_TX->Cube_TX_animCurve",
	}
	if got := edgePairs(g); strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("edges = %v, want %v", got, want)
	}
}

func TestAnimation_Empty(t *testing.T) {
	tests := []struct {
		name string
		s    *scene.Scene
	}{
		{"no root", &scene.Scene{Stacks: []*scene.AnimStack{{Name: "Take"}}}},
		{"no stacks", sampleScene()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Animation(tt.s, Options{})
			if err != nil {
				t.Fatalf("Animation() error: %v", err)
			}
			if g.NodeCount() != 0 || g.EdgeCount() != 0 {
				t.Errorf("expected empty graph, got %d nodes %d edges", g.NodeCount(), g.EdgeCount())
			}
		})
	}
}

func TestAnimation_MaxDepth(t *testing.T) {
	s := sampleScene()
	take := &scene.AnimStack{Name: "Take"}
	take.AddLayer("Layer")
	s.Stacks = []*scene.AnimStack{take}

	_, err := Animation(s, Options{MaxDepth: 1})
	if !errors.Is(err, errors.ErrCodeDepthExceeded) {
		t.Errorf("expected %s, got %v", errors.ErrCodeDepthExceeded, err)
	}
}
