package fbx

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"

	"github.com/matzehuels/fbxgraph/pkg/errors"
	"github.com/matzehuels/fbxgraph/pkg/scene"
)

func writeFile(t *testing.T, fs afero.Fs, path string, data []byte) {
	t.Helper()
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error: %v", path, err)
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(cubeDocument()); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	writeFile(t, fs, "/scenes/cube.fbx", buf.Bytes())

	s, err := Load(context.Background(), fs, "/scenes/cube.fbx")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(s.Root.Children) != 2 || len(s.Stacks) != 1 {
		t.Errorf("unexpected scene: %d root children, %d stacks", len(s.Root.Children), len(s.Stacks))
	}
}

func TestLoad_ErrorCodes(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/garbage.fbx", []byte("not an fbx file at all"))

	var bad bytes.Buffer
	badDoc := &Document{Records: []*Record{
		NewRecord("Objects").Add(
			obj("Model", 1, "A", "Null"),
			curveObj(2, []int64{10, 0}, []float32{0, 1}, []int32{4}, []int32{2}),
			obj("AnimationCurveNode", 3, "T", ""),
			obj("AnimationStack", 4, "Take", ""),
			obj("AnimationLayer", 5, "Layer", ""),
		),
		NewRecord("Connections").Add(
			oo(1, 0),
			oo(5, 4),
			oo(3, 5),
			op(3, 1, "Lcl Translation"),
			op(2, 3, "d|X"),
		),
	}}
	if err := NewEncoder(&bad).Encode(badDoc); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	writeFile(t, fs, "/unsorted.fbx", bad.Bytes())

	var dup bytes.Buffer
	dupDoc := &Document{Records: []*Record{
		NewRecord("Objects").Add(obj("Model", 1, "A", "Null"), obj("Model", 1, "B", "Null")),
	}}
	if err := NewEncoder(&dup).Encode(dupDoc); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	writeFile(t, fs, "/dup.fbx", dup.Bytes())

	tests := []struct {
		name string
		path string
		want errors.Code
	}{
		{"missing file", "/missing.fbx", errors.ErrCodeSceneInit},
		{"not fbx", "/garbage.fbx", errors.ErrCodeSceneLoad},
		{"duplicate ids", "/dup.fbx", errors.ErrCodeSceneInvalid},
		{"unsorted keys", "/unsorted.fbx", errors.ErrCodeSceneInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), fs, tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.GetCode(err); got != tt.want {
				t.Errorf("error code = %s, want %s (%v)", got, tt.want, err)
			}
		})
	}
}

func TestLoad_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, afero.NewMemMapFs(), "/x.fbx"); err != context.Canceled {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestSaveLoad(t *testing.T) {
	root := scene.NewNode(RootName)
	body := root.AddChild(scene.NewNode("Body", scene.Attribute{Name: "BodyShape", Category: scene.CategoryMesh}))
	joint := body.AddChild(scene.NewNode("Joint", scene.Attribute{Category: scene.CategorySkeleton}))
	root.AddChild(scene.NewNode("Odd", scene.Attribute{Category: scene.CategoryUnidentified}))

	take := &scene.AnimStack{Name: "Take"}
	layer := take.AddLayer("Base")
	curve := &scene.Curve{Keys: []scene.Key{
		{Time: 0, Value: 1, Interpolation: scene.InterpolationCubic, TangentMode: scene.TangentUser, WeightMode: scene.WeightRight},
		{Time: scene.TicksPerSecond, Value: 2, Interpolation: scene.InterpolationConstant, ConstantMode: scene.ConstantStandard},
	}}
	joint.SetCurve(layer, scene.ChannelRY, curve)
	joint.SetCurve(layer, scene.ChannelSZ, curve)

	in := &scene.Scene{Root: root, Stacks: []*scene.AnimStack{take}, FrameRate: 48}

	for _, compress := range []bool{false, true} {
		fs := afero.NewMemMapFs()
		if err := Save(fs, "/out.fbx", in, compress); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
		out, err := Load(context.Background(), fs, "/out.fbx")
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}

		if out.FrameRate != 48 {
			t.Errorf("FrameRate = %v, want 48", out.FrameRate)
		}
		if got := out.Root.Children[0].TypeLabel(); got != "mesh" {
			t.Errorf("Body type = %q, want mesh", got)
		}
		if got := out.Root.Children[1].TypeLabel(); got != "unidentified" {
			t.Errorf("Odd type = %q, want unidentified", got)
		}

		outLayer := out.Stacks[0].Layers[0]
		outJoint := out.Root.Children[0].Children[0]
		if outJoint.TypeLabel() != "skeleton" {
			t.Errorf("Joint type = %q, want skeleton", outJoint.TypeLabel())
		}
		if outJoint.CurveCount() != 2 {
			t.Errorf("Joint CurveCount() = %d, want 2", outJoint.CurveCount())
		}
		got := outJoint.Curve(outLayer, scene.ChannelRY)
		if got == nil || len(got.Keys) != 2 {
			t.Fatalf("Joint RY curve = %+v", got)
		}
		for i := range curve.Keys {
			if got.Keys[i] != curve.Keys[i] {
				t.Errorf("key %d = %+v, want %+v", i, got.Keys[i], curve.Keys[i])
			}
		}
	}
}
