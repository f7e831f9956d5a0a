package pipeline

import (
	"testing"

	"github.com/matzehuels/fbxgraph/pkg/errors"
	"github.com/matzehuels/fbxgraph/pkg/graph"
	"github.com/matzehuels/fbxgraph/pkg/scene"
)

func TestValidateTimeMode(t *testing.T) {
	tests := []struct {
		mode    string
		wantErr bool
	}{
		{"frames", false},
		{"seconds", false},
		{"", false},
		{"ticks", true},
		{"Frames", true}, // case-sensitive
	}

	for _, tt := range tests {
		err := ValidateTimeMode(tt.mode)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateTimeMode(%q) error = %v, wantErr %v", tt.mode, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("ValidateTimeMode(%q) code = %s", tt.mode, errors.GetCode(err))
		}
	}
}

func TestValidateFrameRate(t *testing.T) {
	tests := []struct {
		rate    float64
		wantErr bool
	}{
		{0, false},
		{24, false},
		{29.97, false},
		{-1, true},
	}

	for _, tt := range tests {
		err := ValidateFrameRate(tt.rate)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFrameRate(%v) error = %v, wantErr %v", tt.rate, err, tt.wantErr)
		}
	}
}

func TestValidateMaxDepth(t *testing.T) {
	if err := ValidateMaxDepth(0); err != nil {
		t.Errorf("ValidateMaxDepth(0) error = %v", err)
	}
	if err := ValidateMaxDepth(-2); err == nil {
		t.Error("ValidateMaxDepth(-2) should fail")
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Input: "scene.FBX"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if opts.Dir != DefaultDir {
		t.Errorf("Dir = %q, want %q", opts.Dir, DefaultDir)
	}
	if opts.TimeMode != string(DefaultTimeMode) {
		t.Errorf("TimeMode = %q, want %q", opts.TimeMode, DefaultTimeMode)
	}
	if opts.FillColor != graph.DefaultFillColor {
		t.Errorf("FillColor = %q, want %q", opts.FillColor, graph.DefaultFillColor)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}

	// Idempotent
	opts.Dir = "out"
	if err := opts.ValidateAndSetDefaults(); err != nil || opts.Dir != "out" {
		t.Errorf("second call changed options: dir=%q err=%v", opts.Dir, err)
	}
}

func TestValidateAndSetDefaults_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want errors.Code
	}{
		{"missing input", Options{}, errors.ErrCodeInvalidInput},
		{"wrong extension", Options{Input: "scene.obj"}, errors.ErrCodeInvalidPath},
		{"no extension", Options{Input: "scene"}, errors.ErrCodeInvalidPath},
		{"bad time mode", Options{Input: "a.fbx", TimeMode: "ticks"}, errors.ErrCodeInvalidConfig},
		{"bad frame rate", Options{Input: "a.fbx", FrameRate: -24}, errors.ErrCodeInvalidConfig},
		{"bad depth", Options{Input: "a.fbx", MaxDepth: -1}, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if got := errors.GetCode(err); got != tt.want {
				t.Errorf("error code = %q, want %q (%v)", got, tt.want, err)
			}
		})
	}
}

func TestCurveOptions(t *testing.T) {
	s := &scene.Scene{FrameRate: 24}

	opts := Options{TimeMode: "seconds"}
	if got := opts.CurveOptions(s); got.FrameRate != 24 || got.TimeMode != "seconds" {
		t.Errorf("CurveOptions() = %+v, want scene rate and seconds", got)
	}

	opts.FrameRate = 60
	if got := opts.CurveOptions(s); got.FrameRate != 60 {
		t.Errorf("CurveOptions() rate = %v, want override 60", got.FrameRate)
	}

	if got := (&Options{}).CurveOptions(nil); got.FrameRate != 0 {
		t.Errorf("CurveOptions(nil) rate = %v, want 0", got.FrameRate)
	}
}
