package errors

import "testing"

func TestValidateInputPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		code Code
	}{
		{name: "lower case", path: "scene.fbx"},
		{name: "upper case", path: "SCENE.FBX"},
		{name: "mixed case", path: "dir/Scene.Fbx"},
		{name: "empty", path: "", code: ErrCodeInvalidInput},
		{name: "wrong extension", path: "scene.obj", code: ErrCodeInvalidPath},
		{name: "no extension", path: "fbx", code: ErrCodeInvalidPath},
		{name: "trailing dot", path: "scene.", code: ErrCodeInvalidPath},
		{name: "extension in dir only", path: "scene.fbx/model", code: ErrCodeInvalidPath},
		{name: "control character", path: "sce\x00ne.fbx", code: ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputPath(tt.path)
			if tt.code == "" {
				if err != nil {
					t.Fatalf("ValidateInputPath(%q) unexpected error: %v", tt.path, err)
				}
				return
			}
			if !Is(err, tt.code) {
				t.Errorf("ValidateInputPath(%q) = %v, want code %s", tt.path, err, tt.code)
			}
		})
	}
}

func TestHasSceneExtension(t *testing.T) {
	tests := map[string]bool{
		"a.fbx":      true,
		"a.FBX":      true,
		"a.fBx":      true,
		"a.fbx.bak":  false,
		"a.fbxx":     false,
		"a":          false,
		"/tmp/.fbx":  true,
		"model.glb":  false,
		"archive.gz": false,
	}
	for path, want := range tests {
		if got := HasSceneExtension(path); got != want {
			t.Errorf("HasSceneExtension(%q) = %v, want %v", path, got, want)
		}
	}
}
