package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// SceneExtension is the file extension accepted for scene input, compared
// case-insensitively.
const SceneExtension = "fbx"

// ValidateInputPath validates the scene path given on the command line.
//
// Validation rules:
//   - Path cannot be empty (ErrCodeInvalidInput)
//   - No control characters or null bytes (ErrCodeInvalidPath)
//   - Extension must be "fbx" in any letter case (ErrCodeInvalidPath)
//
// The file itself is not opened; open failures are scene errors.
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "no input file provided")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "input path contains invalid control characters")
		}
	}

	if !HasSceneExtension(path) {
		return New(ErrCodeInvalidPath, "no valid fbx file format provided: %s", path)
	}
	return nil
}

// HasSceneExtension reports whether path ends in ".fbx", ignoring case.
// A bare "fbx" with no dot does not qualify.
func HasSceneExtension(path string) bool {
	ext := filepath.Ext(path)
	if ext == "" {
		return false
	}
	return strings.EqualFold(ext[1:], SceneExtension)
}
