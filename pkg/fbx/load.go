package fbx

import (
	"context"

	"github.com/spf13/afero"

	"github.com/matzehuels/fbxgraph/pkg/errors"
	"github.com/matzehuels/fbxgraph/pkg/scene"
)

// Load reads, interprets and validates the scene at path.
//
// Failures are reported per stage: ErrCodeSceneInit when the file cannot be
// opened, ErrCodeSceneLoad when it cannot be decoded and ErrCodeSceneInvalid
// when its content is inconsistent.
func Load(ctx context.Context, fs afero.Fs, path string) (*scene.Scene, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSceneInit, err, "open scene %s", path)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSceneLoad, err, "load scene %s", path)
	}

	s, err := Build(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSceneInvalid, err, "interpret scene %s", path)
	}
	if err := scene.Validate(s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSceneInvalid, err, "scene %s failed integrity checks", path)
	}
	return s, nil
}

// Save writes s to path as a binary FBX file.
func Save(fs afero.Fs, path string, s *scene.Scene, compress bool) error {
	f, err := fs.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	enc := NewEncoder(f)
	enc.Compress = compress
	if err := enc.Encode(FromScene(s)); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return nil
}
