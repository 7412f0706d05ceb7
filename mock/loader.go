package mock

import (
	"context"

	"github.com/figyaml/figyaml"
)

var _ figyaml.FileLoader = (*FileLoader)(nil)

// FileLoader is a mock implementation of figyaml.FileLoader.
type FileLoader struct {
	LoadFn func(ctx context.Context, path string) (*figyaml.File, error)
}

func (l *FileLoader) Load(ctx context.Context, path string) (*figyaml.File, error) {
	return l.LoadFn(ctx, path)
}
