package mock

import (
	"context"

	"github.com/figyaml/figyaml"
)

var _ figyaml.FileFetcher = (*FileFetcher)(nil)

// FileFetcher is a mock implementation of figyaml.FileFetcher.
type FileFetcher struct {
	FetchFileFn     func(ctx context.Context, key string, ids ...string) (*figyaml.File, error)
	FetchFileJSONFn func(ctx context.Context, key string, ids ...string) ([]byte, error)
}

func (f *FileFetcher) FetchFile(ctx context.Context, key string, ids ...string) (*figyaml.File, error) {
	return f.FetchFileFn(ctx, key, ids...)
}

func (f *FileFetcher) FetchFileJSON(ctx context.Context, key string, ids ...string) ([]byte, error) {
	return f.FetchFileJSONFn(ctx, key, ids...)
}
