package figyaml

import "context"

// FileFetcher retrieves design files from the design tool's API.
type FileFetcher interface {
	// FetchFile downloads and decodes the file with the given key. When
	// ids are provided the response is scoped to those node subtrees.
	FetchFile(ctx context.Context, key string, ids ...string) (*File, error)

	// FetchFileJSON downloads the raw JSON document for the given key,
	// suitable for saving to disk and converting later.
	FetchFileJSON(ctx context.Context, key string, ids ...string) ([]byte, error)
}

// FileLoader reads a previously downloaded design export from local storage.
type FileLoader interface {
	Load(ctx context.Context, path string) (*File, error)
}
