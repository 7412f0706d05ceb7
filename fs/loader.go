// Package fs provides file-based loading and storage for design
// conversions.
package fs

import (
	"context"
	"encoding/json"
	"os"

	"github.com/figyaml/figyaml"
)

// Ensure Loader implements figyaml.FileLoader at compile time.
var _ figyaml.FileLoader = (*Loader)(nil)

// Loader reads design JSON exports from disk.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and decodes the export at path. Unreadable files surface the
// underlying IO error; syntactically invalid JSON is reported as EINVALID.
func (l *Loader) Load(ctx context.Context, path string) (*figyaml.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file figyaml.File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, figyaml.Errorf(figyaml.EINVALID, "invalid design export %s: %v", path, err)
	}
	return &file, nil
}
