package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/figyaml/figyaml"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Ensure Store implements figyaml.ScreenStore at compile time.
var _ figyaml.ScreenStore = (*Store)(nil)

// Store implements figyaml.ScreenStore with atomic update semantics.
// Screens are written to a temporary directory, then moved into place on
// Commit together with a run manifest. An aborted run leaves no output.
type Store struct {
	baseDir string
	name    string
	encoder figyaml.Encoder
	source  string

	entries []ManifestEntry
	names   map[string]int
}

// Manifest records what a conversion run produced.
type Manifest struct {
	RunID       string          `yaml:"runId"`
	GeneratedAt string          `yaml:"generatedAt"`
	Source      string          `yaml:"source,omitempty"`
	Screens     []ManifestEntry `yaml:"screens"`
}

// ManifestEntry describes one written screen file.
type ManifestEntry struct {
	Screen   string `yaml:"screen"`
	File     string `yaml:"file"`
	Checksum string `yaml:"checksum"`
}

// Option configures a Store.
type Option func(*Store)

// WithSource records the input document the run converted; it is written
// into the manifest for traceability.
func WithSource(source string) Option {
	return func(s *Store) {
		s.source = source
	}
}

// NewStore creates a new Store. baseDir is the parent directory, name is
// the output directory name. Files are saved to baseDir/name.tmp and moved
// to baseDir/name on Commit.
func NewStore(baseDir, name string, encoder figyaml.Encoder, opts ...Option) *Store {
	s := &Store{
		baseDir: baseDir,
		name:    name,
		encoder: encoder,
		names:   make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save encodes the screen and writes it into the pending temp directory.
func (s *Store) Save(ctx context.Context, screen *figyaml.Screen) error {
	data, err := s.encoder.EncodeScreen(screen)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	filename := s.filename(screen.Name)
	if err := os.WriteFile(filepath.Join(s.tempDir(), filename), data, 0644); err != nil {
		return err
	}

	s.entries = append(s.entries, ManifestEntry{
		Screen:   screen.Name,
		File:     filename,
		Checksum: fmt.Sprintf("%016x", xxhash.Sum64(data)),
	})
	return nil
}

// filename derives a unique file name from the screen name. Screens with
// colliding sanitized names get a numeric suffix.
func (s *Store) filename(screenName string) string {
	base := figyaml.SanitizeName(screenName)
	if base == "" {
		base = "screen"
	}
	n := s.names[base]
	s.names[base] = n + 1
	if n > 0 {
		base = fmt.Sprintf("%s_%d", base, n+1)
	}
	return base + ".yaml"
}

// Commit writes the run manifest and atomically moves the pending
// directory into place, replacing any previous output.
func (s *Store) Commit() error {
	manifest := Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Source:      s.source,
		Screens:     s.entries,
	}
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.tempDir(), "manifest.yaml"), data, 0644); err != nil {
		return err
	}

	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards pending writes.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}
