package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/figyaml/figyaml"
	"github.com/figyaml/figyaml/fs"
	figyamlenc "github.com/figyaml/figyaml/yaml"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv3 "gopkg.in/yaml.v3"
)

func emptyScreen(name string) *figyaml.Screen {
	return &figyaml.Screen{
		Name: name,
		Root: &figyaml.Container{Kind: figyaml.KindFrame, Name: name, Children: []figyaml.Element{}},
	}
}

func TestStore(t *testing.T) {
	t.Parallel()

	t.Run("saved screens appear only after commit", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		store := fs.NewStore(baseDir, "generated", figyamlenc.NewEncoder())

		require.NoError(t, store.Save(context.Background(), emptyScreen("Home Screen")))

		_, err := os.Stat(filepath.Join(baseDir, "generated"))
		assert.True(t, os.IsNotExist(err))

		require.NoError(t, store.Commit())

		data, err := os.ReadFile(filepath.Join(baseDir, "generated", "home_screen.yaml"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "type: frame")
	})

	t.Run("abort leaves nothing behind", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		store := fs.NewStore(baseDir, "generated", figyamlenc.NewEncoder())

		require.NoError(t, store.Save(context.Background(), emptyScreen("Home")))
		require.NoError(t, store.Abort())

		entries, err := os.ReadDir(baseDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("commit replaces previous output", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()

		first := fs.NewStore(baseDir, "generated", figyamlenc.NewEncoder())
		require.NoError(t, first.Save(context.Background(), emptyScreen("Old")))
		require.NoError(t, first.Commit())

		second := fs.NewStore(baseDir, "generated", figyamlenc.NewEncoder())
		require.NoError(t, second.Save(context.Background(), emptyScreen("New")))
		require.NoError(t, second.Commit())

		_, err := os.Stat(filepath.Join(baseDir, "generated", "old.yaml"))
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(baseDir, "generated", "new.yaml"))
		assert.NoError(t, err)
	})

	t.Run("colliding screen names get suffixes", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		store := fs.NewStore(baseDir, "generated", figyamlenc.NewEncoder())

		require.NoError(t, store.Save(context.Background(), emptyScreen("Home")))
		require.NoError(t, store.Save(context.Background(), emptyScreen("Home")))
		require.NoError(t, store.Commit())

		_, err := os.Stat(filepath.Join(baseDir, "generated", "home.yaml"))
		assert.NoError(t, err)
		_, err = os.Stat(filepath.Join(baseDir, "generated", "home_2.yaml"))
		assert.NoError(t, err)
	})

	t.Run("manifest records the run", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		store := fs.NewStore(baseDir, "generated", figyamlenc.NewEncoder(), fs.WithSource("export.json"))

		require.NoError(t, store.Save(context.Background(), emptyScreen("Home")))
		require.NoError(t, store.Commit())

		data, err := os.ReadFile(filepath.Join(baseDir, "generated", "manifest.yaml"))
		require.NoError(t, err)

		var manifest fs.Manifest
		require.NoError(t, yamlv3.Unmarshal(data, &manifest))

		_, err = uuid.Parse(manifest.RunID)
		assert.NoError(t, err)
		assert.Equal(t, "export.json", manifest.Source)
		require.Len(t, manifest.Screens, 1)
		assert.Equal(t, "Home", manifest.Screens[0].Screen)
		assert.Equal(t, "home.yaml", manifest.Screens[0].File)
		assert.Len(t, manifest.Screens[0].Checksum, 16)
	})
}
