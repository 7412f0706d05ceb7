package main_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdScreens(t *testing.T) {
	t.Parallel()

	t.Run("lists screen names", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "export.json")
		require.NoError(t, os.WriteFile(input, []byte(exportJSON), 0644))

		stdout, _, err := runMain(t, "screens", input)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Home Screen")
		assert.Contains(t, stdout, "Login")
	})

	t.Run("missing file fails", func(t *testing.T) {
		t.Parallel()

		_, _, err := runMain(t, "screens", filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})
}
