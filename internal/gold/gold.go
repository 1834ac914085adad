// Package gold implements a minimal golden-file assertion for wire-format
// tests: the first run for a given name records the bytes under testdata/,
// later runs compare against that recording.
package gold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Bytes compares got against testdata/<name>.golden, creating the file (or
// overwriting it, with UPDATE_GOLDEN=1 set) instead of comparing when it is
// missing or a refresh was requested.
func Bytes(t *testing.T, got []byte, name string) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")
	_, statErr := os.Stat(path)
	if os.Getenv("UPDATE_GOLDEN") != "" || os.IsNotExist(statErr) {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, got, 0o644))
		return
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, want, got, "golden file %s differs; rerun with UPDATE_GOLDEN=1 to refresh", path)
}
