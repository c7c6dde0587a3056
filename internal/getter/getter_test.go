package getter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/regsw/internal/getter"
)

func TestNew(t *testing.T) {
	t.Parallel()

	// Verify New doesn't panic with nil logger.
	g := getter.New(nil)
	assert.NotNil(t, g)
}

func TestFetchFile_LocalCopy(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "registries.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"npm":{}}`), 0o644))

	dest := filepath.Join(t.TempDir(), "registries.json")

	require.NoError(t, getter.New(nil).FetchFile(t.Context(), src, dest, getter.FetchOpts{}))

	info, err := os.Lstat(dest)
	require.NoError(t, err)
	assert.Zero(t, info.Mode()&os.ModeSymlink, "local sources must be copied")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.JSONEq(t, `{"npm":{}}`, string(data))
}

func TestFetchFile_Missing(t *testing.T) {
	t.Parallel()

	dest := filepath.Join(t.TempDir(), "registries.json")

	err := getter.New(nil).FetchFile(t.Context(), filepath.Join(t.TempDir(), "nope.json"), dest, getter.FetchOpts{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching file")
}
