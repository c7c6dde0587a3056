package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/regsw/internal/catalog"
)

const sampleCatalog = `{
  "npm": {
    "home": "https://www.npmjs.org",
    "registry": "https://registry.npmjs.org/",
    "ping": "https://registry.npmjs.org"
  },
  "custom": {
    "home": "https://npm.example.com/",
    "registry": "https://npm.example.com/",
    "ping": "https://npm.example.com"
  }
}`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), catalog.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load(writeCatalog(t, sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, []string{"npm", "custom"}, c.Names())

	e, ok := c.Get("custom")
	require.True(t, ok)
	assert.Equal(t, "https://npm.example.com/", e.Home)
	assert.Equal(t, "https://npm.example.com/", e.Registry)
	assert.Equal(t, "https://npm.example.com", e.Ping)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := catalog.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
}

func TestLoad_InvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := catalog.Load(writeCatalog(t, "{not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "parsing catalog file")
}

func TestLoad_NotAnObject(t *testing.T) {
	t.Parallel()

	_, err := catalog.Load(writeCatalog(t, `["npm"]`))
	require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
}

func TestLoad_EntryNotAnObject(t *testing.T) {
	t.Parallel()

	_, err := catalog.Load(writeCatalog(t, `{"npm": "https://registry.npmjs.org/"}`))
	require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
	assert.Contains(t, err.Error(), `"npm"`)
}

func TestSave_RoundTripIsByteStable(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, sampleCatalog)

	c, err := catalog.Load(path)
	require.NoError(t, err)
	require.NoError(t, catalog.Save(path, c))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleCatalog, string(data))

	again, err := catalog.Load(path)
	require.NoError(t, err)
	require.NoError(t, catalog.Save(path, again))

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, second)
}

func TestSave_KeepsUnknownFields(t *testing.T) {
	t.Parallel()

	const withAuth = `{
  "company": {
    "home": "https://npm.example.com/",
    "registry": "https://npm.example.com/",
    "ping": "https://npm.example.com",
    "auth": {
      "token": "abc&def",
      "always": true
    },
    "note": "internal"
  }
}`

	path := writeCatalog(t, withAuth)

	c, err := catalog.Load(path)
	require.NoError(t, err)

	e, ok := c.Get("company")
	require.True(t, ok)
	require.Len(t, e.Extra, 2)
	assert.Equal(t, "auth", e.Extra[0].Key)
	assert.Equal(t, "note", e.Extra[1].Key)

	require.NoError(t, catalog.Save(path, c))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, withAuth, string(data))
}

func TestSave_EmptyCatalog(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), catalog.FileName)
	require.NoError(t, catalog.Save(path, catalog.New()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestSave_WriteFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing-dir", catalog.FileName)

	err := catalog.Save(path, catalog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing catalog")
}

func TestDefault(t *testing.T) {
	t.Parallel()

	c := catalog.Default()

	assert.Equal(t, catalog.Protected, c.Names())

	npm, ok := c.Get("npm")
	require.True(t, ok)
	assert.Equal(t, "https://registry.npmjs.org/", npm.Registry)

	for _, name := range c.Names() {
		e, _ := c.Get(name)
		assert.Equal(t, catalog.NewEntry(e.Registry).Ping, e.Ping, name)
	}
}

func TestDefault_MarshalMatchesEmbeddedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), catalog.FileName)
	require.NoError(t, catalog.Save(path, catalog.Default()))

	saved, err := os.ReadFile(path)
	require.NoError(t, err)

	embedded, err := os.ReadFile(catalog.FileName)
	require.NoError(t, err)

	assert.Equal(t, string(embedded), string(saved))
}
