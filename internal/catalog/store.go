package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// FileName is the catalog file name, stored next to the regsw executable.
const FileName = "registries.json"

// Sentinel errors returned by catalog operations.
var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrEmptyName      = errors.New("registry name cannot be empty")
	ErrEmptyURL       = errors.New("registry URL cannot be empty")
	ErrDuplicateName  = errors.New("registry name already exists")
	ErrNotFound       = errors.New("registry not found")
)

//go:embed registries.json
var defaultCatalog []byte

// DefaultPath returns the catalog location next to the running executable.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Join(filepath.Dir(exe), FileName), nil
}

// Default returns the built-in catalog of well-known mirrors.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}

	return c
}

// Load reads and parses the catalog file at path.
// There is no fallback: a missing or malformed file is an error.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrInvalidCatalog, path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}

	return c, nil
}

// Parse decodes catalog JSON, keeping the key order of the document.
func Parse(data []byte) (*Catalog, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidCatalog)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level must be an object", ErrInvalidCatalog)
	}

	c := New()

	var parseErr error

	root.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			parseErr = fmt.Errorf("%w: entry %q must be an object", ErrInvalidCatalog, key.String())

			return false
		}

		c.Set(key.String(), parseEntry(value))

		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}

	return c, nil
}

func parseEntry(value gjson.Result) Entry {
	var e Entry

	value.ForEach(func(k, v gjson.Result) bool {
		switch k.String() {
		case "home":
			e.Home = v.String()
		case "registry":
			e.Registry = v.String()
		case "ping":
			e.Ping = v.String()
		default:
			e.Extra = append(e.Extra, Field{Key: k.String(), Value: json.RawMessage(v.Raw)})
		}

		return true
	})

	return e
}

// Marshal renders the catalog as 2-space indented JSON without a trailing newline.
func Marshal(c *Catalog) ([]byte, error) {
	compact, err := c.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("indenting catalog: %w", err)
	}

	return buf.Bytes(), nil
}

// Save overwrites the catalog file at path with the full contents of c.
func Save(path string, c *Catalog) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // the catalog is not secret
		return fmt.Errorf("writing catalog %s: %w", path, err)
	}

	return nil
}
