package regcmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/donaldgifford/regsw/internal/catalog"
	"github.com/donaldgifford/regsw/internal/getter"
)

// InitOpts configures catalog initialization.
type InitOpts struct {
	// Path is the catalog file to create.
	Path string
	// From is an optional go-getter source for the catalog. Empty uses the built-in catalog.
	From string
	// Checksum is an optional sha256 checksum for From.
	Checksum string
	// Force overwrites an existing catalog.
	Force bool
	// Logger for debug output.
	Logger *slog.Logger
}

// InitResult holds the outcome of catalog initialization.
type InitResult struct {
	// Path is the absolute path of the written catalog.
	Path string
	// Entries is the number of registries written.
	Entries int
	// Source is where the catalog came from.
	Source string
}

// Init writes the built-in catalog, or one fetched from opts.From, to opts.Path.
// The fetched file must parse as a catalog before anything is written.
func Init(ctx context.Context, opts *InitOpts) (*InitResult, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("catalog path is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	absPath, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving path %s: %w", opts.Path, err)
	}

	if _, err := os.Stat(absPath); err == nil && !opts.Force {
		return nil, fmt.Errorf("catalog already exists at %s (use --force to overwrite)", absPath)
	}

	cat := catalog.Default()
	source := "built-in"

	if opts.From != "" {
		cat, err = fetchCatalog(ctx, opts, logger)
		if err != nil {
			return nil, err
		}

		source = opts.From
	}

	if err := catalog.Save(absPath, cat); err != nil {
		return nil, err
	}

	logger.Debug("catalog initialized", "path", absPath, "source", source, "entries", cat.Len())

	return &InitResult{Path: absPath, Entries: cat.Len(), Source: source}, nil
}

func fetchCatalog(ctx context.Context, opts *InitOpts, logger *slog.Logger) (*catalog.Catalog, error) {
	tmpDir, err := os.MkdirTemp("", "regsw-catalog-")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}

	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			logger.Debug("removing temp dir", "dir", tmpDir, "err", rerr)
		}
	}()

	pwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	dest := filepath.Join(tmpDir, catalog.FileName)

	g := getter.New(logger)
	if err := g.FetchFile(ctx, opts.From, dest, getter.FetchOpts{Checksum: opts.Checksum, Pwd: pwd}); err != nil {
		return nil, err
	}

	cat, err := catalog.Load(dest)
	if err != nil {
		return nil, fmt.Errorf("catalog from %s: %w", opts.From, err)
	}

	return cat, nil
}
