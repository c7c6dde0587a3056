package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/regsw/internal/catalog"
	"github.com/donaldgifford/regsw/internal/pkgconfig"
)

// DefaultName is the catalog name of the package manager's stock registry.
const DefaultName = "npm"

// ErrSwitchFailed reports that the package manager did not end up on the requested registry.
var ErrSwitchFailed = errors.New("registry not switched")

// SwitchOpts configures a registry switch.
type SwitchOpts struct {
	// Config reads and writes the package manager's registry.
	Config pkgconfig.Configurer
	// Catalog is used to look up Selected and to resolve the result.
	Catalog *catalog.Catalog
	// Current is the snapshot taken before the switch.
	Current Snapshot
	// Selected is a catalog name. When it is not in the catalog, URL is used instead.
	Selected string
	// URL is an explicit registry URL.
	URL string
	// Logger for debug output.
	Logger *slog.Logger
}

// Switch sets the package manager's registry and verifies the outcome.
//
// The switch counts as successful when the new snapshot resolves to the
// default registry and the default was requested, or when it resolves to a
// non-default name different from the previous one. Any other outcome,
// including an unlisted URL resolving to the same empty name, fails with
// ErrSwitchFailed. The registry is re-read even when setting it failed, and
// the resolved snapshot is returned whenever it was read.
func Switch(ctx context.Context, opts *SwitchOpts) (Snapshot, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	target := opts.URL
	if e, ok := opts.Catalog.Get(opts.Selected); ok {
		target = e.Registry
	}

	logger.Debug("switching registry", "from", opts.Current.Registry, "to", target, "selected", opts.Selected)

	setErr := opts.Config.SetRegistry(ctx, target)

	next, err := Resolve(ctx, opts.Config, opts.Catalog)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrSwitchFailed, errors.Join(setErr, err))
	}

	if setErr != nil {
		return next, fmt.Errorf("%w: setting registry: %w", ErrSwitchFailed, setErr)
	}

	if !switched(opts.Current, next, opts.Selected) {
		return next, fmt.Errorf("%w: registry is %s", ErrSwitchFailed, next.Registry)
	}

	return next, nil
}

func switched(prev, next Snapshot, selected string) bool {
	if next.Name == DefaultName {
		return selected == DefaultName
	}

	return next.Name != prev.Name
}
