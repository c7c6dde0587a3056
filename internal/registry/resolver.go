// Package registry resolves and switches the package manager's active registry.
package registry

import (
	"context"
	"fmt"

	"github.com/donaldgifford/regsw/internal/catalog"
	"github.com/donaldgifford/regsw/internal/pkgconfig"
)

// Snapshot is the active registry as seen by the package manager.
type Snapshot struct {
	// Name is the matching catalog entry, or empty when the URL is not in the catalog.
	Name string
	// Registry is the configured registry URL.
	Registry string
}

// Resolve asks the package manager for its registry and matches it against the catalog by value.
// The first entry in catalog order wins when several share the same URL.
func Resolve(ctx context.Context, cfg pkgconfig.Configurer, cat *catalog.Catalog) (Snapshot, error) {
	url, err := cfg.GetRegistry(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading current registry: %w", err)
	}

	name, _ := cat.FindByRegistry(url)

	return Snapshot{Name: name, Registry: url}, nil
}
