// Package regcmd implements the interactive regsw subcommands over the registry catalog.
package regcmd

import (
	"context"
	"log/slog"

	"github.com/donaldgifford/regsw/internal/catalog"
	"github.com/donaldgifford/regsw/internal/pkgconfig"
	"github.com/donaldgifford/regsw/internal/probe"
	"github.com/donaldgifford/regsw/internal/prompt"
	"github.com/donaldgifford/regsw/internal/registry"
	"github.com/donaldgifford/regsw/internal/ui"
)

// Env holds everything a subcommand needs. Each invocation builds its own.
type Env struct {
	// CatalogPath is where Catalog is persisted.
	CatalogPath string
	// Catalog is the loaded registry catalog.
	Catalog *catalog.Catalog
	// Config reads and writes the package manager's registry.
	Config pkgconfig.Configurer
	// Prompter asks the user questions.
	Prompter prompt.Prompter
	// Prober measures registry latency.
	Prober probe.Prober
	// UI receives user-facing output.
	UI *ui.Writer
	// Logger for debug output.
	Logger *slog.Logger
}

func (e *Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}

	return e.Logger
}

func (e *Env) resolve(ctx context.Context) (registry.Snapshot, error) {
	return registry.Resolve(ctx, e.Config, e.Catalog)
}

// save persists the catalog and reports a failure in red.
// It returns false when the write failed.
func (e *Env) save() bool {
	if err := catalog.Save(e.CatalogPath, e.Catalog); err != nil {
		e.UI.Error(err.Error())

		return false
	}

	e.logger().Debug("catalog saved", "path", e.CatalogPath, "entries", e.Catalog.Len())

	return true
}

func (e *Env) printCurrent(snap registry.Snapshot) {
	label := e.UI.Blue("Current registry: ")

	if snap.Name == "" {
		e.UI.Line(label + e.UI.Green(snap.Registry))

		return
	}

	e.UI.Line(label + e.UI.White(snap.Name) + e.UI.Green(" ("+snap.Registry+")"))
}

// switchTo moves the package manager to the selected entry or explicit URL.
// Failures are printed together with the resulting registry.
func (e *Env) switchTo(ctx context.Context, current registry.Snapshot, selected, url string) bool {
	e.UI.Activity("Switching...")

	next, err := registry.Switch(ctx, &registry.SwitchOpts{
		Config:   e.Config,
		Catalog:  e.Catalog,
		Current:  current,
		Selected: selected,
		URL:      url,
		Logger:   e.logger(),
	})
	if err != nil {
		e.logger().Debug("switch failed", "err", err)
		e.UI.Errorf("Switch failed: %v", err)

		if next.Registry != "" {
			e.printCurrent(next)
		}

		return false
	}

	e.UI.Success("Switched successfully")
	e.printCurrent(next)

	return true
}

func without(names []string, name string) []string {
	out := make([]string, 0, len(names))

	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}

	return out
}
