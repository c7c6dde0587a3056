package regcmd

import (
	"context"
	"strings"

	"github.com/donaldgifford/regsw/internal/catalog"
)

// Rename moves a custom registry to a new, unused name.
func Rename(_ context.Context, env *Env) error {
	choices := catalog.CustomNames(env.Catalog)
	if len(choices) == 0 {
		env.UI.Error("No custom registries to rename")

		return nil
	}

	sel, err := env.Prompter.Select("Select a registry to rename", choices)
	if err != nil {
		return err
	}

	newName, err := env.Prompter.Input("New registry name", func(s string) error {
		return catalog.ValidateName(env.Catalog, s)
	})
	if err != nil {
		return err
	}

	newName = strings.TrimSpace(newName)

	env.UI.Activity("Renaming...")

	if err := env.Catalog.Rename(sel, newName); err != nil {
		env.UI.Error(err.Error())

		return nil
	}

	if env.save() {
		env.UI.Successf("Renamed %s to %s", sel, newName)
	}

	return nil
}
