package regcmd

import (
	"context"

	"github.com/donaldgifford/regsw/internal/catalog"
)

// Edit replaces the URL of a custom registry. When the registry is active the
// package manager is switched first and the edit is only saved if that succeeds.
func Edit(ctx context.Context, env *Env) error {
	choices := catalog.CustomNames(env.Catalog)
	if !catalog.HasCustom(env.Catalog) || len(choices) == 0 {
		env.UI.Error("No custom registries to edit")

		return nil
	}

	name, err := env.Prompter.Select("Select a registry to edit", choices)
	if err != nil {
		return err
	}

	url, err := env.Prompter.Input("New registry URL", catalog.ValidateURL)
	if err != nil {
		return err
	}

	entry := catalog.NewEntry(url)
	if old, ok := env.Catalog.Get(name); ok {
		entry.Extra = old.Extra
	}

	snap, err := env.resolve(ctx)
	if err != nil {
		return err
	}

	if name == snap.Name {
		env.UI.Activityf("Registry %s is in use, switching to the new URL...", name)

		if !env.switchTo(ctx, snap, "", entry.Registry) {
			env.UI.Error("Edit failed")

			return nil
		}
	}

	env.UI.Activity("Editing...")
	env.Catalog.Set(name, entry)

	if env.save() {
		env.UI.Successf("Edited registry %s", name)
	}

	return nil
}
