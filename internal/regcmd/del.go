package regcmd

import (
	"context"

	"github.com/donaldgifford/regsw/internal/catalog"
)

// Delete removes a custom registry that is not currently active.
func Delete(ctx context.Context, env *Env) error {
	choices := catalog.CustomNames(env.Catalog)
	if !catalog.HasCustom(env.Catalog) || len(choices) == 0 {
		env.UI.Error("No custom registries to delete")

		return nil
	}

	name, err := env.Prompter.Select("Select a registry to delete", choices)
	if err != nil {
		return err
	}

	snap, err := env.resolve(ctx)
	if err != nil {
		return err
	}

	if name == snap.Name {
		env.UI.Errorf("Registry %s is in use and cannot be deleted", name)

		return nil
	}

	env.UI.Activity("Deleting...")
	env.Catalog.Delete(name)

	if env.save() {
		env.UI.Successf("Deleted registry %s", name)
	}

	return nil
}
