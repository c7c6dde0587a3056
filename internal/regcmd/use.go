package regcmd

import "context"

// Use switches the package manager to another catalog entry.
func Use(ctx context.Context, env *Env) error {
	snap, err := env.resolve(ctx)
	if err != nil {
		return err
	}

	env.printCurrent(snap)

	choices := without(env.Catalog.Names(), snap.Name)
	if len(choices) == 0 {
		env.UI.Warning("No other registry to switch to")

		return nil
	}

	sel, err := env.Prompter.Select("Select a registry", choices)
	if err != nil {
		return err
	}

	env.switchTo(ctx, snap, sel, "")

	return nil
}
