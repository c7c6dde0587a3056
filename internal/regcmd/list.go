package regcmd

import "context"

// List prints the active registry followed by every catalog entry, marking the active one.
func List(ctx context.Context, env *Env) error {
	snap, err := env.resolve(ctx)
	if err != nil {
		return err
	}

	env.UI.Line(env.UI.Blue("Current registry: ") + env.UI.Green(snap.Registry))

	for _, name := range env.Catalog.Names() {
		e, _ := env.Catalog.Get(name)

		if snap.Name != "" && name == snap.Name {
			env.UI.Line(env.UI.Blue("* "+name) + " (" + env.UI.Green(e.Registry) + ")")

			continue
		}

		env.UI.Line("  " + env.UI.White(name) + " (" + env.UI.Green(e.Registry) + ")")
	}

	return nil
}

// Current prints only the active registry.
func Current(ctx context.Context, env *Env) error {
	snap, err := env.resolve(ctx)
	if err != nil {
		return err
	}

	env.printCurrent(snap)

	return nil
}
