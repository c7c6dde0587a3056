package regcmd

import (
	"context"
	"strings"

	"github.com/donaldgifford/regsw/internal/catalog"
)

// Add prompts for a name and URL and appends a new catalog entry.
func Add(_ context.Context, env *Env) error {
	name, err := env.Prompter.Input("Registry name", func(s string) error {
		return catalog.ValidateName(env.Catalog, s)
	})
	if err != nil {
		return err
	}

	url, err := env.Prompter.Input("Registry URL", catalog.ValidateURL)
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	env.Catalog.Set(name, catalog.NewEntry(url))

	env.UI.Activity("Adding...")

	if env.save() {
		env.UI.Successf("Added registry %s", name)
	}

	return nil
}
