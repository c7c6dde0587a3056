package regcmd

import (
	"context"
	"fmt"

	"github.com/donaldgifford/regsw/internal/catalog"
	"github.com/donaldgifford/regsw/internal/probe"
)

// Ping measures the response time of a selected registry's ping URL.
// Probe failures are printed and do not fail the command.
func Ping(ctx context.Context, env *Env) error {
	sel, err := env.Prompter.Select("Select a registry", env.Catalog.Names())
	if err != nil {
		return err
	}

	e, ok := env.Catalog.Get(sel)
	if !ok {
		return fmt.Errorf("%w: %q", catalog.ErrNotFound, sel)
	}

	env.UI.Activityf("Pinging %s...", e.Ping)

	elapsed, err := env.Prober.Ping(ctx, e.Ping)
	if err != nil {
		env.UI.Errorf("Ping failed: %v", err)

		return nil
	}

	env.UI.Infof("Response time: %dms", probe.Millis(elapsed))

	return nil
}
