package regcmd_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/regsw/internal/catalog"
	"github.com/donaldgifford/regsw/internal/prompt"
	"github.com/donaldgifford/regsw/internal/regcmd"
)

func TestUse_SwitchesToTaobao(t *testing.T) {
	t.Parallel()

	h := newHarness(t, catalog.Default(), npmURL)
	h.prompter.selects = []string{"taobao"}

	require.NoError(t, regcmd.Use(t.Context(), h.env))

	require.Len(t, h.prompter.offered, 1)
	assert.NotContains(t, h.prompter.offered[0], "npm")
	assert.Contains(t, h.prompter.offered[0], "taobao")

	assert.Equal(t, []string{taobaoURL}, h.config.sets)
	assert.Contains(t, h.out.String(), "Switched successfully")
	assert.Contains(t, h.out.String(), "Current registry: taobao")
	assert.Empty(t, h.errOut.String())
}

func TestUse_FailureWhenRegistryUnchanged(t *testing.T) {
	t.Parallel()

	h := newHarness(t, catalog.Default(), npmURL)
	h.config.ignoreSet = true
	h.prompter.selects = []string{"yarn"}

	require.NoError(t, regcmd.Use(t.Context(), h.env))

	assert.Contains(t, h.errOut.String(), "Switch failed")
	assert.Contains(t, h.out.String(), "Current registry: npm")
}

func TestUse_SetCommandError(t *testing.T) {
	t.Parallel()

	h := newHarness(t, catalog.Default(), npmURL)
	h.config.setErr = errors.New("exit status 1")
	h.prompter.selects = []string{"yarn"}

	require.NoError(t, regcmd.Use(t.Context(), h.env))
	assert.Contains(t, h.errOut.String(), "exit status 1")
	assert.NotContains(t, h.errOut.String(), "Switch failed: switch failed")
	assert.Contains(t, h.out.String(), "Switching...\nCurrent registry: npm ("+npmURL+")")
}

func TestUse_NothingToSwitchTo(t *testing.T) {
	t.Parallel()

	c := catalog.New()
	c.Set("npm", catalog.NewEntry(npmURL))

	h := newHarness(t, c, npmURL)

	require.NoError(t, regcmd.Use(t.Context(), h.env))

	assert.Empty(t, h.prompter.offered)
	assert.Contains(t, h.errOut.String(), "No other registry")
}

func TestUse_Aborted(t *testing.T) {
	t.Parallel()

	h := newHarness(t, catalog.Default(), npmURL)

	err := regcmd.Use(t.Context(), h.env)
	require.ErrorIs(t, err, prompt.ErrAborted)
	assert.Empty(t, h.config.sets)
}
