package regcmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/regsw/internal/catalog"
	"github.com/donaldgifford/regsw/internal/prompt"
	"github.com/donaldgifford/regsw/internal/regcmd"
	"github.com/donaldgifford/regsw/internal/ui"
)

const (
	npmURL    = "https://registry.npmjs.org/"
	taobaoURL = "https://registry.npmmirror.com/"
	corpURL   = "https://npm.corp.example.com/"
)

// fakePrompter answers prompts from queues. Input answers that fail
// validation are recorded and the next answer is used, like a re-ask.
type fakePrompter struct {
	selects []string
	inputs  []string

	offered  [][]string
	rejected []error
}

func (p *fakePrompter) Select(_ string, choices []string) (string, error) {
	p.offered = append(p.offered, choices)

	if len(p.selects) == 0 {
		return "", prompt.ErrAborted
	}

	sel := p.selects[0]
	p.selects = p.selects[1:]

	return sel, nil
}

func (p *fakePrompter) Input(_ string, validate prompt.ValidateFn) (string, error) {
	for len(p.inputs) > 0 {
		answer := p.inputs[0]
		p.inputs = p.inputs[1:]

		if validate != nil {
			if err := validate(answer); err != nil {
				p.rejected = append(p.rejected, err)

				continue
			}
		}

		return answer, nil
	}

	return "", prompt.ErrAborted
}

type fakeConfig struct {
	registry  string
	getErr    error
	setErr    error
	ignoreSet bool
	sets      []string
}

func (f *fakeConfig) GetRegistry(context.Context) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}

	return f.registry, nil
}

func (f *fakeConfig) SetRegistry(_ context.Context, url string) error {
	f.sets = append(f.sets, url)

	if f.setErr != nil {
		return f.setErr
	}

	if !f.ignoreSet {
		f.registry = url
	}

	return nil
}

type fakeProber struct {
	elapsed time.Duration
	err     error
	urls    []string
}

func (p *fakeProber) Ping(_ context.Context, url string) (time.Duration, error) {
	p.urls = append(p.urls, url)

	return p.elapsed, p.err
}

type harness struct {
	env      *regcmd.Env
	prompter *fakePrompter
	config   *fakeConfig
	prober   *fakeProber
	out      *bytes.Buffer
	errOut   *bytes.Buffer
}

// newHarness writes cat to a temp catalog file and builds an Env around fakes.
func newHarness(t *testing.T, cat *catalog.Catalog, active string) *harness {
	t.Helper()

	path := filepath.Join(t.TempDir(), catalog.FileName)
	require.NoError(t, catalog.Save(path, cat))

	loaded, err := catalog.Load(path)
	require.NoError(t, err)

	h := &harness{
		prompter: &fakePrompter{},
		config:   &fakeConfig{registry: active},
		prober:   &fakeProber{},
		out:      &bytes.Buffer{},
		errOut:   &bytes.Buffer{},
	}

	h.env = &regcmd.Env{
		CatalogPath: path,
		Catalog:     loaded,
		Config:      h.config,
		Prompter:    h.prompter,
		Prober:      h.prober,
		UI:          ui.NewWriterWithOutputs(h.out, h.errOut, true),
	}

	return h
}

// withCustom returns the default catalog plus a "corp" entry.
func withCustom() *catalog.Catalog {
	c := catalog.Default()
	c.Set("corp", catalog.NewEntry(corpURL))

	return c
}

func (h *harness) fileBytes(t *testing.T) []byte {
	t.Helper()

	data, err := os.ReadFile(h.env.CatalogPath)
	require.NoError(t, err)

	return data
}

func (h *harness) reload(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.Load(h.env.CatalogPath)
	require.NoError(t, err)

	return c
}
