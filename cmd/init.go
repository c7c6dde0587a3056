package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/regsw/internal/catalog"
	"github.com/donaldgifford/regsw/internal/getter"
	"github.com/donaldgifford/regsw/internal/regcmd"
	"github.com/donaldgifford/regsw/internal/ui"
)

var (
	initFrom     string
	initRef      string
	initSubpath  string
	initChecksum string
	initForce    bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the registry catalog",
	Long: `Create the registry catalog next to the regsw executable. By default the
built-in list of well-known mirrors is written. Use --from to seed it from a
file path or any go-getter source (HTTP, git, S3, ...).`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initFrom, "from", "", "catalog source (path or go-getter URL)")
	initCmd.Flags().StringVar(&initRef, "ref", "", "git ref for --from")
	initCmd.Flags().StringVar(&initSubpath, "subpath", "", "file inside the --from repository")
	initCmd.Flags().StringVar(&initChecksum, "checksum", "", "sha256 checksum of the --from file")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing catalog")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	w := ui.NewWriter(noColor)

	path, err := catalog.DefaultPath()
	if err != nil {
		return err
	}

	from := initFrom
	if from != "" {
		from = getter.SourceURL(from, initSubpath, initRef)
	}

	result, err := regcmd.Init(cmd.Context(), &regcmd.InitOpts{
		Path:     path,
		From:     from,
		Checksum: initChecksum,
		Force:    initForce,
		Logger:   slog.Default(),
	})
	if err != nil {
		return err
	}

	w.Successf("Catalog written to %s (%d registries from %s)", result.Path, result.Entries, result.Source)

	return nil
}
