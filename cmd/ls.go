package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/regsw/internal/regcmd"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List catalog registries",
	Long: `List every registry in the catalog and mark the one the package manager
currently uses. Only the first entry whose URL matches the active registry is
marked, even when several entries share that URL.`,
	Args: cobra.NoArgs,
	RunE: runWithEnv(regcmd.List),
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
