package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/regsw/internal/regcmd"
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename a custom registry",
	Long: `Give a custom registry a new, unused name.`,
	Args: cobra.NoArgs,
	RunE: runWithEnv(regcmd.Rename),
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
