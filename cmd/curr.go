package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/regsw/internal/regcmd"
)

var currCmd = &cobra.Command{
	Use:   "curr",
	Short: "Show the current registry",
	Long: `Show the registry the package manager currently uses and its catalog name,
if any.`,
	Args: cobra.NoArgs,
	RunE: runWithEnv(regcmd.Current),
}

func init() {
	rootCmd.AddCommand(currCmd)
}
