package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/regsw/internal/regcmd"
)

var useCmd = &cobra.Command{
	Use:   "use",
	Short: "Switch to another registry",
	Long: `Choose a registry from the catalog and point the package manager at it.
The switch is verified by reading the configuration back.`,
	Args: cobra.NoArgs,
	RunE: runWithEnv(regcmd.Use),
}

func init() {
	rootCmd.AddCommand(useCmd)
}
