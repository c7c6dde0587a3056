package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/regsw/internal/regcmd"
)

var delCmd = &cobra.Command{
	Use:   "del",
	Short: "Delete a custom registry",
	Long: `Delete a custom registry from the catalog. Built-in registries and the
registry currently in use cannot be deleted.`,
	Args: cobra.NoArgs,
	RunE: runWithEnv(regcmd.Delete),
}

func init() {
	rootCmd.AddCommand(delCmd)
}
