package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/regsw/internal/regcmd"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom registry",
	Long: `Add a custom registry to the catalog. The name must be unique and the URL
non-empty.`,
	Args: cobra.NoArgs,
	RunE: runWithEnv(regcmd.Add),
}

func init() {
	rootCmd.AddCommand(addCmd)
}
