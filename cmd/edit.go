package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/regsw/internal/regcmd"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a custom registry URL",
	Long: `Change the URL of a custom registry. If the registry is in use, the
package manager is switched to the new URL first and the edit is kept only
if that succeeds.`,
	Args: cobra.NoArgs,
	RunE: runWithEnv(regcmd.Edit),
}

func init() {
	rootCmd.AddCommand(editCmd)
}
