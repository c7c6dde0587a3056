package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/regsw/internal/regcmd"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Measure registry response time",
	Long: `Send a single request to a registry and print the response time in
milliseconds.`,
	Args: cobra.NoArgs,
	RunE: runWithEnv(regcmd.Ping),
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
