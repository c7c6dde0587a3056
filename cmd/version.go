package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "none"
)

// SetVersionInfo sets the build-time version information.
func SetVersionInfo(version, commit string) {
	buildVersion = version
	buildCommit = commit
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s)", buildVersion, buildCommit)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of regsw",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("regsw %s\n", versionString())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
