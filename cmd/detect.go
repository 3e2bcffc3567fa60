package cmd

import (
	"github.com/spf13/cobra"
)

// detectCmd is an explicit alias for the root detection flow.
var detectCmd = &cobra.Command{
	Use:   "detect [PROJECT_PATH]",
	Short: "Detect the runtime and framework chain of a project",
	Long: Logo + `
Shipscout inspects the project's files and declared dependencies, classifies
the runtime and framework chain, and prints the resolved build commands.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	return runRootCommand(cmd, args)
}
