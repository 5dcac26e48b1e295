package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/charx/internal/tui/playground"
)

var playgroundCmd = &cobra.Command{
	Use:     "playground",
	Aliases: []string{"tui"},
	Short:   "Try the operations interactively",
	Long: `Starts an interactive terminal UI with inputs for a string, a start
position, a length or end position and a search pattern. Results of every
operation update while typing.

Keys:
  Tab / Shift+Tab   next / previous input
  Ctrl+T            switch between length and end
  Esc / Ctrl+C      quit`,
	Args: exactArgs(0),
	RunE: runPlayground,
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}

func runPlayground(cmd *cobra.Command, args []string) error {
	logger.Debug("starting playground")
	return playground.Run()
}
