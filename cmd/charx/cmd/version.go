package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/charx/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()

		var b strings.Builder
		fmt.Fprintf(&b, "charx v%s\n", info.CLI)
		fmt.Fprintf(&b, "  Library:    %s\n", info.Library)
		fmt.Fprintf(&b, "  Git Commit: %s\n", info.GitCommit)
		fmt.Fprintf(&b, "  Build Date: %s\n", info.BuildDate)
		fmt.Fprintf(&b, "  Go Version: %s\n", info.GoVersion)
		fmt.Fprintf(&b, "  OS/Arch:    %s", info.Platform)

		return render(cmd, info, b.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
