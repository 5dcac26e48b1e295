package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/charx/foundation/utils/charx"
)

var concatCmd = &cobra.Command{
	Use:   "concat <part>...",
	Short: "Join strings",
	Long: `Joins all parts in order without a separator.

Example:
  charx concat 0123456789 " " 0123456789`,
	Args: minimumArgs(1),
	RunE: runConcat,
}

var lenCmd = &cobra.Command{
	Use:   "len <string>",
	Short: "Character length",
	Args:  exactArgs(1),
	RunE:  runLen,
}

func init() {
	rootCmd.AddCommand(concatCmd)
	rootCmd.AddCommand(lenCmd)
}

func runConcat(cmd *cobra.Command, args []string) error {
	result := charx.Concat(args...)
	return render(cmd, newStringResult("concat", "", args, result, nil), textValue(result))
}

func runLen(cmd *cobra.Command, args []string) error {
	n := charx.Len(args[0])
	return render(cmd, lenResult{
		Op:         "len",
		Source:     args[0],
		Characters: n,
		Bytes:      len(args[0]),
	}, strconv.Itoa(n))
}
