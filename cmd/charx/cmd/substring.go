package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/charx/foundation/utils/charx"
)

var substringCmd = &cobra.Command{
	Use:   "substring <string> <start> <end>",
	Short: "Substring between two positions",
	Long: `Returns the characters from start up to, not including, end.

Reversed bounds are swapped; both bounds are clamped to the string.

Examples:
  charx substring 0123456789 2 9    # 2345678
  charx substring 0123456789 9 2    # 2345678`,
	Args: exactArgs(3),
	RunE: runSubstring,
}

func init() {
	substringCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(substringCmd)
}

func runSubstring(cmd *cobra.Command, args []string) error {
	start, end, err := signedPair("start", args[1], "end", args[2])
	if err != nil {
		return err
	}

	s := args[0]
	r := charx.ResolveBounds(charx.Len(s), start, end)
	result := charx.Substring(s, start, end)
	logger.Debug("substring", rangeFields(r))

	return render(cmd, newStringResult("substring", s, args[1:], result, &r), textValue(result))
}
