package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/charx/foundation/utils/charx"
)

var removeCmd = &cobra.Command{
	Use:   "remove <string> <start> <length>",
	Short: "Remove characters",
	Long: `Removes length characters starting at start.

The string is returned unchanged when length is 0 or start is at or past
the end. A length running past the end removes everything from start.

Example:
  charx remove 0123456789 3 2    # 01256789`,
	Args: exactArgs(3),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	start, length, err := unsignedPair("start", args[1], "length", args[2])
	if err != nil {
		return err
	}

	s := args[0]
	result := charx.Remove(s, start, length)
	r := charx.ResolveUnsigned(charx.Len(s), start, length)
	logger.Debug("remove", rangeFields(r))

	return render(cmd, newStringResult("remove", s, args[1:], result, &r), textValue(result))
}
