package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	charxlog "github.com/msto63/charx/foundation/core/log"
	"github.com/msto63/charx/foundation/utils/charx"
)

var indexFrom string

var indexofCmd = &cobra.Command{
	Use:   "indexof <string> <pattern>",
	Short: "Character index of a pattern",
	Long: `Prints the character index of the first occurrence of pattern at or
after --from, or -1 when there is none. An empty pattern is never found.

Example:
  charx indexof "Test 123 éèçà 123 test home" test    # 18`,
	Args: exactArgs(2),
	RunE: runIndexOf,
}

func init() {
	indexofCmd.Flags().StringVar(&indexFrom, "from", "0", "character index to start searching at")
	rootCmd.AddCommand(indexofCmd)
}

func runIndexOf(cmd *cobra.Command, args []string) error {
	from, err := unsignedArg("from", indexFrom)
	if err != nil {
		return err
	}

	s, pattern := args[0], args[1]
	idx := charx.IndexOf(s, pattern, from)
	if idx == charx.NotFound {
		logger.Info("pattern not found", charxlog.Fields{"pattern": pattern, "from": from})
	}

	return render(cmd, indexResult{
		Op:      "indexof",
		Source:  s,
		Pattern: pattern,
		From:    from,
		Index:   idx,
		Found:   idx != charx.NotFound,
	}, strconv.Itoa(idx))
}
