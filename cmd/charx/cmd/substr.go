package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/charx/foundation/utils/charx"
)

var substrCmd = &cobra.Command{
	Use:   "substr <string> <start> <length>",
	Short: "Substring by start and signed length",
	Long: `Extracts length characters starting at start.

A negative start counts from the end of the string. A negative length
takes the characters ending at start instead of starting there.
Out-of-range values are clamped, never rejected.

Examples:
  charx substr 0123456789 2 3      # 234
  charx substr 0123456789 -5 -3    # 345
  charx substr 0123456789 6 max    # 6789`,
	Args: exactArgs(3),
	RunE: runSubstr,
}

var substruCmd = &cobra.Command{
	Use:   "substru <string> <start> <length>",
	Short: "Substring by unsigned start and length",
	Long: `Skips start characters and takes up to length characters.

Example:
  charx substru "Test 123 éèçà" 9 4    # éèçà`,
	Args: exactArgs(3),
	RunE: runSubstru,
}

var substrEndCmd = &cobra.Command{
	Use:   "substr-end <string> <start>",
	Short: "Substring from start to the end",
	Long: `Returns everything from start to the end of the string. A negative
start counts from the end.

Example:
  charx substr-end 0123456789 -3    # 789`,
	Args: exactArgs(2),
	RunE: runSubstrEnd,
}

func init() {
	for _, c := range []*cobra.Command{substrCmd, substruCmd, substrEndCmd} {
		// negative numbers after the string are arguments, not flags
		c.Flags().SetInterspersed(false)
		rootCmd.AddCommand(c)
	}
}

func runSubstr(cmd *cobra.Command, args []string) error {
	start, length, err := signedPair("start", args[1], "length", args[2])
	if err != nil {
		return err
	}

	s := args[0]
	r := charx.ResolveLength(charx.Len(s), start, length)
	result := charx.Substr(s, start, length)
	logger.Debug("substr", rangeFields(r))

	return render(cmd, newStringResult("substr", s, args[1:], result, &r), textValue(result))
}

func runSubstru(cmd *cobra.Command, args []string) error {
	start, length, err := unsignedPair("start", args[1], "length", args[2])
	if err != nil {
		return err
	}

	s := args[0]
	r := charx.ResolveUnsigned(charx.Len(s), start, length)
	result := charx.SubstrUnsigned(s, start, length)
	logger.Debug("substru", rangeFields(r))

	return render(cmd, newStringResult("substru", s, args[1:], result, &r), textValue(result))
}

func runSubstrEnd(cmd *cobra.Command, args []string) error {
	start, err := signedArg("start", args[1])
	if err != nil {
		return err
	}

	s := args[0]
	r := charx.ResolveToEnd(charx.Len(s), start)
	result := charx.SubstrToEnd(s, start)
	logger.Debug("substr-end", rangeFields(r))

	return render(cmd, newStringResult("substr-end", s, args[1:], result, &r), textValue(result))
}
