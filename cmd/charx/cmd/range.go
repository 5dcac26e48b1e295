package cmd

import (
	"math"

	"github.com/spf13/cobra"

	charxerrors "github.com/msto63/charx/foundation/core/errors"
	charxlog "github.com/msto63/charx/foundation/core/log"
	"github.com/msto63/charx/foundation/utils/charx"
)

var rangeBounds bool

var rangeCmd = &cobra.Command{
	Use:   "range <total> <start> <length|end>",
	Short: "Show the character range an operation selects",
	Long: `Resolves start and length against a string of total characters and
prints the half-open range substr would extract. With --bounds the third
argument is an end position and the range is the one substring uses.

Examples:
  charx range 10 5 -3            # [3, 6)
  charx range --bounds 10 9 2    # [2, 9)`,
	Args: exactArgs(3),
	RunE: runRange,
}

type rangeResult struct {
	Op     string      `json:"op" yaml:"op"`
	Total  int         `json:"total" yaml:"total"`
	Start  int         `json:"start" yaml:"start"`
	Length *int        `json:"length,omitempty" yaml:"length,omitempty"`
	End    *int        `json:"end,omitempty" yaml:"end,omitempty"`
	Range  charx.Range `json:"range" yaml:"range"`
	Empty  bool        `json:"empty" yaml:"empty"`
}

func init() {
	rangeCmd.Flags().BoolVar(&rangeBounds, "bounds", false, "treat the third argument as an end position")
	rangeCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(rangeCmd)
}

func runRange(cmd *cobra.Command, args []string) error {
	total, err := signedArg("total", args[0])
	if err != nil {
		return err
	}
	if total < 0 {
		return charxerrors.OutOfRange(charxerrors.ModuleCLI, "range", total, 0, math.MaxInt)
	}
	start, third, err := signedPair("start", args[1], "length", args[2])
	if err != nil {
		return err
	}

	res := rangeResult{Total: total, Start: start}
	if rangeBounds {
		res.Op = "substring"
		res.End = &third
		res.Range = charx.ResolveBounds(total, start, third)
	} else {
		res.Op = "substr"
		res.Length = &third
		res.Range = charx.ResolveLength(total, start, third)
	}
	res.Empty = res.Range.IsEmpty()

	return render(cmd, res, res.Range.String())
}

func rangeFields(r charx.Range) charxlog.Fields {
	return charxlog.Fields{
		"range_start": r.Start,
		"range_end":   r.End,
	}
}
