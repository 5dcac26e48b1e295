package cmd

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/msto63/charx/foundation/utils/charx"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show every operation on a sample string",
	Args:  exactArgs(0),
	RunE:  runDemo,
}

var (
	demoTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	demoCallColor  = color.New(color.FgHiBlue)
)

type demoLine struct {
	Call   string `json:"call" yaml:"call"`
	Result string `json:"result" yaml:"result"`
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// demoLines calls every operation as a function and, where one exists,
// through the Str and Bytes methods. Equal results are expected.
func demoLines() []demoLine {
	const s = "0123456789"
	str := charx.Str(s)
	buf := charx.Bytes(s)

	found := "not found"
	if idx := str.IndexOf("234", 0); idx != charx.NotFound {
		found = "found at position " + strconv.Itoa(idx)
	}

	return []demoLine{
		{`Substr(s, 3, 2)`, charx.Substr(s, 3, 2)},
		{`Str(s).Substr(3, 2)`, str.Substr(3, 2)},
		{`Bytes(s).Substr(3, 2)`, buf.Substr(3, 2)},
		{`SubstrUnsigned(s, 3, 2)`, charx.SubstrUnsigned(s, 3, 2)},
		{`Str(s).SubstrUnsigned(3, 2)`, str.SubstrUnsigned(3, 2)},
		{`Bytes(s).SubstrUnsigned(3, 2)`, buf.SubstrUnsigned(3, 2)},
		{`Substring(s, 3, 5)`, charx.Substring(s, 3, 5)},
		{`Str(s).Substring(3, 5)`, str.Substring(3, 5)},
		{`Substr(s, -2, 2)`, charx.Substr(s, -2, 2)},
		{`Substr(s, -10, 1)`, charx.Substr(s, -10, 1)},
		{`Substr(s, 0, 1)`, charx.Substr(s, 0, 1)},
		{`Substr(s, 6, math.MaxInt)`, charx.Substr(s, 6, math.MaxInt)},
		{`SubstrToEnd(s, 6)`, charx.SubstrToEnd(s, 6)},
		{`Str(s).SubstrToEnd(6)`, str.SubstrToEnd(6)},
		{`Remove(s, 3, 2)`, charx.Remove(s, 3, 2)},
		{`Str(s).Remove(3, 2)`, str.Remove(3, 2)},
		{`Str(s).IndexOf("234", 0)`, found},
		{`Concat(s, " ", string(buf))`, charx.Concat(s, " ", buf.String())},
		{`Concat(s, " ", s)`, charx.Concat(s, " ", s)},
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	lines := demoLines()

	width := 0
	for _, l := range lines {
		width = max(width, len(l.Call))
	}

	var text strings.Builder
	text.WriteString(demoTitleStyle.Render(`s := "0123456789"`))
	text.WriteString("\n")
	for _, l := range lines {
		text.WriteString(demoCallColor.Sprint(l.Call))
		text.WriteString(strings.Repeat(" ", width-len(l.Call)+2))
		text.WriteString(textValue(l.Result))
		text.WriteString("\n")
	}

	return render(cmd, lines, strings.TrimRight(text.String(), "\n"))
}
