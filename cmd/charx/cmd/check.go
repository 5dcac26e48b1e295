package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	charxerror "github.com/msto63/charx/foundation/core/error"
	charxerrors "github.com/msto63/charx/foundation/core/errors"
	charxlog "github.com/msto63/charx/foundation/core/log"
	"github.com/msto63/charx/internal/script"
)

var (
	checkColor   string
	checkFailed  bool
	checkMaxCell = 32
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Run operation scripts and compare the results",
	Long: `Runs every case of the given YAML or TOML scripts and compares the
results with their expectations. Cases without an expectation are
evaluated but not checked.

Exits with status 1 when a checked case fails and 2 when a script is
invalid.

Example script:
  name: reference
  source: "0123456789"
  cases:
    - op: substr
      start: 5
      length: -3
      want: "345"`,
	Args: minimumArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkColor, "color", "auto", "colorize PASS/FAIL: auto, always or never")
	checkCmd.Flags().BoolVar(&checkFailed, "failed", false, "list only failed cases")
	rootCmd.AddCommand(checkCmd)
}

// checkStyles holds the PASS/FAIL formatters
type checkStyles struct {
	pass    *color.Color
	fail    *color.Color
	skip    *color.Color
	heading *color.Color
}

func newCheckStyles(mode string) (*checkStyles, error) {
	s := &checkStyles{
		pass:    color.New(color.FgHiGreen),
		fail:    color.New(color.Bold, color.FgHiRed),
		skip:    color.New(color.FgHiBlack),
		heading: color.New(color.Bold),
	}

	var enabled bool
	switch mode {
	case "always":
		enabled = true
	case "never":
		enabled = false
	case "auto", "":
		enabled = !color.NoColor
	default:
		return nil, charxerrors.InvalidInput(charxerrors.ModuleCLI, "color", mode, "auto, always or never")
	}

	for _, c := range []*color.Color{s.pass, s.fail, s.skip, s.heading} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	styles, err := newCheckStyles(checkColor)
	if err != nil {
		return err
	}

	runner := script.NewRunner(logger)
	reports := make([]*script.Report, 0, len(args))

	for _, path := range args {
		s, err := script.Load(path)
		if err != nil {
			return err
		}
		report, err := runner.Run(cmd.Context(), s)
		if err != nil {
			return charxerror.Wrap(err, "script "+path)
		}
		logger.Debug("script checked", charxlog.Fields{
			"file":      path,
			"passed":    report.Passed,
			"failed":    report.Failed,
			"unchecked": report.Unchecked,
		})
		reports = append(reports, report)
	}

	var text strings.Builder
	for i, report := range reports {
		if i > 0 {
			text.WriteString("\n")
		}
		writeReport(&text, report, styles)
	}

	if err := render(cmd, reports, strings.TrimRight(text.String(), "\n")); err != nil {
		return err
	}
	return checkResult(reports)
}

func checkResult(reports []*script.Report) error {
	var failing []*script.Report
	for _, r := range reports {
		if !r.OK() {
			failing = append(failing, r)
		}
	}

	switch len(failing) {
	case 0:
		return nil
	case 1:
		return failing[0].Err()
	default:
		names := make([]string, 0, len(failing))
		for _, r := range failing {
			names = append(names, r.Name)
		}
		return charxerrors.NewErrorBuilder(charxerrors.ModuleScript).
			Operation("check").
			Code(charxerror.CodeScriptMismatch).
			Messagef("%d of %d scripts failed: %s", len(failing), len(reports), strings.Join(names, ", ")).
			Detail("scripts", names).
			Build()
	}
}

// writeReport renders one report as a table. Columns are padded by
// display width so multi-byte and wide characters line up.
func writeReport(b *strings.Builder, report *script.Report, styles *checkStyles) {
	title := report.Name
	if report.File != "" {
		title += " (" + report.File + ")"
	}
	b.WriteString(styles.heading.Sprint(title))
	b.WriteString("\n")

	rows := [][]string{{"", "#", "case", "op", "got", "want"}}
	status := []string{""}
	for _, res := range report.Results {
		if checkFailed && (!res.Checked || res.Passed) {
			continue
		}
		state := "----"
		switch {
		case res.Checked && res.Passed:
			state = "PASS"
		case res.Checked:
			state = "FAIL"
		}
		status = append(status, state)
		rows = append(rows, []string{
			state,
			strconv.Itoa(res.Index),
			cell(res.Name),
			res.Op,
			cell(valueText(res, res.Output)),
			cell(wantText(res)),
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, v := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(v))
		}
	}

	for r, row := range rows {
		cols := make([]string, len(row))
		for i, v := range row {
			padded := runewidth.FillRight(v, widths[i])
			if i == len(row)-1 {
				padded = v
			}
			if i == 0 {
				switch status[r] {
				case "PASS":
					padded = styles.pass.Sprint(padded)
				case "FAIL":
					padded = styles.fail.Sprint(padded)
				case "----":
					padded = styles.skip.Sprint(padded)
				}
			}
			cols[i] = padded
		}
		b.WriteString(strings.TrimRight(strings.Join(cols, "  "), " "))
		b.WriteString("\n")
	}

	fmt.Fprintf(b, "%d passed, %d failed, %d unchecked\n", report.Passed, report.Failed, report.Unchecked)
}

func wantText(res script.Result) string {
	if !res.Checked {
		return ""
	}
	return valueText(res, res.Want)
}

// valueText quotes string results; indexes and lengths stay bare
func valueText(res script.Result, v string) string {
	if res.Op == script.OpIndexOf || res.Op == script.OpLen {
		return v
	}
	return strconv.Quote(v)
}

// cell truncates long values to keep the table readable
func cell(s string) string {
	if runewidth.StringWidth(s) <= checkMaxCell {
		return s
	}
	return runewidth.Truncate(s, checkMaxCell, "…")
}
