package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/charx/foundation/core/config"
	"github.com/msto63/charx/foundation/utils/charx"
)

// stringResult is the output of every operation that returns a string
type stringResult struct {
	Op         string       `json:"op" yaml:"op"`
	Source     string       `json:"source,omitempty" yaml:"source,omitempty"`
	Args       []string     `json:"args,omitempty" yaml:"args,omitempty"`
	Result     string       `json:"result" yaml:"result"`
	Characters int          `json:"characters" yaml:"characters"`
	Range      *charx.Range `json:"range,omitempty" yaml:"range,omitempty"`
}

type indexResult struct {
	Op      string `json:"op" yaml:"op"`
	Source  string `json:"source" yaml:"source"`
	Pattern string `json:"pattern" yaml:"pattern"`
	From    uint   `json:"from" yaml:"from"`
	Index   int    `json:"index" yaml:"index"`
	Found   bool   `json:"found" yaml:"found"`
}

type lenResult struct {
	Op         string `json:"op" yaml:"op"`
	Source     string `json:"source" yaml:"source"`
	Characters int    `json:"characters" yaml:"characters"`
	Bytes      int    `json:"bytes" yaml:"bytes"`
}

func newStringResult(op, source string, args []string, result string, r *charx.Range) stringResult {
	return stringResult{
		Op:         op,
		Source:     source,
		Args:       args,
		Result:     result,
		Characters: charx.Len(result),
		Range:      r,
	}
}

// render writes v in the configured output format; text is used for
// the text format.
func render(cmd *cobra.Command, v interface{}, text string) error {
	out := cmd.OutOrStdout()

	switch settings.OutputFormat {
	case config.OutputJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(v)

	case config.OutputYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()

	default:
		_, err := fmt.Fprintln(out, text)
		return err
	}
}

// textValue quotes s when output.quote is set
func textValue(s string) string {
	if settings.Quote {
		return strconv.Quote(s)
	}
	return s
}
