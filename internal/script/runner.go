// ============================================================================
// charx - character-indexed string tools
// ============================================================================
//
// Package:     script
// Description: Case evaluation and reports
// Author:      msto63
// Created:     2025-11-07
// License:     MIT
// ============================================================================

package script

import (
	"context"
	"strconv"

	charxerror "github.com/msto63/charx/foundation/core/error"
	charxerrors "github.com/msto63/charx/foundation/core/errors"
	charxlog "github.com/msto63/charx/foundation/core/log"
	"github.com/msto63/charx/foundation/utils/charx"
)

// Result is the outcome of one case
type Result struct {
	Index   int          `json:"index" yaml:"index"`
	Name    string       `json:"name" yaml:"name"`
	Op      string       `json:"op" yaml:"op"`
	Source  string       `json:"source" yaml:"source"`
	Output  string       `json:"output" yaml:"output"`
	Range   *charx.Range `json:"range,omitempty" yaml:"range,omitempty"`
	Want    string       `json:"want,omitempty" yaml:"want,omitempty"`
	Checked bool         `json:"checked" yaml:"checked"`
	Passed  bool         `json:"passed" yaml:"passed"`
}

// Report collects the results of one script
type Report struct {
	Name      string   `json:"name" yaml:"name"`
	File      string   `json:"file,omitempty" yaml:"file,omitempty"`
	Results   []Result `json:"results" yaml:"results"`
	Passed    int      `json:"passed" yaml:"passed"`
	Failed    int      `json:"failed" yaml:"failed"`
	Unchecked int      `json:"unchecked" yaml:"unchecked"`
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
	switch {
	case !res.Checked:
		r.Unchecked++
	case res.Passed:
		r.Passed++
	default:
		r.Failed++
	}
}

// OK reports whether no checked case failed
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Failures returns the failed results
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Checked && !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

// Err returns a SCRIPT_MISMATCH error listing the failed cases, or nil
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	failed := make([]int, 0, r.Failed)
	for _, res := range r.Failures() {
		failed = append(failed, res.Index)
	}
	return charxerrors.NewErrorBuilder(charxerrors.ModuleScript).
		Operation("check").
		Code(charxerror.CodeScriptMismatch).
		Messagef("%s: %d of %d checked cases failed", r.Name, r.Failed, r.Passed+r.Failed).
		Detail("failed_cases", failed).
		Detail("file", r.File).
		Build()
}

// Runner evaluates scripts
type Runner struct {
	logger *charxlog.Logger
}

// NewRunner creates a runner logging to logger; nil discards logs
func NewRunner(logger *charxlog.Logger) *Runner {
	if logger == nil {
		logger = charxlog.Discard()
	}
	return &Runner{logger: logger.WithName("script")}
}

// Run evaluates every case of s in order. An invalid case aborts the
// run with an error carrying the case index; failed expectations do not.
func (r *Runner) Run(ctx context.Context, s *Script) (*Report, error) {
	timer := r.logger.StartTimer("script.run").WithField("script", s.Name)
	report := &Report{Name: s.Name, File: s.File}

	for i, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			timer.StopWithError(err)
			return report, err
		}

		res, err := Evaluate(c, s.Source)
		if err != nil {
			if e, ok := err.(*charxerror.Error); ok {
				err = e.WithDetail("case", i).WithDetail("script", s.Name)
			}
			timer.StopWithError(err)
			return nil, err
		}
		res.Index = i
		report.add(res)

		r.logger.Trace("case evaluated", charxlog.Fields{
			"case":   i,
			"op":     res.Op,
			"output": res.Output,
			"passed": res.Passed,
		})
		if res.Checked && !res.Passed {
			r.logger.Info("case failed", charxlog.Fields{"case": i, "got": res.Output, "want": res.Want})
		}
	}

	timer.WithField("passed", report.Passed).WithField("failed", report.Failed).Stop()
	return report, nil
}

// Evaluate runs a single case. defaultSource is used when the case has
// no source of its own.
func Evaluate(c Case, defaultSource string) (Result, error) {
	src := defaultSource
	if c.Source != nil {
		src = *c.Source
	}
	res := Result{Name: c.Label(), Op: c.Op, Source: src}
	total := charx.Len(src)

	var r charx.Range
	switch c.Op {
	case OpSubstr:
		start, length, err := signedPair(c.Start, "start", c.Length, "length")
		if err != nil {
			return res, err
		}
		r = charx.ResolveLength(total, start, length)
		res.Output = charx.Substr(src, start, length)
		res.Range = &r

	case OpSubstrU, OpRemove:
		start, length, err := unsignedPair(c.Start, "start", c.Length, "length")
		if err != nil {
			return res, err
		}
		r = charx.ResolveUnsigned(total, start, length)
		res.Range = &r
		if c.Op == OpRemove {
			res.Output = charx.Remove(src, start, length)
		} else {
			res.Output = charx.SubstrUnsigned(src, start, length)
		}

	case OpSubstrEnd:
		start, err := signed(c.Start, "start")
		if err != nil {
			return res, err
		}
		r = charx.ResolveToEnd(total, start)
		res.Output = charx.SubstrToEnd(src, start)
		res.Range = &r

	case OpSubstring:
		start, end, err := signedPair(c.Start, "start", c.End, "end")
		if err != nil {
			return res, err
		}
		r = charx.ResolveBounds(total, start, end)
		res.Output = charx.Substring(src, start, end)
		res.Range = &r

	case OpIndexOf:
		var from uint
		if c.From.IsSet() {
			var err error
			if from, err = c.From.Unsigned(); err != nil {
				return res, err
			}
		}
		res.Output = strconv.Itoa(charx.IndexOf(src, c.Pattern, from))

	case OpConcat:
		res.Output = charx.Concat(c.Parts...)

	case OpLen:
		res.Output = strconv.Itoa(total)

	default:
		return res, charxerrors.InvalidInput(charxerrors.ModuleScript, "evaluate", c.Op, "known operation")
	}

	switch {
	case c.Want != nil:
		res.Checked = true
		res.Want = *c.Want
	case c.WantIndex != nil:
		res.Checked = true
		res.Want = strconv.Itoa(*c.WantIndex)
	}
	res.Passed = res.Checked && res.Output == res.Want
	return res, nil
}

func signed(n Number, field string) (int, error) {
	if !n.IsSet() {
		return 0, missing(field)
	}
	return n.Signed()
}

func unsigned(n Number, field string) (uint, error) {
	if !n.IsSet() {
		return 0, missing(field)
	}
	return n.Unsigned()
}

func signedPair(a Number, aName string, b Number, bName string) (int, int, error) {
	x, err := signed(a, aName)
	if err != nil {
		return 0, 0, err
	}
	y, err := signed(b, bName)
	return x, y, err
}

func unsignedPair(a Number, aName string, b Number, bName string) (uint, uint, error) {
	x, err := unsigned(a, aName)
	if err != nil {
		return 0, 0, err
	}
	y, err := unsigned(b, bName)
	return x, y, err
}

func missing(field string) error {
	return charxerrors.InvalidInput(charxerrors.ModuleScript, "evaluate", nil, field+" argument").
		WithDetail("field", field)
}
