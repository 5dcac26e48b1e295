package script

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	charxerror "github.com/msto63/charx/foundation/core/error"
	"github.com/msto63/charx/foundation/utils/charx"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestParseSigned(t *testing.T) {
	tests := []struct {
		in   string
		want int
		code charxerror.Code
	}{
		{"0", 0, ""},
		{"-5", -5, ""},
		{" 42 ", 42, ""},
		{"min", math.MinInt, ""},
		{"MAX", math.MaxInt, ""},
		{"abc", 0, charxerror.CodeInvalidInput},
		{"", 0, charxerror.CodeInvalidInput},
		{"1.5", 0, charxerror.CodeInvalidInput},
		{"99999999999999999999", 0, charxerror.CodeValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSigned(tt.in)
			if tt.code != "" {
				require.Error(t, err)
				assert.True(t, charxerror.HasCode(err, tt.code), "code = %v", charxerror.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnsigned(t *testing.T) {
	got, err := ParseUnsigned("max")
	require.NoError(t, err)
	assert.Equal(t, uint(math.MaxUint), got)

	got, err = ParseUnsigned("min")
	require.NoError(t, err)
	assert.Equal(t, uint(0), got)

	got, err = ParseUnsigned("18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, uint(math.MaxUint), got)

	_, err = ParseUnsigned("-1")
	assert.True(t, charxerror.HasCode(err, charxerror.CodeInvalidInput))
}

func TestNumberYAML(t *testing.T) {
	var c Case
	require.NoError(t, yaml.Unmarshal([]byte("op: substr\nstart: -3\nlength: max\n"), &c))
	assert.True(t, c.Start.IsSet())
	assert.Equal(t, "-3", c.Start.String())
	assert.Equal(t, "max", c.Length.String())
	assert.False(t, c.End.IsSet())

	err := yaml.Unmarshal([]byte("start: [1, 2]\n"), &c)
	assert.Error(t, err)

	out, err := yaml.Marshal(Case{Op: OpSubstr, Start: N("-3"), Length: N("max")})
	require.NoError(t, err)
	assert.Equal(t, "op: substr\nstart: -3\nlength: max\n", string(out))
}

func TestNumberTOML(t *testing.T) {
	var n Number
	require.NoError(t, n.UnmarshalTOML(int64(-7)))
	assert.Equal(t, "-7", n.String())
	require.NoError(t, n.UnmarshalTOML("min"))
	assert.Equal(t, "min", n.String())
	assert.Error(t, n.UnmarshalTOML(1.5))
}

func TestLoadYAML(t *testing.T) {
	s, err := Load("testdata/reference.yaml")
	require.NoError(t, err)

	assert.Equal(t, "reference", s.Name)
	assert.Equal(t, "testdata/reference.yaml", s.File)
	assert.Equal(t, "0123456789", s.Source)
	require.NotEmpty(t, s.Cases)
	assert.Equal(t, OpSubstr, s.Cases[0].Op)
	assert.Equal(t, "accents slice", s.Cases[28].Label())
}

func TestLoadTOML(t *testing.T) {
	s, err := Load("testdata/reference.toml")
	require.NoError(t, err)

	assert.Equal(t, "reference-toml", s.Name)
	require.Len(t, s.Cases, 8)
	assert.Equal(t, "max", s.Cases[4].Length.String())
	assert.Nil(t, s.Cases[7].Want)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	assert.True(t, charxerror.HasCode(err, charxerror.CodeNotFound))

	_, err = Load("testdata/invalid_op.yaml")
	require.Error(t, err)
	assert.True(t, charxerror.HasCode(err, charxerror.CodeInvalidInput))
	e, ok := err.(*charxerror.Error)
	require.True(t, ok)
	idx, _ := e.Detail("case")
	assert.Equal(t, 1, idx)
	file, _ := e.Detail("file")
	assert.Equal(t, "testdata/invalid_op.yaml", file)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("cases:\n  - op: substr\n    begin: 1\n"), FormatYAML)
	assert.True(t, charxerror.HasCode(err, charxerror.CodeInvalidFormat))

	_, err = Parse([]byte("[[cases]]\nop = \"substr\"\nbegin = 1\n"), FormatTOML)
	assert.True(t, charxerror.HasCode(err, charxerror.CodeInvalidFormat))

	_, err = Parse([]byte("cases = ["), FormatTOML)
	assert.True(t, charxerror.HasCode(err, charxerror.CodeInvalidFormat))
}

func TestMarshalRoundTrip(t *testing.T) {
	s := &Script{
		Name:   "tiny",
		Source: "abc",
		Cases:  []Case{{Op: OpSubstr, Start: N("1"), Length: N("max"), Want: strPtr("bc")}},
	}
	data, err := s.Marshal()
	require.NoError(t, err)

	back, err := Parse(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, s.Cases[0].Want, back.Cases[0].Want)
	assert.Equal(t, "max", back.Cases[0].Length.String())
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		c      Case
		output string
		rng    *charx.Range
	}{
		{"substr", Case{Op: OpSubstr, Start: N("5"), Length: N("-3")}, "345", &charx.Range{Start: 3, End: 6}},
		{"substru", Case{Op: OpSubstrU, Start: N("8"), Length: N("max")}, "89", &charx.Range{Start: 8, End: 10}},
		{"substr_end", Case{Op: OpSubstrEnd, Start: N("-2")}, "89", &charx.Range{Start: 8, End: 10}},
		{"substring", Case{Op: OpSubstring, Start: N("7"), End: N("min")}, "0123456", &charx.Range{Start: 0, End: 7}},
		{"remove", Case{Op: OpRemove, Start: N("0"), Length: N("9")}, "9", &charx.Range{Start: 0, End: 9}},
		{"indexof", Case{Op: OpIndexOf, Pattern: "56"}, "5", nil},
		{"indexof from", Case{Op: OpIndexOf, Pattern: "56", From: N("6")}, "-1", nil},
		{"concat", Case{Op: OpConcat, Parts: []string{"é", "à"}}, "éà", nil},
		{"len", Case{Op: OpLen, Source: strPtr("éèçà")}, "4", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(tt.c, "0123456789")
			require.NoError(t, err)
			assert.Equal(t, tt.output, res.Output)
			assert.Equal(t, tt.rng, res.Range)
			assert.False(t, res.Checked)
			assert.False(t, res.Passed)
		})
	}
}

func TestEvaluateChecks(t *testing.T) {
	res, err := Evaluate(Case{Op: OpSubstr, Start: N("0"), Length: N("2"), Want: strPtr("01")}, "0123")
	require.NoError(t, err)
	assert.True(t, res.Checked)
	assert.True(t, res.Passed)

	res, err = Evaluate(Case{Op: OpIndexOf, Pattern: "3", WantIndex: intPtr(2)}, "0123")
	require.NoError(t, err)
	assert.True(t, res.Checked)
	assert.False(t, res.Passed)
	assert.Equal(t, "2", res.Want)
	assert.Equal(t, "3", res.Output)
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name string
		c    Case
		code charxerror.Code
	}{
		{"missing start", Case{Op: OpSubstr, Length: N("1")}, charxerror.CodeInvalidInput},
		{"missing length", Case{Op: OpRemove, Start: N("1")}, charxerror.CodeInvalidInput},
		{"missing end", Case{Op: OpSubstring, Start: N("1")}, charxerror.CodeInvalidInput},
		{"negative unsigned", Case{Op: OpSubstrU, Start: N("-1"), Length: N("1")}, charxerror.CodeInvalidInput},
		{"bad from", Case{Op: OpIndexOf, Pattern: "a", From: N("x")}, charxerror.CodeInvalidInput},
		{"huge", Case{Op: OpSubstrEnd, Start: N("1e3")}, charxerror.CodeInvalidInput},
		{"unknown op", Case{Op: "trim"}, charxerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.c, "abc")
			require.Error(t, err)
			assert.True(t, charxerror.HasCode(err, tt.code), "code = %v", charxerror.GetCode(err))
		})
	}
}

func TestRunReference(t *testing.T) {
	for _, file := range []string{"testdata/reference.yaml", "testdata/reference.toml"} {
		t.Run(file, func(t *testing.T) {
			s, err := Load(file)
			require.NoError(t, err)

			report, err := NewRunner(nil).Run(context.Background(), s)
			require.NoError(t, err)
			for _, f := range report.Failures() {
				t.Errorf("case %d (%s): got %q, want %q", f.Index, f.Name, f.Output, f.Want)
			}
			assert.True(t, report.OK())
			assert.NoError(t, report.Err())
			assert.Equal(t, len(s.Cases), len(report.Results))
		})
	}
}

func TestRunFailing(t *testing.T) {
	s, err := Load("testdata/failing.yaml")
	require.NoError(t, err)

	report, err := NewRunner(nil).Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, 1, report.Unchecked)
	assert.False(t, report.OK())

	failures := report.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, 1, failures[0].Index)
	assert.Equal(t, "234", failures[0].Output)

	rerr := report.Err()
	require.Error(t, rerr)
	assert.True(t, charxerror.HasCode(rerr, charxerror.CodeScriptMismatch))
	assert.Contains(t, rerr.Error(), "failing: 2 of 3 checked cases failed")
}

func TestRunInvalidCase(t *testing.T) {
	s := &Script{Name: "bad", Source: "abc", Cases: []Case{
		{Op: OpLen},
		{Op: OpSubstr, Start: N("zero"), Length: N("1")},
	}}

	report, err := NewRunner(nil).Run(context.Background(), s)
	assert.Nil(t, report)
	require.Error(t, err)
	e, ok := err.(*charxerror.Error)
	require.True(t, ok)
	idx, _ := e.Detail("case")
	assert.Equal(t, 1, idx)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &Script{Source: "abc", Cases: []Case{{Op: OpLen}}}
	report, err := NewRunner(nil).Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Results)
}
