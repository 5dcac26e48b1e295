package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	charxerror "github.com/msto63/charx/foundation/core/error"
	charxerrors "github.com/msto63/charx/foundation/core/errors"
	"github.com/msto63/charx/internal/script"
)

// exactArgs is cobra.ExactArgs with an INVALID_INPUT error
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return argCountError(cmd, args, fmt.Sprintf("%d arguments", n))
		}
		return nil
	}
}

func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return argCountError(cmd, args, fmt.Sprintf("at least %d arguments", n))
		}
		return nil
	}
}

func argCountError(cmd *cobra.Command, args []string, expected string) error {
	return charxerrors.InvalidInput(charxerrors.ModuleCLI, cmd.Name(), strings.Join(args, " "),
		expected+" ("+cmd.UseLine()+")").
		WithDetail("got", len(args))
}

// signedArg parses a signed position or length argument
func signedArg(name, value string) (int, error) {
	n, err := script.ParseSigned(value)
	if err != nil {
		return 0, charxerror.Wrap(err, "argument "+name).WithDetail("argument", name)
	}
	return n, nil
}

func unsignedArg(name, value string) (uint, error) {
	n, err := script.ParseUnsigned(value)
	if err != nil {
		return 0, charxerror.Wrap(err, "argument "+name).WithDetail("argument", name)
	}
	return n, nil
}

func signedPair(aName, a, bName, b string) (int, int, error) {
	x, err := signedArg(aName, a)
	if err != nil {
		return 0, 0, err
	}
	y, err := signedArg(bName, b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func unsignedPair(aName, a, bName, b string) (uint, uint, error) {
	x, err := unsignedArg(aName, a)
	if err != nil {
		return 0, 0, err
	}
	y, err := unsignedArg(bName, b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
