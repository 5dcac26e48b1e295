package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/charx/foundation/core/config"
	charxerror "github.com/msto63/charx/foundation/core/error"
	charxerrors "github.com/msto63/charx/foundation/core/errors"
	charxlog "github.com/msto63/charx/foundation/core/log"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string

	// replaced in tests
	discoveryOptions = config.DefaultDiscoveryOptions

	settings = config.DefaultSettings()
	logger   = charxlog.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "charx",
	Short: "charx - character-indexed string tools",
	Long: `charx addresses substrings by character instead of byte offset.

Positions count Unicode characters, so multi-byte text is never cut in
the middle of a character. Negative positions count from the end.

Operations:
  substr      substring by start and (signed) length
  substru     substring by unsigned start and length
  substr-end  substring from start to the end
  substring   substring between two positions
  remove      remove characters
  indexof     character index of a pattern
  concat      join strings
  len         character length

Numbers accept "min" and "max" for the integer extremes.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the command line and reports a failure on stderr
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		logger.LogError(err)
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if code := charxerror.GetCode(err); code != charxerror.CodeUnknown {
		return code.ExitCode()
	}
	// unknown commands and flags come straight from cobra
	return 2
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: charx.{toml,yaml} in ., ./config or ~/.config/charx)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "result format: text, json or yaml (default from config, else text)")
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := config.ReadSettings(cfg)
	if err != nil {
		return err
	}

	if outputFormat != "" {
		format := strings.ToLower(strings.TrimSpace(outputFormat))
		if !config.ValidOutputFormat(format) {
			return charxerrors.InvalidInput(charxerrors.ModuleCLI, "output", outputFormat, "text, json or yaml")
		}
		s.OutputFormat = format
	}
	if verbose && s.LogLevel > charxlog.LevelDebug {
		s.LogLevel = charxlog.LevelDebug
	}
	settings = s

	logger = charxlog.NewWithConfig(charxlog.Config{
		Level:  s.LogLevel,
		Format: s.LogFormat,
		Output: cmd.ErrOrStderr(),
		Name:   "charx",
	}).WithCorrelationID(uuid.NewString())

	logger.Debug("settings loaded", charxlog.Fields{
		"command":       cmd.CommandPath(),
		"config":        cfg.FilePath(),
		"output_format": s.OutputFormat,
		"log_level":     s.LogLevel.String(),
	})
	return nil
}

func loadConfig() (*config.Config, error) {
	opts := discoveryOptions()
	if cfgFile == "" {
		return config.Discover(opts)
	}
	return config.LoadWithOptions(cfgFile, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: opts.EnvPrefix,
	})
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
