package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/strutils"
)

var (
	cfgFile    string
	traceLevel string
)

var rootCmd = &cobra.Command{
	Use:   "strutil",
	Short: "Byte string toolkit",
	Long: `strutil runs the strutils operations on its arguments or on stdin.

Every command allocates through one context that is released on exit.
The input is the last positional argument, or stdin when it is omitted.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml)")
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "", "trace level: silent, warn (overrides config)")
}

// newContext builds a Context from --config and --trace. Failures are
// logged to the command's stderr.
func newContext(cmd *cobra.Command) (*strutils.Context, error) {
	cfg := strutils.DefaultConfig()
	if cfgFile != "" {
		var err error
		if cfg, err = strutils.LoadConfig(cfgFile); err != nil {
			return nil, err
		}
	}
	if traceLevel != "" {
		cfg.Trace = traceLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
	opts := append(cfg.Options(), strutils.WithLogger(logger))
	return strutils.New(opts...), nil
}

// input returns args[i] if present, otherwise all of stdin.
func input(cmd *cobra.Command, args []string, i int) ([]byte, error) {
	if len(args) > i {
		return []byte(args[i]), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return b, nil
}

// withContext runs fn against a fresh Context and releases it afterwards.
func withContext(cmd *cobra.Command, fn func(c *strutils.Context) error) error {
	c, err := newContext(cmd)
	if err != nil {
		return err
	}
	defer c.Release()
	return fn(c)
}
