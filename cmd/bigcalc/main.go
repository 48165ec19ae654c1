package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/avdva/bigint"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// options are shared by all subcommands, filled from the flags and the config file.
type options struct {
	configPath         string
	karatsubaThreshold int
	format             string
	jsonNumbers        bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "Arbitrary-precision integer calculator",
		Long: `bigcalc evaluates binary expressions over arbitrary-precision integers.
Division and modulo use floor semantics: 10 / -3 = -4, 10 % -3 = -2.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.apply(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	flags.IntVar(&opts.karatsubaThreshold, "karatsuba-threshold", bigint.DefaultKaratsubaThreshold,
		"operand size in limbs at or below which schoolbook multiplication is used")
	flags.StringVar(&opts.format, "format", formatText, "output format (text|json)")
	flags.BoolVar(&opts.jsonNumbers, "json-numbers", false, "emit json numbers instead of strings")

	rootCmd.AddCommand(newEvalCmd(opts))
	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newDemoCmd())
	return rootCmd
}

// apply merges the config file with the flags, flags win, and configures the bigint package.
func (opts *options) apply(cmd *cobra.Command) error {
	if opts.configPath != "" {
		cfg, err := loadConfig(opts.configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if cfg.KaratsubaThreshold != nil && !flags.Changed("karatsuba-threshold") {
			opts.karatsubaThreshold = *cfg.KaratsubaThreshold
		}
		if cfg.Format != "" && !flags.Changed("format") {
			opts.format = cfg.Format
		}
		if cfg.JSONNumbers != nil && !flags.Changed("json-numbers") {
			opts.jsonNumbers = *cfg.JSONNumbers
		}
	}
	switch opts.format {
	case formatText, formatJSON:
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}
	if opts.karatsubaThreshold < 1 {
		return fmt.Errorf("karatsuba threshold must be positive, got %d", opts.karatsubaThreshold)
	}
	bigint.KaratsubaThreshold = opts.karatsubaThreshold
	bigint.JSONMode = bigint.JSONModeString
	if opts.jsonNumbers {
		bigint.JSONMode = bigint.JSONModeNumber
	}
	return nil
}

func printError(w io.Writer, err error) {
	color.New(color.FgRed, color.Bold).Fprint(w, "error: ")
	fmt.Fprintln(w, err)
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
