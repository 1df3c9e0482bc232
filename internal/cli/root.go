// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/avdva/floatbits/binary32"
	"github.com/avdva/floatbits/internal/logger"
	"github.com/avdva/floatbits/report"
)

// defaultValue is reported when no values are given.
const defaultValue = "42.42"

func Execute() {
	cmd := newRootCmd()
	cmd.SetArgs(escapeValues(cmd, os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var format string

	cmd := &cobra.Command{
		Use:   "bits [value...]",
		Short: "Show sign, exponent and mantissa of IEEE-754 single-precision floats",
		Long: `Splits every value into its sign, exponent and fraction bits,
decodes them, and builds the float back from the decoded parts.

Values are decimal numbers (42.42, -1e-45, inf, nan),
raw bits in hex (0x4229ae14), or raw bits in binary (0b0_10000100_01010011010111000010100).
Negative values may be given as is, like -2.5 or -inf.
Anything after -- is taken as a value.
Without values ` + defaultValue + ` is reported.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Setup(logger.Config{
				Out:   cmd.ErrOrStderr(),
				Debug: debug,
			})
			defer logger.Reset()

			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{defaultValue}
			}
			return run(cmd.OutOrStdout(), f, args)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")
	cmd.Flags().StringVarP(&format, "format", "f", report.FormatText.String(), "output format: text, json or yaml")
	return cmd
}

// run reports every valid value and returns errors for all the others.
func run(w io.Writer, f report.Format, args []string) error {
	log := logger.L()
	var result *multierror.Error
	written := 0
	for _, arg := range args {
		value, err := binary32.Parse(arg)
		if err != nil {
			log.Debug("value.rejected", "input", arg, "error", err)
			result = multierror.Append(result, fmt.Errorf("%q: %w", arg, err))
			continue
		}
		r := report.New(value)
		log.Debug("value.decoded", "input", arg, "bits", r.Bits, "class", r.Class.String())
		if written > 0 {
			if err := writeSeparator(w, f); err != nil {
				return err
			}
		}
		if err := r.Write(w, f); err != nil {
			return err
		}
		written++
	}
	return result.ErrorOrNil()
}

func writeSeparator(w io.Writer, f report.Format) error {
	var sep string
	switch f {
	case report.FormatText:
		sep = "\n"
	case report.FormatYAML:
		sep = "---\n"
	default:
		return nil
	}
	_, err := io.WriteString(w, sep)
	return err
}

// escapeValues moves all values behind a "--" terminator,
// so that negative numbers are not taken for shorthand flags.
// A flag is an argument starting with '-', which is not a valid value.
func escapeValues(cmd *cobra.Command, args []string) []string {
	var flags, values []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			values = append(values, args[i+1:]...)
			i = len(args)
		case !isFlag(arg):
			values = append(values, arg)
		default:
			flags = append(flags, arg)
			if i+1 < len(args) && takesValue(cmd, arg) {
				i++
				flags = append(flags, args[i])
			}
		}
	}
	return append(append(flags, "--"), values...)
}

func isFlag(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := binary32.Parse(arg)
	return err != nil
}

// takesValue returns true, if the flag's value is the next argument.
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	var lookup func(*pflag.FlagSet) *pflag.Flag
	switch {
	case strings.HasPrefix(arg, "--"):
		lookup = func(fs *pflag.FlagSet) *pflag.Flag { return fs.Lookup(arg[2:]) }
	case len(arg) == 2:
		lookup = func(fs *pflag.FlagSet) *pflag.Flag { return fs.ShorthandLookup(arg[1:]) }
	default: // -fjson
		return false
	}
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
		if flag := lookup(fs); flag != nil {
			return flag.NoOptDefVal == ""
		}
	}
	return false
}
