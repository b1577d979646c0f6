package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/strutils"
)

var (
	trimSide string
	trimByte string
	trimAny  string
	trimStr  string
)

var trimCmd = &cobra.Command{
	Use:   "trim [text]",
	Short: "Strip leading and trailing elements",
	Long: `Strips whitespace, one byte, any byte of a set or whole occurrences of
a string from one or both ends of the input.

Examples:
  strutil trim "   padded   "
  strutil trim --side start --byte x "xxxvalue"
  strutil trim --any "xyz" "xyzvaluezy"
  strutil trim --str hello "hellovaluehello"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTrim,
}

func init() {
	rootCmd.AddCommand(trimCmd)

	trimCmd.Flags().StringVar(&trimSide, "side", "both", "both, start or end")
	trimCmd.Flags().StringVar(&trimByte, "byte", "", "strip this single byte")
	trimCmd.Flags().StringVar(&trimAny, "any", "", "strip any byte of this set")
	trimCmd.Flags().StringVar(&trimStr, "str", "", "strip whole occurrences of this string")
	trimCmd.MarkFlagsMutuallyExclusive("byte", "any", "str")
}

type trimFuncs struct {
	both, start, end func(c *strutils.Context, s []byte) (strutils.Seq, error)
}

func (f trimFuncs) pick(side string) (func(c *strutils.Context, s []byte) (strutils.Seq, error), error) {
	switch side {
	case "both":
		return f.both, nil
	case "start":
		return f.start, nil
	case "end":
		return f.end, nil
	default:
		return nil, fmt.Errorf("unknown side %q", side)
	}
}

func trimmer() (trimFuncs, error) {
	switch {
	case trimByte != "":
		if len(trimByte) != 1 {
			return trimFuncs{}, fmt.Errorf("--byte takes exactly one byte, got %q", trimByte)
		}
		b := trimByte[0]
		return trimFuncs{
			both:  func(c *strutils.Context, s []byte) (strutils.Seq, error) { return c.TrimByte(s, b) },
			start: func(c *strutils.Context, s []byte) (strutils.Seq, error) { return c.TrimStartByte(s, b) },
			end:   func(c *strutils.Context, s []byte) (strutils.Seq, error) { return c.TrimEndByte(s, b) },
		}, nil
	case trimAny != "":
		set := []byte(trimAny)
		return trimFuncs{
			both:  func(c *strutils.Context, s []byte) (strutils.Seq, error) { return c.TrimAny(s, set) },
			start: func(c *strutils.Context, s []byte) (strutils.Seq, error) { return c.TrimStartAny(s, set) },
			end:   func(c *strutils.Context, s []byte) (strutils.Seq, error) { return c.TrimEndAny(s, set) },
		}, nil
	case trimStr != "":
		needle := []byte(trimStr)
		return trimFuncs{
			both:  func(c *strutils.Context, s []byte) (strutils.Seq, error) { return c.TrimStr(s, needle) },
			start: func(c *strutils.Context, s []byte) (strutils.Seq, error) { return c.TrimStartStr(s, needle) },
			end:   func(c *strutils.Context, s []byte) (strutils.Seq, error) { return c.TrimEndStr(s, needle) },
		}, nil
	default:
		return trimFuncs{
			both:  (*strutils.Context).Trim,
			start: (*strutils.Context).TrimStart,
			end:   (*strutils.Context).TrimEnd,
		}, nil
	}
}

func runTrim(cmd *cobra.Command, args []string) error {
	funcs, err := trimmer()
	if err != nil {
		return err
	}
	fn, err := funcs.pick(trimSide)
	if err != nil {
		return err
	}
	in, err := input(cmd, args, 0)
	if err != nil {
		return err
	}
	return withContext(cmd, func(c *strutils.Context) error {
		out, err := fn(c, in)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	})
}
