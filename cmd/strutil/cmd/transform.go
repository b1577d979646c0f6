package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/strutils"
)

var replaceCmd = &cobra.Command{
	Use:   "replace <needle> <replacement> [text]",
	Short: "Replace every non-overlapping occurrence of needle",
	Example: `  strutil replace , "; " "a,b,c"
  strutil replace , "" "a,b,c"`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := input(cmd, args, 2)
		if err != nil {
			return err
		}
		return transform(cmd, func(c *strutils.Context) (strutils.Seq, error) {
			return c.Replace(in, []byte(args[0]), []byte(args[1]))
		})
	},
}

var (
	substrStart int
	substrEnd   int
)

var substrCmd = &cobra.Command{
	Use:   "substr [text]",
	Short: "Extract the half-open range [start, end)",
	Long: `Extracts the elements from --start up to, not including, --end.
-1 as start means the beginning and -1 as end means the end of the input.`,
	Example: `  strutil substr --end 4 "hello world"
  strutil substr --start 6 "hello world"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := input(cmd, args, 0)
		if err != nil {
			return err
		}
		return transform(cmd, func(c *strutils.Context) (strutils.Seq, error) {
			return c.Substr(in, substrStart, substrEnd)
		})
	},
}

var upperCmd = &cobra.Command{
	Use:   "upper [text]",
	Short: "Convert ASCII letters to upper case",
	Args:  cobra.MaximumNArgs(1),
	RunE:  unary((*strutils.Context).ToUpper),
}

var lowerCmd = &cobra.Command{
	Use:   "lower [text]",
	Short: "Convert ASCII letters to lower case",
	Args:  cobra.MaximumNArgs(1),
	RunE:  unary((*strutils.Context).ToLower),
}

var zipCmd = &cobra.Command{
	Use:   "zip [text]",
	Short: "Collapse every whitespace run to its first byte",
	Args:  cobra.MaximumNArgs(1),
	RunE:  unary((*strutils.Context).Zip),
}

func init() {
	rootCmd.AddCommand(replaceCmd, substrCmd, upperCmd, lowerCmd, zipCmd)

	substrCmd.Flags().IntVar(&substrStart, "start", -1, "first index, -1 for the beginning")
	substrCmd.Flags().IntVar(&substrEnd, "end", -1, "index past the last element, -1 for the end")
}

func unary(fn func(c *strutils.Context, s []byte) (strutils.Seq, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		in, err := input(cmd, args, 0)
		if err != nil {
			return err
		}
		return transform(cmd, func(c *strutils.Context) (strutils.Seq, error) {
			return fn(c, in)
		})
	}
}

func transform(cmd *cobra.Command, fn func(c *strutils.Context) (strutils.Seq, error)) error {
	return withContext(cmd, func(c *strutils.Context) error {
		out, err := fn(c)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	})
}
