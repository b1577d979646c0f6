package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/strutils"
)

var (
	splitSep   string
	splitAny   string
	splitStr   string
	splitQuote bool
)

var splitCmd = &cobra.Command{
	Use:   "split [text]",
	Short: "Split the input into segments",
	Long: `Splits on whitespace runs by default, dropping empty segments. With
--sep, --any or --str every delimiter occurrence ends a segment and empty
segments are kept. One segment is printed per line.

Examples:
  strutil split "this is a string"
  strutil split --sep , "a,,b"
  strutil split --str "[sep]" "a[sep]b"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().StringVar(&splitSep, "sep", "", "single-byte delimiter")
	splitCmd.Flags().StringVar(&splitAny, "any", "", "split on any byte of this set")
	splitCmd.Flags().StringVar(&splitStr, "str", "", "multi-byte delimiter")
	splitCmd.Flags().BoolVarP(&splitQuote, "quote", "q", false, "print segments as quoted strings")
	splitCmd.MarkFlagsMutuallyExclusive("sep", "any", "str")
}

func runSplit(cmd *cobra.Command, args []string) error {
	in, err := input(cmd, args, 0)
	if err != nil {
		return err
	}
	return withContext(cmd, func(c *strutils.Context) error {
		var (
			parts strutils.List
			err   error
		)
		switch {
		case cmd.Flags().Changed("sep"):
			if len(splitSep) != 1 {
				return fmt.Errorf("--sep takes exactly one byte, got %q", splitSep)
			}
			parts, err = c.SplitByte(in, splitSep[0])
		case cmd.Flags().Changed("any"):
			parts, err = c.SplitAny(in, []byte(splitAny))
		case cmd.Flags().Changed("str"):
			parts, err = c.SplitStr(in, []byte(splitStr))
		default:
			parts, err = c.Split(in)
		}
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, p := range parts {
			if splitQuote {
				fmt.Fprintf(w, "%q\n", p)
			} else {
				fmt.Fprintln(w, p)
			}
		}
		return nil
	})
}
