package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/strutils"
)

var (
	findReverse bool
	findAny     bool
	countMode   string
)

var findCmd = &cobra.Command{
	Use:   "find <needle> [text]",
	Short: "Print the index of the first (or last) match",
	Long: `Prints the index of the first occurrence of needle in the input, or -1.

Examples:
  strutil find pebble "this contains pebble, it does! (pebble again)"
  strutil find --reverse pebble "this contains pebble, it does! (pebble again)"
  strutil find --any ",;" "a;b,c"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFind,
}

var countCmd = &cobra.Command{
	Use:   "count <needle> [text]",
	Short: "Count occurrences in the input",
	Long: `Counts non-overlapping occurrences of needle. With --mode byte the
needle must be one byte; with --mode any every input byte that belongs to the
needle set is counted.

Examples:
  strutil count aa aaaa
  strutil count --mode byte h "hello how are you, hello"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCount,
}

func init() {
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(countCmd)

	findCmd.Flags().BoolVarP(&findReverse, "reverse", "r", false, "search from the end")
	findCmd.Flags().BoolVar(&findAny, "any", false, "match any byte of needle")
	countCmd.Flags().StringVar(&countMode, "mode", "str", "str, byte or any")
}

func runFind(cmd *cobra.Command, args []string) error {
	needle := []byte(args[0])
	in, err := input(cmd, args, 1)
	if err != nil {
		return err
	}
	var idx int
	switch {
	case findAny && findReverse:
		idx = strutils.RFindAny(in, needle)
	case findAny:
		idx = strutils.FindAny(in, needle)
	case findReverse:
		idx = strutils.RFind(in, needle)
	default:
		idx = strutils.Find(in, needle)
	}
	fmt.Fprintln(cmd.OutOrStdout(), idx)
	return nil
}

func runCount(cmd *cobra.Command, args []string) error {
	needle := []byte(args[0])
	in, err := input(cmd, args, 1)
	if err != nil {
		return err
	}
	var n int
	switch countMode {
	case "str":
		n = strutils.Count(in, needle)
	case "byte":
		if len(needle) != 1 {
			return fmt.Errorf("byte mode takes exactly one byte, got %q", args[0])
		}
		n = strutils.CountByte(in, needle[0])
	case "any":
		n = strutils.CountAny(in, needle)
	default:
		return fmt.Errorf("unknown mode %q", countMode)
	}
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}
