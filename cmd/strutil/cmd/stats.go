package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/strutils"
)

type statsReport struct {
	Lines   int              `yaml:"lines"`
	Words   int              `yaml:"words"`
	Context strutils.Metrics `yaml:"context"`
}

var statsCmd = &cobra.Command{
	Use:   "stats [text]",
	Short: "Tokenize the input and report registry and arena usage",
	Long: `Splits the input into lines, trims and word-splits each line, then
prints the line and word counts with a snapshot of the context as YAML.

Examples:
  strutil stats < README.md
  strutil --config strutil.toml stats < access.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	in, err := input(cmd, args, 0)
	if err != nil {
		return err
	}
	return withContext(cmd, func(c *strutils.Context) error {
		body, err := c.TrimEnd(in)
		if err != nil {
			return err
		}
		var report statsReport
		if body.Len() > 0 {
			lines, err := c.SplitByte(body, '\n')
			if err != nil {
				return err
			}
			report.Lines = len(lines)
			for _, line := range lines {
				trimmed, err := c.Trim(line)
				if err != nil {
					return err
				}
				words, err := c.Split(trimmed)
				if err != nil {
					return err
				}
				report.Words += len(words)
			}
		}
		report.Context = c.Metrics()

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	})
}
