package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the root command with fresh flag values.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestTrimCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"trim", "  padded \t"}, "padded\n"},
		{[]string{"trim", "--side", "start", "  padded  "}, "padded  \n"},
		{[]string{"trim", "--byte", "x", "xxvaluexx"}, "value\n"},
		{[]string{"trim", "--side", "end", "--any", "zy", "xyzvaluezy"}, "xyzvalue\n"},
		{[]string{"trim", "--str", "ab", "ababvalueab"}, "value\n"},
	}
	for _, tt := range tests {
		out, _, err := run(t, "", tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, out, tt.args)
	}

	_, _, err := run(t, "", "trim", "--byte", "xy", "value")
	assert.Error(t, err)
	_, _, err = run(t, "", "trim", "--side", "middle", "value")
	assert.Error(t, err)
}

func TestSplitCommand(t *testing.T) {
	out, _, err := run(t, "", "split", "this  is a\tstring")
	require.NoError(t, err)
	assert.Equal(t, "this\nis\na\nstring\n", out)

	out, _, err = run(t, "", "split", "-q", "--sep", ",", "a,,b")
	require.NoError(t, err)
	assert.Equal(t, "\"a\"\n\"\"\n\"b\"\n", out)

	out, _, err = run(t, "a[sep]b", "split", "--str", "[sep]")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)

	_, _, err = run(t, "", "split", "--any", "", "abc")
	assert.Error(t, err)
}

func TestSearchCommands(t *testing.T) {
	text := "this string contains pebble, it does! (pebble again)"

	out, _, err := run(t, "", "find", "pebble", text)
	require.NoError(t, err)
	assert.Equal(t, "21\n", out)

	out, _, err = run(t, "", "find", "-r", "pebble", text)
	require.NoError(t, err)
	assert.Equal(t, "39\n", out)

	out, _, err = run(t, text, "find", "--any", "!?")
	require.NoError(t, err)
	assert.Equal(t, "36\n", out)

	out, _, err = run(t, "", "count", "aa", "aaaa")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, _, err = run(t, "", "count", "--mode", "byte", "h", "hello how are you, hello")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestTransformCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"replace", ",", "+", "a,b,c"}, "a+b+c\n"},
		{[]string{"substr", "--end", "4", "hello world"}, "hell\n"},
		{[]string{"substr", "--start", "6", "hello world"}, "world\n"},
		{[]string{"upper", "make me big"}, "MAKE ME BIG\n"},
		{[]string{"lower", "MAKE ME SMALL"}, "make me small\n"},
		{[]string{"zip", "a    b"}, "a b\n"},
	}
	for _, tt := range tests {
		out, _, err := run(t, "", tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, out, tt.args)
	}
}

func TestTraceFlag(t *testing.T) {
	_, errOut, err := run(t, "", "--trace", "warn", "substr", "--start", "5", "--end", "2", "hello")
	require.Error(t, err)
	assert.Contains(t, errOut, "op=Substr")

	_, _, err = run(t, "", "--trace", "loud", "upper", "x")
	assert.Error(t, err)
}

func TestStatsCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "strutil.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("max_sequences: 4\nmax_lists: 1\n"), 0o600))

	out, _, err := run(t, "one two\n  three  \n\nfour five six\n", "--config", cfg, "stats")
	require.NoError(t, err)

	var report statsReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, 4, report.Lines)
	assert.Equal(t, 6, report.Words)
	assert.False(t, report.Context.Released)
	assert.GreaterOrEqual(t, report.Context.Sequences.Capacity, report.Context.Sequences.Occupancy)
	assert.Greater(t, report.Context.Sequences.Capacity, 4, "registry grew past the configured start")
	assert.Equal(t, 5, report.Context.Lists.Occupancy)
}
