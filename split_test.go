package strutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	c := New()
	defer c.Release()

	tests := []struct {
		in   string
		want []string
	}{
		{"  a   b ", []string{"a", "b"}},
		{"this is a string", []string{"this", "is", "a", "string"}},
		{"one\ttwo\r\nthree", []string{"one", "two", "three"}},
		{"single", []string{"single"}},
		{"   ", []string{}},
		{"", []string{}},
	}
	for _, tt := range tests {
		got, err := c.Split(bs(tt.in))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Strings(), "Split(%q)", tt.in)
		assert.Len(t, got, len(tt.want))
	}
}

func TestSplitIsLossy(t *testing.T) {
	c := New()
	defer c.Release()

	in := bs("a  b")
	parts, err := c.Split(in)
	require.NoError(t, err)
	joined, err := c.Join(parts, bs(" "))
	require.NoError(t, err)
	assert.NotEqual(t, string(in), joined.String())
	assert.Equal(t, "a b", joined.String())
}

func TestSplitByte(t *testing.T) {
	c := New()
	defer c.Release()

	tests := []struct {
		in   string
		want []string
	}{
		{"a,,b", []string{"a", "", "b"}},
		{"this,is,a,string", []string{"this", "is", "a", "string"}},
		{",", []string{"", ""}},
		{",a,", []string{"", "a", ""}},
		{"none", []string{"none"}},
		{"", []string{""}},
	}
	for _, tt := range tests {
		got, err := c.SplitByte(bs(tt.in), ',')
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Strings(), "SplitByte(%q)", tt.in)
		assert.Equal(t, CountByte(bs(tt.in), ',')+1, len(got))
	}
}

func TestSplitAny(t *testing.T) {
	c := New()
	defer c.Release()

	got, err := c.SplitAny(bs("this,is*a?string"), bs(",*?"))
	require.NoError(t, err)
	assert.Equal(t, []string{"this", "is", "a", "string"}, got.Strings())

	got, err = c.SplitAny(bs("a,*b"), bs(",*"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "b"}, got.Strings())

	_, err = c.SplitAny(bs("abc"), bs(""))
	assert.ErrorIs(t, err, ErrEmptyDelimiter)
}

func TestSplitStr(t *testing.T) {
	c := New()
	defer c.Release()

	tests := []struct {
		in, sep string
		want    []string
	}{
		{"this[sep]is[sep]a[sep]string", "[sep]", []string{"this", "is", "a", "string"}},
		{"a--b----c", "--", []string{"a", "b", "", "c"}},
		{"--", "--", []string{"", ""}},
		{"aaa", "aa", []string{"", "a"}},
		{"no sep here", "[sep]", []string{"no sep here"}},
		{"ab", "abc", []string{"ab"}},
	}
	for _, tt := range tests {
		got, err := c.SplitStr(bs(tt.in), bs(tt.sep))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Strings(), "SplitStr(%q, %q)", tt.in, tt.sep)
		assert.Equal(t, Count(bs(tt.in), bs(tt.sep))+1, len(got))
	}

	_, err := c.SplitStr(bs("abc"), bs(""))
	assert.ErrorIs(t, err, ErrEmptyDelimiter)
	_, err = c.SplitStr(nil, bs(","))
	assert.ErrorIs(t, err, ErrNullReference)
}

func TestSplitRoundTrip(t *testing.T) {
	c := New()
	defer c.Release()

	inputs := []string{"", "a", "a,b", ",,", "a,,b,", ",x,,y"}
	for _, in := range inputs {
		parts, err := c.SplitByte(bs(in), ',')
		require.NoError(t, err)
		joined, err := c.Join(parts, bs(","))
		require.NoError(t, err)
		assert.Equal(t, in, joined.String(), "SplitByte/Join(%q)", in)

		parts, err = c.SplitStr(bs(in), bs(","))
		require.NoError(t, err)
		joined, err = c.Join(parts, bs(","))
		require.NoError(t, err)
		assert.Equal(t, in, joined.String(), "SplitStr/Join(%q)", in)
	}
}

func TestSplitRegistration(t *testing.T) {
	c := New()
	defer c.Release()

	_, err := c.SplitByte(bs("a,,b"), ',')
	require.NoError(t, err)
	assert.Equal(t, 3, c.Sequences().Occupancy)
	assert.Equal(t, 1, c.Lists().Occupancy)

	// Segments are copies, not views of the input.
	in := bs("x,y")
	parts, err := c.SplitByte(in, ',')
	require.NoError(t, err)
	in[0] = 'Z'
	assert.Equal(t, "x", parts[0].String())
}

func TestSplitFailureRegistersNoList(t *testing.T) {
	c := New(WithCapacity(2, 1), WithRegistryLimit(2))
	defer c.Release()

	list, err := c.SplitByte(bs("a,b,c"), ',')
	require.ErrorIs(t, err, ErrAllocationFailure)
	assert.Nil(t, list)

	assert.Equal(t, 0, c.Lists().Occupancy, "a failed split must not leave a list behind")
	assert.Equal(t, 2, c.Sequences().Occupancy)
	for i, s := range c.Sequences().All() {
		assert.NotNil(t, s, "sequence %d", i)
	}
}
