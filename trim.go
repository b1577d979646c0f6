package strutils

import "bytes"

type trimSide uint8

const (
	trimLeft trimSide = 1 << iota
	trimRight
	trimBoth = trimLeft | trimRight
)

// Trim returns a copy of s without leading and trailing whitespace
// (space, tab, carriage return, newline).
func (c *Context) Trim(s []byte) (Seq, error) {
	return c.trimFunc("Trim", s, trimBoth, isSpace)
}

// TrimStart returns a copy of s without leading whitespace.
func (c *Context) TrimStart(s []byte) (Seq, error) {
	return c.trimFunc("TrimStart", s, trimLeft, isSpace)
}

// TrimEnd returns a copy of s without trailing whitespace.
func (c *Context) TrimEnd(s []byte) (Seq, error) {
	return c.trimFunc("TrimEnd", s, trimRight, isSpace)
}

// TrimByte returns a copy of s with every leading and trailing b removed.
func (c *Context) TrimByte(s []byte, b byte) (Seq, error) {
	return c.trimFunc("TrimByte", s, trimBoth, equalTo(b))
}

// TrimStartByte returns a copy of s with every leading b removed.
func (c *Context) TrimStartByte(s []byte, b byte) (Seq, error) {
	return c.trimFunc("TrimStartByte", s, trimLeft, equalTo(b))
}

// TrimEndByte returns a copy of s with every trailing b removed.
func (c *Context) TrimEndByte(s []byte, b byte) (Seq, error) {
	return c.trimFunc("TrimEndByte", s, trimRight, equalTo(b))
}

// TrimAny returns a copy of s with leading and trailing elements of set
// removed: TrimAny("xyzabczyy", "xyz") == "abc".
func (c *Context) TrimAny(s, set []byte) (Seq, error) {
	return c.trimSet("TrimAny", s, set, trimBoth)
}

// TrimStartAny returns a copy of s with leading elements of set removed.
func (c *Context) TrimStartAny(s, set []byte) (Seq, error) {
	return c.trimSet("TrimStartAny", s, set, trimLeft)
}

// TrimEndAny returns a copy of s with trailing elements of set removed.
func (c *Context) TrimEndAny(s, set []byte) (Seq, error) {
	return c.trimSet("TrimEndAny", s, set, trimRight)
}

// TrimStr returns a copy of s with needle stripped from both ends as many
// times as it repeats there: TrimStr("hellohelloXhello", "hello") == "X".
func (c *Context) TrimStr(s, needle []byte) (Seq, error) {
	return c.trimStr("TrimStr", s, needle, trimBoth)
}

// TrimStartStr strips repeated leading needles.
func (c *Context) TrimStartStr(s, needle []byte) (Seq, error) {
	return c.trimStr("TrimStartStr", s, needle, trimLeft)
}

// TrimEndStr strips repeated trailing needles.
func (c *Context) TrimEndStr(s, needle []byte) (Seq, error) {
	return c.trimStr("TrimEndStr", s, needle, trimRight)
}

func equalTo(b byte) func(byte) bool {
	return func(x byte) bool { return x == b }
}

func memberOf(set []byte) func(byte) bool {
	return func(x byte) bool { return bytes.IndexByte(set, x) >= 0 }
}

func (c *Context) trimFunc(op string, s []byte, side trimSide, match func(byte) bool) (Seq, error) {
	if s == nil {
		return nil, c.fail(op, CodeNullReference, nil)
	}
	i, j := 0, len(s)
	if side&trimLeft != 0 {
		for i < j && match(s[i]) {
			i++
		}
	}
	if side&trimRight != 0 {
		for j > i && match(s[j-1]) {
			j--
		}
	}
	return c.span(op, s, i, j)
}

func (c *Context) trimSet(op string, s, set []byte, side trimSide) (Seq, error) {
	if set == nil {
		return nil, c.fail(op, CodeNullReference, nil)
	}
	return c.trimFunc(op, s, side, memberOf(set))
}

func (c *Context) trimStr(op string, s, needle []byte, side trimSide) (Seq, error) {
	if s == nil || needle == nil {
		return nil, c.fail(op, CodeNullReference, nil)
	}
	i, j := 0, len(s)
	if n := len(needle); n > 0 {
		if side&trimLeft != 0 {
			for StartsWith(s[i:j], needle) {
				i += n
			}
		}
		if side&trimRight != 0 {
			for EndsWith(s[i:j], needle) {
				j -= n
			}
		}
	}
	return c.span(op, s, i, j)
}
