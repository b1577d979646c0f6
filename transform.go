package strutils

import "fmt"

// Sum returns a followed by b.
func (c *Context) Sum(a, b []byte) (Seq, error) {
	const op = "Sum"
	if a == nil || b == nil {
		return nil, c.fail(op, CodeNullReference, nil)
	}
	out, err := c.alloc(op, len(a)+len(b))
	if err != nil {
		return nil, err
	}
	copy(out[copy(out, a):], b)
	return out, nil
}

// Sub returns a copy of s with every b removed.
func (c *Context) Sub(s []byte, b byte) (Seq, error) {
	const op = "Sub"
	if s == nil {
		return nil, c.fail(op, CodeNullReference, nil)
	}
	out, err := c.alloc(op, len(s)-CountByte(s, b))
	if err != nil {
		return nil, err
	}
	k := 0
	for _, x := range s {
		if x != b {
			out[k] = x
			k++
		}
	}
	return out, nil
}

// Append returns a copy of s with b added at the end.
func (c *Context) Append(s []byte, b byte) (Seq, error) {
	const op = "Append"
	if s == nil {
		return nil, c.fail(op, CodeNullReference, nil)
	}
	out, err := c.alloc(op, len(s)+1)
	if err != nil {
		return nil, err
	}
	out[copy(out, s)] = b
	return out, nil
}

// ToUpper returns a copy of s with ASCII letters upper-cased.
func (c *Context) ToUpper(s []byte) (Seq, error) {
	return c.mapBytes("ToUpper", s, func(b byte) byte {
		if 'a' <= b && b <= 'z' {
			return b - ('a' - 'A')
		}
		return b
	})
}

// ToLower returns a copy of s with ASCII letters lower-cased.
func (c *Context) ToLower(s []byte) (Seq, error) {
	return c.mapBytes("ToLower", s, func(b byte) byte {
		if 'A' <= b && b <= 'Z' {
			return b + ('a' - 'A')
		}
		return b
	})
}

// ReplaceByte returns a copy of s with every from replaced by to.
func (c *Context) ReplaceByte(s []byte, from, to byte) (Seq, error) {
	return c.mapBytes("ReplaceByte", s, func(b byte) byte {
		if b == from {
			return to
		}
		return b
	})
}

func (c *Context) mapBytes(op string, s []byte, fn func(byte) byte) (Seq, error) {
	if s == nil {
		return nil, c.fail(op, CodeNullReference, nil)
	}
	out, err := c.alloc(op, len(s))
	if err != nil {
		return nil, err
	}
	for i, b := range s {
		out[i] = fn(b)
	}
	return out, nil
}

// Zip collapses every maximal run of whitespace to its first element:
// Zip("a \t\n b") == "a b", Zip("a\t  b") == "a\tb".
func (c *Context) Zip(s []byte) (Seq, error) {
	const op = "Zip"
	if s == nil {
		return nil, c.fail(op, CodeNullReference, nil)
	}
	n := 0
	for i := range s {
		if i == 0 || !isSpace(s[i]) || !isSpace(s[i-1]) {
			n++
		}
	}
	out, err := c.alloc(op, n)
	if err != nil {
		return nil, err
	}
	k := 0
	for i := range s {
		if i == 0 || !isSpace(s[i]) || !isSpace(s[i-1]) {
			out[k] = s[i]
			k++
		}
	}
	return out, nil
}

// Substr returns s[start:end]. A start of -1 means the beginning and an end
// of -1 means the end, so Substr(s, -1, -1) is a full copy.
func (c *Context) Substr(s []byte, start, end int) (Seq, error) {
	const op = "Substr"
	if s == nil {
		return nil, c.fail(op, CodeNullReference, nil)
	}
	if start == -1 {
		start = 0
	}
	if end == -1 {
		end = len(s)
	}
	if start < 0 || end < 0 || start > len(s) || end > len(s) || start > end {
		return nil, c.fail(op, CodeInvalidRange, fmt.Errorf("[%d:%d] of %d", start, end, len(s)))
	}
	return c.span(op, s, start, end)
}

// Replace returns a copy of s with every non-overlapping occurrence of
// needle replaced by rep. The output is sized once up front. An empty needle
// matches nothing.
func (c *Context) Replace(s, needle, rep []byte) (Seq, error) {
	const op = "Replace"
	if s == nil || needle == nil || rep == nil {
		return nil, c.fail(op, CodeNullReference, nil)
	}
	n := Count(s, needle)
	out, err := c.alloc(op, len(s)-n*len(needle)+n*len(rep))
	if err != nil {
		return nil, err
	}
	j, k := 0, 0
	for ; n > 0; n-- {
		i := j + Find(s[j:], needle)
		k += copy(out[k:], s[j:i])
		k += copy(out[k:], rep)
		j = i + len(needle)
	}
	copy(out[k:], s[j:])
	return out, nil
}

// Join concatenates the elements of l with sep between them.
func (c *Context) Join(l List, sep []byte) (Seq, error) {
	const op = "Join"
	if sep == nil {
		return nil, c.fail(op, CodeNullReference, nil)
	}
	size := 0
	for _, s := range l {
		size += len(s)
	}
	if len(l) > 1 {
		size += (len(l) - 1) * len(sep)
	}
	out, err := c.alloc(op, size)
	if err != nil {
		return nil, err
	}
	k := 0
	for i, s := range l {
		if i > 0 {
			k += copy(out[k:], sep)
		}
		k += copy(out[k:], s)
	}
	return out, nil
}
