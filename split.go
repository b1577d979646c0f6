package strutils

// span bounds of one segment
type bounds struct{ start, end int }

// segments cuts s at every delimiter reported by next. next returns the
// position and width of the first delimiter in rest, or NotFound. The result
// always holds one more segment than there were delimiters.
func segments(s []byte, next func(rest []byte) (pos, width int)) []bounds {
	var out []bounds
	start := 0
	for {
		pos, width := next(s[start:])
		if pos == NotFound {
			break
		}
		out = append(out, bounds{start, start + pos})
		start += pos + width
	}
	return append(out, bounds{start, len(s)})
}

// Split cuts s at runs of whitespace and drops every empty element, so
// Split("  a   b ") == ["a", "b"]. Unlike the explicit-delimiter variants it
// does not round-trip through Join.
func (c *Context) Split(s []byte) (List, error) {
	const op = "Split"
	if s == nil {
		return nil, c.fail(op, CodeNullReference, nil)
	}
	all := segments(s, func(rest []byte) (int, int) {
		return FindAny(rest, whitespaceSet), 1
	})
	kept := all[:0]
	for _, b := range all {
		if b.end > b.start {
			kept = append(kept, b)
		}
	}
	return c.register(op, s, kept)
}

// SplitByte cuts s at every sep, keeping empty elements:
// SplitByte("a,,b", ',') == ["a", "", "b"].
func (c *Context) SplitByte(s []byte, sep byte) (List, error) {
	const op = "SplitByte"
	if s == nil {
		return nil, c.fail(op, CodeNullReference, nil)
	}
	return c.register(op, s, segments(s, func(rest []byte) (int, int) {
		return FindByte(rest, sep), 1
	}))
}

// SplitAny cuts s at every element of set, keeping empty elements.
func (c *Context) SplitAny(s, set []byte) (List, error) {
	const op = "SplitAny"
	if s == nil || set == nil {
		return nil, c.fail(op, CodeNullReference, nil)
	}
	if len(set) == 0 {
		return nil, c.fail(op, CodeEmptyDelimiter, nil)
	}
	return c.register(op, s, segments(s, func(rest []byte) (int, int) {
		return FindAny(rest, set), 1
	}))
}

// SplitStr cuts s at every non-overlapping occurrence of sep, keeping empty
// elements.
func (c *Context) SplitStr(s, sep []byte) (List, error) {
	const op = "SplitStr"
	if s == nil || sep == nil {
		return nil, c.fail(op, CodeNullReference, nil)
	}
	if len(sep) == 0 {
		return nil, c.fail(op, CodeEmptyDelimiter, nil)
	}
	return c.register(op, s, segments(s, func(rest []byte) (int, int) {
		return Find(rest, sep), len(sep)
	}))
}

// register copies every segment into its own registered sequence and
// collects them in a registered list. The list is registered only once every
// segment is, so a failure never leaves a partial list behind.
func (c *Context) register(op string, s []byte, segs []bounds) (List, error) {
	parts := make([]Seq, len(segs))
	for i, b := range segs {
		var err error
		if parts[i], err = c.span(op, s, b.start, b.end); err != nil {
			return nil, err
		}
	}
	list, err := c.allocList(op, len(parts))
	if err != nil {
		return nil, err
	}
	copy(list, parts)
	return list, nil
}
