package strutils

import (
	"errors"
	"fmt"
)

// Register copies the first n elements of src into fresh arena storage and
// registers the result.
func (c *Context) Register(src []byte, n int) (Seq, error) {
	const op = "Register"
	if src == nil {
		return nil, c.fail(op, CodeNullReference, nil)
	}
	if n < 0 || n > len(src) {
		return nil, c.fail(op, CodeInvalidRange, fmt.Errorf("length %d of %d", n, len(src)))
	}
	s, err := c.alloc(op, n)
	if err != nil {
		return nil, err
	}
	copy(s, src[:n])
	return s, nil
}

// Copy registers a copy of src.
func (c *Context) Copy(src []byte) (Seq, error) {
	if src == nil {
		return nil, c.fail("Copy", CodeNullReference, nil)
	}
	return c.Register(src, len(src))
}

// CopyN registers a copy of at most n leading elements of src.
func (c *Context) CopyN(src []byte, n int) (Seq, error) {
	if src == nil {
		return nil, c.fail("CopyN", CodeNullReference, nil)
	}
	if n < 0 {
		return nil, c.fail("CopyN", CodeInvalidRange, fmt.Errorf("length %d", n))
	}
	return c.Register(src, min(n, len(src)))
}

// FromString registers a copy of s.
func (c *Context) FromString(s string) (Seq, error) {
	out, err := c.alloc("FromString", len(s))
	if err != nil {
		return nil, err
	}
	copy(out, s)
	return out, nil
}

// RegisterEmpty reserves hint elements of arena storage and registers a
// zero-length sequence over it. Appending up to hint elements stays inside
// the reserved storage.
func (c *Context) RegisterEmpty(hint int) (Seq, error) {
	return c.allocLen("RegisterEmpty", hint, 0)
}

// RegisterList registers a list of n zero handles in the list registry.
func (c *Context) RegisterList(n int) (List, error) {
	return c.allocList("RegisterList", n)
}

// alloc reserves n elements and registers them. It is the single entry point
// every producing operation goes through.
func (c *Context) alloc(op string, n int) (Seq, error) {
	return c.allocLen(op, n, n)
}

// allocLen reserves n elements and registers the first length of them, so
// the registry holds exactly the handle the caller gets. The registry slot is
// secured before any arena bytes are carved.
func (c *Context) allocLen(op string, n, length int) (Seq, error) {
	c.panicIfReleased()
	if err := c.seqs.reserve(); err != nil {
		return nil, c.fail(op, CodeAllocationFailure, err)
	}
	b, err := c.arena.Alloc(n)
	if err != nil {
		return nil, c.fail(op, CodeAllocationFailure, err)
	}
	s := Seq(b[:length])
	if err := c.seqs.insert(s); err != nil {
		return nil, c.fail(op, CodeAllocationFailure, err)
	}
	return s, nil
}

func (c *Context) allocList(op string, n int) (List, error) {
	c.panicIfReleased()
	if n < 0 {
		return nil, c.fail(op, CodeAllocationFailure, errors.New("negative list length"))
	}
	l := make(List, n)
	if err := c.lists.insert(l); err != nil {
		return nil, c.fail(op, CodeAllocationFailure, err)
	}
	return l, nil
}

// span registers a copy of s[i:j]; the bounds are trusted.
func (c *Context) span(op string, s []byte, i, j int) (Seq, error) {
	out, err := c.alloc(op, j-i)
	if err != nil {
		return nil, err
	}
	copy(out, s[i:j])
	return out, nil
}
