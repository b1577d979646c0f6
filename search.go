package strutils

import "bytes"

// NotFound is returned by the Find family when there is no match.
const NotFound = -1

// whitespace is the default element set for Trim, Split and Zip.
const whitespace = " \t\r\n"

var whitespaceSet = []byte(whitespace)

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// Find returns the position of the first occurrence of needle in h, or
// NotFound. An empty needle is found at 0.
func Find(h, needle []byte) int {
	n := len(needle)
	switch {
	case n > len(h):
		return NotFound
	case n == len(h):
		if bytes.Equal(h, needle) {
			return 0
		}
		return NotFound
	}
	for i := 0; i <= len(h)-n; i++ {
		if bytes.Equal(h[i:i+n], needle) {
			return i
		}
	}
	return NotFound
}

// RFind returns the position of the last occurrence of needle in h, or
// NotFound. An empty needle is found at len(h).
func RFind(h, needle []byte) int {
	n := len(needle)
	switch {
	case n > len(h):
		return NotFound
	case n == len(h):
		if bytes.Equal(h, needle) {
			return 0
		}
		return NotFound
	}
	for i := len(h) - n; i >= 0; i-- {
		if bytes.Equal(h[i:i+n], needle) {
			return i
		}
	}
	return NotFound
}

// FindByte returns the position of the first c in h, or NotFound.
func FindByte(h []byte, c byte) int {
	for i, b := range h {
		if b == c {
			return i
		}
	}
	return NotFound
}

// RFindByte returns the position of the last c in h, or NotFound.
func RFindByte(h []byte, c byte) int {
	for i := len(h) - 1; i >= 0; i-- {
		if h[i] == c {
			return i
		}
	}
	return NotFound
}

// FindAny returns the position of the first element of h that is in set, or
// NotFound.
func FindAny(h, set []byte) int {
	for i, b := range h {
		if bytes.IndexByte(set, b) >= 0 {
			return i
		}
	}
	return NotFound
}

// RFindAny returns the position of the last element of h that is in set, or
// NotFound.
func RFindAny(h, set []byte) int {
	for i := len(h) - 1; i >= 0; i-- {
		if bytes.IndexByte(set, h[i]) >= 0 {
			return i
		}
	}
	return NotFound
}

// Contains reports whether needle occurs in h.
func Contains(h, needle []byte) bool { return Find(h, needle) != NotFound }

// ContainsByte reports whether c occurs in h.
func ContainsByte(h []byte, c byte) bool { return FindByte(h, c) != NotFound }

// ContainsAny reports whether any element of set occurs in h.
func ContainsAny(h, set []byte) bool { return FindAny(h, set) != NotFound }

// StartsWith reports whether h begins with needle.
func StartsWith(h, needle []byte) bool {
	return len(needle) <= len(h) && bytes.Equal(h[:len(needle)], needle)
}

// EndsWith reports whether h ends with needle.
func EndsWith(h, needle []byte) bool {
	return len(needle) <= len(h) && bytes.Equal(h[len(h)-len(needle):], needle)
}

// StartsWithByte reports whether the first element of h is c.
// An empty h never starts with anything.
func StartsWithByte(h []byte, c byte) bool {
	return len(h) > 0 && h[0] == c
}

// EndsWithByte reports whether the last element of h is c.
func EndsWithByte(h []byte, c byte) bool {
	return len(h) > 0 && h[len(h)-1] == c
}

// Count returns the number of non-overlapping occurrences of needle in h,
// scanning left to right. An empty needle occurs zero times.
func Count(h, needle []byte) int {
	n := len(needle)
	switch {
	case n == 0 || n > len(h):
		return 0
	case n == len(h):
		if bytes.Equal(h, needle) {
			return 1
		}
		return 0
	}
	count := 0
	for i := 0; i <= len(h)-n; {
		if bytes.Equal(h[i:i+n], needle) {
			count++
			i += n
			continue
		}
		i++
	}
	return count
}

// CountStr is Count, named after the sub-sequence form.
func CountStr(h, needle []byte) int { return Count(h, needle) }

// CountByte returns the number of elements of h equal to c.
func CountByte(h []byte, c byte) int {
	count := 0
	for _, b := range h {
		if b == c {
			count++
		}
	}
	return count
}

// CountAny returns the number of positions of h holding an element of set.
func CountAny(h, set []byte) int {
	count := 0
	for _, b := range h {
		if bytes.IndexByte(set, b) >= 0 {
			count++
		}
	}
	return count
}
