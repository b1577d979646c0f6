// Package strutils is a byte-string toolkit whose every result is owned by a
// Context and released in bulk.
//
// # Overview
//
// Operations never modify their input. Each one copies its result into the
// Context's arena and records it in a registry, so a single Release reclaims
// everything the Context ever produced:
//
//   - Trim family: Trim, TrimByte, TrimAny, TrimStr and their Start/End forms
//   - Search: Find, RFind, FindByte, FindAny, Count, StartsWith, ...
//   - Split family: Split, SplitByte, SplitAny, SplitStr
//   - Transforms: Sum, Sub, Append, ToUpper, ToLower, Zip, Substr, Replace
//
// Elements are bytes. There is no Unicode awareness.
//
// # Basic Usage
//
//	ctx := strutils.New()
//	defer ctx.Release()
//
//	parts, err := ctx.SplitByte([]byte("a,,b"), ',')  // ["a", "", "b"]
//	trimmed, err := ctx.Trim([]byte("  padded  "))    // "padded"
//	pos := strutils.Find([]byte("hello world"), []byte("world")) // 6
//
// Seq is a []byte, so results feed straight back into other operations.
//
// # Registries
//
// A Context keeps two registries: one for sequences (default starting
// capacity 1000) and one for lists (500). Both double when full and never
// shrink within an epoch. Sequences and Lists expose them for inspection.
//
// # Errors
//
// Failures belong to a closed taxonomy (see Code). By default they are
// returned as *Error; WithPanicOnError turns them into panics after the
// handler installed with SetHandler ran. With TraceWarn every failure is
// also logged through log/slog.
//
// # Thread Safety
//
// Context is not goroutine-safe. SafeContext serializes access:
//
//	sc := strutils.NewSafeContext()
//	err := sc.Do(func(c *strutils.Context) error {
//		_, err := c.Trim(line)
//		return err
//	})
package strutils
