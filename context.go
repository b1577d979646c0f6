package strutils

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pavanmanishd/strutils/internal/arena"
)

// Seq is an owned byte sequence. Its storage lives in the arena of the
// Context that produced it and it is tracked by that Context's sequence
// registry. Treat it as immutable.
type Seq []byte

// String returns a Go string copy of s.
func (s Seq) String() string { return string(s) }

// Len returns the number of elements in s.
func (s Seq) Len() int { return len(s) }

// List is an ordered list of sequences. A List owns only its own structure;
// each element is owned by the sequence registry.
type List []Seq

// Strings returns Go string copies of every element.
func (l List) Strings() []string {
	out := make([]string, len(l))
	for i, s := range l {
		out[i] = string(s)
	}
	return out
}

// Context owns every sequence and list it produces. Release frees them all at
// once; Init starts a new epoch.
//
// A Context is not goroutine-safe. Use SafeContext for concurrent access.
type Context struct {
	opts     options
	arena    *arena.Arena
	seqs     *Registry[Seq]
	lists    *Registry[List]
	epoch    uuid.UUID
	released bool
}

// New creates a live Context with empty registries.
func New(opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Context{opts: o}
	c.start()
	return c
}

func (c *Context) start() {
	c.arena = arena.New(c.opts.chunkSize, arena.WithLimit(c.opts.arenaLimit))
	c.seqs = newRegistry[Seq](c.opts.maxSequences, c.opts.registryLimit)
	c.lists = newRegistry[List](c.opts.maxLists, c.opts.registryLimit)
	c.epoch = uuid.New()
	c.released = false
	c.opts.logger.LogAttrs(context.Background(), slog.LevelDebug, "strutils epoch started",
		slog.String("epoch", c.epoch.String()),
		slog.Int("max_sequences", c.opts.maxSequences),
		slog.Int("max_lists", c.opts.maxLists),
	)
}

// Configure overrides the starting registry capacities. It takes effect
// immediately while nothing has been registered in the current epoch and
// otherwise at the next Init. Values <= 0 keep the current setting.
func (c *Context) Configure(maxSequences, maxLists int) {
	WithCapacity(maxSequences, maxLists)(&c.opts)
	if c.released || c.seqs.Occupancy != 0 || c.lists.Occupancy != 0 {
		return
	}
	c.seqs = newRegistry[Seq](c.opts.maxSequences, c.opts.registryLimit)
	c.lists = newRegistry[List](c.opts.maxLists, c.opts.registryLimit)
}

// Release frees every sequence, then every list, then the registries and the
// arena. Calling Release twice without Init in between panics, as does any
// allocation on a released Context.
func (c *Context) Release() {
	c.panicIfReleased()
	nseq := c.seqs.clear()
	nlist := c.lists.clear()
	c.seqs, c.lists = nil, nil
	c.arena.Release()
	c.released = true
	c.opts.logger.LogAttrs(context.Background(), slog.LevelDebug, "strutils released",
		slog.String("epoch", c.epoch.String()),
		slog.Int("sequences", nseq),
		slog.Int("lists", nlist),
	)
}

// Init starts a new epoch: a fresh arena and empty registries at the
// configured starting capacities. On a live Context the current contents are
// released first.
func (c *Context) Init() {
	if !c.released {
		c.Release()
	}
	c.start()
}

// Released reports whether the Context has been released and not
// re-initialized.
func (c *Context) Released() bool {
	return c.released
}

// Epoch identifies the current initialization.
func (c *Context) Epoch() uuid.UUID {
	return c.epoch
}

// Sequences exposes the live sequence registry.
func (c *Context) Sequences() *Registry[Seq] {
	c.panicIfReleased()
	return c.seqs
}

// Lists exposes the live list registry.
func (c *Context) Lists() *Registry[List] {
	c.panicIfReleased()
	return c.lists
}

func (c *Context) panicIfReleased() {
	if c.released {
		panic("strutils: use after Release()")
	}
}
