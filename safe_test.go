package strutils

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSafeContextConcurrentDo(t *testing.T) {
	s := NewSafeContext(WithCapacity(1, 1))
	defer s.Release()

	const (
		workers   = 16
		perWorker = 50
	)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				err := s.Do(func(c *Context) error {
					line := fmt.Sprintf(" worker %d, line %d ", w, i)
					trimmed, err := c.Trim([]byte(line))
					if err != nil {
						return err
					}
					parts, err := c.SplitByte(trimmed, ',')
					if err != nil {
						return err
					}
					if len(parts) != 2 {
						return fmt.Errorf("got %d parts", len(parts))
					}
					return nil
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	m := s.Metrics()
	// Each iteration registers one trimmed copy, two segments and one list.
	assert.Equal(t, workers*perWorker*3, m.Sequences.Occupancy)
	assert.Equal(t, workers*perWorker, m.Lists.Occupancy)
	assert.GreaterOrEqual(t, m.Sequences.Capacity, m.Sequences.Occupancy)
}

func TestSafeContextErrorPropagation(t *testing.T) {
	s := NewSafeContext()
	defer s.Release()

	err := s.Do(func(c *Context) error {
		_, err := c.Substr([]byte("abc"), 3, 1)
		return err
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestSafeContextLifecycle(t *testing.T) {
	s := NewSafeContext()

	require.NoError(t, s.Do(func(c *Context) error {
		_, err := c.FromString("x")
		return err
	}))
	before := s.Metrics().Epoch

	s.Init()
	m := s.Metrics()
	assert.NotEqual(t, before, m.Epoch)
	assert.Equal(t, 0, m.Sequences.Occupancy)

	s.Release()
	assert.True(t, s.Metrics().Released)
	assert.Panics(t, func() { s.Release() })
}

func TestSafeContextConcurrentScrape(t *testing.T) {
	s := NewSafeContext()
	defer s.Release()
	col := s.Collector("scrape")

	var g errgroup.Group
	g.Go(func() error {
		for i := 0; i < 200; i++ {
			if err := s.Do(func(c *Context) error {
				_, err := c.FromString("payload")
				return err
			}); err != nil {
				return err
			}
		}
		return nil
	})
	g.Go(func() error {
		for i := 0; i < 50; i++ {
			if n := testutil.CollectAndCount(col); n != 8 {
				return fmt.Errorf("scrape %d: got %d metrics", i, n)
			}
		}
		return nil
	})
	require.NoError(t, g.Wait())
	assert.Equal(t, 200, s.Metrics().Sequences.Occupancy)
}
