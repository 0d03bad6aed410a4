package guard_test

import (
	"iter"
	"runtime"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/guard"
)

// stream is a single-pass source: ranging it a second time yields nothing.
type stream[E any] struct {
	items  []E
	passes int
	pulled int
}

func (s *stream[E]) Seq() iter.Seq[E] {
	return func(yield func(E) bool) {
		s.passes++
		if s.passes > 1 {
			return
		}
		for _, e := range s.items {
			s.pulled++
			if !yield(e) {
				return
			}
		}
	}
}

func TestSeqItemsNotNull_EnumeratesOnce(t *testing.T) {
	src := &stream[*int]{items: []*int{ptr(1), ptr(2), ptr(3)}}

	out, err := guard.SeqItemsNotNull(src.Seq())
	require.NoError(t, err)
	assert.Equal(t, 1, src.passes)

	got := slices.Collect(out)
	require.Len(t, got, 3)
	for i := range got {
		assert.Same(t, src.items[i], got[i])
	}
	assert.Equal(t, 1, src.passes, "replay must not touch the source")
}

func TestSeqItemsNotNull_FirstNil(t *testing.T) {
	src := &stream[*int]{items: []*int{ptr(1), nil, ptr(3)}}
	_, err := guard.SeqItemsNotNull(src.Seq())
	v := requireKind(t, err, guard.KindItemNull)
	assert.Equal(t, 1, v.Index)
	assert.Equal(t, 2, src.pulled, "must stop at the first nil")
	assert.NotNil(t, v.Collection)

	_, err = guard.SeqItemsNotNull[int](nil)
	requireKind(t, err, guard.KindNullNotAllowed)
}

func TestSeqItemsNotWhitespace(t *testing.T) {
	_, err := guard.SeqItemsNotWhitespace(slices.Values([]string{"a", "", " "}))
	requireKind(t, err, guard.KindItemEmpty)

	_, err = guard.SeqItemsNotEmpty(slices.Values([]string{"a", " "}))
	require.NoError(t, err)

	_, err = guard.SeqItemsNotWhitespace(slices.Values([]string{"a", " "}))
	requireKind(t, err, guard.KindItemWhitespace)
}

func TestSeqAll(t *testing.T) {
	out, err := guard.SeqAll(slices.Values([]int{2, 4}), func(v int) bool { return v%2 == 0 })
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, slices.Collect(out))

	_, err = guard.SeqAll(slices.Values([]int{2, 3}), func(v int) bool { return v%2 == 0 })
	v := requireKind(t, err, guard.KindPredicateFailed)
	assert.Equal(t, 3, v.Value)

	_, err = guard.SeqAll(slices.Values([]int{2}), nil)
	assert.ErrorIs(t, err, guard.ErrNilCondition)
}

func TestSeqNotNullNotEmpty_KeepsPeekedElement(t *testing.T) {
	src := &stream[int]{items: []int{1, 2, 3}}

	out, err := guard.SeqNotNullNotEmpty(src.Seq())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(out))
	assert.Equal(t, 1, src.passes)
	assert.Equal(t, 3, src.pulled)
}

func TestSeqNotNullNotEmpty_BreakEarly(t *testing.T) {
	src := &stream[int]{items: []int{1, 2, 3}}
	out, err := guard.SeqNotNullNotEmpty(src.Seq())
	require.NoError(t, err)
	for v := range out {
		assert.Equal(t, 1, v)
		break
	}
	assert.Equal(t, 1, src.pulled)
}

func TestSeqNotNullNotEmpty_RangedTwice(t *testing.T) {
	out, err := guard.SeqNotNullNotEmpty(slices.Values([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(out))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(out))

	src := &stream[int]{items: []int{1, 2, 3}}
	out, err = guard.SeqNotNullNotEmpty(src.Seq())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(out))
	assert.Empty(t, slices.Collect(out), "a spent single-pass source stays spent")
}

func TestSeqNotNullNotEmpty_ReleasesUnrangedResult(t *testing.T) {
	var released atomic.Bool
	endless := func(yield func(int) bool) {
		defer released.Store(true)
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
	_, err := guard.SeqNotNullNotEmpty(iter.Seq[int](endless))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		runtime.GC()
		return released.Load()
	}, 5*time.Second, 10*time.Millisecond)
}

func TestSeqNotNullNotEmpty_Empty(t *testing.T) {
	_, err := guard.SeqNotNullNotEmpty(slices.Values([]int{}), guard.Name("events"))
	v := requireKind(t, err, guard.KindCollectionEmpty)
	assert.Equal(t, "events must contain at least one element", v.Message)

	_, err = guard.SeqNotNullNotEmpty[int](nil)
	requireKind(t, err, guard.KindNullNotAllowed)
}
