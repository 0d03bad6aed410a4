package guard

import (
	"iter"
	"reflect"
	"runtime"
	"slices"
)

// Sequence checks for iter.Seq inputs, which may be single-pass streams.
// Each source is ranged over exactly once. The element checks buffer what
// they accept and return a sequence replaying it in order; a caller that
// needs the original single-pass source again must use the returned one.

func checkSeq[E any](seq iter.Seq[E], opts []Option, visit func(i int, e E) (Kind, bool)) (iter.Seq[E], error) {
	if seq == nil {
		return nil, fail(opts, failure{kind: KindNullNotAllowed, index: -1})
	}
	var (
		buf []E
		bad error
		i   int
	)
	for e := range seq {
		if kind, failed := visit(i, e); failed {
			bad = fail(opts, failure{kind: kind, value: e, collection: seq, index: i, item: true})
			break
		}
		buf = append(buf, e)
		i++
	}
	if bad != nil {
		return nil, bad
	}
	return slices.Values(buf), nil
}

func seqItems[E any](seq iter.Seq[E], level itemLevel, opts []Option) (iter.Seq[E], error) {
	skip := level == levelNull && !nilable(reflect.TypeFor[E]())
	return checkSeq(seq, opts, func(_ int, e E) (Kind, bool) {
		if skip {
			return 0, false
		}
		return classifyItem(e, level)
	})
}

// SeqItemsNotNull is ItemsNotNull for iterators.
func SeqItemsNotNull[E any](seq iter.Seq[E], opts ...Option) (iter.Seq[E], error) {
	return seqItems(seq, levelNull, opts)
}

// SeqItemsNotEmpty is ItemsNotEmpty for iterators.
func SeqItemsNotEmpty[E any](seq iter.Seq[E], opts ...Option) (iter.Seq[E], error) {
	return seqItems(seq, levelEmpty, opts)
}

// SeqItemsNotWhitespace is ItemsNotWhitespace for iterators.
func SeqItemsNotWhitespace[E any](seq iter.Seq[E], opts ...Option) (iter.Seq[E], error) {
	return seqItems(seq, levelWhitespace, opts)
}

// SeqAll is All for iterators.
func SeqAll[E any](seq iter.Seq[E], pred func(E) bool, opts ...Option) (iter.Seq[E], error) {
	if seq != nil && pred == nil {
		return nil, nilCondition(opts, KindPredicateFailed, nil)
	}
	return checkSeq(seq, opts, func(_ int, e E) (Kind, bool) {
		return KindPredicateFailed, !pred(e)
	})
}

// SeqNotNullNotEmpty rejects a nil sequence (KindNullNotAllowed) and one
// that yields nothing (KindCollectionEmpty). Only the first element is read
// ahead; the returned sequence yields it followed by the rest of seq, so a
// single-pass source loses nothing.
//
// The first range over the result continues the read-ahead pass. Later
// ranges start seq over, so a restartable source yields all of its elements
// again. A result that is never ranged releases seq once it is garbage
// collected.
func SeqNotNullNotEmpty[E any](seq iter.Seq[E], opts ...Option) (iter.Seq[E], error) {
	if seq == nil {
		return nil, fail(opts, failure{kind: KindNullNotAllowed, index: -1})
	}
	next, stop := iter.Pull(seq)
	first, ok := next()
	if !ok {
		stop()
		return nil, fail(opts, failure{kind: KindCollectionEmpty, collection: seq, index: -1})
	}
	p := &peeked[E]{first: first, next: next, stop: stop}
	runtime.AddCleanup(p, func(stop func()) { stop() }, stop)
	return p.seq(seq), nil
}

// peeked holds a pulled sequence whose first element was already read.
type peeked[E any] struct {
	first E
	next  func() (E, bool)
	stop  func()
	used  bool
}

func (p *peeked[E]) seq(src iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		if p.used {
			src(yield)
			return
		}
		p.used = true
		defer p.stop()
		if !yield(p.first) {
			return
		}
		for {
			e, ok := p.next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}
