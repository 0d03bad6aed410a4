package guard

import "reflect"

// The checks in this file work on slices, which can be read any number of
// times; each one still walks its input once and returns the same slice
// (not a copy) on success. Iterator inputs are handled in seq.go.

func checkItems[S ~[]E, E any](items S, level itemLevel, opts []Option) (S, error) {
	if items == nil {
		return nil, fail(opts, failure{kind: KindNullNotAllowed, index: -1})
	}
	if level == levelNull && !nilable(reflect.TypeFor[E]()) {
		return items, nil
	}
	for i, e := range items {
		if kind, bad := classifyItem(e, level); bad {
			return nil, fail(opts, failure{kind: kind, value: e, collection: items, index: i, item: true})
		}
	}
	return items, nil
}

// ItemsNotNull reports the first nil element with KindItemNull. A nil slice
// reports KindNullNotAllowed.
func ItemsNotNull[S ~[]E, E any](items S, opts ...Option) (S, error) {
	return checkItems(items, levelNull, opts)
}

// ItemsNotEmpty reports the first nil element (KindItemNull) or empty
// element (KindItemEmpty). Strings, slices, maps, arrays and channels can
// be empty.
func ItemsNotEmpty[S ~[]E, E any](items S, opts ...Option) (S, error) {
	return checkItems(items, levelEmpty, opts)
}

// ItemsNotWhitespace is ItemsNotEmpty that also reports string elements made
// only of white space (KindItemWhitespace). Each element is checked for nil,
// empty and white space in that order before moving to the next one.
func ItemsNotWhitespace[S ~[]E, E any](items S, opts ...Option) (S, error) {
	return checkItems(items, levelWhitespace, opts)
}

// All reports the first element for which pred is false with
// KindPredicateFailed.
func All[S ~[]E, E any](items S, pred func(E) bool, opts ...Option) (S, error) {
	if items == nil {
		return nil, fail(opts, failure{kind: KindNullNotAllowed, index: -1})
	}
	if pred == nil {
		return nil, nilCondition(opts, KindPredicateFailed, nil)
	}
	for i, e := range items {
		if !pred(e) {
			return nil, fail(opts, failure{kind: KindPredicateFailed, value: e, collection: items, index: i, item: true})
		}
	}
	return items, nil
}

// NotNullNotEmpty rejects a nil slice (KindNullNotAllowed) and an empty one
// (KindCollectionEmpty).
func NotNullNotEmpty[S ~[]E, E any](items S, opts ...Option) (S, error) {
	if items == nil {
		return nil, fail(opts, failure{kind: KindNullNotAllowed, index: -1})
	}
	if len(items) == 0 {
		return nil, fail(opts, failure{kind: KindCollectionEmpty, collection: items, index: -1})
	}
	return items, nil
}

// MapNotNullNotEmpty is NotNullNotEmpty for maps.
func MapNotNullNotEmpty[M ~map[K]V, K comparable, V any](m M, opts ...Option) (M, error) {
	if m == nil {
		return nil, fail(opts, failure{kind: KindNullNotAllowed, index: -1})
	}
	if len(m) == 0 {
		return nil, fail(opts, failure{kind: KindCollectionEmpty, collection: m, index: -1})
	}
	return m, nil
}
