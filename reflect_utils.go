package guard

import (
	"reflect"
	"strings"
)

// isNil reports whether v is nil, including typed nils stored in an
// interface ((*T)(nil), nil maps, slices, channels and funcs).
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// nilable reports whether values of t can be nil. A nil t stands for an
// interface type, which always can.
func nilable(t reflect.Type) bool {
	if t == nil {
		return true
	}
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	}
	return false
}

// itemLevel selects how strictly an element is classified.
type itemLevel int

const (
	levelNull itemLevel = iota
	levelEmpty
	levelWhitespace
)

// classifyItem returns the item kind an element violates at the given level,
// checked in the order null, empty, whitespace. Strings (and pointers to
// strings) are checked for emptiness and whitespace; slices, maps, arrays and
// channels only for emptiness.
func classifyItem(e any, level itemLevel) (Kind, bool) {
	if isNil(e) {
		return KindItemNull, true
	}
	if level == levelNull {
		return 0, false
	}
	rv := reflect.ValueOf(e)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return KindItemNull, true
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.String:
		s := rv.String()
		if s == "" {
			return KindItemEmpty, true
		}
		if level == levelWhitespace && strings.TrimSpace(s) == "" {
			return KindItemWhitespace, true
		}
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		if rv.Len() == 0 {
			return KindItemEmpty, true
		}
	}
	return 0, false
}
