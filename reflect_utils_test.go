package guard

import (
	"reflect"
	"testing"
)

func TestIsNil(t *testing.T) {
	var p *int
	var m map[string]int
	var f func()
	cases := []struct {
		v    any
		want bool
	}{
		{nil, true},
		{p, true},
		{m, true},
		{f, true},
		{0, false},
		{"", false},
		{map[string]int{}, false},
	}
	for i, tc := range cases {
		if got := isNil(tc.v); got != tc.want {
			t.Errorf("case %d: isNil(%#v) = %v, want %v", i, tc.v, got, tc.want)
		}
	}
}

func TestNilable(t *testing.T) {
	if nilable(reflect.TypeFor[int]()) {
		t.Fatalf("int must not be nilable")
	}
	if !nilable(reflect.TypeFor[any]()) || !nilable(reflect.TypeFor[*int]()) || !nilable(nil) {
		t.Fatalf("interfaces and pointers must be nilable")
	}
}

func TestClassifyItem(t *testing.T) {
	blank := "  "
	cases := []struct {
		v     any
		level itemLevel
		kind  Kind
		bad   bool
	}{
		{nil, levelNull, KindItemNull, true},
		{"", levelNull, 0, false},
		{"", levelEmpty, KindItemEmpty, true},
		{" ", levelEmpty, 0, false},
		{" ", levelWhitespace, KindItemWhitespace, true},
		{&blank, levelWhitespace, KindItemWhitespace, true},
		{[]int{}, levelWhitespace, KindItemEmpty, true},
		{42, levelWhitespace, 0, false},
	}
	for i, tc := range cases {
		kind, bad := classifyItem(tc.v, tc.level)
		if kind != tc.kind || bad != tc.bad {
			t.Errorf("case %d: classifyItem(%#v) = (%v, %v), want (%v, %v)", i, tc.v, kind, bad, tc.kind, tc.bad)
		}
	}
}

func TestDescribe(t *testing.T) {
	n := 3
	if got := describe(&n); got != "&3" {
		t.Fatalf("describe(&3) = %q", got)
	}
	if got := describe("x"); got != `"x"` {
		t.Fatalf("describe(x) = %q", got)
	}
	if got := describe(nil); got != "<nil>" {
		t.Fatalf("describe(nil) = %q", got)
	}
}
