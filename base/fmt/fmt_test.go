package fmt_test

import (
	"strings"
	"testing"

	basefmt "github.com/nx-org/nx/base/fmt"
)

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

func TestString(t *testing.T) {
	tests := []struct {
		x    any
		want string
	}{
		{x: nil, want: "nil"},
		{x: stringer{s: "a stringer"}, want: "a stringer"},
		{x: "raw", want: "raw"},
		{x: 42, want: "42"},
	}
	for ti, test := range tests {
		got := basefmt.String(test.x)
		if got != test.want {
			t.Errorf("test %d: got %q but want %q", ti, got, test.want)
		}
	}
}

func TestList(t *testing.T) {
	got := basefmt.List([]any{stringer{s: "a"}, stringer{s: "b"}})
	if got != "a, b" {
		t.Errorf("got %q but want %q", got, "a, b")
	}
}

func TestFunc(t *testing.T) {
	if got := basefmt.Func(nil); got != "<nil>" {
		t.Errorf("got %q but want %q", got, "<nil>")
	}
	got := basefmt.Func(TestFunc)
	if !strings.Contains(got, "TestFunc") {
		t.Errorf("got %q but want a name containing TestFunc", got)
	}
}
