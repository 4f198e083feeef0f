package syntacticpathmust_test

import (
	"errors"
	"testing"

	"github.com/Jumpaku/go-syntacticpath"
	"github.com/Jumpaku/go-syntacticpath/syntacticpathmust"
)

func mustPanicWith(t *testing.T, want error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value = %v, want an error", r)
		}
		if !errors.Is(err, want) {
			t.Fatalf("panic error = %v, want %v", err, want)
		}
	}()
	f()
}

func TestParse(t *testing.T) {
	got := syntacticpathmust.Parse("/a/b/")
	if got.String() != "/a/b/" {
		t.Fatalf("Parse() = %q, want %q", got.String(), "/a/b/")
	}

	mustPanicWith(t, syntacticpath.ErrIllegalSegments, func() {
		syntacticpathmust.Parse("a/./b")
	})
	mustPanicWith(t, syntacticpath.ErrIllegalCharacters, func() {
		syntacticpathmust.Parse("a\x00b")
	})
}

func TestGet(t *testing.T) {
	got := syntacticpathmust.Get("/a", "b", "", "c")
	if got.String() != "/a/b/c" {
		t.Fatalf("Get() = %q, want %q", got.String(), "/a/b/c")
	}

	mustPanicWith(t, syntacticpath.ErrIllegalSegments, func() {
		syntacticpathmust.Get("a", ".")
	})
}

func TestResolveString(t *testing.T) {
	base := syntacticpathmust.Parse("/a")
	got := syntacticpathmust.ResolveString(base, "b/c")
	if got.String() != "/a/b/c" {
		t.Fatalf("ResolveString() = %q, want %q", got.String(), "/a/b/c")
	}

	mustPanicWith(t, syntacticpath.ErrIllegalSegments, func() {
		syntacticpathmust.ResolveString(base, "b/./c")
	})
}

func TestRelativize(t *testing.T) {
	left := syntacticpathmust.Parse("/a")
	right := syntacticpathmust.Parse("/a/b/c")
	got := syntacticpathmust.Relativize(left, right)
	if got.String() != "b/c" {
		t.Fatalf("Relativize() = %q, want %q", got.String(), "b/c")
	}

	mustPanicWith(t, syntacticpath.ErrNotProperPrefix, func() {
		syntacticpathmust.Relativize(left, left)
	})
	mustPanicWith(t, syntacticpath.ErrAbsoluteMismatch, func() {
		syntacticpathmust.Relativize(left, syntacticpathmust.Parse("a/b"))
	})
}

func TestRelativizeString(t *testing.T) {
	left := syntacticpathmust.Parse("/a")
	got := syntacticpathmust.RelativizeString(left, "/a/b")
	if got.String() != "b" {
		t.Fatalf("RelativizeString() = %q, want %q", got.String(), "b")
	}

	mustPanicWith(t, syntacticpath.ErrIllegalSegments, func() {
		syntacticpathmust.RelativizeString(left, "/a/./b")
	})
}
