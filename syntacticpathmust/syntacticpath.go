// Package syntacticpathmust wraps the syntacticpath package with panic-based
// error handling.
//
// It provides the same constructors and fallible path operations as the
// root-level syntacticpath package, but instead of returning errors, all
// exported functions panic on failure. This is convenient for path literals
// and tests where an invalid path is a programming error.
package syntacticpathmust

import (
	"github.com/Jumpaku/go-syntacticpath"
)

// Parse parses input into a Path.
//
// It panics if input contains illegal characters or illegal segments.
func Parse(input string) *syntacticpath.Path {
	return must1(syntacticpath.Parse(input))
}

// Get constructs a Path from the given segments, dropping empty entries and
// joining the rest with the separator.
//
// It panics if the joined path contains illegal characters or illegal
// segments.
func Get(segments ...string) *syntacticpath.Path {
	return must1(syntacticpath.Get(segments...))
}

// ResolveString parses other and resolves it against path.
//
// It panics if other is not a valid path string.
func ResolveString(path *syntacticpath.Path, other string) *syntacticpath.Path {
	return must1(path.ResolveString(other))
}

// Relativize returns the suffix of other as seen relative from path.
//
// It panics if exactly one of the two paths is absolute, or if path is not a
// proper prefix of other.
func Relativize(path, other *syntacticpath.Path) *syntacticpath.Path {
	return must1(path.Relativize(other))
}

// RelativizeString parses other and relativizes it against path.
//
// It panics if other is not a valid path string, if exactly one of the two
// paths is absolute, or if path is not a proper prefix of other.
func RelativizeString(path *syntacticpath.Path, other string) *syntacticpath.Path {
	return must1(path.RelativizeString(other))
}
