// Package syntacticpath implements OS-independent, Unix-style syntactic
// filesystem paths.
//
// Syntactically, paths are composed of segments (arbitrary UTF-8 strings that
// do not contain '/' and are not ".") separated by the separator character
// '/'. Every path is either absolute or relative and is either a folder or
// not a folder: absolute paths start with "/" and folders end with "/". The
// path [RootPath] "/" is an absolute folder, the empty path "" is a relative
// non-folder. For example, "/foo/bar/" is an absolute folder path with
// segments "foo" and "bar", and "foo/bar/baz" is a relative non-folder path
// with segments "foo", "bar", "baz".
//
// The special segment ".." is a backwards segment similar to Unix paths;
// paths containing ".." can explicitly get normalized via [Path.Normalize] in
// order to collapse the backwards references. For example,
// Parse("foo/bar/../baz") normalizes to "foo/baz".
//
// Paths are purely textual: no operation touches a filesystem, resolves
// symlinks, or depends on the host operating system.
package syntacticpath

import (
	"encoding"
	"slices"
	"strings"
	"sync/atomic"
)

const (
	// Separator delimits segments in the string form of a path.
	Separator = "/"
	// SeparatorChar is Separator as a single rune.
	SeparatorChar = '/'
	// BackwardsPath is the special segment referring to the preceding segment.
	BackwardsPath = ".."
)

const (
	illegalCharacter = '\x00'
	illegalSegment   = "."
)

// RootPath is the absolute folder path "/" with no segments.
var RootPath = &Path{absolute: true, folder: true}

// Path is an immutable Unix-style syntactic path. The zero value is the
// empty relative non-folder path.
//
// The string representation of a path is the inverse of [Parse]: for any
// valid path string s, Parse(s).String() == s. Two paths are equal iff their
// string representations are equal, so [Path.String] is the form to use as a
// map key.
//
// A Path must not be copied after first use; the constructors hand out *Path
// and every transforming operation allocates a new one, so instances may be
// shared freely across goroutines.
type Path struct {
	segments []string
	absolute bool
	folder   bool

	// lazily memoized string and normalized representations
	str  atomic.Pointer[string]
	norm atomic.Pointer[Path]
}

var (
	_ encoding.TextMarshaler   = (*Path)(nil)
	_ encoding.TextUnmarshaler = (*Path)(nil)
)

// Parse parses input into a Path.
//
// The path is absolute iff input starts with Separator and a folder iff input
// ends with Separator. Consecutive separators are collapsed, e.g., "a//b" has
// segments "a" and "b". Backwards segments ".." are kept verbatim until
// [Path.Normalize] is called.
//
// Parse fails with an error wrapping [ErrIllegalCharacters] if input contains
// the NUL character, and with an error wrapping [ErrIllegalSegments] if any
// segment is ".".
func Parse(input string) (*Path, error) {
	if strings.ContainsRune(input, illegalCharacter) {
		return nil, newIllegalCharactersError(input)
	}
	segments := strings.FieldsFunc(input, func(r rune) bool { return r == SeparatorChar })
	if slices.Contains(segments, illegalSegment) {
		return nil, newIllegalSegmentsError(segments)
	}
	return newPath(segments, strings.HasPrefix(input, Separator), strings.HasSuffix(input, Separator)), nil
}

// newPath constructs a Path from segments assumed already legal by
// construction provenance.
func newPath(segments []string, absolute, folder bool) *Path {
	return &Path{segments: segments, absolute: absolute, folder: folder}
}

// IsAbsolute reports whether this path starts with Separator.
func (p *Path) IsAbsolute() bool {
	return p.absolute
}

// IsFolder reports whether the string form of this path ends with Separator.
func (p *Path) IsFolder() bool {
	return p.folder
}

// Segments returns a copy of the segments of this path, i.e., the
// directories and the file name if they exist. For example, the segments of
// "/abc/def" are "abc" and "def".
func (p *Path) Segments() []string {
	return slices.Clone(p.segments)
}

// Normalize returns a version of this path in which all backwards navigation
// is resolved: each ".." segment removes the segment before it, and backwards
// navigation past the first segment is dropped silently. For example,
// "/a/b/.." normalizes to "/a" and "a/../.." normalizes to "". The normalized
// path is absolute iff this path is absolute and a folder iff this path is a
// folder.
func (p *Path) Normalize() *Path {
	if n := p.norm.Load(); n != nil {
		return n
	}
	normal := make([]string, 0, len(p.segments))
	for _, segment := range p.segments {
		if segment == BackwardsPath {
			if len(normal) > 0 {
				normal = normal[:len(normal)-1]
			}
		} else {
			normal = append(normal, segment)
		}
	}
	n := newPath(normal, p.absolute, p.folder)
	n.norm.Store(n) // a normalized path is its own normal form
	p.norm.Store(n)
	return n
}

// Root returns [RootPath] if this path is absolute and has at least one
// segment, or nil otherwise. In particular the empty relative path has no
// root.
func (p *Path) Root() *Path {
	if p.absolute && len(p.segments) > 0 {
		return RootPath
	}
	return nil
}

// FileName returns the last segment of the normalized path as a relative
// non-folder path, or nil if the normalized path has no segments. A relative
// single-segment path is its own file name and is returned as is.
func (p *Path) FileName() *Path {
	normal := p.Normalize()
	n := len(normal.segments)
	if n == 0 {
		return nil
	}
	if n == 1 && !normal.absolute {
		return p
	}
	return newPath([]string{normal.segments[n-1]}, false, false)
}

// Parent returns the path formed by all but the last segment of the
// normalized path; the parent is always a folder. Parent returns nil if the
// normalized path has no segments and [Path.Root] if it has exactly one, so
// relative single-segment paths have no parent.
func (p *Path) Parent() *Path {
	normal := p.Normalize()
	n := len(normal.segments)
	switch n {
	case 0:
		return nil
	case 1:
		return p.Root() // nil if the path is relative
	default:
		return newPath(slices.Clone(normal.segments[:n-1]), normal.absolute, true)
	}
}

// Resolve resolves other against this path. If other is absolute it is
// returned unchanged; otherwise the result concatenates the segments of this
// path and of other, is absolute iff this path is absolute, and is a folder
// iff other is a folder. The result is not normalized.
func (p *Path) Resolve(other *Path) *Path {
	if other.absolute {
		return other
	}
	return newPath(slices.Concat(p.segments, other.segments), p.absolute, other.folder)
}

// ResolveString parses other and resolves it against this path, failing with
// the same errors as [Parse].
func (p *Path) ResolveString(other string) (*Path, error) {
	path, err := Parse(other)
	if err != nil {
		return nil, err
	}
	return p.Resolve(path), nil
}

// Relativize returns the suffix of other as seen relative from this path:
// both paths are normalized, the normalized receiver must be of the same
// kind (absolute or relative) as other and its segments must be a proper
// prefix of other's segments, and the result is the relative path over
// other's remaining segments, a folder iff other is a folder.
//
// For example, relativizing "/a/b/c/d" against "/a/b" yields "c/d".
//
// Relativize fails with an error wrapping [ErrAbsoluteMismatch] if exactly
// one of the two paths is absolute, and with an error wrapping
// [ErrNotProperPrefix] if the receiver is not a proper prefix of other; in
// particular equal paths cannot be relativized.
func (p *Path) Relativize(other *Path) (*Path, error) {
	left, right := p.Normalize(), other.Normalize()

	if left.absolute != right.absolute {
		return nil, newRelativizeError(ErrAbsoluteMismatch, left, right)
	}
	n := len(left.segments)
	if n >= len(right.segments) || !slices.Equal(left.segments, right.segments[:n]) {
		return nil, newRelativizeError(ErrNotProperPrefix, left, right)
	}

	if n == 0 && !left.absolute {
		return right, nil
	}
	return newPath(slices.Clone(right.segments[n:]), false, right.folder), nil
}

// RelativizeString parses other and relativizes it against this path.
func (p *Path) RelativizeString(other string) (*Path, error) {
	path, err := Parse(other)
	if err != nil {
		return nil, err
	}
	return p.Relativize(path)
}

// StartsWith reports whether the segments of the given other path are a
// prefix (including equality) of the segments of this path. Both paths are
// normalized before comparison, and an absolute path never starts with a
// relative one or vice versa. For example, "/a/b/c" starts with "/a/b" but
// not with "a/b", and "/a/../b" starts with "/b" but not with "/a".
func (p *Path) StartsWith(other *Path) bool {
	left, right := p.Normalize(), other.Normalize()
	if len(left.segments) < len(right.segments) {
		return false
	}
	if left.absolute != right.absolute {
		return false
	}
	return strings.HasPrefix(left.String(), right.String())
}

// EndsWith reports whether the segments of the given other path are a suffix
// (including equality) of the segments of this path. Both paths are
// normalized before comparison. An absolute other can only be a full match,
// never a true suffix. EndsWith is agnostic of whether either path is a
// folder, e.g., "a/b" ends with "b/".
func (p *Path) EndsWith(other *Path) bool {
	left, right := p.Normalize(), other.Normalize()
	nl, nr := len(left.segments), len(right.segments)
	switch {
	case nl < nr:
		return false
	case nl == nr:
		if !left.absolute && right.absolute {
			return false
		}
		return slices.Equal(left.segments, right.segments)
	default:
		if right.absolute {
			return false
		}
		return slices.Equal(left.segments[nl-nr:], right.segments)
	}
}

// ToAbsolute returns this path if it is absolute, or this path resolved
// against [RootPath] otherwise.
func (p *Path) ToAbsolute() *Path {
	if p.absolute {
		return p
	}
	return RootPath.Resolve(p)
}

// Compare orders paths lexicographically by their (non-normalized) string
// representations.
func (p *Path) Compare(other *Path) int {
	return strings.Compare(p.String(), other.String())
}

// Equal reports whether p and other have the same string representation.
// A nil other is never equal.
func (p *Path) Equal(other *Path) bool {
	return other != nil && p.Compare(other) == 0
}

// String returns the string representation of this (non-normalized) path: a
// Separator prefix iff the path is absolute, the segments joined by
// Separator, and a Separator suffix iff the path is a folder. The zero
// segment paths render as "/" (absolute) and "" (relative).
func (p *Path) String() string {
	if s := p.str.Load(); s != nil {
		return *s
	}
	s := p.buildString()
	p.str.Store(&s)
	return s
}

func (p *Path) buildString() string {
	if len(p.segments) == 0 {
		if p.absolute {
			return Separator
		}
		return ""
	}
	var b strings.Builder
	if p.absolute {
		b.WriteString(Separator)
	}
	b.WriteString(strings.Join(p.segments, Separator))
	if p.folder {
		b.WriteString(Separator)
	}
	return b.String()
}

// MarshalText encodes this path as its string representation.
func (p *Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses text as a path string and replaces p with the result.
// Malformed input fails with the same errors as [Parse].
func (p *Path) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	p.segments, p.absolute, p.folder = parsed.segments, parsed.absolute, parsed.folder
	p.str.Store(nil)
	p.norm.Store(nil)
	return nil
}
