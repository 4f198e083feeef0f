package syntacticpath

import "strings"

// Get constructs a Path from the given segments by dropping empty entries,
// joining the rest with [Separator], and parsing the result via [Parse], so
// it fails with the same errors on illegal characters or segments. The
// returned path is absolute iff the first non-empty segment starts with
// [Separator]. Calling Get with no segments yields the empty relative path.
func Get(segments ...string) (*Path, error) {
	nonEmpty := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment != "" {
			nonEmpty = append(nonEmpty, segment)
		}
	}
	return Parse(strings.Join(nonEmpty, Separator))
}
