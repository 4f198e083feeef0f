package syntacticpath

// This file is part of the package tests (package syntacticpath) and provides
// helpers that allow tests in the external package to access internal
// package constructs. Helpers are exported so `syntacticpath_test` can call
// them via the module import path.

// NewIllegalCharactersError constructs an illegal-characters error using the
// package-internal constructor.
func NewIllegalCharactersError(path string) error {
	return newIllegalCharactersError(path)
}

// NewIllegalSegmentsError constructs an illegal-segments error using the
// package-internal constructor.
func NewIllegalSegmentsError(segments []string) error {
	return newIllegalSegmentsError(segments)
}

// NewRelativizeError constructs a relativize error using the package-internal
// constructor.
func NewRelativizeError(underlying error, left, right *Path) error {
	return newRelativizeError(underlying, left, right)
}
