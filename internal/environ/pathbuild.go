package environ

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidSegment reports a caller-supplied path segment that cannot be
// used to derive a path.
var ErrInvalidSegment = errors.New("invalid path segment")

// BuildPath appends path segments to the given base path, returning the
// result. The base is taken in its absolute form; segments are joined in
// order and never reordered or deduplicated. With no segments the base is
// returned unchanged.
func BuildPath(base string, segments ...string) string {
	cur := absolute(base)
	for _, segment := range segments {
		cur = filepath.Join(cur, segment)
	}
	return cur
}

// BuildPaths appends path segments to each given base path, returning the
// results in the same order and count as the bases.
func BuildPaths(bases []string, segments ...string) []string {
	result := make([]string, len(bases))
	for i, base := range bases {
		result[i] = BuildPath(base, segments...)
	}
	return result
}

// absolute returns the absolute form of path. Resolution against the working
// directory can only fail when the working directory is gone; the path is
// then returned as given.
func absolute(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// validateSegment rejects caller-supplied segments that would escape the
// volume they are composed under. These paths are operated on with elevated
// privileges, so derivation is fail-fast rather than best-effort.
func validateSegment(segment string) error {
	if segment == "" {
		return fmt.Errorf("%w: segment is empty", ErrInvalidSegment)
	}
	if filepath.IsAbs(segment) {
		return fmt.Errorf("%w: %q is absolute", ErrInvalidSegment, segment)
	}
	if filepath.Clean(segment) != segment || strings.Contains(segment, "..") {
		return fmt.Errorf("%w: %q contains invalid path components", ErrInvalidSegment, segment)
	}
	return nil
}
