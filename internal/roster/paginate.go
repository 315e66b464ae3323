// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package roster

// PageSize is the number of users shown per page.
const PageSize = 5

// PagePolicy decides what Next and Prev do at the ends of the sequence.
type PagePolicy int

const (
	// PageClamp keeps the current page within [1, total pages].
	PageClamp PagePolicy = iota
	// PageClip lets the page run past either end; the slice comes back empty.
	PageClip
)

// ParsePagePolicy maps a config value to a PagePolicy. Unknown values clamp.
func ParsePagePolicy(s string) PagePolicy {
	if s == "clip" {
		return PageClip
	}
	return PageClamp
}

func (p PagePolicy) String() string {
	if p == PageClip {
		return "clip"
	}
	return "clamp"
}

// TotalPages returns ceil(count/size), never less than 1.
func TotalPages(count, size int) int {
	if size < 1 {
		size = 1
	}
	pages := (count + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// PageSlice returns the elements of seq on the given 1-based page, clipped
// to the bounds of seq. Pages outside the sequence yield an empty slice.
func PageSlice[T any](seq []T, page, size int) []T {
	if size < 1 || page < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(seq) {
		return []T{}
	}
	end := min(start+size, len(seq))
	return seq[start:end:end]
}
