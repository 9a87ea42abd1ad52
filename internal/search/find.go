package search

import "strings"

// FindNext returns the first index after current whose name starts with query,
// ignoring case, wrapping around to scan 0..current inclusive. An empty query
// or no match returns current and false. A current of -1 scans from 0.
func FindNext(names []string, current int, query string) (int, bool) {
	if query == "" || len(names) == 0 {
		return current, false
	}
	needle := strings.ToLower(query)
	match := func(i int) bool {
		return strings.HasPrefix(strings.ToLower(names[i]), needle)
	}

	start := current
	if start < -1 || start >= len(names) {
		start = -1
	}
	for i := start + 1; i < len(names); i++ {
		if match(i) {
			return i, true
		}
	}
	for i := 0; i <= start; i++ {
		if match(i) {
			return i, true
		}
	}
	return current, false
}
