// Package matching filters a catalog against the user's query.
//
// Matching is plain substring containment of the lower-cased query in
// each entry's search key. There is no tokenizing, trimming, scoring or
// edit distance.
package matching

import (
	"strings"

	"tabsearch.dev/cli/internal/core/catalog"
)

// MaxResults caps the number of entries returned for a non-empty query
const MaxResults = 20

// Result is the outcome of one search
type Result struct {
	Query     string
	Entries   []catalog.Entry
	Truncated bool
}

// Browsing reports whether the query was empty
func (r Result) Browsing() bool {
	return r.Query == ""
}

// Empty reports whether a non-empty query matched nothing
func (r Result) Empty() bool {
	return !r.Browsing() && len(r.Entries) == 0
}

// Search returns the entries to display for query.
//
// An empty query returns every primary entry sorted by display text.
// Otherwise entries are scanned in catalog order and collected while their
// search key contains the query; the scan stops when a match beyond
// MaxResults is found and the result is marked truncated.
func Search(entries []catalog.Entry, query string) Result {
	if query == "" {
		primaries := catalog.Primaries(entries)
		catalog.SortByDisplayText(primaries)
		return Result{Query: query, Entries: primaries}
	}

	needle := strings.ToLower(query)
	result := Result{Query: query, Entries: make([]catalog.Entry, 0, MaxResults)}

	for _, e := range entries {
		if !strings.Contains(e.SearchKey, needle) {
			continue
		}
		if len(result.Entries) == MaxResults {
			result.Truncated = true
			break
		}
		result.Entries = append(result.Entries, e)
	}

	return result
}
