package firemarks

import (
	"fmt"
	"regexp"
)

// compileFilter builds a case-insensitive matcher from pattern. Plain text
// works as a substring search; full regexp syntax is accepted too. The match
// runs over the verbatim URL and title, not the normalized title.
func compileFilter(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re, nil
}

// filterBookmarks narrows bookmarks to those matching pattern, keeping the
// input order. An empty pattern passes everything through unchanged.
func filterBookmarks(bookmarks []Bookmark, pattern string) ([]Bookmark, error) {
	re, err := compileFilter(pattern)
	if err != nil {
		return nil, err
	}
	if re == nil {
		return bookmarks, nil
	}

	out := make([]Bookmark, 0, len(bookmarks))
	for _, b := range bookmarks {
		if re.MatchString(b.URL) || re.MatchString(b.Title) {
			out = append(out, b)
		}
	}
	return out, nil
}
