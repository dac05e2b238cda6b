package firemarks

import "fmt"

// formatBookmark renders one bookmark in the given style. Titles are emitted
// in NFC form so decomposed diacritics from the database come out composed.
func formatBookmark(b Bookmark, style Style) (string, error) {
	switch style {
	case StylePlain:
		return b.URL, nil
	case StyleSplit:
		return fmt.Sprintf("* %s\n  [[%s]]", b.NormalizedTitle(), b.URL), nil
	case StyleUnified:
		return fmt.Sprintf("- [[%s][%s]]", b.URL, b.NormalizedTitle()), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, string(style))
	}
}

// Render formats all bookmarks up front. A bad style therefore aborts the
// run before a single line is written.
func Render(bookmarks []Bookmark, style Style) ([]string, error) {
	out := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		s, err := formatBookmark(b, style)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
