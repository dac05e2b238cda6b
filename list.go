package firemarks

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// List resolves the bookmarks database for the configured profile, reads the
// requested folder and applies the optional filter. Row order from the
// database is preserved.
func List(ctx context.Context, opts Options) ([]Bookmark, error) {
	folder := opts.Folder
	if folder == "" {
		folder = "toolbar"
	}

	root := opts.FirefoxRoot
	if root == "" {
		root = firefoxRoot()
	}

	dbPath, err := resolvePlacesDB(root, opts.Profile)
	if err != nil {
		return nil, err
	}

	bookmarks, err := readBookmarks(ctx, dbPath, folder)
	if err != nil {
		return nil, err
	}

	return filterBookmarks(bookmarks, opts.Filter)
}

// writeLines emits each formatted block as its own line, in order.
func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Deliver sends the formatted blocks to their sink: stdout-style writer, or
// the clipboard helper with the whole text buffered up front.
func Deliver(ctx context.Context, w io.Writer, lines []string, clipboard bool) error {
	if !clipboard {
		return writeLines(w, lines)
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return copyToClipboard(ctx, sb.String())
}
