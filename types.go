package firemarks

import (
	"errors"

	"golang.org/x/text/unicode/norm"
)

// Style selects the output format for a bookmark.
type Style string

const (
	// StyleUnified renders one org link per line: `- [[url][title]]`.
	StyleUnified Style = "unified"
	// StyleSplit renders a heading line with the title and an indented link line.
	StyleSplit Style = "split"
	// StylePlain renders the bare URL, no title.
	StylePlain Style = "plain"
)

// Bookmark is a single bookmark entry as stored by Firefox.
type Bookmark struct {
	URL   string
	Title string
}

// NormalizedTitle returns the title in Unicode NFC form. Firefox stores some
// titles with decomposed diacritics; composing them keeps output stable for
// downstream text tools.
func (b Bookmark) NormalizedTitle() string {
	return norm.NFC.String(b.Title)
}

// Options configures a bookmark listing run.
type Options struct {
	// Folder is the bookmark folder to read from (default "toolbar").
	Folder string

	// Filter is an optional case-insensitive pattern (substring or regexp)
	// matched against each bookmark's URL and title.
	Filter string

	// Profile overrides profile selection: a profile name, a profile
	// directory, or an explicit places.sqlite path. If empty, the
	// "default-release" profile from profiles.ini is used.
	Profile string

	// FirefoxRoot overrides the Firefox configuration root (the directory
	// holding profiles.ini). Used by tests; if empty the per-OS default
	// applies.
	FirefoxRoot string
}

// Sentinel errors for the fatal failure modes. All are terminal for a run.
var (
	ErrProfileNotFound      = errors.New("firemarks: no default-release profile found")
	ErrDatabaseUnreadable   = errors.New("firemarks: bookmarks database unreadable")
	ErrFolderNotFound       = errors.New("firemarks: bookmark folder not found")
	ErrInvalidPattern       = errors.New("firemarks: invalid filter pattern")
	ErrUnknownStyle         = errors.New("firemarks: unknown style")
	ErrClipboardUnavailable = errors.New("firemarks: clipboard helper unavailable")
)
