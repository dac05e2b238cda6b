package firemarks

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestSQLite(t *testing.T, path string) *sql.DB {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	db, err := sql.Open("sqlite", "file:"+filepath.ToSlash(path)+"?mode=rwc")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// placesFixture is a minimal places.sqlite: one folder row plus one bookmark
// row per entry, wired through moz_bookmarks.fk -> moz_places.id.
type placesFixture struct {
	db        *sql.DB
	nextID    int64
	nextPlace int64
}

func newPlacesFixture(t *testing.T, path string) *placesFixture {
	t.Helper()
	db := openTestSQLite(t, path)
	stmts := []string{
		`CREATE TABLE moz_bookmarks(id INTEGER PRIMARY KEY, type INTEGER, fk INTEGER, parent INTEGER, position INTEGER, title TEXT)`,
		`CREATE TABLE moz_places(id INTEGER PRIMARY KEY, url TEXT)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatal(err)
		}
	}
	return &placesFixture{db: db, nextID: 1, nextPlace: 1}
}

func (f *placesFixture) addFolder(t *testing.T, title string) int64 {
	t.Helper()
	id := f.nextID
	f.nextID++
	if _, err := f.db.Exec(
		`INSERT INTO moz_bookmarks(id, type, fk, parent, position, title) VALUES(?, 2, NULL, 0, 0, ?)`,
		id, title,
	); err != nil {
		t.Fatal(err)
	}
	return id
}

func (f *placesFixture) addBookmark(t *testing.T, parent int64, url, title string) {
	t.Helper()
	placeID := f.nextPlace
	f.nextPlace++
	if _, err := f.db.Exec(`INSERT INTO moz_places(id, url) VALUES(?, ?)`, placeID, url); err != nil {
		t.Fatal(err)
	}
	id := f.nextID
	f.nextID++
	if _, err := f.db.Exec(
		`INSERT INTO moz_bookmarks(id, type, fk, parent, position, title) VALUES(?, 1, ?, ?, 0, ?)`,
		id, placeID, parent, title,
	); err != nil {
		t.Fatal(err)
	}
}

// writeFirefoxRoot lays out a Firefox config root with a profiles.ini
// pointing at one relative profile and returns (root, profileDir).
func writeFirefoxRoot(t *testing.T, profileName string) (string, string) {
	t.Helper()
	root := t.TempDir()
	profileDir := filepath.Join(root, "Profiles", "abcd."+profileName)
	if err := os.MkdirAll(profileDir, 0o755); err != nil {
		t.Fatal(err)
	}
	ini := "[Profile0]\nName=" + profileName + "\nIsRelative=1\nPath=Profiles/abcd." + profileName + "\n\n"
	if err := os.WriteFile(filepath.Join(root, "profiles.ini"), []byte(ini), 0o644); err != nil {
		t.Fatal(err)
	}
	return root, profileDir
}
