package firemarks

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver (pure Go).
)

// withSnapshot copies the database at dbPath into a private scratch
// directory, opens the copy read-only and runs fn against it. Firefox keeps
// the live database locked, so queries always go through a snapshot. The
// scratch directory is removed on every exit path.
func withSnapshot(ctx context.Context, dbPath string, fn func(*sql.DB) error) error {
	if !fileExists(dbPath) {
		return fmt.Errorf("%w: %q", ErrDatabaseUnreadable, dbPath)
	}

	dir, err := os.MkdirTemp("", "firemarks-")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseUnreadable, err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	snap := filepath.Join(dir, placesDBName)
	if err := copyFile(dbPath, snap); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseUnreadable, err)
	}

	// If WAL mode is enabled, recent writes may live in sidecars.
	_ = copyFileIfExists(dbPath+"-wal", snap+"-wal")
	_ = copyFileIfExists(dbPath+"-shm", snap+"-shm")

	db, err := sql.Open("sqlite", "file:"+filepath.ToSlash(snap)+"?mode=ro")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseUnreadable, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseUnreadable, err)
	}

	return fn(db)
}
