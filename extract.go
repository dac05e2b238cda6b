package firemarks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// readBookmarks returns all bookmarks stored under the named folder,
// preserving the database's native row order. Several folders may share a
// name; the one with the lowest rowid wins, which keeps the choice stable
// across runs.
func readBookmarks(ctx context.Context, dbPath, folder string) ([]Bookmark, error) {
	var out []Bookmark
	err := withSnapshot(ctx, dbPath, func(db *sql.DB) error {
		folderID, err := folderIDByTitle(ctx, db, folder)
		if err != nil {
			return err
		}

		rows, err := db.QueryContext(ctx,
			`SELECT moz_places.url, moz_bookmarks.title
			 FROM moz_places
			 INNER JOIN moz_bookmarks ON moz_places.id = moz_bookmarks.fk
			 WHERE moz_bookmarks.parent = ?`, folderID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDatabaseUnreadable, err)
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var url, title sql.NullString
			if err := rows.Scan(&url, &title); err != nil {
				return fmt.Errorf("%w: %v", ErrDatabaseUnreadable, err)
			}
			out = append(out, Bookmark{URL: url.String, Title: title.String})
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrDatabaseUnreadable, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func folderIDByTitle(ctx context.Context, db *sql.DB, title string) (int64, error) {
	var id int64
	err := db.QueryRowContext(ctx,
		`SELECT id FROM moz_bookmarks WHERE title = ? ORDER BY id LIMIT 1`, title).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %q", ErrFolderNotFound, title)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDatabaseUnreadable, err)
	}
	return id, nil
}
