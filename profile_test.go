package firemarks

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePlacesDB_DefaultReleaseFromProfilesINI(t *testing.T) {
	root, profileDir := writeFirefoxRoot(t, "default-release")

	got, err := resolvePlacesDB(root, "")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(profileDir, "places.sqlite")
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestResolvePlacesDB_NoDefaultReleaseSection(t *testing.T) {
	root, _ := writeFirefoxRoot(t, "default")

	_, err := resolvePlacesDB(root, "")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("want ErrProfileNotFound, got %v", err)
	}
}

func TestResolvePlacesDB_MissingProfilesINI(t *testing.T) {
	_, err := resolvePlacesDB(t.TempDir(), "")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("want ErrProfileNotFound, got %v", err)
	}
}

func TestResolvePlacesDB_AbsoluteProfilePath(t *testing.T) {
	root := t.TempDir()
	profileDir := t.TempDir()
	ini := "[Profile0]\nName=default-release\nIsRelative=0\nPath=" + profileDir + "\n"
	if err := os.WriteFile(filepath.Join(root, "profiles.ini"), []byte(ini), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := resolvePlacesDB(root, "")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(profileDir, "places.sqlite") {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestResolvePlacesDB_OverrideProfileName(t *testing.T) {
	root := t.TempDir()
	ini := "[Profile0]\nName=default-release\nIsRelative=1\nPath=Profiles/aa.default-release\n\n" +
		"[Profile1]\nName=work\nIsRelative=1\nPath=Profiles/bb.work\n"
	if err := os.WriteFile(filepath.Join(root, "profiles.ini"), []byte(ini), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := resolvePlacesDB(root, "work")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, "Profiles", "bb.work", "places.sqlite")
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestResolvePlacesDB_OverrideDirAndFile(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "places.sqlite")
	if err := os.WriteFile(dbPath, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := resolvePlacesDB("", dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != dbPath {
		t.Fatalf("dir override: got %q want %q", got, dbPath)
	}

	got, err = resolvePlacesDB("", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if got != dbPath {
		t.Fatalf("file override: got %q want %q", got, dbPath)
	}
}

func TestResolvePlacesDB_OverrideDirWithoutDB(t *testing.T) {
	_, err := resolvePlacesDB("", t.TempDir())
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("want ErrProfileNotFound, got %v", err)
	}
}
