package firemarks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
)

const placesDBName = "places.sqlite"

// defaultProfileName is the Name value Firefox gives the profile it actually
// uses on stock installs (observed on Ubuntu-packaged Firefox). This
// heuristic is tied to that convention and is not guaranteed to hold for
// other install channels; it is a documented limitation.
const defaultProfileName = "default-release"

// resolvePlacesDB returns the path of the places.sqlite to read. An override
// may be a places.sqlite path, a profile directory, or a profile name; with
// no override the default-release profile from profiles.ini is used.
func resolvePlacesDB(root, override string) (string, error) {
	override = strings.TrimSpace(override)
	if override != "" {
		if fi, err := os.Stat(override); err == nil {
			if fi.IsDir() {
				dbPath := filepath.Join(override, placesDBName)
				if fileExists(dbPath) {
					return dbPath, nil
				}
				return "", fmt.Errorf("%w: no %s in %q", ErrProfileNotFound, placesDBName, override)
			}
			return override, nil
		}
	}

	profileDir, err := profileDirFromINI(root, override)
	if err != nil {
		return "", err
	}
	return filepath.Join(profileDir, placesDBName), nil
}

// profileDirFromINI walks the [Profile*] sections of <root>/profiles.ini and
// returns the directory of the wanted profile. With an empty name it picks
// the first section whose Name is default-release.
func profileDirFromINI(root, name string) (string, error) {
	iniPath := filepath.Join(root, "profiles.ini")
	cfg, err := ini.Load(iniPath)
	if err != nil {
		return "", fmt.Errorf("%w: %q unreadable", ErrProfileNotFound, iniPath)
	}

	want := name
	if want == "" {
		want = defaultProfileName
	}

	for _, secName := range cfg.SectionStrings() {
		if !strings.HasPrefix(secName, "Profile") {
			continue
		}
		sec := cfg.Section(secName)
		pathStr := filepath.FromSlash(sec.Key("Path").String())
		if pathStr == "" {
			continue
		}
		if sec.Key("Name").String() != want && filepath.Base(pathStr) != want {
			continue
		}
		if sec.Key("IsRelative").String() == "1" {
			pathStr = filepath.Join(root, pathStr)
		}
		return pathStr, nil
	}

	return "", fmt.Errorf("%w: profile %q not in %q", ErrProfileNotFound, want, iniPath)
}
