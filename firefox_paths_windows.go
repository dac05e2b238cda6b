//go:build windows

package firemarks

import (
	"os"
	"path/filepath"
)

func firefoxRoot() string {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "Mozilla", "Firefox")
	}
	return ""
}
