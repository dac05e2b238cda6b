package firemarks

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-ini/ini"
)

// Config keys shared by the config file and the CLI flags.
const (
	keyClipboard = "clipboard"
	keyStyle     = "style"
	keyFilter    = "filter"
	keyFolder    = "folder"
)

func defaultConfig() map[string]string {
	return map[string]string{
		keyClipboard: "false",
		keyStyle:     string(StyleUnified),
		keyFolder:    "toolbar",
	}
}

// UserConfigPath is the fixed per-user config file location.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "firemarks", "config.ini")
}

// loadConfigFile reads the key-value config file at path. A missing file is
// not an error and yields an empty layer.
func loadConfigFile(path string) map[string]string {
	out := map[string]string{}
	if path == "" || !fileExists(path) {
		return out
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return out
	}
	sec := cfg.Section("")
	for _, key := range []string{keyClipboard, keyStyle, keyFilter, keyFolder} {
		if sec.HasKey(key) {
			out[key] = sec.Key(key).String()
		}
	}
	return out
}

// mergeConfig layers key-value maps left to right; later layers win key by
// key, absent keys fall through.
func mergeConfig(layers ...map[string]string) map[string]string {
	out := map[string]string{}
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}

// RunConfig is the effective per-run configuration after layering built-in
// defaults, the user config file and explicit CLI flags.
type RunConfig struct {
	Clipboard bool
	Style     Style
	Folder    string
	Filter    string
}

// ResolveConfig merges the three layers into one RunConfig. The style value
// is carried through unvalidated; formatting rejects unknown styles. A
// malformed clipboard boolean falls back to the built-in default.
func ResolveConfig(filePath string, flags map[string]string) RunConfig {
	merged := mergeConfig(defaultConfig(), loadConfigFile(filePath), flags)

	clipboard, err := strconv.ParseBool(merged[keyClipboard])
	if err != nil {
		clipboard = false
	}

	return RunConfig{
		Clipboard: clipboard,
		Style:     Style(merged[keyStyle]),
		Folder:    merged[keyFolder],
		Filter:    merged[keyFilter],
	}
}
