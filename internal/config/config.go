// Package config loads user preferences from ~/.wrapexplorer.ini.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/ini.v1"
)

// Config holds user-tunable settings. A missing config file yields
// the defaults; the browser never requires one.
type Config struct {
	StartPath string // directory to open on launch; empty = first drive
	Workers   int    // size-computation workers; 0 = host core count
	Mouse     bool   // enable mouse support (marquee selection)
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Workers: 0,
		Mouse:   true,
	}
}

// Path returns the config file location.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wrapexplorer.ini"
	}
	return filepath.Join(home, ".wrapexplorer.ini")
}

// Load reads the config file at path, falling back to defaults for a
// missing file or any missing key.
func Load(path string) (Config, error) {
	c := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, err
	}

	file, err := ini.Load(path)
	if err != nil {
		return c, err
	}

	section := file.Section("general")
	c.StartPath = section.Key("start_path").MustString(c.StartPath)
	c.Workers = section.Key("workers").MustInt(c.Workers)
	c.Mouse = section.Key("mouse").MustBool(c.Mouse)

	return c, nil
}

// Save writes the config to path.
func Save(c Config, path string) error {
	file := ini.Empty()
	section := file.Section("general")

	section.Key("start_path").SetValue(c.StartPath)
	section.Key("workers").SetValue(strconv.Itoa(c.Workers))
	section.Key("mouse").SetValue(strconv.FormatBool(c.Mouse))

	return file.SaveTo(path)
}
