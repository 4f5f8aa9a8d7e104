package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings a host or client process may load from a
// TOML file.
type Config struct {
	Host struct {
		Address string `toml:"address"`
		Port    int    `toml:"port"`
		// BaseDir is the directory containing the "permissions" file
		// and the "history/" tree (spec §6).
		BaseDir string `toml:"base_dir"`
	} `toml:"host"`

	Client struct {
		Username string `toml:"username"`
		Address  string `toml:"address"`
		Port     int    `toml:"port"`
	} `toml:"client"`

	Editor struct {
		TabWidth   int    `toml:"tab_width"`
		ColorTheme string `toml:"color_theme"`
	} `toml:"editor"`
}

// Default returns a Config populated with the values collabedit falls
// back to for every field a config file does not set.
func Default() Config {
	var c Config
	c.Host.Address = "0.0.0.0"
	c.Host.Port = 12000
	c.Host.BaseDir = "."
	c.Client.Port = 12000
	c.Editor.TabWidth = 4
	c.Editor.ColorTheme = "default"
	return c
}

// Load reads a TOML config file at path, merging its values over the
// result of Default. A missing file is not an error; Load returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
