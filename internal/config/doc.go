// Package config loads host/client configuration from an optional TOML
// file, using the same library the teacher's loader does
// (github.com/pelletier/go-toml/v2). No CLI flag sets these values;
// "-C IP USER" dials Client.Port when its address names no port.
package config
