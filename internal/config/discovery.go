package config

import (
	"path/filepath"
	"strings"
)

const configDirName = "pears"

// configFileNames are checked in this order, lowest priority first.
// pears.json is the original format and is kept for existing setups.
var configFileNames = []string{"pears.json", "pears.yaml", "pears.yml", "pears.toml"}

// ConfigPaths returns the ordered list of config file paths to check.
// Paths are ordered from lowest to highest priority, so that when decoded
// sequentially, each subsequent file overrides values from previous files.
//
// When explicit is set (the --config flag) it is the only path returned,
// with a leading "~" expanded. Otherwise every supported file name in
// <configDir>/pears is returned.
func ConfigPaths(explicit, configDir, homeDir string) []string {
	if explicit != "" {
		return []string{ExpandHome(explicit, homeDir)}
	}
	if configDir == "" {
		return nil
	}

	paths := make([]string, 0, len(configFileNames))
	for _, name := range configFileNames {
		paths = append(paths, filepath.Join(configDir, configDirName, name))
	}
	return paths
}

// ExpandHome expands a leading "~" in a path to homeDir.
// "~user" forms are returned unchanged.
func ExpandHome(path, homeDir string) string {
	if homeDir == "" {
		return path
	}
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
