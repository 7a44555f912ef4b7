package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoadResult is the effective config and the files it came from.
type LoadResult struct {
	Config      Config
	SourcePaths []string // lowest priority first
}

// FileSystem is the file access the Loader needs.
type FileSystem interface {
	// Exists reports whether path is a regular file.
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
}

// OSFileSystem reads from disk.
type OSFileSystem struct{}

func (OSFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader overlays config files onto the defaults.
type Loader struct {
	fs  FileSystem
	log *log.Logger
}

// NewLoader returns a Loader reading through fs.
func NewLoader(fs FileSystem) *Loader {
	return &Loader{fs: fs, log: log.Default().WithPrefix("config")}
}

// NewDefaultLoader returns a Loader reading from disk.
func NewDefaultLoader() *Loader {
	return NewLoader(OSFileSystem{})
}

// Load applies each existing file in paths over DefaultConfig, lowest priority
// first, and validates the result. Missing files are skipped.
func (l *Loader) Load(paths []string) (LoadResult, error) {
	cfg := DefaultConfig()
	var sourcePaths []string

	for _, path := range paths {
		if !l.fs.Exists(path) {
			continue
		}

		if err := l.decodeFile(path, &cfg); err != nil {
			return LoadResult{}, err
		}
		l.log.Debug("loaded config", "path", path)
		sourcePaths = append(sourcePaths, path)
	}

	if err := cfg.Validate(); err != nil {
		return LoadResult{}, fmt.Errorf("invalid config: %w", err)
	}

	return LoadResult{
		Config:      cfg,
		SourcePaths: sourcePaths,
	}, nil
}

// LoadRequired loads a single config file that must exist, such as one named with --config.
func (l *Loader) LoadRequired(path string) (LoadResult, error) {
	if !l.fs.Exists(path) {
		return LoadResult{}, fmt.Errorf("config file %s not found", path)
	}
	return l.Load([]string{path})
}

// decodeFile overlays the file at path onto cfg, choosing the format by extension.
func (l *Loader) decodeFile(path string, cfg *Config) error {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		metadata, err := toml.Decode(string(data), cfg)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
			l.log.Warn("unknown config keys", "path", path, "keys", undecoded)
		}
	case ".yaml", ".yml":
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".json":
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q for %s (use .toml, .yaml or .json)", ext, path)
	}
	return nil
}
