// Package config handles loading tasks.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/tasks/internal/logging"
	"github.com/amonks/tasks/internal/paths"
)

// ProjectFile is the name of the per-directory config file.
const ProjectFile = "tasks.toml"

// FileEnvVar overrides the configured task file.
const FileEnvVar = "TASKS_FILE"

const (
	defaultFile      = "tasks.json"
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
	defaultWidth     = 80
)

// Config represents the tasks.toml configuration file.
type Config struct {
	Store Store `toml:"store"`
	Log   Log   `toml:"log"`
	UI    UI    `toml:"ui"`
}

// Store contains persistence configuration.
type Store struct {
	// File is the path of the JSON task file. Relative paths resolve against
	// the working directory.
	File string `toml:"file"`
}

// Log contains diagnostic logging configuration.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// Format is text or json.
	Format string `toml:"format"`
}

// UI contains terminal output configuration.
type UI struct {
	// Width is the wrap width for task descriptions.
	Width int `toml:"width"`
}

// Default returns the configuration used when no files exist.
func Default() *Config {
	return &Config{
		Store: Store{File: defaultFile},
		Log:   Log{Level: defaultLogLevel, Format: defaultLogFormat},
		UI:    UI{Width: defaultWidth},
	}
}

// Load loads configuration from dir and the global config file, then
// applies the TASKS_FILE environment override.
// Returns the defaults if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, ProjectFile))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	if file := strings.TrimSpace(os.Getenv(FileEnvVar)); file != "" {
		merged.Store.File = file
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Validate reports configuration values that cannot be used.
func (c *Config) Validate() error {
	if c.Store.File == "" {
		return fmt.Errorf("store.file cannot be empty")
	}
	if c.UI.Width < 1 {
		return fmt.Errorf("ui.width must be positive, got %d", c.UI.Width)
	}
	if !logging.IsLevel(c.Log.Level) {
		return fmt.Errorf("log.level must be one of %s, got %q", strings.Join(logging.Levels, ", "), c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

func globalConfigPath() (string, error) {
	dir, err := paths.DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: unknown key %q", path, undecoded[0].String())
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Default()
	merged.Store.File = mergeString(merged.Store.File,
		globalMeta.IsDefined("store", "file"), globalCfg.Store.File,
		projectMeta.IsDefined("store", "file"), projectCfg.Store.File)
	merged.Log.Level = mergeString(merged.Log.Level,
		globalMeta.IsDefined("log", "level"), globalCfg.Log.Level,
		projectMeta.IsDefined("log", "level"), projectCfg.Log.Level)
	merged.Log.Format = mergeString(merged.Log.Format,
		globalMeta.IsDefined("log", "format"), globalCfg.Log.Format,
		projectMeta.IsDefined("log", "format"), projectCfg.Log.Format)

	if projectMeta.IsDefined("ui", "width") {
		merged.UI.Width = projectCfg.UI.Width
	} else if globalMeta.IsDefined("ui", "width") {
		merged.UI.Width = globalCfg.UI.Width
	}

	return merged
}

func mergeString(defaultValue string, globalDefined bool, globalValue string, projectDefined bool, projectValue string) string {
	value := defaultValue
	if globalDefined {
		value = globalValue
	}
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
