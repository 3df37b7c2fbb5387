package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// configDirName is the directory holding config.yml, both in the project and in $HOME.
const configDirName = ".rep"

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from files and environment variables.
	// Priority: defaults → user config → project config → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
	homeDir string
}

// NewLoader creates a loader reading the project config under rootDir and the
// user config under homeDir. An empty homeDir skips the user config.
func NewLoader(rootDir, homeDir string) Loader {
	return &loader{
		rootDir: rootDir,
		homeDir: homeDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (REP_*)
// 2. Project config file (.rep/config.yml or .rep/config.yaml)
// 3. User config file (~/.rep/config.yml or ~/.rep/config.yaml)
// 4. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Enable environment variable overrides
	v.SetEnvPrefix("REP")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., REP_FILES_IGNORE)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("defaults.flags")
	v.BindEnv("files.ignore")

	setDefaults(v)

	// Missing files are fine; later files override earlier ones
	for _, dir := range l.configDirs() {
		path, ok := findConfigFile(dir)
		if !ok {
			continue
		}
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (l *loader) configDirs() []string {
	var dirs []string
	if l.homeDir != "" {
		dirs = append(dirs, filepath.Join(l.homeDir, configDirName))
	}
	projectDir := filepath.Join(l.rootDir, configDirName)
	if len(dirs) == 0 || dirs[0] != projectDir {
		dirs = append(dirs, projectDir)
	}
	return dirs
}

// findConfigFile returns dir/config.yml or dir/config.yaml, whichever exists first.
func findConfigFile(dir string) (string, bool) {
	for _, name := range []string{"config.yml", "config.yaml"} {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("defaults.flags", defaults.Defaults.Flags)
	v.SetDefault("files.ignore", defaults.Files.Ignore)
}

// LoadConfig is a convenience function that loads config for the current
// working directory and the current user.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	// No home directory just means no user config
	home, _ := os.UserHomeDir()
	return NewLoader(wd, home).Load()
}
