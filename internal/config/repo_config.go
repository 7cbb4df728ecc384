package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// FileName is the name of the config file inside the git directory
const FileName = ".gq_config"

// CurrentVersion is written to newly initialized configs
const CurrentVersion = "1"

// Review tools understood by gq
const (
	ReviewToolNone   = "none"
	ReviewToolGitHub = "github"
)

// Defaults used when neither the file nor the environment sets a value
const (
	DefaultRemote     = "origin"
	DefaultReviewTool = ReviewToolNone
)

// RepoConfig represents the repository configuration
type RepoConfig struct {
	Remote     string `json:"remote" mapstructure:"remote"`
	ReviewTool string `json:"reviewTool" mapstructure:"reviewTool"`
	Version    string `json:"version" mapstructure:"version"`
}

// Default returns a config populated with default values
func Default() *RepoConfig {
	return &RepoConfig{
		Remote:     DefaultRemote,
		ReviewTool: DefaultReviewTool,
		Version:    CurrentVersion,
	}
}

// Path returns the config file location for a git directory
func Path(gitDir string) string {
	return filepath.Join(gitDir, FileName)
}

// Exists reports whether gq has been initialized for the repository
func Exists(gitDir string) bool {
	_, err := os.Stat(Path(gitDir))
	return err == nil
}

// newViper builds a viper instance that knows the config keys, their
// defaults and their environment overrides
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix("GQ")

	v.SetDefault("remote", DefaultRemote)
	v.SetDefault("reviewTool", DefaultReviewTool)
	v.SetDefault("version", CurrentVersion)

	_ = v.BindEnv("remote", "GQ_REMOTE")
	_ = v.BindEnv("reviewTool", "GQ_REVIEW_TOOL")
	v.AutomaticEnv()
	return v
}

// Load reads the repository configuration. A missing file yields the
// defaults. GQ_REMOTE and GQ_REVIEW_TOOL take precedence over the file.
func Load(gitDir string) (*RepoConfig, error) {
	v := newViper()

	path := Path(gitDir)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse repo config: %w", err)
		}
	}

	var cfg RepoConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode repo config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg to the repository's git directory
func Save(gitDir string, cfg *RepoConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}

	configJSON, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(Path(gitDir), configJSON, 0600)
}

// Validate checks that the config names a known review tool and a remote
func (c *RepoConfig) Validate() error {
	if c.Remote == "" {
		return fmt.Errorf("remote must not be empty")
	}
	switch c.ReviewTool {
	case ReviewToolNone, ReviewToolGitHub:
		return nil
	default:
		return fmt.Errorf("unknown review tool %q (expected %q or %q)", c.ReviewTool, ReviewToolNone, ReviewToolGitHub)
	}
}

// ReviewTools lists the selectable review tools
func ReviewTools() []string {
	return []string{ReviewToolNone, ReviewToolGitHub}
}
