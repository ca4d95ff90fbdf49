package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config holds the ACL daemon configuration
type Config struct {
	// Core server settings
	ListenAddr string `json:"listen_addr" validate:"required"`
	Port       int    `json:"port" validate:"min=0,max=65535"`

	// Group membership settings
	GroupFilePath  string `json:"group_file_path" validate:"required"` // Path to the user-to-groups JSON file
	GroupCacheTime int    `json:"group_cache_time"`                    // How long to cache memberships (seconds)

	// Result cache settings
	CacheDir        string `json:"cache_dir"`         // Directory for persisted ACL results; empty keeps results in memory only
	CacheMaxEntries int    `json:"cache_max_entries"` // Bound for the in-memory store
	CacheTTL        int    `json:"cache_ttl"`         // In-memory entry lifetime (seconds)

	// Logging settings
	AccessLogPath string `json:"access_log_path,omitempty"` // Optional: path to the ACL decision log
	AppLogPath    string `json:"app_log_path,omitempty"`    // Optional: path to the application log
	LogLevel      string `json:"log_level,omitempty"`       // debug, info, warn or error
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	// Convert relative paths to absolute paths based on config file
	// location. An empty group file path stays empty so validation can
	// reject it.
	configDir := filepath.Dir(path)
	if config.GroupFilePath != "" && !filepath.IsAbs(config.GroupFilePath) {
		config.GroupFilePath = filepath.Join(configDir, config.GroupFilePath)
	}
	if config.CacheDir != "" && !filepath.IsAbs(config.CacheDir) {
		config.CacheDir = filepath.Join(configDir, config.CacheDir)
	}
	if config.AccessLogPath != "" && !filepath.IsAbs(config.AccessLogPath) {
		config.AccessLogPath = filepath.Join(configDir, config.AccessLogPath)
	}
	if config.AppLogPath != "" && !filepath.IsAbs(config.AppLogPath) {
		config.AppLogPath = filepath.Join(configDir, config.AppLogPath)
	}

	// Set defaults for optional settings
	if config.ListenAddr == "" {
		config.ListenAddr = "127.0.0.1"
	}
	if config.Port == 0 {
		config.Port = 8712
	}
	if config.GroupCacheTime == 0 {
		config.GroupCacheTime = 60 // 1 minute
	}
	if config.CacheMaxEntries == 0 {
		config.CacheMaxEntries = 4096
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = 300 // 5 minutes
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	return nil
}
