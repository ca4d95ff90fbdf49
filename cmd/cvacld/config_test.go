package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{"group_file_path": "groups.json"}`)

	var config Config
	if err := LoadConfig(path, &config); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.ListenAddr != "127.0.0.1" {
		t.Errorf("ListenAddr = %q, want default 127.0.0.1", config.ListenAddr)
	}
	if config.Port != 8712 {
		t.Errorf("Port = %d, want default 8712", config.Port)
	}
	if config.GroupCacheTime != 60 {
		t.Errorf("GroupCacheTime = %d, want default 60", config.GroupCacheTime)
	}
	if config.CacheMaxEntries != 4096 {
		t.Errorf("CacheMaxEntries = %d, want default 4096", config.CacheMaxEntries)
	}
	if config.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", config.LogLevel)
	}
}

func TestLoadConfig_ResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{
		"group_file_path": "groups.json",
		"cache_dir": "cache",
		"access_log_path": "logs/access.log"
	}`)

	var config Config
	if err := LoadConfig(path, &config); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.GroupFilePath != filepath.Join(dir, "groups.json") {
		t.Errorf("GroupFilePath = %q, want resolved against config dir", config.GroupFilePath)
	}
	if config.CacheDir != filepath.Join(dir, "cache") {
		t.Errorf("CacheDir = %q, want resolved against config dir", config.CacheDir)
	}
	if config.AccessLogPath != filepath.Join(dir, "logs/access.log") {
		t.Errorf("AccessLogPath = %q, want resolved against config dir", config.AccessLogPath)
	}
}

func TestLoadConfig_AbsolutePathsUntouched(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{"group_file_path": "/etc/cvacld/groups.json"}`)

	var config Config
	if err := LoadConfig(path, &config); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.GroupFilePath != "/etc/cvacld/groups.json" {
		t.Errorf("GroupFilePath = %q, want unchanged absolute path", config.GroupFilePath)
	}
}

func TestLoadConfig_MissingGroupFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{}`)

	var config Config
	if err := LoadConfig(path, &config); err == nil {
		t.Error("Expected validation error for missing group_file_path, got nil")
	}
	if config.GroupFilePath != "" {
		t.Errorf("GroupFilePath = %q, want empty (must not resolve to the config dir)", config.GroupFilePath)
	}

	path = writeConfig(t, dir, `{"group_file_path": ""}`)
	config = Config{}
	if err := LoadConfig(path, &config); err == nil {
		t.Error("Expected validation error for empty group_file_path, got nil")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	var config Config
	if err := LoadConfig("/nonexistent/config.json", &config); err == nil {
		t.Error("Expected error for missing config file, got nil")
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{invalid`)

	var config Config
	if err := LoadConfig(path, &config); err == nil {
		t.Error("Expected error for invalid JSON, got nil")
	}
}
