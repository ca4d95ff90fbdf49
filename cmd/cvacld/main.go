package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/credvault/credvault-acl/pkg/acl"
	"github.com/credvault/credvault-acl/pkg/aclcache"
	"github.com/credvault/credvault-acl/pkg/aclserver"
	"github.com/credvault/credvault-acl/pkg/groups"
	"github.com/credvault/credvault-acl/pkg/logging"
)

var (
	version     = "dev" // Will be set during build
	cfgFile     string
	showVersion bool
)

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

var rootCmd = &cobra.Command{
	Use:           "cvacld",
	Short:         "CredVault account ACL daemon",
	SilenceUsage:  false,
	SilenceErrors: true,
	Long: `CredVault account ACL daemon (cvacld) - compiled account permissions as a service

The daemon evaluates account-level access control for the CredVault credential
manager: per-account ownership, explicit user/group grants, profile
capabilities and admin overrides, with compiled results cached per actor and
account.

Configuration file must be in JSON format with the following structure:
{
    "listen_addr": "127.0.0.1",
    "port": 8712,
    "group_file_path": "/var/lib/cvacld/groups.json",
    "group_cache_time": 60,
    "cache_dir": "/var/cache/cvacld",
    "cache_max_entries": 4096,
    "cache_ttl": 300,
    "access_log_path": "/var/log/cvacld/access.log",
    "app_log_path": "/var/log/cvacld/app.log",
    "log_level": "info"
}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("CredVault ACL daemon %s\n", version)
			return nil
		}

		if cfgFile == "" {
			return fmt.Errorf("config file is required (use --config)")
		}

		// Convert to absolute path if needed
		if !filepath.IsAbs(cfgFile) {
			var err error
			cfgFile, err = filepath.Abs(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to get absolute path: %v", err)
			}
		}

		// Load configuration
		var config Config
		if err := LoadConfig(cfgFile, &config); err != nil {
			return fmt.Errorf("failed to load config: %v", err)
		}

		// Initialize logging
		if err := logging.Initialize(&logging.Config{
			AppLogPath:    config.AppLogPath,
			AccessLogPath: config.AccessLogPath,
			Level:         config.LogLevel,
		}); err != nil {
			return fmt.Errorf("failed to initialize logging: %v", err)
		}

		fs := afero.NewOsFs()

		// Group membership resolver with its own refresh cache
		groupSource := groups.NewFileSource(fs, config.GroupFilePath)
		groupRepo := groups.NewRepository(groupSource, time.Duration(config.GroupCacheTime)*time.Second)

		// Compiler behind the result cache
		evaluator := acl.NewEvaluator(groupRepo)

		var store aclcache.Store
		if config.CacheDir != "" {
			fileStore, err := aclcache.NewFileStore(fs, config.CacheDir)
			if err != nil {
				return fmt.Errorf("failed to create cache store: %v", err)
			}
			store = fileStore
		} else {
			store = aclcache.NewMemoryStore(config.CacheMaxEntries, time.Duration(config.CacheTTL)*time.Second)
		}
		cache := aclcache.New(evaluator, store)

		server := aclserver.New(&aclserver.Config{
			ListenAddr: config.ListenAddr,
			Port:       config.Port,
		}, cache, cache)

		fmt.Printf("Starting CredVault ACL daemon %s on %s:%d\n", version, config.ListenAddr, config.Port)
		return server.ListenAndServe()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "path to config file (required)")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "show version information")
}
