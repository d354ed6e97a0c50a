package config

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"auto-thread-bot/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	mu           sync.RWMutex
	threadConfig *models.ThreadConfig
)

// LoadConfig loads configuration from, in order:
// 1. the .env file (environment variables)
// 2. config.yaml (base settings)
// 3. config/thread_config.json (auto-thread channels, merged into the base settings)
// Environment variables override settings of the same name.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, skipping.")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("bot.configReloadSchedule", "@every 10m")
	viper.SetDefault("threadArchiveDuration", string(models.ArchiveOneDay))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("Base config file (config.yaml) not found, using environment variables and merged config only.")
		} else {
			panic(fmt.Errorf("fatal error reading base config file: %w", err))
		}
	}

	if err := mergeThreadConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("Thread config file (config/thread_config.json) not found, skipping merge.")
		} else {
			panic(fmt.Errorf("fatal error merging thread config file: %w", err))
		}
	}

	if err := refresh(viper.GetViper()); err != nil {
		log.Printf("Auto-thread disabled: %v", err)
	}
}

// Reload re-reads config/thread_config.json and swaps the thread config snapshot.
// On failure the previous snapshot stays in place.
func Reload() error {
	if err := mergeThreadConfig(); err != nil {
		return fmt.Errorf("failed to merge thread config: %w", err)
	}
	return refresh(viper.GetViper())
}

// GetThreadConfig returns the current auto-thread settings, or nil when none are configured.
func GetThreadConfig() *models.ThreadConfig {
	mu.RLock()
	defer mu.RUnlock()
	return threadConfig
}

// ParseThreadConfig builds a ThreadConfig from v. It returns nil without error when no
// thread channels are configured.
func ParseThreadConfig(v *viper.Viper) (*models.ThreadConfig, error) {
	if !v.IsSet("threadChannels") {
		return nil, nil
	}

	duration, err := models.ParseArchiveDuration(v.GetString("threadArchiveDuration"))
	if err != nil {
		return nil, err
	}

	return &models.ThreadConfig{
		ThreadChannels:        v.GetStringSlice("threadChannels"),
		ThreadArchiveDuration: duration,
	}, nil
}

func mergeThreadConfig() error {
	viper.SetConfigName("thread_config")
	viper.SetConfigType("json")
	return viper.MergeInConfig()
}

func refresh(v *viper.Viper) error {
	cfg, err := ParseThreadConfig(v)
	if err != nil {
		return err
	}

	mu.Lock()
	threadConfig = cfg
	mu.Unlock()

	if cfg != nil {
		log.Printf("Auto-thread enabled for %d channel(s), archive after %d minutes", len(cfg.ThreadChannels), cfg.ThreadArchiveDuration.Minutes())
	}
	return nil
}
