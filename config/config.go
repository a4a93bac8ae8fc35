// Package config loads and hot-reloads the CLI's TOML configuration via
// viper, validating it with go-playground/validator and watching the file
// with fsnotify.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/wyfcoding/levelancestor/logging"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// CLIConfig is the top-level configuration for cmd/lacli and cmd/lasoak.
type CLIConfig struct {
	// Variant selects the default query dispatcher when none is given on
	// the command line: "optimal", "table", "jump", "ladder", "jumpladder".
	Variant string `mapstructure:"variant" toml:"variant" validate:"omitempty,oneof=optimal table jump ladder jumpladder"`

	// DefaultCapacity bounds the quadratic ancestor table variant.
	DefaultCapacity int `mapstructure:"default_capacity" toml:"default_capacity" validate:"omitempty,min=1"`

	// MetricsAddr, when non-empty, is the listen address for the
	// Prometheus exposition endpoint. Empty disables it.
	MetricsAddr string `mapstructure:"metrics_addr" toml:"metrics_addr"`

	// Parallel opts into the errgroup-based concurrent Build path for
	// large trees.
	Parallel bool `mapstructure:"parallel" toml:"parallel"`

	Log LogConfig `mapstructure:"log" toml:"log"`
	Soak SoakConfig `mapstructure:"soak" toml:"soak"`
}

// LogConfig mirrors logging.Config with mapstructure/toml tags for viper.
type LogConfig struct {
	Level      string `mapstructure:"level"       toml:"level"       validate:"omitempty,oneof=debug info warn error"`
	File       string `mapstructure:"file"        toml:"file"`
	MaxSize    int    `mapstructure:"max_size"    toml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"     toml:"max_age"`
	Compress   bool   `mapstructure:"compress"    toml:"compress"`
}

// SoakConfig configures cmd/lasoak's periodic cross-check schedule.
type SoakConfig struct {
	Schedule   string `mapstructure:"schedule"    toml:"schedule"`
	MinNodes   int    `mapstructure:"min_nodes"   toml:"min_nodes"   validate:"omitempty,min=1"`
	MaxNodes   int    `mapstructure:"max_nodes"   toml:"max_nodes"   validate:"omitempty,min=1"`
}

var vInstance = viper.New()
var onReload []func(*CLIConfig)

// RegisterReloadHook registers a callback invoked after a successful
// hot-reload of the config file.
func RegisterReloadHook(hook func(*CLIConfig)) {
	if hook == nil {
		return
	}
	onReload = append(onReload, hook)
}

// Load reads a TOML file at path into conf, validates it, and installs a
// viper watch that re-unmarshals, re-validates, and applies the new log
// level on every subsequent change to the file.
func Load(path string, conf any) error {
	vInstance.SetConfigFile(path)
	vInstance.SetConfigType("toml")

	vInstance.SetEnvPrefix("LA")
	vInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vInstance.AutomaticEnv()

	if err := vInstance.ReadInConfig(); err != nil {
		return fmt.Errorf("read config error: %w", err)
	}

	if err := vInstance.Unmarshal(conf); err != nil {
		return fmt.Errorf("unmarshal config error: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(conf); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	vInstance.WatchConfig()
	vInstance.OnConfigChange(func(event fsnotify.Event) {
		slog.Info("detecting config change", "file", event.Name)
		const debounceTimeout = 500 * time.Millisecond
		time.Sleep(debounceTimeout)

		if unmarshalErr := vInstance.Unmarshal(conf); unmarshalErr != nil {
			slog.Error("reload config unmarshal failed", "error", unmarshalErr)
			return
		}

		applyLogLevel(conf)

		if validateErr := validate.Struct(conf); validateErr != nil {
			slog.Error("reload config validation failed", "error", validateErr)
		} else {
			slog.Info("config hot-reloaded and validated successfully")
		}

		if cfg, ok := conf.(*CLIConfig); ok {
			for _, hook := range onReload {
				hook(cfg)
			}
		}
	})

	return nil
}

// applyLogLevel updates the package-level logging level from conf.Log.Level
// without requiring conf to be *CLIConfig, so Load stays usable with a
// narrower config type in tests.
func applyLogLevel(conf any) {
	if c, ok := conf.(*CLIConfig); ok {
		logging.SetLevel(c.Log.Level)
		return
	}

	val := reflect.ValueOf(conf)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	logField := val.FieldByName("Log")
	if !logField.IsValid() {
		return
	}
	levelField := logField.FieldByName("Level")
	if levelField.IsValid() && levelField.Kind() == reflect.String {
		logging.SetLevel(levelField.String())
	}
}

// PrintWithMask logs conf as masked JSON, replacing any key that looks
// sensitive with asterisks.
func PrintWithMask(conf any) {
	data, err := json.Marshal(conf)
	if err != nil {
		slog.Error("failed to marshal config for printing", "error", err)
		return
	}

	var configMap map[string]any
	if unmarshalErr := json.Unmarshal(data, &configMap); unmarshalErr != nil {
		slog.Error("failed to unmarshal config for masking", "error", unmarshalErr)
		return
	}

	mask(configMap)

	maskedJSON, marshalErr := json.MarshalIndent(configMap, "  ", "  ")
	if marshalErr != nil {
		slog.Error("failed to marshal masked config", "error", marshalErr)
		return
	}

	slog.Info("current effective configuration", "config", string(maskedJSON))
}

func mask(configMap map[string]any) {
	sensitiveKeys := []string{"password", "secret", "token", "key"}

	for key, val := range configMap {
		if subMap, ok := val.(map[string]any); ok {
			mask(subMap)
			continue
		}

		if slice, ok := val.([]any); ok {
			for _, item := range slice {
				if itemMap, ok := item.(map[string]any); ok {
					mask(itemMap)
				}
			}
			continue
		}

		for _, sensitiveKey := range sensitiveKeys {
			if strings.Contains(strings.ToLower(key), sensitiveKey) {
				configMap[key] = "******"
				break
			}
		}
	}
}

// GetViper returns the package's underlying Viper instance.
func GetViper() *viper.Viper {
	return vInstance
}
