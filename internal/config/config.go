/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
// Canvas state itself is never persisted here; this covers runtime knobs only.
//
// config_version: bump when the structure changes in a backward-incompatible way.

type CanvasConfig struct {
	// Width and Height are the initial drop-surface bounds in pixels.
	// The live surface can still be resized at runtime.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// PaletteCatalog is an optional path to a JSON palette catalog.
	// When empty the built-in palette is used.
	PaletteCatalog string `yaml:"palette_catalog"`
	// AssetDir holds imported media blobs and their index. Empty means a
	// per-user default under the config directory.
	AssetDir string `yaml:"asset_dir"`
	// FileReadTimeoutMs bounds the asynchronous file-to-reference conversion
	// for image/audio drops. Zero means the default of 10s.
	FileReadTimeoutMs int `yaml:"file_read_timeout_ms"`
}

type GeneralConfig struct {
	TelemetryOptIn bool   `yaml:"telemetry_opt_in"`
	Theme          string `yaml:"theme"` // "system" | "light" | "dark" (informational for now)
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	General       GeneralConfig `yaml:"general"`
	Canvas        CanvasConfig  `yaml:"canvas"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{TelemetryOptIn: false, Theme: "system"},
		Canvas:        CanvasConfig{Width: 800, Height: 600, FileReadTimeoutMs: 10000},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvCanvasWidth       = "PGB_CANVAS_WIDTH"
	EnvCanvasHeight      = "PGB_CANVAS_HEIGHT"
	EnvPaletteCatalog    = "PGB_PALETTE_CATALOG"
	EnvAssetDir          = "PGB_ASSET_DIR"
	EnvFileReadTimeoutMs = "PGB_FILE_READ_TIMEOUT_MS"
	EnvTelemetryOptIn    = "PGB_TELEMETRY_OPT_IN"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "PGB_LOG_LEVEL"
	EnvLogFormat = "PGB_LOG_FORMAT"
	EnvLogSource = "PGB_LOG_SOURCE"
	EnvLogFile   = "PGB_LOG_FILE"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "PageBuilder")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "PageBuilder")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "pagebuilder")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges
// environment overrides.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.General.Theme != "" {
		dst.General.Theme = src.General.Theme
	}
	// booleans: copy directly from src (file) so user preferences persist
	dst.General.TelemetryOptIn = src.General.TelemetryOptIn
	if src.Canvas.Width > 0 {
		dst.Canvas.Width = src.Canvas.Width
	}
	if src.Canvas.Height > 0 {
		dst.Canvas.Height = src.Canvas.Height
	}
	if strings.TrimSpace(src.Canvas.PaletteCatalog) != "" {
		dst.Canvas.PaletteCatalog = strings.TrimSpace(src.Canvas.PaletteCatalog)
	}
	if strings.TrimSpace(src.Canvas.AssetDir) != "" {
		dst.Canvas.AssetDir = strings.TrimSpace(src.Canvas.AssetDir)
	}
	if src.Canvas.FileReadTimeoutMs > 0 {
		dst.Canvas.FileReadTimeoutMs = src.Canvas.FileReadTimeoutMs
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvCanvasWidth)); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			cfg.Canvas.Width = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvCanvasHeight)); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			cfg.Canvas.Height = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvPaletteCatalog)); v != "" {
		cfg.Canvas.PaletteCatalog = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAssetDir)); v != "" {
		cfg.Canvas.AssetDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFileReadTimeoutMs)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Canvas.FileReadTimeoutMs = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvTelemetryOptIn)); v != "" {
		lv := strings.ToLower(v)
		cfg.General.TelemetryOptIn = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	switch key {
	case "canvas.width":
		if os.Getenv(EnvCanvasWidth) != "" {
			return EnvCanvasWidth, true
		}
	case "canvas.height":
		if os.Getenv(EnvCanvasHeight) != "" {
			return EnvCanvasHeight, true
		}
	case "canvas.palette_catalog":
		if os.Getenv(EnvPaletteCatalog) != "" {
			return EnvPaletteCatalog, true
		}
	case "canvas.asset_dir":
		if os.Getenv(EnvAssetDir) != "" {
			return EnvAssetDir, true
		}
	case "canvas.file_read_timeout_ms":
		if os.Getenv(EnvFileReadTimeoutMs) != "" {
			return EnvFileReadTimeoutMs, true
		}
	case "general.telemetry_opt_in":
		if os.Getenv(EnvTelemetryOptIn) != "" {
			return EnvTelemetryOptIn, true
		}
	case "logging.level":
		if os.Getenv(EnvLogLevel) != "" {
			return EnvLogLevel, true
		}
	case "logging.format":
		if os.Getenv(EnvLogFormat) != "" {
			return EnvLogFormat, true
		}
	case "logging.source":
		if os.Getenv(EnvLogSource) != "" {
			return EnvLogSource, true
		}
	case "logging.file":
		if os.Getenv(EnvLogFile) != "" {
			return EnvLogFile, true
		}
	}
	return "", false
}

// FileReadTimeout returns the effective bound for async file conversions.
func (c CanvasConfig) FileReadTimeout() int {
	if c.FileReadTimeoutMs <= 0 {
		return Defaults().Canvas.FileReadTimeoutMs
	}
	return c.FileReadTimeoutMs
}
