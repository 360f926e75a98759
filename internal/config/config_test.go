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
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 600 {
		t.Fatalf("unexpected canvas defaults: %+v", cfg.Canvas)
	}
	if cfg.Canvas.FileReadTimeoutMs != 10000 {
		t.Fatalf("unexpected file read timeout default: %d", cfg.Canvas.FileReadTimeoutMs)
	}
	if cfg.General.TelemetryOptIn {
		t.Fatalf("telemetry must be opt-in")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestEnvOverridesCanvas(t *testing.T) {
	t.Setenv(EnvCanvasWidth, "1280")
	t.Setenv(EnvCanvasHeight, "720")
	t.Setenv(EnvFileReadTimeoutMs, "2500")

	cfg := Defaults()
	applyEnvOverrides(&cfg)
	if cfg.Canvas.Width != 1280 || cfg.Canvas.Height != 720 {
		t.Fatalf("env override not applied: %+v", cfg.Canvas)
	}
	if cfg.Canvas.FileReadTimeoutMs != 2500 {
		t.Fatalf("timeout override not applied: %d", cfg.Canvas.FileReadTimeoutMs)
	}
	if name, ok := EnvOverrideFor("canvas.width"); !ok || name != EnvCanvasWidth {
		t.Fatalf("EnvOverrideFor mismatch: %q %v", name, ok)
	}
}

func TestEnvOverridesIgnoreInvalidNumbers(t *testing.T) {
	t.Setenv(EnvCanvasWidth, "not-a-number")
	t.Setenv(EnvFileReadTimeoutMs, "-5")

	cfg := Defaults()
	applyEnvOverrides(&cfg)
	if cfg.Canvas.Width != 800 {
		t.Fatalf("invalid width should be ignored: %v", cfg.Canvas.Width)
	}
	if cfg.Canvas.FileReadTimeoutMs != 10000 {
		t.Fatalf("negative timeout should be ignored: %d", cfg.Canvas.FileReadTimeoutMs)
	}
}

func TestMergeIntoPartialFile(t *testing.T) {
	dst := Defaults()
	src := AppConfig{Canvas: CanvasConfig{Width: 1024, PaletteCatalog: " palette.json "}}
	mergeInto(&dst, &src)
	if dst.Canvas.Width != 1024 {
		t.Fatalf("width not merged: %v", dst.Canvas.Width)
	}
	if dst.Canvas.Height != 600 {
		t.Fatalf("height should keep default: %v", dst.Canvas.Height)
	}
	if dst.Canvas.PaletteCatalog != "palette.json" {
		t.Fatalf("catalog path not trimmed/merged: %q", dst.Canvas.PaletteCatalog)
	}
}

func TestFileReadTimeoutFallback(t *testing.T) {
	c := CanvasConfig{}
	if c.FileReadTimeout() != 10000 {
		t.Fatalf("expected default timeout, got %d", c.FileReadTimeout())
	}
	c.FileReadTimeoutMs = 1234
	if c.FileReadTimeout() != 1234 {
		t.Fatalf("expected configured timeout, got %d", c.FileReadTimeout())
	}
}
