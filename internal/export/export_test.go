/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pagebuilder/internal/geom"
	"pagebuilder/internal/widget"
)

func testPage() Page {
	return Page{
		Bounds: geom.Size{W: 800, H: 600},
		Widgets: []widget.Instance{
			{
				ID:      "w1",
				Kind:    widget.KindText,
				Content: widget.TextContent{Text: "hello"},
				Pos:     geom.Pt{X: 40, Y: 40},
				Size:    geom.Size{W: 200, H: 100},
			},
			{
				ID:      "w2",
				Kind:    widget.KindButton,
				Content: widget.ButtonContent{Label: "Go", Clicks: 2},
				Pos:     geom.Pt{X: 300, Y: 200},
				Size:    geom.Size{W: 120, H: 60},
			},
		},
	}
}

func TestWritePDF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "page.pdf")
	if err := WritePDF(testPage(), out, Options{}); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) == 0 || !strings.HasPrefix(string(data), "%PDF") {
		t.Fatalf("output is not a PDF (%d bytes)", len(data))
	}
}

func TestWriteSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "page.svg")
	if err := WriteSVG(testPage(), out, Options{}); err != nil {
		t.Fatalf("WriteSVG failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "<svg") || !strings.Contains(s, `viewBox="0 0 800 600"`) {
		t.Fatalf("svg root missing: %q", s[:min(len(s), 200)])
	}
	if !strings.Contains(s, "Go (2)") {
		t.Fatalf("button caption missing from svg")
	}
	if !strings.Contains(s, `data-kind="text"`) {
		t.Fatalf("widget kind attribute missing from svg")
	}
}

func TestWritePNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "page.png")
	if err := WritePNG(testPage(), out, Options{DPI: 96}); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Fatalf("raster size %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
}

func TestExportRejectsEmptyBounds(t *testing.T) {
	p := Page{Bounds: geom.Size{}}
	if err := WritePDF(p, filepath.Join(t.TempDir(), "x.pdf"), Options{}); err == nil {
		t.Fatalf("expected error for zero bounds")
	}
}

func TestCaptionUnknownKind(t *testing.T) {
	w := widget.Instance{Kind: widget.Kind("video")}
	if got := caption(w); !strings.Contains(got, "video") {
		t.Fatalf("caption = %q, want the kind named", got)
	}
}
