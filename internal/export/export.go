/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export renders a page snapshot to PDF, SVG or PNG. The exporters
// work from a plain widget list plus the page bounds; they never touch the
// live store.
package export

import (
	"fmt"

	"pagebuilder/internal/geom"
	"pagebuilder/internal/widget"
)

// Color is an RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// Options control rendering shared by all three exporters.
// Zero-valued styles fall back to sensible defaults.
type Options struct {
	Background  Color
	WidgetFill  Color
	StrokeColor Color
	StrokeWidth float64
	// DPI scales the raster output; PDF and SVG use page units directly.
	DPI int
}

func (o Options) withDefaults() Options {
	if o.Background == (Color{}) {
		o.Background = Color{R: 255, G: 255, B: 255, A: 255}
	}
	if o.WidgetFill == (Color{}) {
		o.WidgetFill = Color{R: 245, G: 245, B: 245, A: 255}
	}
	if o.StrokeColor == (Color{}) {
		o.StrokeColor = Color{R: 60, G: 60, B: 60, A: 255}
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = 1
	}
	if o.DPI <= 0 {
		o.DPI = 96
	}
	return o
}

// Page is the exporters' input: the canvas bounds and an ordered widget
// snapshot, back to front.
type Page struct {
	Bounds  geom.Size
	Widgets []widget.Instance
}

func validatePage(p Page) error {
	if p.Bounds.W <= 0 || p.Bounds.H <= 0 {
		return fmt.Errorf("page bounds %gx%g are not positive", p.Bounds.W, p.Bounds.H)
	}
	return nil
}

// caption is the short text drawn inside a widget's box.
func caption(w widget.Instance) string {
	switch c := w.Content.(type) {
	case widget.TextContent:
		return truncate(c.Text, 60)
	case widget.ButtonContent:
		return fmt.Sprintf("%s (%d)", c.Label, c.Clicks)
	case widget.ImageContent:
		if c.Src == "" {
			return "image"
		}
		return truncate(c.Src, 60)
	case widget.AudioContent:
		if c.Src == "" {
			return "audio"
		}
		return truncate(c.Src, 60)
	case widget.MarkdownContent:
		return truncate(c.Source, 60)
	default:
		return fmt.Sprintf("? %s", w.Kind)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
