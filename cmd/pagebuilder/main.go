/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"pagebuilder/internal/canvas"
	"pagebuilder/internal/config"
	"pagebuilder/internal/crash"
	"pagebuilder/internal/editors"
	"pagebuilder/internal/export"
	"pagebuilder/internal/geom"
	applog "pagebuilder/internal/log"
	"pagebuilder/internal/telemetry"
	"pagebuilder/internal/ui"
	"pagebuilder/internal/version"
	"pagebuilder/internal/widget"
)

func usage() {
	fmt.Println("Page Builder — visual canvas editor")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  pagebuilder version|-v|--version   Show version")
	fmt.Println("  pagebuilder demo                   Print a demo page layout as text")
	fmt.Println("  pagebuilder export <out.{pdf,svg,png}>  Render the demo page to a file")
	fmt.Println("  pagebuilder ui                     Launch desktop UI (build with -tags fyne for full UI)")
}

func main() {
	// initialize structured logging using environment defaults
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	defer func() { crash.Recover("") }()
	telemetry.InitDefault()

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("Page Builder — visual canvas editor")
			fmt.Println(version.String())
			return
		case "demo":
			store, surface := demoPage(l)
			fmt.Printf("Canvas %gx%g, %d widgets\n", surface.Bounds().W, surface.Bounds().H, store.Len())
			for _, w := range store.Snapshot() {
				b := w.Bounds()
				fmt.Printf("  %-12s at (%g,%g) size %gx%g\n", w.Kind, b.X, b.Y, b.W, b.H)
			}
			return
		case "export":
			if len(args) < 3 {
				fmt.Println("export requires an output file")
				usage()
				os.Exit(2)
			}
			out, _ := filepath.Abs(args[2])
			store, surface := demoPage(l)
			page := export.Page{Bounds: surface.Bounds(), Widgets: store.Snapshot()}
			var err error
			switch strings.ToLower(filepath.Ext(out)) {
			case ".pdf":
				err = export.WritePDF(page, out, export.Options{})
			case ".svg":
				err = export.WriteSVG(page, out, export.Options{})
			case ".png":
				err = export.WritePNG(page, out, export.Options{})
			default:
				err = fmt.Errorf("unsupported output format %q", filepath.Ext(out))
			}
			if err != nil {
				l.Error("export failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			telemetry.Event("export", map[string]any{"format": filepath.Ext(out)})
			fmt.Println("Exported", out)
			return
		case "ui":
			telemetry.Event("ui_start", nil)
			if err := ui.Run(); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		}
	}

	usage()
}

// demoPage builds a small in-memory page used by the demo and export
// subcommands.
func demoPage(l *slog.Logger) (*canvas.Store, *canvas.Surface) {
	cfg, err := config.Load()
	if err != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", err))
		cfg = config.Defaults()
	}
	store := canvas.NewStore(editors.DefaultRegistry(nil))
	surface := canvas.NewSurface(geom.Size{W: float64(cfg.Canvas.Width), H: float64(cfg.Canvas.Height)})

	id, _ := store.Insert(widget.KindText, geom.Pt{X: 40, Y: 40}, geom.DefaultWidgetSize())
	_ = store.Update(id, canvas.Patch{Content: widget.TextContent{Text: "Welcome to Page Builder"}})
	id, _ = store.Insert(widget.KindButton, geom.Pt{X: 40, Y: 180}, geom.Size{W: 140, H: 56})
	_ = store.Update(id, canvas.Patch{Content: widget.ButtonContent{Label: "Get started"}})
	_, _ = store.Insert(widget.KindMarkdown, geom.Pt{X: 300, Y: 40}, geom.Size{W: 320, H: 240})
	return store, surface
}
