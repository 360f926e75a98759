//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"pagebuilder/internal/assets"
	pbcanvas "pagebuilder/internal/canvas"
	"pagebuilder/internal/config"
	"pagebuilder/internal/crash"
	"pagebuilder/internal/editors"
	"pagebuilder/internal/export"
	"pagebuilder/internal/geom"
	applog "pagebuilder/internal/log"
	"pagebuilder/internal/telemetry"
	pbwidget "pagebuilder/internal/widget"
)

// Run starts the Fyne-based desktop page builder.
func Run() error {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("ui")
	l.Info("starting UI")

	cfg, err := config.Load()
	if err != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", err))
		cfg = config.Defaults()
	}
	defer func() { crash.Recover("") }()

	assetDir := cfg.Canvas.AssetDir
	if assetDir == "" {
		base, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("resolve asset dir: %w", err)
		}
		assetDir = filepath.Join(filepath.Dir(base), "assets")
	}
	blobs, err := assets.Open(assetDir)
	if err != nil {
		return fmt.Errorf("open asset store: %w", err)
	}
	defer blobs.Close()

	palette := pbwidget.DefaultPalette()
	if cfg.Canvas.PaletteCatalog != "" {
		if loaded, err := pbwidget.LoadCatalog(cfg.Canvas.PaletteCatalog); err != nil {
			l.Warn("palette catalog rejected, using built-in palette",
				slog.String("path", cfg.Canvas.PaletteCatalog), slog.Any("err", err))
		} else {
			palette = loaded
		}
	}

	registry := editors.DefaultRegistry(blobs)
	store := pbcanvas.NewStore(registry)
	surface := pbcanvas.NewSurface(geom.Size{W: float64(cfg.Canvas.Width), H: float64(cfg.Canvas.Height)})
	ctrl := pbcanvas.NewController(store, surface, palette)
	converter := editors.NewConverter(time.Duration(cfg.Canvas.FileReadTimeout()) * time.Millisecond)
	defer converter.Close()

	fyneApp := app.NewWithID("pagebuilder")
	w := fyneApp.NewWindow("Page Builder")
	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", 1200)
	winH := prefs.IntWithFallback("window.height", 800)
	if winW < 900 {
		winW = 900
	}
	if winH < 600 {
		winH = 600
	}
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	status := widget.NewLabel("Ready")
	bc := NewBuilderCanvas(ctrl, store, surface)

	shell := &appShell{
		win:       w,
		status:    status,
		store:     store,
		surface:   surface,
		bc:        bc,
		converter: converter,
		blobs:     blobs,
		log:       l,
	}

	editorPanel := container.NewVBox(widget.NewLabel("No selection"))
	bc.OnSelect = func(id string) {
		editorPanel.Objects = []fyne.CanvasObject{shell.buildEditorPanel(id)}
		editorPanel.Refresh()
	}
	bc.OnChange = func() {
		n := store.Len()
		if n != shell.lastCount {
			telemetry.Event("widget_count", map[string]any{"count": n})
			shell.lastCount = n
		}
		status.SetText(fmt.Sprintf("%d widgets", n))
	}

	// Palette column: tapping an entry arms it for placement.
	paletteBox := container.NewVBox(widget.NewLabel("Palette"))
	for i, entry := range palette {
		idx := i
		e := entry
		btn := widget.NewButton(e.Label, func() {
			bc.ArmPalette(idx)
			status.SetText(fmt.Sprintf("Tap the canvas to place %q", e.Label))
		})
		paletteBox.Add(btn)
	}

	w.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		shell.acceptDrop(uris)
	})

	w.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Export PDF…", func() { shell.exportDialog("pdf") }),
			fyne.NewMenuItem("Export SVG…", func() { shell.exportDialog("svg") }),
			fyne.NewMenuItem("Export PNG…", func() { shell.exportDialog("png") }),
		),
		fyne.NewMenu("Widget",
			fyne.NewMenuItem("Delete selected", func() {
				if id := store.ActiveID(); id != "" {
					converter.Cancel(id)
					_ = store.Remove(id)
					editorPanel.Objects = []fyne.CanvasObject{widget.NewLabel("No selection")}
					editorPanel.Refresh()
					bc.Refresh()
				}
			}),
		),
	))

	content := container.NewBorder(nil, status, paletteBox, container.NewVScroll(editorPanel), bc)
	w.SetContent(content)

	w.SetOnClosed(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
	})

	w.ShowAndRun()
	return nil
}

// appShell groups the pieces the event handlers need.
type appShell struct {
	win       fyne.Window
	status    *widget.Label
	store     *pbcanvas.Store
	surface   *pbcanvas.Surface
	bc        *BuilderCanvas
	converter *editors.Converter
	blobs     editors.BlobStore
	log       *slog.Logger
	lastCount int
}

// reportFor routes an editor's content replacement into the store.
func (s *appShell) reportFor(id string) pbwidget.ReportFunc {
	return func(c pbwidget.Content) error {
		if err := s.store.Update(id, pbcanvas.Patch{Content: c}); err != nil {
			return err
		}
		fyne.Do(func() { s.bc.Refresh() })
		return nil
	}
}

// buildEditorPanel returns the content editor for the selected widget.
func (s *appShell) buildEditorPanel(id string) fyne.CanvasObject {
	if id == "" {
		return widget.NewLabel("No selection")
	}
	inst, ok := s.store.Get(id)
	if !ok {
		return widget.NewLabel("No selection")
	}
	report := s.reportFor(id)

	switch inst.Kind {
	case pbwidget.KindText:
		return s.textPanel(inst, report)
	case pbwidget.KindButton:
		return s.buttonPanel(inst, report)
	case pbwidget.KindImage:
		return s.imagePanel(inst, report)
	case pbwidget.KindAudioPlayer:
		return s.audioPanel(inst, report)
	case pbwidget.KindMarkdown:
		return s.markdownPanel(inst, report)
	default:
		telemetry.Event("unknown_widget", map[string]any{"kind": string(inst.Kind)})
		return widget.NewLabel(editors.RenderPlaceholder(inst.Kind))
	}
}

func (s *appShell) textPanel(inst pbwidget.Instance, report pbwidget.ReportFunc) fyne.CanvasObject {
	ed := editors.NewText(report)
	ed.Activate()

	entry := widget.NewMultiLineEntry()
	if tc, ok := inst.Content.(pbwidget.TextContent); ok {
		entry.SetText(tc.Text)
	}
	entry.OnChanged = func(t string) { _ = ed.SetText(t) }

	size := widget.NewEntry()
	size.SetText(strconv.Itoa(ed.Style().FontSize))
	size.OnSubmitted = func(t string) {
		if n, err := strconv.Atoi(t); err == nil {
			ed.SetFontSize(n)
			size.SetText(strconv.Itoa(ed.Style().FontSize))
		}
	}
	bold := widget.NewButton("B", func() { ed.ToggleBold() })
	italic := widget.NewButton("I", func() { ed.ToggleItalic() })
	align := widget.NewSelect([]string{"left", "center", "right"}, func(a string) { ed.SetAlign(a) })
	align.SetSelected(ed.Style().Align)

	return container.NewVBox(
		widget.NewLabel("Text"),
		entry,
		container.NewHBox(widget.NewLabel("Size"), size, bold, italic),
		align,
	)
}

func (s *appShell) buttonPanel(inst pbwidget.Instance, report pbwidget.ReportFunc) fyne.CanvasObject {
	ed := editors.NewButton(report)
	id := inst.ID

	label := widget.NewEntry()
	clicks := widget.NewLabel("")
	if bcnt, ok := inst.Content.(pbwidget.ButtonContent); ok {
		label.SetText(bcnt.Label)
		clicks.SetText(fmt.Sprintf("Clicks: %d", bcnt.Clicks))
	}
	label.OnSubmitted = func(t string) {
		if cur, ok := s.store.Get(id); ok {
			_ = ed.SetLabel(cur.Content, t)
		}
	}
	click := widget.NewButton("Click", func() {
		if cur, ok := s.store.Get(id); ok {
			if err := ed.Click(cur.Content); err == nil {
				if after, ok := s.store.Get(id); ok {
					if bcnt, ok := after.Content.(pbwidget.ButtonContent); ok {
						clicks.SetText(fmt.Sprintf("Clicks: %d", bcnt.Clicks))
					}
				}
			}
		}
	})

	return container.NewVBox(widget.NewLabel("Button"), label, click, clicks)
}

func (s *appShell) imagePanel(inst pbwidget.Instance, report pbwidget.ReportFunc) fyne.CanvasObject {
	ed := editors.NewImage(report, s.blobs)
	id := inst.ID

	src := widget.NewLabel("(no image)")
	alt := widget.NewEntry()
	if ic, ok := inst.Content.(pbwidget.ImageContent); ok {
		if ic.Src != "" {
			src.SetText(ic.Src)
		}
		alt.SetText(ic.Alt)
	}
	alt.OnSubmitted = func(t string) {
		if cur, ok := s.store.Get(id); ok {
			_ = ed.SetAlt(cur.Content, t)
		}
	}

	return container.NewVBox(
		widget.NewLabel("Image"),
		src,
		container.NewHBox(widget.NewLabel("Alt"), alt),
		widget.NewLabel("Drop an image file onto the window"),
	)
}

func (s *appShell) audioPanel(inst pbwidget.Instance, report pbwidget.ReportFunc) fyne.CanvasObject {
	ed := editors.NewAudio(report, s.blobs)

	src := widget.NewEntry()
	if ac, ok := inst.Content.(pbwidget.AudioContent); ok {
		src.SetText(ac.Src)
	}
	src.OnSubmitted = func(t string) {
		if err := ed.SetSource(t); err != nil {
			s.status.SetText("Audio source cannot be empty")
		}
	}

	return container.NewVBox(
		widget.NewLabel("Audio"),
		container.NewHBox(widget.NewLabel("Source"), src),
		widget.NewLabel("Drop an audio file onto the window"),
	)
}

func (s *appShell) markdownPanel(inst pbwidget.Instance, report pbwidget.ReportFunc) fyne.CanvasObject {
	ed := editors.NewMarkdown(report)

	preview := widget.NewRichTextFromMarkdown("")
	entry := widget.NewMultiLineEntry()
	if mc, ok := inst.Content.(pbwidget.MarkdownContent); ok {
		entry.SetText(mc.Source)
		preview.ParseMarkdown(mc.Source)
	}
	entry.OnChanged = func(t string) {
		_ = ed.SetSource(t)
		preview.ParseMarkdown(t)
	}

	return container.NewVBox(widget.NewLabel("Markdown"), entry, widget.NewSeparator(), preview)
}

// acceptDrop routes dropped files to the active widget's file editor. The
// read and conversion run off the UI goroutine under the configured timeout.
func (s *appShell) acceptDrop(uris []fyne.URI) {
	id := s.store.ActiveID()
	if id == "" || len(uris) == 0 {
		s.status.SetText("Select an image or audio widget first")
		return
	}
	inst, ok := s.store.Get(id)
	if !ok {
		return
	}
	uri := uris[0]
	path := uri.Path()
	name := filepath.Base(path)

	switch inst.Kind {
	case pbwidget.KindImage:
		ed := editors.NewImage(s.reportFor(id), s.blobs)
		s.converter.Start(id, func(ctx context.Context) error {
			return s.convertFile(ctx, path, name, ed.AcceptFile)
		})
	case pbwidget.KindAudioPlayer:
		ed := editors.NewAudio(s.reportFor(id), s.blobs)
		s.converter.Start(id, func(ctx context.Context) error {
			return s.convertFile(ctx, path, name, ed.AcceptFile)
		})
	default:
		s.status.SetText("This widget does not accept files")
	}
}

// convertFile reads the dropped file and hands it to the editor; the status
// line reports rejections without touching the store.
func (s *appShell) convertFile(ctx context.Context, path, name string, accept func(context.Context, string, []byte) (string, error)) error {
	data, err := os.ReadFile(path)
	if err != nil {
		fyne.Do(func() { s.status.SetText("Could not read " + name) })
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	ref, err := accept(ctx, name, data)
	fyne.Do(func() {
		switch {
		case errors.Is(err, editors.ErrFileRejected):
			telemetry.Event("file_rejected", map[string]any{"ext": filepath.Ext(name)})
			s.status.SetText("Rejected " + name + ": not a supported file")
		case err != nil:
			s.status.SetText("Import failed for " + name)
		default:
			s.status.SetText("Imported " + name + " as " + ref)
			s.bc.Refresh()
		}
	})
	return err
}

// exportDialog renders the current page snapshot to the chosen file.
func (s *appShell) exportDialog(format string) {
	page := export.Page{Bounds: s.surface.Bounds(), Widgets: s.store.Snapshot()}
	dialog.ShowFileSave(func(wr fyne.URIWriteCloser, err error) {
		if err != nil || wr == nil {
			return
		}
		out := wr.URI().Path()
		_ = wr.Close()
		var xerr error
		switch format {
		case "pdf":
			xerr = export.WritePDF(page, out, export.Options{})
		case "svg":
			xerr = export.WriteSVG(page, out, export.Options{})
		case "png":
			xerr = export.WritePNG(page, out, export.Options{})
		}
		if xerr != nil {
			s.log.Error("export failed", slog.String("format", format), slog.Any("err", xerr))
			s.status.SetText("Export failed")
			return
		}
		s.status.SetText("Exported " + filepath.Base(out))
	}, s.win)
}
