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
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	pbcanvas "pagebuilder/internal/canvas"
	"pagebuilder/internal/geom"
	pbwidget "pagebuilder/internal/widget"
)

// dragMode represents the current pointer interaction on the canvas.
// dragNone: idle; dragPan: background pan; dragMove: moving the active
// widget; dragResize*: pulling one of its handles.
type dragMode int

const (
	dragNone dragMode = iota
	dragPan
	dragMove
	dragResizeR
	dragResizeB
	dragResizeBR
)

// BuilderCanvas draws the drop surface and its widgets and translates Fyne
// pointer events into controller sessions. All geometry decisions stay in
// the controller; this widget only renders and forwards.
type BuilderCanvas struct {
	widget.BaseWidget
	// Interaction
	zoom    float32
	offsetX float32
	offsetY float32

	ctrl    *pbcanvas.Controller
	store   *pbcanvas.Store
	surface *pbcanvas.Surface

	dragMode dragMode
	preview  *pbcanvas.Preview
	lastPt   geom.Pt

	// Palette arming: a tapped palette entry places on the next canvas tap.
	armedPalette int

	// OnSelect fires after the active widget changes so the shell can swap
	// the editor panel.
	OnSelect func(id string)
	// OnChange fires after any committed store mutation.
	OnChange func()
}

func NewBuilderCanvas(ctrl *pbcanvas.Controller, store *pbcanvas.Store, surface *pbcanvas.Surface) *BuilderCanvas {
	bc := &BuilderCanvas{
		zoom:         1.0,
		ctrl:         ctrl,
		store:        store,
		surface:      surface,
		armedPalette: -1,
	}
	bc.ExtendBaseWidget(bc)
	return bc
}

func (b *BuilderCanvas) PreferredSize() fyne.Size { return fyne.NewSize(820, 620) }

// ArmPalette marks a palette entry for placement on the next canvas tap.
func (b *BuilderCanvas) ArmPalette(index int) {
	b.armedPalette = index
	b.Refresh()
}

// Coordinate helpers: surface <-> screen mapping.
func (b *BuilderCanvas) surfaceOrigin() (cx, cy, scale float32) {
	size := b.Size()
	bounds := b.surface.Bounds()
	scaledW := float32(bounds.W) * b.zoom
	scaledH := float32(bounds.H) * b.zoom
	cx = size.Width/2 - scaledW/2 + b.offsetX
	cy = size.Height/2 - scaledH/2 + b.offsetY
	return cx, cy, b.zoom
}

func (b *BuilderCanvas) toScreen(pt geom.Pt) fyne.Position {
	cx, cy, s := b.surfaceOrigin()
	return fyne.NewPos(cx+float32(pt.X)*s, cy+float32(pt.Y)*s)
}

func (b *BuilderCanvas) toSurface(pos fyne.Position) geom.Pt {
	cx, cy, s := b.surfaceOrigin()
	return geom.Pt{X: float64((pos.X - cx) / s), Y: float64((pos.Y - cy) / s)}
}

// hitTest returns the topmost widget under the surface point, or "".
func (b *BuilderCanvas) hitTest(pt geom.Pt) string {
	snap := b.store.Snapshot()
	for i := len(snap) - 1; i >= 0; i-- {
		if snap[i].Bounds().Contains(pt) {
			return snap[i].ID
		}
	}
	return ""
}

const handleSize = float32(10)

// handleRects computes the active widget's resize handles in screen coords.
func (b *BuilderCanvas) handleRects() (right, bottom, corner fRect, ok bool) {
	id := b.store.ActiveID()
	if id == "" {
		return fRect{}, fRect{}, fRect{}, false
	}
	w, found := b.store.Get(id)
	if !found {
		return fRect{}, fRect{}, fRect{}, false
	}
	r := w.Bounds()
	p0 := b.toScreen(geom.Pt{X: r.X, Y: r.Y})
	p1 := b.toScreen(geom.Pt{X: r.X + r.W, Y: r.Y + r.H})
	hs := handleSize
	right = fRect{X: p1.X - hs/2, Y: p0.Y + (p1.Y-p0.Y)/2 - hs/2, Width: hs, Height: hs}
	bottom = fRect{X: p0.X + (p1.X-p0.X)/2 - hs/2, Y: p1.Y - hs/2, Width: hs, Height: hs}
	corner = fRect{X: p1.X - hs/2, Y: p1.Y - hs/2, Width: hs, Height: hs}
	return right, bottom, corner, true
}

type fRect struct{ X, Y, Width, Height float32 }

func (r fRect) contains(p fyne.Position) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Tapped places an armed palette entry or changes the selection.
func (b *BuilderCanvas) Tapped(e *fyne.PointEvent) {
	pt := b.toSurface(e.Position)
	if b.armedPalette >= 0 {
		idx := b.armedPalette
		b.armedPalette = -1
		if b.ctrl.BeginPaletteDrag(idx, pt) {
			if id, _ := b.ctrl.End(pt, b.surface.ID()); id != "" {
				_ = b.store.SetActive(id)
				b.notifySelect(id)
				b.notifyChange()
			}
		}
		b.Refresh()
		return
	}
	id := b.hitTest(pt)
	_ = b.store.SetActive(id)
	b.notifySelect(id)
	b.Refresh()
}

// Dragged opens a session on the first event and feeds previews afterwards.
func (b *BuilderCanvas) Dragged(e *fyne.DragEvent) {
	pos := e.Position
	pt := b.toSurface(pos)
	if b.dragMode == dragNone {
		if right, bottom, corner, ok := b.handleRects(); ok {
			id := b.store.ActiveID()
			switch {
			case corner.contains(pos):
				if b.ctrl.BeginResize(id, pbcanvas.HandleBottomRight, pt) {
					b.dragMode = dragResizeBR
				}
			case right.contains(pos):
				if b.ctrl.BeginResize(id, pbcanvas.HandleRight, pt) {
					b.dragMode = dragResizeR
				}
			case bottom.contains(pos):
				if b.ctrl.BeginResize(id, pbcanvas.HandleBottom, pt) {
					b.dragMode = dragResizeB
				}
			}
		}
		if b.dragMode == dragNone {
			if id := b.hitTest(pt); id != "" {
				if b.store.ActiveID() != id {
					_ = b.store.SetActive(id)
					b.notifySelect(id)
				}
				if b.ctrl.BeginMove(id, pt) {
					b.dragMode = dragMove
				}
			} else {
				b.dragMode = dragPan
			}
		}
	}

	switch b.dragMode {
	case dragPan:
		b.offsetX += e.Dragged.DX
		b.offsetY += e.Dragged.DY
	case dragMove, dragResizeR, dragResizeB, dragResizeBR:
		if pv, ok := b.ctrl.Move(pt); ok {
			b.preview = &pv
		}
		b.lastPt = pt
	}
	b.Refresh()
}

// DragEnd commits the open session at the last pointer position.
func (b *BuilderCanvas) DragEnd() {
	mode := b.dragMode
	b.dragMode = dragNone
	b.preview = nil
	if mode == dragNone || mode == dragPan {
		b.Refresh()
		return
	}
	if id, _ := b.ctrl.End(b.lastPt, b.surface.ID()); id != "" {
		b.notifyChange()
	}
	b.Refresh()
}

func (b *BuilderCanvas) notifySelect(id string) {
	if b.OnSelect != nil {
		b.OnSelect(id)
	}
}

func (b *BuilderCanvas) notifyChange() {
	if b.OnChange != nil {
		b.OnChange()
	}
}

// CreateRenderer builds the drawable objects positioned in Layout.
func (b *BuilderCanvas) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.RGBA{R: 30, G: 30, B: 34, A: 255})

	page := canvas.NewRectangle(color.White)
	page.StrokeColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	page.StrokeWidth = 2

	bbox := canvas.NewRectangle(color.RGBA{})
	bbox.StrokeColor = color.RGBA{R: 0, G: 170, B: 255, A: 255}
	bbox.StrokeWidth = 1
	bbox.Hide()

	handles := []*canvas.Rectangle{
		canvas.NewRectangle(color.RGBA{R: 0, G: 170, B: 255, A: 255}),
		canvas.NewRectangle(color.RGBA{R: 0, G: 170, B: 255, A: 255}),
		canvas.NewRectangle(color.RGBA{R: 0, G: 170, B: 255, A: 255}),
	}
	for _, h := range handles {
		h.Hide()
	}

	ghost := canvas.NewRectangle(color.RGBA{R: 0, G: 170, B: 255, A: 40})
	ghost.StrokeColor = color.RGBA{R: 0, G: 170, B: 255, A: 200}
	ghost.StrokeWidth = 1
	ghost.Hide()

	objs := []fyne.CanvasObject{bg, page, ghost, bbox}
	for _, h := range handles {
		objs = append(objs, h)
	}
	return &builderCanvasRenderer{bc: b, objects: objs, bg: bg, page: page, ghost: ghost, bbox: bbox, handles: handles}
}

// builderCanvasRenderer lays out the drawables from the store snapshot.
type builderCanvasRenderer struct {
	bc      *BuilderCanvas
	objects []fyne.CanvasObject
	bg      *canvas.Rectangle
	page    *canvas.Rectangle
	ghost   *canvas.Rectangle
	bbox    *canvas.Rectangle
	handles []*canvas.Rectangle
	// widget visuals, grown on demand
	rects  []*canvas.Rectangle
	labels []*canvas.Text
}

func (r *builderCanvasRenderer) Destroy()                     {}
func (r *builderCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *builderCanvasRenderer) MinSize() fyne.Size           { return r.bc.PreferredSize() }
func (r *builderCanvasRenderer) Refresh()                     { r.Layout(r.bc.Size()); canvas.Refresh(r.bc) }

func (r *builderCanvasRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	bounds := r.bc.surface.Bounds()
	cx, cy, s := r.bc.surfaceOrigin()
	r.page.Resize(fyne.NewSize(float32(bounds.W)*s, float32(bounds.H)*s))
	r.page.Move(fyne.NewPos(cx, cy))

	snap := r.bc.store.Snapshot()
	r.ensureVisuals(len(snap))

	activeID := r.bc.store.ActiveID()
	for i, w := range snap {
		rect := w.Bounds()
		// A live preview replaces the committed geometry for that widget.
		if pv := r.bc.preview; pv != nil && pv.WidgetID == w.ID {
			rect = geom.Rect{X: pv.Pos.X, Y: pv.Pos.Y, W: pv.Size.W, H: pv.Size.H}
		}
		p0 := r.bc.toScreen(geom.Pt{X: rect.X, Y: rect.Y})
		rc := r.rects[i]
		rc.Show()
		rc.Resize(fyne.NewSize(float32(rect.W)*s, float32(rect.H)*s))
		rc.Move(p0)
		rc.FillColor = widgetFill(w.Kind)
		if w.ID == activeID {
			rc.StrokeColor = color.RGBA{R: 0, G: 170, B: 255, A: 255}
		} else {
			rc.StrokeColor = color.RGBA{R: 60, G: 60, B: 60, A: 255}
		}
		rc.Refresh()

		lb := r.labels[i]
		lb.Show()
		lb.Text = string(w.Kind)
		lb.Move(fyne.NewPos(p0.X+4, p0.Y+2))
		lb.Refresh()
	}
	for j := len(snap); j < len(r.rects); j++ {
		r.rects[j].Hide()
		r.labels[j].Hide()
	}

	// Ghost preview for palette placements (no widget id yet).
	if pv := r.bc.preview; pv != nil && pv.WidgetID == "" {
		p0 := r.bc.toScreen(geom.Pt{X: pv.Pos.X, Y: pv.Pos.Y})
		r.ghost.Show()
		r.ghost.Resize(fyne.NewSize(float32(pv.Size.W)*s, float32(pv.Size.H)*s))
		r.ghost.Move(p0)
	} else {
		r.ghost.Hide()
	}

	// Selection overlay and resize handles.
	if right, bottom, corner, ok := r.bc.handleRects(); ok {
		w, _ := r.bc.store.Get(activeID)
		rect := w.Bounds()
		if pv := r.bc.preview; pv != nil && pv.WidgetID == activeID {
			rect = geom.Rect{X: pv.Pos.X, Y: pv.Pos.Y, W: pv.Size.W, H: pv.Size.H}
		}
		p0 := r.bc.toScreen(geom.Pt{X: rect.X, Y: rect.Y})
		r.bbox.Show()
		r.bbox.Resize(fyne.NewSize(float32(rect.W)*s, float32(rect.H)*s))
		r.bbox.Move(p0)
		for i, h := range []fRect{right, bottom, corner} {
			r.handles[i].Show()
			r.handles[i].Resize(fyne.NewSize(h.Width, h.Height))
			r.handles[i].Move(fyne.NewPos(h.X, h.Y))
		}
	} else {
		r.bbox.Hide()
		for _, h := range r.handles {
			h.Hide()
		}
	}
}

func (r *builderCanvasRenderer) ensureVisuals(need int) {
	for len(r.rects) < need {
		rc := canvas.NewRectangle(color.RGBA{R: 220, G: 220, B: 220, A: 255})
		rc.StrokeColor = color.RGBA{R: 60, G: 60, B: 60, A: 255}
		rc.StrokeWidth = 1
		lb := canvas.NewText("", color.RGBA{R: 40, G: 40, B: 40, A: 255})
		lb.TextSize = 11
		// Insert before the ghost so overlays stay on top.
		ins := -1
		for i, obj := range r.objects {
			if obj == r.ghost {
				ins = i
				break
			}
		}
		if ins < 0 {
			ins = len(r.objects)
		}
		objs := make([]fyne.CanvasObject, 0, len(r.objects)+2)
		objs = append(objs, r.objects[:ins]...)
		objs = append(objs, rc, lb)
		objs = append(objs, r.objects[ins:]...)
		r.objects = objs
		r.rects = append(r.rects, rc)
		r.labels = append(r.labels, lb)
	}
}

func widgetFill(k pbwidget.Kind) color.Color {
	switch k {
	case pbwidget.KindText:
		return color.RGBA{R: 250, G: 246, B: 230, A: 255}
	case pbwidget.KindButton:
		return color.RGBA{R: 214, G: 232, B: 250, A: 255}
	case pbwidget.KindImage:
		return color.RGBA{R: 228, G: 246, B: 228, A: 255}
	case pbwidget.KindAudioPlayer:
		return color.RGBA{R: 244, G: 230, B: 246, A: 255}
	case pbwidget.KindMarkdown:
		return color.RGBA{R: 246, G: 240, B: 224, A: 255}
	default:
		// Unknown kinds render as a grey placeholder block.
		return color.RGBA{R: 210, G: 210, B: 210, A: 255}
	}
}
