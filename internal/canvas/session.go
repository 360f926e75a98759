/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

import (
	"log/slog"

	"pagebuilder/internal/geom"
	applog "pagebuilder/internal/log"
	"pagebuilder/internal/widget"
)

// SessionKind distinguishes what a drag session manipulates.
type SessionKind int

const (
	sessionNone SessionKind = iota
	SessionFromPalette
	SessionMove
	SessionResize
)

// ResizeHandle selects which edge a resize session drags. Only the bottom,
// right and bottom-right handles exist; there is no top/left resize.
type ResizeHandle int

const (
	HandleRight ResizeHandle = iota
	HandleBottom
	HandleBottomRight
)

// session is the transient state between pointer-down and pointer-up.
// originPos/originSize are snapshots taken at session start; every candidate
// is computed as origin plus the cumulative pointer delta, never by
// accumulating per-frame deltas, so long drags cannot drift.
type session struct {
	kind         SessionKind
	paletteIndex int
	widgetID     string
	handle       ResizeHandle
	start        geom.Pt
	originPos    geom.Pt
	originSize   geom.Size
}

// Preview is the clamped candidate rendered during a session. It never
// touches the store.
type Preview struct {
	Kind     widget.Kind
	WidgetID string
	Pos      geom.Pt
	Size     geom.Size
}

// Controller turns pointer event sequences into store mutations. Sessions
// are strictly serial: a pointer-down while a session is open is ignored.
// State machine: Idle -> SessionOpen -> Idle, no nesting.
type Controller struct {
	store   *Store
	surface *Surface
	palette []widget.PaletteEntry
	sess    *session
	log     *slog.Logger
}

// NewController wires a controller to its store, drop surface and palette.
func NewController(store *Store, surface *Surface, palette []widget.PaletteEntry) *Controller {
	return &Controller{
		store:   store,
		surface: surface,
		palette: append([]widget.PaletteEntry(nil), palette...),
		log:     applog.WithComponent("canvas.controller"),
	}
}

// Palette returns the read-only palette entries.
func (c *Controller) Palette() []widget.PaletteEntry {
	return append([]widget.PaletteEntry(nil), c.palette...)
}

// SessionOpen reports whether a drag session is in progress.
func (c *Controller) SessionOpen() bool { return c.sess != nil }

// BeginPaletteDrag opens a from-palette session for the palette entry at
// index. It reports false when a session is already open or the index is out
// of range.
func (c *Controller) BeginPaletteDrag(index int, start geom.Pt) bool {
	if c.sess != nil {
		c.log.Debug("pointer-down ignored, session already open")
		return false
	}
	if index < 0 || index >= len(c.palette) {
		return false
	}
	c.sess = &session{
		kind:         SessionFromPalette,
		paletteIndex: index,
		start:        start,
		originPos:    start,
		originSize:   geom.DefaultWidgetSize(),
	}
	return true
}

// BeginMove opens a move session for an existing widget, snapshotting its
// position from the store.
func (c *Controller) BeginMove(id string, start geom.Pt) bool {
	if c.sess != nil {
		c.log.Debug("pointer-down ignored, session already open")
		return false
	}
	inst, ok := c.store.Get(id)
	if !ok {
		return false
	}
	c.sess = &session{
		kind:       SessionMove,
		widgetID:   id,
		start:      start,
		originPos:  inst.Pos,
		originSize: inst.Size,
	}
	return true
}

// BeginResize opens a resize session for an existing widget. Resize and move
// are mutually exclusive within one session.
func (c *Controller) BeginResize(id string, handle ResizeHandle, start geom.Pt) bool {
	if c.sess != nil {
		c.log.Debug("pointer-down ignored, session already open")
		return false
	}
	inst, ok := c.store.Get(id)
	if !ok {
		return false
	}
	c.sess = &session{
		kind:       SessionResize,
		widgetID:   id,
		handle:     handle,
		start:      start,
		originPos:  inst.Pos,
		originSize: inst.Size,
	}
	return true
}

// Move computes the clamped candidate for the current pointer position.
// It reads the store at most for the origin snapshot taken at session start
// and mutates nothing; the result is only good for preview rendering.
func (c *Controller) Move(p geom.Pt) (Preview, bool) {
	if c.sess == nil {
		return Preview{}, false
	}
	return c.candidate(c.sess, p), true
}

func (c *Controller) candidate(s *session, p geom.Pt) Preview {
	bounds := c.surface.Bounds()
	switch s.kind {
	case SessionFromPalette:
		pos := geom.ClampPosition(p, s.originSize, bounds)
		return Preview{
			Kind: c.palette[s.paletteIndex].Kind,
			Pos:  pos,
			Size: s.originSize,
		}
	case SessionMove:
		dx, dy := p.Delta(s.start)
		pos := geom.ClampPosition(s.originPos.Add(dx, dy), s.originSize, bounds)
		return Preview{WidgetID: s.widgetID, Pos: pos, Size: s.originSize}
	default: // SessionResize
		dx, dy := p.Delta(s.start)
		cand := s.originSize
		switch s.handle {
		case HandleRight:
			cand.W += dx
		case HandleBottom:
			cand.H += dy
		case HandleBottomRight:
			cand.W += dx
			cand.H += dy
		}
		size := geom.ClampSize(cand, s.originPos, bounds)
		return Preview{WidgetID: s.widgetID, Pos: s.originPos, Size: size}
	}
}

// End closes the session on pointer-up and commits the clamped result.
// For a from-palette session the release must land on the drop surface;
// anywhere else the drag is silently abandoned. The session resets to Idle
// regardless of the commit outcome. The returned id names the inserted or
// updated widget, empty when nothing was committed.
func (c *Controller) End(p geom.Pt, targetID string) (string, error) {
	if c.sess == nil {
		return "", nil
	}
	s := c.sess
	c.sess = nil // terminal regardless of outcome

	switch s.kind {
	case SessionFromPalette:
		if !c.surface.Accepts(targetID) {
			c.log.Debug("palette drop outside surface abandoned",
				slog.String("kind", string(c.palette[s.paletteIndex].Kind)))
			return "", nil
		}
		cand := c.candidate(s, p)
		// An unknown kind still lands as a placeholder; the id comes back
		// alongside ErrUnknownKind so the caller can surface the notice.
		return c.store.Insert(c.palette[s.paletteIndex].Kind, cand.Pos, cand.Size)
	case SessionMove:
		cand := c.candidate(s, p)
		if err := c.store.Update(s.widgetID, Patch{Pos: &cand.Pos}); err != nil {
			return "", err
		}
		return s.widgetID, nil
	default: // SessionResize
		cand := c.candidate(s, p)
		if err := c.store.Update(s.widgetID, Patch{Size: &cand.Size}); err != nil {
			return "", err
		}
		return s.widgetID, nil
	}
}
