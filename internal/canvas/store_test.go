/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

import (
	"errors"
	"testing"

	"pagebuilder/internal/geom"
	"pagebuilder/internal/widget"
)

type nopEditor struct{ kind widget.Kind }

func (e nopEditor) Kind() widget.Kind                     { return e.kind }
func (e nopEditor) Render(widget.Content) (string, error) { return "", nil }

func testRegistry() *widget.Registry {
	f := make(map[widget.Kind]widget.EditorFactory)
	for _, k := range widget.Kinds() {
		kind := k
		f[kind] = func(widget.ReportFunc) widget.Editor { return nopEditor{kind: kind} }
	}
	return widget.NewRegistry(f)
}

func TestInsertAssignsUniqueIDs(t *testing.T) {
	s := NewStore(testRegistry())
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := s.Insert(widget.KindText, geom.Pt{}, geom.DefaultWidgetSize())
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
	if s.Len() != 50 {
		t.Fatalf("expected 50 widgets, got %d", s.Len())
	}
}

func TestInsertUnknownKindPlacesPlaceholder(t *testing.T) {
	s := NewStore(testRegistry())
	id, err := s.Insert(widget.Kind("unknown-type"), geom.Pt{X: 10, Y: 10}, geom.DefaultWidgetSize())
	if !errors.Is(err, widget.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	inst, ok := s.Get(id)
	if !ok {
		t.Fatalf("placeholder should still be placed")
	}
	if inst.Content != nil {
		t.Fatalf("placeholder content should be nil, got %+v", inst.Content)
	}
	if inst.Kind != widget.Kind("unknown-type") {
		t.Fatalf("placeholder should keep its kind tag: %q", inst.Kind)
	}
}

func TestInsertDefaultContentPerKind(t *testing.T) {
	s := NewStore(testRegistry())
	id, err := s.Insert(widget.KindButton, geom.Pt{}, geom.DefaultWidgetSize())
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	inst, _ := s.Get(id)
	bc, ok := inst.Content.(widget.ButtonContent)
	if !ok {
		t.Fatalf("expected ButtonContent, got %T", inst.Content)
	}
	if bc.Clicks != 0 {
		t.Fatalf("fresh button should have zero clicks")
	}
}

func TestUpdateMergesFields(t *testing.T) {
	s := NewStore(testRegistry())
	id, _ := s.Insert(widget.KindText, geom.Pt{X: 1, Y: 2}, geom.Size{W: 200, H: 100})

	pos := geom.Pt{X: 30, Y: 40}
	if err := s.Update(id, Patch{Pos: &pos}); err != nil {
		t.Fatalf("update pos: %v", err)
	}
	inst, _ := s.Get(id)
	if inst.Pos != pos {
		t.Fatalf("position not merged: %+v", inst.Pos)
	}
	if inst.Size != (geom.Size{W: 200, H: 100}) {
		t.Fatalf("size must stay untouched: %+v", inst.Size)
	}

	if err := s.Update(id, Patch{Content: widget.TextContent{Text: "hello"}}); err != nil {
		t.Fatalf("update content: %v", err)
	}
	inst, _ = s.Get(id)
	if inst.Content.(widget.TextContent).Text != "hello" {
		t.Fatalf("content not merged: %+v", inst.Content)
	}
	if inst.Pos != pos {
		t.Fatalf("content patch must not touch position")
	}
}

func TestUpdateRejectsMismatchedContentKind(t *testing.T) {
	s := NewStore(testRegistry())
	id, _ := s.Insert(widget.KindText, geom.Pt{}, geom.DefaultWidgetSize())
	if err := s.Update(id, Patch{Content: widget.ButtonContent{Label: "x"}}); err == nil {
		t.Fatalf("expected kind mismatch error")
	}
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	s := NewStore(testRegistry())
	if err := s.Update("nope", Patch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveClearsActive(t *testing.T) {
	s := NewStore(testRegistry())
	id, _ := s.Insert(widget.KindText, geom.Pt{}, geom.DefaultWidgetSize())
	if err := s.SetActive(id); err != nil {
		t.Fatalf("setActive: %v", err)
	}
	if err := s.Remove(id); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if s.ActiveID() != "" {
		t.Fatalf("removing the active widget must clear the selection")
	}
	if err := s.Remove(id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double remove should be ErrNotFound, got %v", err)
	}
}

func TestSingleActiveInvariant(t *testing.T) {
	s := NewStore(testRegistry())
	a, _ := s.Insert(widget.KindText, geom.Pt{}, geom.DefaultWidgetSize())
	b, _ := s.Insert(widget.KindButton, geom.Pt{}, geom.DefaultWidgetSize())

	if err := s.SetActive(a); err != nil {
		t.Fatalf("setActive a: %v", err)
	}
	if err := s.SetActive(b); err != nil {
		t.Fatalf("setActive b: %v", err)
	}
	if s.ActiveID() != b {
		t.Fatalf("active should be %q, got %q", b, s.ActiveID())
	}
	if err := s.SetActive("stale"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("stale id should be ErrNotFound, got %v", err)
	}
	if s.ActiveID() != b {
		t.Fatalf("failed setActive must not change selection")
	}
	if err := s.SetActive(""); err != nil {
		t.Fatalf("clear active: %v", err)
	}
	if s.ActiveID() != "" {
		t.Fatalf("selection should be cleared")
	}
}

func TestSnapshotInsertionOrder(t *testing.T) {
	s := NewStore(testRegistry())
	a, _ := s.Insert(widget.KindText, geom.Pt{}, geom.DefaultWidgetSize())
	b, _ := s.Insert(widget.KindImage, geom.Pt{}, geom.DefaultWidgetSize())
	c, _ := s.Insert(widget.KindMarkdown, geom.Pt{}, geom.DefaultWidgetSize())
	_ = s.Remove(b)

	snap := s.Snapshot()
	if len(snap) != 2 || snap[0].ID != a || snap[1].ID != c {
		t.Fatalf("snapshot order wrong: %+v", snap)
	}

	// Snapshot returns copies; mutating them must not leak into the store.
	snap[0].Pos = geom.Pt{X: 999, Y: 999}
	inst, _ := s.Get(a)
	if inst.Pos == (geom.Pt{X: 999, Y: 999}) {
		t.Fatalf("snapshot must be a copy")
	}
}
