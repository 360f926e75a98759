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
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"pagebuilder/internal/geom"
	applog "pagebuilder/internal/log"
	"pagebuilder/internal/widget"
)

// ErrNotFound marks an operation addressed at an id that is not in the
// store. Callers treat it as a no-op: ids go stale when a delete races a
// pending asynchronous content update.
var ErrNotFound = errors.New("widget not found")

// Patch is a partial update for one widget. Nil fields are left untouched.
// Kind and id are immutable and cannot be patched.
type Patch struct {
	Content widget.Content
	Pos     *geom.Pt
	Size    *geom.Size
}

// Store owns the ordered collection of placed widgets and the single active
// selection. Mutations happen only through the operations below and each one
// is atomic. The store does not re-validate geometry: callers are obliged to
// clamp positions and sizes through the geom package before committing.
//
// The mutex exists for the asynchronous file-conversion completions, which
// land on a different goroutine than the interaction loop.
type Store struct {
	mu       sync.Mutex
	reg      *widget.Registry
	order    []string
	items    map[string]*widget.Instance
	activeID string
	log      *slog.Logger
}

// NewStore creates an empty store validating kinds against reg.
func NewStore(reg *widget.Registry) *Store {
	return &Store{
		reg:   reg,
		items: make(map[string]*widget.Instance),
		log:   applog.WithComponent("canvas.store"),
	}
}

// Insert places a new widget and returns its id. A kind outside the
// registry's closed set is still placed, with nil placeholder content, and
// ErrUnknownKind is reported alongside the id so the drop stays visible
// while the caller can surface the notice.
func (s *Store) Insert(kind widget.Kind, pos geom.Pt, size geom.Size) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	inst := &widget.Instance{
		ID:      id,
		Kind:    kind,
		Content: widget.DefaultContent(kind),
		Pos:     pos,
		Size:    size,
	}
	s.items[id] = inst
	s.order = append(s.order, id)

	if !s.reg.Known(kind) {
		s.log.Warn("unknown widget kind placed as placeholder", slog.String("kind", string(kind)), slog.String("id", id))
		return id, fmt.Errorf("insert %q: %w", kind, widget.ErrUnknownKind)
	}
	s.log.Debug("widget inserted", slog.String("kind", string(kind)), slog.String("id", id))
	return id, nil
}

// Update merges a patch into the widget's content, position or size.
// Content with a kind different from the instance's kind is rejected.
func (s *Store) Update(id string, p Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.items[id]
	if !ok {
		return fmt.Errorf("update %s: %w", id, ErrNotFound)
	}
	if p.Content != nil {
		if p.Content.ContentKind() != inst.Kind {
			return fmt.Errorf("update %s: content kind %q does not match widget kind %q",
				id, p.Content.ContentKind(), inst.Kind)
		}
		inst.Content = p.Content
	}
	if p.Pos != nil {
		inst.Pos = *p.Pos
	}
	if p.Size != nil {
		inst.Size = *p.Size
	}
	return nil
}

// Remove deletes the widget. Removing the active widget clears the active
// selection.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("remove %s: %w", id, ErrNotFound)
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.activeID == id {
		s.activeID = ""
	}
	s.log.Debug("widget removed", slog.String("id", id))
	return nil
}

// SetActive marks exactly one widget active; the empty id clears the
// selection. An unknown id leaves the current selection untouched.
func (s *Store) SetActive(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		s.activeID = ""
		return nil
	}
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("setActive %s: %w", id, ErrNotFound)
	}
	s.activeID = id
	return nil
}

// ActiveID returns the active widget id, or the empty string.
func (s *Store) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Get returns a copy of the widget with the given id.
func (s *Store) Get(id string) (widget.Instance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inst, ok := s.items[id]
	if !ok {
		return widget.Instance{}, false
	}
	return *inst, true
}

// Len returns the number of placed widgets.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Snapshot returns copies of all widgets in insertion order, for rendering
// and export. The order is stable iteration order, not z-order.
func (s *Store) Snapshot() []widget.Instance {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]widget.Instance, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.items[id])
	}
	return out
}
