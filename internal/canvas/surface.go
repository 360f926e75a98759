/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

import (
	"github.com/google/uuid"

	"pagebuilder/internal/geom"
)

// Surface is the drop target for palette drags and the source of live
// canvas bounds. A release whose target id does not match the surface id is
// "no drop", never an error. Bounds follow the rendered box, so a viewport
// resize changes clamping on the next interaction without repositioning
// already-placed widgets.
type Surface struct {
	id     string
	bounds geom.Size
}

// NewSurface creates a surface with a unique target id and initial bounds.
func NewSurface(bounds geom.Size) *Surface {
	return &Surface{id: uuid.NewString(), bounds: bounds}
}

// ID returns the surface's unique drop-target id.
func (s *Surface) ID() string { return s.id }

// Bounds returns the current canvas bounds.
func (s *Surface) Bounds() geom.Size { return s.bounds }

// SetBounds updates the live bounds from the rendered box.
func (s *Surface) SetBounds(b geom.Size) { s.bounds = b }

// Accepts reports whether a release over targetID lands on this surface.
func (s *Surface) Accepts(targetID string) bool { return targetID == s.id }
