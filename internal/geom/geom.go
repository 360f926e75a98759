/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

// Pure 2D geometry for the canvas. All values are canvas-local pixels with
// the origin at the top-left corner.

// MinWidgetSide is the smallest width or height a widget may be resized to.
const MinWidgetSide = 50

// Pt is a 2D point.
type Pt struct{ X, Y float64 }

// Size is a width/height pair.
type Size struct{ W, H float64 }

// Rect is an axis-aligned rectangle defined by min corner and size.
type Rect struct {
	X, Y float64
	W, H float64
}

func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) Min() Pt { return Pt{r.X, r.Y} }
func (r Rect) Max() Pt { return Pt{r.X + r.W, r.Y + r.H} }

func (r Rect) Contains(p Pt) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X <= r.X+r.W && p.Y <= r.Y+r.H
}

// Add offsets a point by the vector from a to b applied to p.
func (p Pt) Add(dx, dy float64) Pt { return Pt{p.X + dx, p.Y + dy} }

// Delta returns the offset from o to p.
func (p Pt) Delta(o Pt) (dx, dy float64) { return p.X - o.X, p.Y - o.Y }

// DefaultWidgetSize is the size assigned to a widget dropped from the palette.
func DefaultWidgetSize() Size { return Size{W: 200, H: 100} }

// ClampPosition adjusts a candidate position so the box of the given size
// stays inside bounds. A widget larger than the bounds pins to the origin
// rather than erroring; the overflow is tolerated.
func ClampPosition(candidate Pt, size Size, bounds Size) Pt {
	return Pt{
		X: max(0, min(candidate.X, bounds.W-size.W)),
		Y: max(0, min(candidate.Y, bounds.H-size.H)),
	}
}

// ClampSize adjusts a candidate size so the box anchored at pos stays inside
// bounds and neither side drops below MinWidgetSide. The minimum wins over
// the bounds when the two conflict near the canvas edge.
func ClampSize(candidate Size, pos Pt, bounds Size) Size {
	return Size{
		W: max(MinWidgetSide, min(candidate.W, bounds.W-pos.X)),
		H: max(MinWidgetSide, min(candidate.H, bounds.H-pos.Y)),
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
