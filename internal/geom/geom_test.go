/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

import "testing"

func TestClampPositionInsideBounds(t *testing.T) {
	b := Size{W: 800, H: 600}
	s := Size{W: 200, H: 100}
	p := ClampPosition(Pt{X: 40, Y: 40}, s, b)
	if p.X != 40 || p.Y != 40 {
		t.Fatalf("in-bounds position should be unchanged: %+v", p)
	}
}

func TestClampPositionNegative(t *testing.T) {
	b := Size{W: 800, H: 600}
	s := Size{W: 200, H: 100}
	p := ClampPosition(Pt{X: -60, Y: -60}, s, b)
	if p.X != 0 || p.Y != 0 {
		t.Fatalf("negative candidate should clamp to origin: %+v", p)
	}
}

func TestClampPositionFarEdge(t *testing.T) {
	b := Size{W: 800, H: 600}
	s := Size{W: 200, H: 100}
	p := ClampPosition(Pt{X: 900, Y: 700}, s, b)
	if p.X != 600 || p.Y != 500 {
		t.Fatalf("candidate past the edge should clamp to bounds-size: %+v", p)
	}
}

func TestClampPositionOversizedWidget(t *testing.T) {
	// A widget wider than the canvas pins to 0 and overflows.
	b := Size{W: 300, H: 300}
	s := Size{W: 400, H: 100}
	p := ClampPosition(Pt{X: 50, Y: 50}, s, b)
	if p.X != 0 {
		t.Fatalf("oversized widget should pin to x=0: %+v", p)
	}
	if p.Y != 50 {
		t.Fatalf("y should be untouched when it fits: %+v", p)
	}
}

func TestClampPositionIdempotent(t *testing.T) {
	b := Size{W: 800, H: 600}
	cases := []struct {
		p Pt
		s Size
	}{
		{Pt{-10, -10}, Size{200, 100}},
		{Pt{790, 590}, Size{200, 100}},
		{Pt{400, 300}, Size{50, 50}},
		{Pt{0, 0}, Size{900, 700}},
	}
	for _, c := range cases {
		once := ClampPosition(c.p, c.s, b)
		twice := ClampPosition(once, c.s, b)
		if once != twice {
			t.Fatalf("clamp not idempotent for %+v: %+v vs %+v", c, once, twice)
		}
	}
}

func TestClampSizeMinimum(t *testing.T) {
	b := Size{W: 800, H: 600}
	s := ClampSize(Size{W: 10, H: 10}, Pt{X: 100, Y: 100}, b)
	if s.W != MinWidgetSide || s.H != MinWidgetSide {
		t.Fatalf("size below minimum should clamp up: %+v", s)
	}
}

func TestClampSizeAgainstBounds(t *testing.T) {
	b := Size{W: 800, H: 600}
	s := ClampSize(Size{W: 700, H: 700}, Pt{X: 700, Y: 500}, b)
	if s.W != 100 || s.H != 100 {
		t.Fatalf("size should clamp to remaining canvas space: %+v", s)
	}
}

func TestClampSizeMinimumWinsNearEdge(t *testing.T) {
	// Less than MinWidgetSide of space remains; the minimum takes precedence.
	b := Size{W: 800, H: 600}
	s := ClampSize(Size{W: 500, H: 500}, Pt{X: 780, Y: 580}, b)
	if s.W != MinWidgetSide || s.H != MinWidgetSide {
		t.Fatalf("minimum should win over bounds: %+v", s)
	}
}

func TestRectContains(t *testing.T) {
	r := R(10, 20, 100, 50)
	if !r.Contains(Pt{10, 20}) || !r.Contains(Pt{110, 70}) {
		t.Fatalf("expected edge points to be contained")
	}
	if r.Contains(Pt{9, 20}) || r.Contains(Pt{111, 70}) {
		t.Fatalf("expected outside points to be rejected")
	}
	if r.Min() != (Pt{10, 20}) || r.Max() != (Pt{110, 70}) {
		t.Fatalf("unexpected min/max: %+v %+v", r.Min(), r.Max())
	}
}

func TestPtDeltaAdd(t *testing.T) {
	a := Pt{3, 4}
	b := Pt{10, 2}
	dx, dy := b.Delta(a)
	if dx != 7 || dy != -2 {
		t.Fatalf("unexpected delta: %v %v", dx, dy)
	}
	if a.Add(dx, dy) != b {
		t.Fatalf("add should invert delta")
	}
}
