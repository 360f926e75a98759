/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

// WritePNG rasterizes the page at opt.DPI (96 being 1:1) to outPath.
func WritePNG(p Page, outPath string, opt Options) error {
	if err := validatePage(p); err != nil {
		return err
	}
	opt = opt.withDefaults()

	scale := float64(opt.DPI) / 96.0
	pxW := int(math.Ceil(p.Bounds.W * scale))
	pxH := int(math.Ceil(p.Bounds.H * scale))
	img := image.NewRGBA(image.Rect(0, 0, pxW, pxH))
	draw.Draw(img, img.Bounds(), image.NewUniform(rgba(opt.Background)), image.Point{}, draw.Src)

	for _, w := range p.Widgets {
		r := w.Bounds()
		x0 := int(math.Round(r.X * scale))
		y0 := int(math.Round(r.Y * scale))
		x1 := int(math.Round((r.X + r.W) * scale))
		y1 := int(math.Round((r.Y + r.H) * scale))
		box := image.Rect(x0, y0, x1, y1).Intersect(img.Bounds())
		draw.Draw(img, box, image.NewUniform(rgba(opt.WidgetFill)), image.Point{}, draw.Src)
		strokeRect(img, box, rgba(opt.StrokeColor), int(math.Max(1, math.Round(opt.StrokeWidth*scale))))
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func rgba(c Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// strokeRect draws an inset border of the given pixel width.
func strokeRect(img *image.RGBA, r image.Rectangle, c color.RGBA, w int) {
	if r.Empty() {
		return
	}
	u := image.NewUniform(c)
	top := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w)
	bottom := image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y)
	left := image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Max.Y)
	right := image.Rect(r.Max.X-w, r.Min.Y, r.Max.X, r.Max.Y)
	for _, side := range []image.Rectangle{top, bottom, left, right} {
		draw.Draw(img, side.Intersect(img.Bounds()), u, image.Point{}, draw.Src)
	}
}
