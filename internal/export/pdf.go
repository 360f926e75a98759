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
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders the page to a single-page PDF at outPath. Page units map
// 1:1 to PDF points; built-in Helvetica keeps the text vector without font
// embedding.
func WritePDF(p Page, outPath string, opt Options) error {
	if err := validatePage(p); err != nil {
		return err
	}
	opt = opt.withDefaults()

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: p.Bounds.W, Ht: p.Bounds.H},
		OrientationStr: "",
	})
	pdf.SetTitle("Page export", false)
	pdf.SetFont("Helvetica", "", 10)
	pdf.AddPageFormat("", gofpdf.SizeType{Wd: p.Bounds.W, Ht: p.Bounds.H})

	// Background
	pdf.SetFillColor(int(opt.Background.R), int(opt.Background.G), int(opt.Background.B))
	pdf.Rect(0, 0, p.Bounds.W, p.Bounds.H, "F")

	pdf.SetLineWidth(opt.StrokeWidth)
	pdf.SetDrawColor(int(opt.StrokeColor.R), int(opt.StrokeColor.G), int(opt.StrokeColor.B))
	pdf.SetFillColor(int(opt.WidgetFill.R), int(opt.WidgetFill.G), int(opt.WidgetFill.B))

	for _, w := range p.Widgets {
		r := w.Bounds()
		pdf.Rect(r.X, r.Y, r.W, r.H, "FD")
		pdf.SetTextColor(int(opt.StrokeColor.R), int(opt.StrokeColor.G), int(opt.StrokeColor.B))
		// Kind label in the corner, caption centered.
		pdf.Text(r.X+4, r.Y+12, string(w.Kind))
		if txt := caption(w); txt != "" {
			pdf.SetXY(r.X, r.Y+r.H/2-6)
			pdf.CellFormat(r.W, 12, txt, "", 0, "C", false, 0, "")
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
