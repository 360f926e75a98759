/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

// WriteSVG renders the page to a single SVG file at outPath. The viewBox
// matches the page units so the output scales without loss.
func WriteSVG(p Page, outPath string, opt Options) error {
	if err := validatePage(p); err != nil {
		return err
	}
	opt = opt.withDefaults()

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		p.Bounds.W, p.Bounds.H, p.Bounds.W, p.Bounds.H)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%g" height="%g" fill="%s"/>`+"\n",
		p.Bounds.W, p.Bounds.H, svgColor(opt.Background))

	for _, w := range p.Widgets {
		r := w.Bounds()
		fmt.Fprintf(&buf, `  <g data-kind="%s">`+"\n", xmlEscape(string(w.Kind)))
		fmt.Fprintf(&buf, `    <rect x="%g" y="%g" width="%g" height="%g" fill="%s" stroke="%s" stroke-width="%g"/>`+"\n",
			r.X, r.Y, r.W, r.H, svgColor(opt.WidgetFill), svgColor(opt.StrokeColor), opt.StrokeWidth)
		fmt.Fprintf(&buf, `    <text x="%g" y="%g" font-size="10" fill="%s">%s</text>`+"\n",
			r.X+4, r.Y+12, svgColor(opt.StrokeColor), xmlEscape(string(w.Kind)))
		if txt := caption(w); txt != "" {
			fmt.Fprintf(&buf, `    <text x="%g" y="%g" font-size="11" text-anchor="middle" fill="%s">%s</text>`+"\n",
				r.X+r.W/2, r.Y+r.H/2+4, svgColor(opt.StrokeColor), xmlEscape(txt))
		}
		buf.WriteString("  </g>\n")
	}
	buf.WriteString("</svg>\n")

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func svgColor(c Color) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func xmlEscape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
