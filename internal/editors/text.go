/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package editors

import "pagebuilder/internal/widget"

// Font size limits for the transient text style controls.
const (
	MinFontSize = 8
	MaxFontSize = 32
)

// TextStyle is purely local editor state: font size, emphasis and alignment
// live only for the editor's activation lifetime and are never written to
// the store. Deactivating the editor drops them.
type TextStyle struct {
	FontSize int
	Bold     bool
	Italic   bool
	Align    string // "left" | "center" | "right"
}

func defaultTextStyle() TextStyle { return TextStyle{FontSize: 14, Align: "left"} }

// Text edits free-form string content.
type Text struct {
	report widget.ReportFunc
	style  TextStyle
	active bool
}

func NewText(report widget.ReportFunc) *Text {
	return &Text{report: report, style: defaultTextStyle()}
}

func (e *Text) Kind() widget.Kind { return widget.KindText }

func (e *Text) Render(c widget.Content) (string, error) {
	tc, ok := c.(widget.TextContent)
	if !ok {
		return "", wrongContent(widget.KindText, c)
	}
	return tc.Text, nil
}

// SetText reports the replacement content upward.
func (e *Text) SetText(s string) error {
	return e.report(widget.TextContent{Text: s})
}

// Activate marks the editor focused; style controls only apply while active.
func (e *Text) Activate() { e.active = true }

// Deactivate unmounts the editor and resets the transient style.
func (e *Text) Deactivate() {
	e.active = false
	e.style = defaultTextStyle()
}

func (e *Text) Active() bool     { return e.active }
func (e *Text) Style() TextStyle { return e.style }

// SetFontSize clamps into the 8..32 range.
func (e *Text) SetFontSize(n int) {
	if n < MinFontSize {
		n = MinFontSize
	}
	if n > MaxFontSize {
		n = MaxFontSize
	}
	e.style.FontSize = n
}

func (e *Text) ToggleBold()   { e.style.Bold = !e.style.Bold }
func (e *Text) ToggleItalic() { e.style.Italic = !e.style.Italic }

// SetAlign accepts left, center or right; anything else is ignored.
func (e *Text) SetAlign(a string) {
	switch a {
	case "left", "center", "right":
		e.style.Align = a
	}
}
