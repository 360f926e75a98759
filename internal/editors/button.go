/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package editors

import (
	"fmt"

	"pagebuilder/internal/widget"
)

// Button edits {label, clicks} content. Its own click interaction produces a
// content mutation of the same shape as an explicit edit.
type Button struct {
	report widget.ReportFunc
}

func NewButton(report widget.ReportFunc) *Button {
	return &Button{report: report}
}

func (e *Button) Kind() widget.Kind { return widget.KindButton }

func (e *Button) Render(c widget.Content) (string, error) {
	bc, ok := c.(widget.ButtonContent)
	if !ok {
		return "", wrongContent(widget.KindButton, c)
	}
	return fmt.Sprintf("%s (%d)", bc.Label, bc.Clicks), nil
}

// Click increments the click count and reports the new content; the label is
// untouched.
func (e *Button) Click(current widget.Content) error {
	bc, ok := current.(widget.ButtonContent)
	if !ok {
		return wrongContent(widget.KindButton, current)
	}
	bc.Clicks++
	return e.report(bc)
}

// SetLabel replaces the label, preserving the click count.
func (e *Button) SetLabel(current widget.Content, label string) error {
	bc, ok := current.(widget.ButtonContent)
	if !ok {
		return wrongContent(widget.KindButton, current)
	}
	bc.Label = label
	return e.report(bc)
}
