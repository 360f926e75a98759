/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package editors

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"pagebuilder/internal/widget"
)

// Markdown edits free-text markdown source and renders it live as HTML.
type Markdown struct {
	report widget.ReportFunc
	md     goldmark.Markdown
}

func NewMarkdown(report widget.ReportFunc) *Markdown {
	return &Markdown{
		report: report,
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

func (e *Markdown) Kind() widget.Kind { return widget.KindMarkdown }

// Render converts the markdown source to HTML.
func (e *Markdown) Render(c widget.Content) (string, error) {
	mc, ok := c.(widget.MarkdownContent)
	if !ok {
		return "", wrongContent(widget.KindMarkdown, c)
	}
	var buf bytes.Buffer
	if err := e.md.Convert([]byte(mc.Source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SetSource reports the replacement markdown source upward.
func (e *Markdown) SetSource(src string) error {
	return e.report(widget.MarkdownContent{Source: src})
}
