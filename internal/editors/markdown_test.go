/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package editors

import (
	"strings"
	"testing"

	"pagebuilder/internal/widget"
)

func TestMarkdownRenderHeading(t *testing.T) {
	e := NewMarkdown(func(widget.Content) error { return nil })
	html, err := e.Render(widget.MarkdownContent{Source: "# Title\n\nSome *body*."})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(html, "<h1>Title</h1>") {
		t.Fatalf("heading missing from output: %q", html)
	}
	if !strings.Contains(html, "<em>body</em>") {
		t.Fatalf("emphasis missing from output: %q", html)
	}
}

func TestMarkdownRenderGFMTable(t *testing.T) {
	e := NewMarkdown(func(widget.Content) error { return nil })
	src := "| a | b |\n|---|---|\n| 1 | 2 |"
	html, err := e.Render(widget.MarkdownContent{Source: src})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Fatalf("GFM table not rendered: %q", html)
	}
}

func TestMarkdownSetSource(t *testing.T) {
	var got widget.Content
	e := NewMarkdown(captureReport(&got))
	if err := e.SetSource("## updated"); err != nil {
		t.Fatalf("SetSource failed: %v", err)
	}
	if got.(widget.MarkdownContent).Source != "## updated" {
		t.Fatalf("reported content = %#v", got)
	}
}

func TestRenderPlaceholder(t *testing.T) {
	s := RenderPlaceholder(widget.Kind("video"))
	if !strings.Contains(s, "video") {
		t.Fatalf("placeholder should name the kind: %q", s)
	}
}
