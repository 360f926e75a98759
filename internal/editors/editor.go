/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package editors implements the per-kind content editors. Each editor
// renders a widget's content and reports replacements upward through the
// report callback it was constructed with; none of them reach into the
// store directly.
package editors

import (
	"context"
	"errors"
	"fmt"

	"pagebuilder/internal/widget"
)

// ErrFileRejected marks a dropped or selected file whose content does not
// match the widget's expectation. The store stays untouched; the caller
// surfaces a transient warning.
var ErrFileRejected = errors.New("file rejected")

// BlobStore converts raw media bytes into a locally-resolved reference.
// The assets package provides the production implementation.
type BlobStore interface {
	Put(ctx context.Context, name, mime string, data []byte) (string, error)
}

// DefaultRegistry wires the five built-in editors into an immutable
// registry. blobs backs the image and audio file conversions.
func DefaultRegistry(blobs BlobStore) *widget.Registry {
	return widget.NewRegistry(map[widget.Kind]widget.EditorFactory{
		widget.KindText:        func(r widget.ReportFunc) widget.Editor { return NewText(r) },
		widget.KindButton:      func(r widget.ReportFunc) widget.Editor { return NewButton(r) },
		widget.KindImage:       func(r widget.ReportFunc) widget.Editor { return NewImage(r, blobs) },
		widget.KindAudioPlayer: func(r widget.ReportFunc) widget.Editor { return NewAudio(r, blobs) },
		widget.KindMarkdown:    func(r widget.ReportFunc) widget.Editor { return NewMarkdown(r) },
	})
}

// RenderPlaceholder is the visible stand-in for a kind with no editor.
func RenderPlaceholder(kind widget.Kind) string {
	return fmt.Sprintf("[unknown widget type %q]", string(kind))
}

func wrongContent(k widget.Kind, c widget.Content) error {
	return fmt.Errorf("editor for %q got %T content", k, c)
}
