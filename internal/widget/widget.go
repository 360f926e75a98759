/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package widget

// This file defines the core data model for placed widgets. Content is a
// tagged union over the closed kind set; the shape of a widget's content is
// fully determined by its kind.

import "pagebuilder/internal/geom"

// Kind tags a widget type. The set is closed; anything outside it renders as
// an uneditable placeholder.
type Kind string

const (
	KindText        Kind = "text"
	KindButton      Kind = "button"
	KindImage       Kind = "image"
	KindAudioPlayer Kind = "audioPlayer"
	KindMarkdown    Kind = "markdown"
)

// Kinds lists the closed kind set in palette order.
func Kinds() []Kind {
	return []Kind{KindText, KindButton, KindImage, KindAudioPlayer, KindMarkdown}
}

// Content is the kind-dependent payload of a widget. Implementations are the
// five concrete content structs below; a nil Content marks a placeholder for
// an unresolvable kind.
type Content interface {
	ContentKind() Kind
}

// TextContent is free-form text. Style attributes (font size, bold, italic,
// alignment) are transient editor state and deliberately not part of it.
type TextContent struct {
	Text string
}

// ButtonContent carries the label and the running click count.
type ButtonContent struct {
	Label  string
	Clicks int
}

// ImageContent references a locally-resolved image source.
type ImageContent struct {
	Src string
	Alt string
}

// AudioContent references a locally-resolved audio source or a manual URL.
type AudioContent struct {
	Src string
}

// MarkdownContent is free-form markdown source rendered live.
type MarkdownContent struct {
	Source string
}

func (TextContent) ContentKind() Kind     { return KindText }
func (ButtonContent) ContentKind() Kind   { return KindButton }
func (ImageContent) ContentKind() Kind    { return KindImage }
func (AudioContent) ContentKind() Kind    { return KindAudioPlayer }
func (MarkdownContent) ContentKind() Kind { return KindMarkdown }

// DefaultContent returns the empty content value for a kind, or nil for a
// kind outside the closed set.
func DefaultContent(k Kind) Content {
	switch k {
	case KindText:
		return TextContent{}
	case KindButton:
		return ButtonContent{Label: "Button"}
	case KindImage:
		return ImageContent{}
	case KindAudioPlayer:
		return AudioContent{}
	case KindMarkdown:
		return MarkdownContent{}
	default:
		return nil
	}
}

// Instance is one placed widget. The store owns all instances; every other
// component addresses widgets by ID only.
type Instance struct {
	ID      string
	Kind    Kind
	Content Content
	Pos     geom.Pt
	Size    geom.Size
}

// Bounds returns the widget's bounding box.
func (w Instance) Bounds() geom.Rect {
	return geom.R(w.Pos.X, w.Pos.Y, w.Size.W, w.Size.H)
}
