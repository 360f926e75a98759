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
	"context"
	"fmt"
	"image"
	"log/slog"
	"strings"

	// Standard decoders plus the extended set so DecodeConfig can verify
	// the usual web formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gabriel-vasile/mimetype"

	applog "pagebuilder/internal/log"
	"pagebuilder/internal/widget"
)

// Image edits {src, alt} content. Dropped files are sniffed and decoded
// before anything is reported: a non-image never reaches the store.
type Image struct {
	report widget.ReportFunc
	blobs  BlobStore
	log    *slog.Logger
}

func NewImage(report widget.ReportFunc, blobs BlobStore) *Image {
	return &Image{report: report, blobs: blobs, log: applog.WithComponent("editors.image")}
}

func (e *Image) Kind() widget.Kind { return widget.KindImage }

func (e *Image) Render(c widget.Content) (string, error) {
	ic, ok := c.(widget.ImageContent)
	if !ok {
		return "", wrongContent(widget.KindImage, c)
	}
	if ic.Src == "" {
		return "[no image]", nil
	}
	return fmt.Sprintf("[image %s alt=%q]", ic.Src, ic.Alt), nil
}

// AcceptFile validates a dropped or selected file, converts it into a
// locally-resolved reference and reports the new content. The declared MIME
// type is ignored; the bytes decide. On rejection the store stays untouched
// and ErrFileRejected is returned for the warning surface.
func (e *Image) AcceptFile(ctx context.Context, name string, data []byte) (string, error) {
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		e.log.Warn("non-image file rejected", slog.String("name", name), slog.String("mime", mt.String()))
		return "", fmt.Errorf("%s is %s: %w", name, mt.String(), ErrFileRejected)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		e.log.Warn("undecodable image rejected", slog.String("name", name), slog.Any("err", err))
		return "", fmt.Errorf("%s does not decode: %w", name, ErrFileRejected)
	}
	ref, err := e.blobs.Put(ctx, name, mt.String(), data)
	if err != nil {
		return "", fmt.Errorf("store image %s: %w", name, err)
	}
	if err := e.report(widget.ImageContent{Src: ref, Alt: name}); err != nil {
		return "", err
	}
	return ref, nil
}

// SetAlt replaces the alt text, keeping the source.
func (e *Image) SetAlt(current widget.Content, alt string) error {
	ic, ok := current.(widget.ImageContent)
	if !ok {
		return wrongContent(widget.KindImage, current)
	}
	ic.Alt = alt
	return e.report(ic)
}
