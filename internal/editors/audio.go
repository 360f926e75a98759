/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package editors

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	applog "pagebuilder/internal/log"
	"pagebuilder/internal/widget"
)

// Audio edits a source string. It accepts either a dropped audio file
// (converted to a local reference) or a manually entered source URL.
type Audio struct {
	report widget.ReportFunc
	blobs  BlobStore
	log    *slog.Logger
}

func NewAudio(report widget.ReportFunc, blobs BlobStore) *Audio {
	return &Audio{report: report, blobs: blobs, log: applog.WithComponent("editors.audio")}
}

func (e *Audio) Kind() widget.Kind { return widget.KindAudioPlayer }

func (e *Audio) Render(c widget.Content) (string, error) {
	ac, ok := c.(widget.AudioContent)
	if !ok {
		return "", wrongContent(widget.KindAudioPlayer, c)
	}
	if ac.Src == "" {
		return "[no audio source]", nil
	}
	return fmt.Sprintf("[audio %s]", ac.Src), nil
}

// AcceptFile validates a dropped audio file by sniffing its bytes, converts
// it into a local reference and reports the new content.
func (e *Audio) AcceptFile(ctx context.Context, name string, data []byte) (string, error) {
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "audio/") {
		e.log.Warn("non-audio file rejected", slog.String("name", name), slog.String("mime", mt.String()))
		return "", fmt.Errorf("%s is %s: %w", name, mt.String(), ErrFileRejected)
	}
	ref, err := e.blobs.Put(ctx, name, mt.String(), data)
	if err != nil {
		return "", fmt.Errorf("store audio %s: %w", name, err)
	}
	if err := e.report(widget.AudioContent{Src: ref}); err != nil {
		return "", err
	}
	return ref, nil
}

// SetSource reports a manually entered source URL.
func (e *Audio) SetSource(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return fmt.Errorf("empty audio source")
	}
	return e.report(widget.AudioContent{Src: url})
}
