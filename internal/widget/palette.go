/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package widget

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// PaletteEntry is one instantiable widget kind in the palette. The palette
// is read-only and supplied once at canvas initialization.
type PaletteEntry struct {
	Kind  Kind   `json:"type"`
	Label string `json:"label"`
}

// DefaultPalette returns the built-in catalog covering the closed kind set.
func DefaultPalette() []PaletteEntry {
	return []PaletteEntry{
		{Kind: KindText, Label: "Text"},
		{Kind: KindButton, Label: "Button"},
		{Kind: KindImage, Label: "Image"},
		{Kind: KindAudioPlayer, Label: "Audio Player"},
		{Kind: KindMarkdown, Label: "Markdown"},
	}
}

// catalogSchema validates the structure of a palette catalog file. Unknown
// kinds pass validation on purpose: they land as placeholder widgets rather
// than failing the whole catalog.
const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["entries"],
  "additionalProperties": false,
  "properties": {
    "entries": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["type", "label"],
        "additionalProperties": false,
        "properties": {
          "type": {"type": "string", "minLength": 1},
          "label": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

type catalogFile struct {
	Entries []PaletteEntry `json:"entries"`
}

// LoadCatalog reads and validates a palette catalog JSON file.
func LoadCatalog(path string) ([]PaletteEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette catalog: %w", err)
	}
	res, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(catalogSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validate palette catalog: %w", err)
	}
	if !res.Valid() {
		msgs := ""
		for _, e := range res.Errors() {
			if msgs != "" {
				msgs += "; "
			}
			msgs += e.String()
		}
		return nil, fmt.Errorf("palette catalog invalid: %s", msgs)
	}
	var cf catalogFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("decode palette catalog: %w", err)
	}
	return cf.Entries, nil
}
