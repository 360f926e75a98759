/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package widget

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "palette.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoadCatalogValid(t *testing.T) {
	path := writeCatalog(t, `{"entries":[
		{"type":"text","label":"Text"},
		{"type":"button","label":"Button"},
		{"type":"shoutbox","label":"Shoutbox"}
	]}`)
	entries, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Kind != KindText || entries[1].Kind != KindButton {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	// Unknown kinds stay in the palette; they surface as placeholders later.
	if entries[2].Kind != Kind("shoutbox") {
		t.Fatalf("unknown kind should be preserved: %+v", entries[2])
	}
}

func TestLoadCatalogRejectsMissingLabel(t *testing.T) {
	path := writeCatalog(t, `{"entries":[{"type":"text"}]}`)
	if _, err := LoadCatalog(path); err == nil {
		t.Fatalf("expected schema validation error")
	}
}

func TestLoadCatalogRejectsEmptyEntries(t *testing.T) {
	path := writeCatalog(t, `{"entries":[]}`)
	if _, err := LoadCatalog(path); err == nil {
		t.Fatalf("expected schema validation error for empty entries")
	}
}

func TestDefaultPaletteCoversClosedSet(t *testing.T) {
	p := DefaultPalette()
	if len(p) != len(Kinds()) {
		t.Fatalf("default palette should cover all kinds: %d vs %d", len(p), len(Kinds()))
	}
	for i, k := range Kinds() {
		if p[i].Kind != k {
			t.Fatalf("palette order mismatch at %d: %q", i, p[i].Kind)
		}
		if p[i].Label == "" {
			t.Fatalf("empty label for %q", k)
		}
	}
}
