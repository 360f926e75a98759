/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package assets

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestPutAndResolve(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	ref, err := s.Put(ctx, "pixel.png", "image/png", []byte("fake-png-bytes"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if !strings.HasPrefix(ref, RefScheme) {
		t.Fatalf("ref %q missing scheme", ref)
	}

	path, err := s.Resolve(ctx, ref)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	if string(data) != "fake-png-bytes" {
		t.Fatalf("blob content = %q", data)
	}
}

func TestPutIsIdempotentPerContent(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	ref1, err := s.Put(ctx, "a.png", "image/png", []byte("same bytes"))
	if err != nil {
		t.Fatalf("first Put failed: %v", err)
	}
	ref2, err := s.Put(ctx, "b.png", "image/png", []byte("same bytes"))
	if err != nil {
		t.Fatalf("second Put failed: %v", err)
	}
	if ref1 != ref2 {
		t.Fatalf("same content produced different refs: %q vs %q", ref1, ref2)
	}
	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("catalog has %d entries, want 1", len(entries))
	}
}

func TestResolveUnknownRef(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if _, err := s.Resolve(ctx, RefScheme+"deadbeef"); !errors.Is(err, ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
	if _, err := s.Resolve(ctx, "http://example.com/x"); !errors.Is(err, ErrNotExist) {
		t.Fatalf("malformed ref err = %v, want ErrNotExist", err)
	}
}

func TestListOrdering(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	for _, name := range []string{"one", "two", "three"} {
		if _, err := s.Put(ctx, name, "application/octet-stream", []byte(name)); err != nil {
			t.Fatalf("Put %s failed: %v", name, err)
		}
	}
	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
}
