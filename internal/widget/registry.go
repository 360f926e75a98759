/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package widget

import (
	"errors"
	"fmt"
)

// ErrUnknownKind marks a widget kind with no registered editor. It is a
// first-class outcome, not a failure: callers surface a placeholder instead
// of dropping the widget.
var ErrUnknownKind = errors.New("unknown widget kind")

// ReportFunc propagates edited content upward. Editors never mutate the
// store directly; every change flows through the report callback.
type ReportFunc func(Content) error

// Editor is the per-kind editing capability: render the current content and
// report replacements upward. Concrete editors expose richer kind-specific
// methods; this contract is all the registry and renderer rely on.
type Editor interface {
	Kind() Kind
	Render(c Content) (string, error)
}

// EditorFactory builds an editor bound to a report callback.
type EditorFactory func(report ReportFunc) Editor

// Registry maps the closed kind set to editor factories. It is immutable
// once constructed; there is no dynamic registration.
type Registry struct {
	factories map[Kind]EditorFactory
}

// NewRegistry copies the factory table into an immutable registry.
func NewRegistry(factories map[Kind]EditorFactory) *Registry {
	m := make(map[Kind]EditorFactory, len(factories))
	for k, f := range factories {
		m[k] = f
	}
	return &Registry{factories: m}
}

// Resolve returns the editor factory for a kind, or ErrUnknownKind.
func (r *Registry) Resolve(k Kind) (EditorFactory, error) {
	f, ok := r.factories[k]
	if !ok {
		return nil, fmt.Errorf("resolve %q: %w", k, ErrUnknownKind)
	}
	return f, nil
}

// Known reports whether a kind has a registered editor.
func (r *Registry) Known(k Kind) bool {
	_, ok := r.factories[k]
	return ok
}
