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
	"log/slog"
	"sync"
	"time"

	applog "pagebuilder/internal/log"
)

// Converter runs the asynchronous file-to-reference conversions. Tasks are
// keyed by widget id: starting a new task for a widget cancels the previous
// one, and deleting a widget cancels its pending task so a stale result can
// never revive a removed entry. Every task runs under a bounded timeout.
type Converter struct {
	timeout time.Duration
	log     *slog.Logger

	mu    sync.Mutex
	gen   uint64
	tasks map[string]task
	wg    sync.WaitGroup
}

type task struct {
	gen    uint64
	cancel context.CancelFunc
}

// NewConverter creates a converter with the given per-task timeout.
// A non-positive timeout falls back to 10s.
func NewConverter(timeout time.Duration) *Converter {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Converter{
		timeout: timeout,
		log:     applog.WithComponent("editors.convert"),
		tasks:   make(map[string]task),
	}
}

// Start launches accept on its own goroutine under the converter's timeout.
// The interaction loop stays responsive; the store mutation happens inside
// accept (through an editor's report callback) only when the read completes.
// A store that no longer knows the widget makes accept fail with NotFound,
// which is discarded here as the stale-result case.
func (c *Converter) Start(widgetID string, accept func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)

	c.mu.Lock()
	if prev, ok := c.tasks[widgetID]; ok {
		prev.cancel()
	}
	c.gen++
	gen := c.gen
	c.tasks[widgetID] = task{gen: gen, cancel: cancel}
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer cancel()
		err := accept(ctx)

		c.mu.Lock()
		// Only clear the slot if it still belongs to this task.
		if cur, ok := c.tasks[widgetID]; ok && cur.gen == gen {
			delete(c.tasks, widgetID)
		}
		c.mu.Unlock()

		if err != nil {
			c.log.Debug("conversion discarded", slog.String("widget", widgetID), slog.Any("err", err))
		}
	}()
}

// Cancel aborts the pending conversion for a widget, typically on delete.
func (c *Converter) Cancel(widgetID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.tasks[widgetID]; ok {
		t.cancel()
		delete(c.tasks, widgetID)
	}
}

// Close cancels everything and waits for the goroutines to drain.
func (c *Converter) Close() {
	c.mu.Lock()
	for id, t := range c.tasks {
		t.cancel()
		delete(c.tasks, id)
	}
	c.mu.Unlock()
	c.wg.Wait()
}
