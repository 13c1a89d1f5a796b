// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xmldom

import (
	"context"
	"sync"
)

// PanicInfo holds details about a panic recovered from a BuildAsync (or
// catalog.ExtractAsync) worker.
//
// The pattern — a write-once holder reachable from the goroutine's context,
// rather than a returned error — is the teacher's
// (pkg/textual/context_with_panic_store.go): its pipeline stages run as
// goroutines with no natural "return error" path home, and BuildAsync's
// worker has the identical shape. Unlike the teacher's PanicInfo, this one
// also records Row/Col: pkg/xmltok's own Position() accessor (spec.md §4.1's
// position tracker) is read at the moment of recovery, so a caller sees
// where in the document the tokenizer had gotten to when the worker
// panicked, something a bare value+stack trace can't say on its own. Only
// panics raised on the worker's own goroutine end up here; pkg/xmltok's
// resource-exhaustion panics happen on the tokenizer's internal goroutine
// and terminate the process instead.
type PanicInfo struct {
	Value    any
	Stack    []byte
	Row, Col int
}

// PanicStore is a write-once holder for the first panic recovered from a
// BuildAsync (or catalog.ExtractAsync) worker, retrievable from the context
// passed to it.
type PanicStore struct {
	once sync.Once
	mu   sync.Mutex
	info PanicInfo
	set  bool
}

// Store records the first panic's value, stack trace, and document
// position. Subsequent calls are ignored; a nil receiver is a no-op.
func (ps *PanicStore) Store(value any, stack []byte, row, col int) {
	if ps == nil {
		return
	}
	ps.once.Do(func() {
		var stackCopy []byte
		if len(stack) > 0 {
			stackCopy = make([]byte, len(stack))
			copy(stackCopy, stack)
		}
		ps.mu.Lock()
		ps.info = PanicInfo{Value: value, Stack: stackCopy, Row: row, Col: col}
		ps.set = true
		ps.mu.Unlock()
	})
}

// Load retrieves the stored panic information, if any.
func (ps *PanicStore) Load() (PanicInfo, bool) {
	if ps == nil {
		return PanicInfo{}, false
	}
	ps.mu.Lock()
	info, ok := ps.info, ps.set
	ps.mu.Unlock()
	if !ok {
		return PanicInfo{}, false
	}
	if len(info.Stack) > 0 {
		stackCopy := make([]byte, len(info.Stack))
		copy(stackCopy, info.Stack)
		info.Stack = stackCopy
	}
	return info, true
}

type panicStoreKey struct{}

// WithPanicStore returns a context carrying a fresh PanicStore, plus the
// store itself so the caller can Load it after the pipeline finishes.
func WithPanicStore(parent context.Context) (context.Context, *PanicStore) {
	if parent == nil {
		parent = context.Background()
	}
	ps := &PanicStore{}
	return context.WithValue(parent, panicStoreKey{}, ps), ps
}

// PanicStoreFromContext retrieves the PanicStore attached by WithPanicStore,
// or nil if ctx is nil or carries none.
func PanicStoreFromContext(ctx context.Context) *PanicStore {
	if ctx == nil {
		return nil
	}
	ps, _ := ctx.Value(panicStoreKey{}).(*PanicStore)
	return ps
}
