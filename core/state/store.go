// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package state

import (
	"context"
	"sync"

	"github.com/toeirei/fxconsole/client"
)

// Store runs the reducer without a UI. Effects execute inline, in order, and
// their results are dispatched before Dispatch returns. Used by the
// non-interactive commands.
type Store struct {
	mu     sync.Mutex
	state  State
	client client.Client
}

func NewStore(c client.Client, opts Options) *Store {
	return &Store{state: New(opts), client: c}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces msg, then runs every requested effect outside the lock
// and dispatches its result in turn.
func (s *Store) Dispatch(ctx context.Context, msg Msg) State {
	s.mu.Lock()
	next, effects := Reduce(s.state, msg)
	s.state = next
	s.mu.Unlock()

	for _, effect := range effects {
		s.Dispatch(ctx, effect.Run(ctx, s.client))
	}
	return s.State()
}
