// SPDX-License-Identifier: Unlicense OR MIT

// Package signal implements synchronous observer lists and the
// freeze/thaw queue used to batch property notifications.
package signal

import "golang.org/x/exp/slices"

// Handle identifies a connected handler.
type Handle uint64

// Signal is a list of handlers invoked in connection order.
// The zero value is ready to use.
type Signal[T any] struct {
	next     Handle
	handlers []handler[T]
}

type handler[T any] struct {
	h  Handle
	fn func(T)
}

// Connect adds fn to the handler list.
func (s *Signal[T]) Connect(fn func(T)) Handle {
	s.next++
	s.handlers = append(s.handlers, handler[T]{h: s.next, fn: fn})
	return s.next
}

// Disconnect removes the handler identified by h and reports whether
// it was connected.
func (s *Signal[T]) Disconnect(h Handle) bool {
	i := slices.IndexFunc(s.handlers, func(e handler[T]) bool { return e.h == h })
	if i == -1 {
		return false
	}
	s.handlers = slices.Delete(s.handlers, i, i+1)
	return true
}

// Emit calls every handler connected at the time of the call.
func (s *Signal[T]) Emit(v T) {
	if len(s.handlers) == 0 {
		return
	}
	hs := slices.Clone(s.handlers)
	for _, e := range hs {
		e.fn(v)
	}
}

// Len returns the number of connected handlers.
func (s *Signal[T]) Len() int {
	return len(s.handlers)
}

// Notifier emits property names. While frozen, names are queued and
// emitted once each when the outermost Thaw runs.
type Notifier struct {
	Signal[string]

	frozen  int
	pending []string
}

// Notify emits name, or queues it while the notifier is frozen.
func (n *Notifier) Notify(name string) {
	if n.frozen > 0 {
		if !slices.Contains(n.pending, name) {
			n.pending = append(n.pending, name)
		}
		return
	}
	n.Emit(name)
}

// Freeze starts queueing notifications. Calls nest.
func (n *Notifier) Freeze() {
	n.frozen++
}

// Thaw undoes one Freeze and flushes the queue when the last one
// is undone.
func (n *Notifier) Thaw() {
	if n.frozen == 0 {
		return
	}
	n.frozen--
	if n.frozen > 0 {
		return
	}
	pending := n.pending
	n.pending = nil
	for _, name := range pending {
		n.Emit(name)
	}
}
