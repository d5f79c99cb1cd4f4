package router

import "github.com/BrandonKowalski/coordinator/pkg/coordinator/navigation"

// StackEntry represents a single presented destination.
// RequestID is the id the transition was logged under.
type StackEntry struct {
	Destination navigation.Destination
	RequestID   string
}

// Stack holds the destinations presented so far, oldest first.
// A limit of zero means unbounded; otherwise the oldest entries are
// discarded once the limit is exceeded.
type Stack struct {
	entries []StackEntry
	limit   int
}

// NewStack creates a new empty navigation stack.
func NewStack(limit int) *Stack {
	if limit < 0 {
		limit = 0
	}
	return &Stack{
		entries: make([]StackEntry, 0),
		limit:   limit,
	}
}

// Push adds a new entry to the stack.
func (s *Stack) Push(dest navigation.Destination, requestID string) {
	s.entries = append(s.entries, StackEntry{
		Destination: dest,
		RequestID:   requestID,
	})

	if s.limit > 0 && len(s.entries) > s.limit {
		drop := len(s.entries) - s.limit
		s.entries = append(s.entries[:0], s.entries[drop:]...)
	}
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Stack) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the stack contents, oldest first.
func (s *Stack) Entries() []StackEntry {
	out := make([]StackEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
