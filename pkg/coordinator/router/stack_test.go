package router

import (
	"testing"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/navigation"
)

func TestStack(t *testing.T) {
	s := NewStack(0)

	if s.Pop() != nil || s.Peek() != nil || !s.IsEmpty() {
		t.Fatal("new stack should be empty")
	}

	s.Push(navigation.MainModule{}, "a")
	s.Push(navigation.CoordinatorExample{}, "b")

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", s.Len())
	}
	if s.Peek().RequestID != "b" {
		t.Errorf("Peek() = %q, expected b", s.Peek().RequestID)
	}

	entries := s.Entries()
	entries[0].RequestID = "mutated"
	if s.Entries()[0].RequestID != "a" {
		t.Error("Entries() exposed internal storage")
	}

	if e := s.Pop(); e.RequestID != "b" {
		t.Errorf("Pop() = %q, expected b", e.RequestID)
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("Clear() left entries behind")
	}
}

func TestStack_Limit(t *testing.T) {
	s := NewStack(3)
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		s.Push(navigation.MainModule{}, id)
	}

	entries := s.Entries()
	if len(entries) != 3 {
		t.Fatalf("Len() = %d, expected 3", len(entries))
	}
	if entries[0].RequestID != "3" || entries[2].RequestID != "5" {
		t.Errorf("entries = %v, expected the newest three", entries)
	}
}
