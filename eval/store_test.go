package eval

import (
	"blockrun/types"
	"testing"
)

func TestStoreSetAndGet(t *testing.T) {
	s := NewStore()
	s.Set("x", types.TYPE_INT, types.NewInt(5))

	e, ok := s.Get("x")
	if !ok {
		t.Fatal("x should be declared")
	}
	if e.Name != "x" || e.Type != types.TYPE_INT || !e.Value.Equal(types.NewInt(5)) {
		t.Errorf("unexpected entry %+v", e)
	}

	if _, ok := s.Get("y"); ok {
		t.Error("y should not be declared")
	}
}

func TestStoreOverwriteReplacesEntry(t *testing.T) {
	s := NewStore()
	s.Set("x", types.TYPE_INT, types.NewInt(5))
	s.Set("x", types.TYPE_CHAR, types.NewChar('q'))

	e, _ := s.Get("x")
	if e.Type != types.TYPE_CHAR || !e.Value.Equal(types.NewChar('q')) {
		t.Errorf("overwrite did not replace entry: %+v", e)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStoreNilValueIsAbsent(t *testing.T) {
	s := NewStore()
	s.Set("broken", types.TYPE_INVALID, nil)

	v, ok := s.Lookup("broken")
	if !ok || !types.IsAbsent(v) {
		t.Errorf("Lookup = %v, %v; want absent, true", v, ok)
	}
}

func TestStoreResetAndEntries(t *testing.T) {
	s := NewStore()
	s.Set("b", types.TYPE_INT, types.NewInt(2))
	s.Set("a", types.TYPE_INT, types.NewInt(1))
	s.Set("c", types.TYPE_BOOL, types.NewBool(true))

	entries := s.Entries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i, name := range []string{"a", "b", "c"} {
		if entries[i].Name != name {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].Name, name)
		}
	}

	s.Reset()
	if s.Len() != 0 || s.Has("a") {
		t.Error("Reset should discard every entry")
	}
}
