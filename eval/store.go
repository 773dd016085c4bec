package eval

import (
	"blockrun/types"
	"sort"
)

// Entry is one declared variable: its declared type tag and current value.
// The tag is advisory; nothing checks that later writes match it.
type Entry struct {
	Name  string
	Type  types.TypeTag
	Value types.Value
}

// Store maps declared names to entries. There is a single flat scope;
// re-declaring a name replaces its entry wholesale.
type Store struct {
	entries map[string]Entry
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{entries: make(map[string]Entry)}
}

// Get returns the entry for name
// Returns (entry, true) if found, (Entry{}, false) if not found
func (s *Store) Get(name string) (Entry, bool) {
	e, ok := s.entries[name]
	return e, ok
}

// Lookup returns only the current value for name.
// A declared name whose value failed to coerce yields the absent value.
func (s *Store) Lookup(name string) (types.Value, bool) {
	e, ok := s.entries[name]
	if !ok {
		return nil, false
	}
	if e.Value == nil {
		return types.Absent, true
	}
	return e.Value, true
}

// Has reports whether name has been declared
func (s *Store) Has(name string) bool {
	_, ok := s.entries[name]
	return ok
}

// Set creates or overwrites the entry for name
func (s *Store) Set(name string, tag types.TypeTag, value types.Value) {
	if value == nil {
		value = types.Absent
	}
	s.entries[name] = Entry{Name: name, Type: tag, Value: value}
}

// Len returns the number of declared variables
func (s *Store) Len() int {
	return len(s.entries)
}

// Reset discards every entry
func (s *Store) Reset() {
	s.entries = make(map[string]Entry)
}

// Entries returns a snapshot of all entries sorted by name
func (s *Store) Entries() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
