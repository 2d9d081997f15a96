// Package correspondence maps the values of closed enumerations to
// their machine-readable names and human-readable labels, in both
// directions.
package correspondence

import (
	"fmt"

	"github.com/andaru/scanogram/scanerr"
)

// Entry is one (value, machine name, label) triple of a Table
type Entry[T comparable] struct {
	Value T
	Name  string
	Label string
}

// Table is a bidirectional value <-> name mapping for the enumeration T.
//
// A Table is never modified after New returns and is safe for
// concurrent use.
type Table[T comparable] struct {
	typeName string
	entries  []Entry[T]
	toEntry  map[T]int
	toValue  map[string]T
}

// New returns a Table for the enumeration named typeName. Entries must
// have unique values and unique names; New panics otherwise.
func New[T comparable](typeName string, entries ...Entry[T]) *Table[T] {
	t := &Table[T]{
		typeName: typeName,
		entries:  append([]Entry[T](nil), entries...),
		toEntry:  make(map[T]int, len(entries)),
		toValue:  make(map[string]T, len(entries)),
	}
	for i, e := range entries {
		if _, ok := t.toEntry[e.Value]; ok {
			panic(fmt.Sprintf("correspondence %s: duplicate value %v", typeName, e.Value))
		}
		if _, ok := t.toValue[e.Name]; ok {
			panic(fmt.Sprintf("correspondence %s: duplicate name %q", typeName, e.Name))
		}
		t.toEntry[e.Value] = i
		t.toValue[e.Name] = e.Value
	}
	return t
}

// TypeName returns the enumeration name the table was built for
func (t *Table[T]) TypeName() string { return t.typeName }

// FromString returns the value whose machine name is exactly str
func (t *Table[T]) FromString(str string) (T, error) {
	if v, ok := t.toValue[str]; ok {
		return v, nil
	}
	var zero T
	return zero, scanerr.InvalidEnum(str, t.typeName)
}

// ToString returns the machine name of v, or "unknown"
func (t *Table[T]) ToString(v T) string {
	if i, ok := t.toEntry[v]; ok {
		return t.entries[i].Name
	}
	return "unknown"
}

// ToUserFriendly returns the label of v
func (t *Table[T]) ToUserFriendly(v T) string {
	if i, ok := t.toEntry[v]; ok {
		return t.entries[i].Label
	}
	return fmt.Sprintf("Unknown value ('%s')", t.typeName)
}

// Values returns every value in declaration order
func (t *Table[T]) Values() []T {
	values := make([]T, len(t.entries))
	for i, e := range t.entries {
		values[i] = e.Value
	}
	return values
}

// Names returns every machine name in declaration order
func (t *Table[T]) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}
