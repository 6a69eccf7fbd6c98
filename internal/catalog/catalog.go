// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package catalog holds the snapshot of stored shnippets and the file-backed
// store that produces it. A Catalog is read once per invocation and never
// mutated afterwards; commands that change the store act on the Store directly.
package catalog

// Entry is a single stored shnippet as seen by the command registry.
type Entry struct {
	// Name is both the identifier and the command-line token for the shnippet
	Name string `yaml:"name"`

	// Description is free text shown in help output (may be empty)
	Description string `yaml:"description,omitempty"`
}

// Catalog is an ordered, immutable snapshot of entries.
type Catalog struct {
	entries []Entry
}

// New returns a catalog holding a copy of entries, in the given order.
func New(entries ...Entry) Catalog {
	c := Catalog{entries: make([]Entry, len(entries))}
	copy(c.entries, entries)
	return c
}

// Entries returns a copy of the catalog's entries.
func (c Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c Catalog) Len() int { return len(c.entries) }

// Lookup finds an entry by exact name.
func (c Catalog) Lookup(name string) (Entry, bool) {
	for _, e := range c.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Names returns the entry names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		names = append(names, e.Name)
	}
	return names
}
