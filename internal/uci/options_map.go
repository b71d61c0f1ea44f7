// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package uci

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// OptionsMap is the engine's option registry. Entries are declared once at
// startup, updated in place many times during the session, and never removed.
//
// Lookup is case-insensitive; rendering order is declaration order. The two
// are kept independent: the lookup map carries no ordering, and every entry
// remembers the registration index it was assigned when declared.
//
// OptionsMap is not safe for concurrent use. The engine drives it from a
// single command-processing loop; any adaptation to concurrent callers needs
// one mutual-exclusion boundary around the whole registry, because String()
// must observe a consistent snapshot across all entries.
type OptionsMap struct {
	byName  map[string]*Option // keyed by ASCII-folded name
	ordered []*Option          // declaration order; backs All and String
	nextIdx int
}

// NewOptionsMap returns an empty registry. Each registry owns its own
// registration counter, so independent instances never share indices.
func NewOptionsMap() *OptionsMap {
	return &OptionsMap{byName: make(map[string]*Option)}
}

// Declare registers o under name, assigns it the next registration index and
// returns it. It panics if name is empty or collides case-insensitively with
// an already-declared name: declarations are hard-coded engine startup code,
// so a collision is a defect.
func (om *OptionsMap) Declare(name string, o *Option) *Option {
	if name == "" {
		panic("uci: option declared with empty name")
	}
	key := foldASCII(name)
	if prev, exists := om.byName[key]; exists {
		panic(fmt.Sprintf("uci: option %q already declared as %q (names are case-insensitive)", name, prev.name))
	}
	o.name = name
	o.idx = om.nextIdx
	om.nextIdx++
	om.byName[key] = o
	om.ordered = append(om.ordered, o)
	slog.Debug("Declared engine option.", "name", name, "kind", o.kind.String(), "index", o.idx)
	return o
}

// Lookup returns the option whose name equals name ignoring ASCII case.
func (om *OptionsMap) Lookup(name string) (*Option, bool) {
	o, ok := om.byName[foldASCII(name)]
	return o, ok
}

// Assign resolves name case-insensitively and submits value to that option.
// It reports whether the name was found; whether the value was accepted is
// deliberately not reported (see Option.Assign).
func (om *OptionsMap) Assign(name, value string) bool {
	o, ok := om.Lookup(name)
	if !ok {
		return false
	}
	o.Assign(value)
	return true
}

// Len returns the number of declared options.
func (om *OptionsMap) Len() int { return len(om.ordered) }

// All returns an iterator over every option in registration order. The
// sequence is restartable: ranging over it twice yields the same order.
func (om *OptionsMap) All() iter.Seq[*Option] {
	return func(yield func(*Option) bool) {
		for _, o := range om.ordered {
			if !yield(o) {
				return
			}
		}
	}
}

// Names returns every declared name sorted case-insensitively. This is a
// diagnostic view; protocol output uses registration order, not this one.
func (om *OptionsMap) Names() []string {
	names := make([]string, 0, len(om.ordered))
	for _, o := range om.ordered {
		names = append(names, o.name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if lessFoldASCII(a, b) {
			return -1
		}
		if lessFoldASCII(b, a) {
			return 1
		}
		return 0
	})
	return names
}
