// Package uci implements the engine's runtime option registry: a fixed set of
// named, typed, bounded settings declared at startup, updated with validated
// text values during a session, and rendered on demand in either the UCI or
// the XBoard option grammar.
//
// Option names are case-insensitive identifiers (ASCII folding only, as the
// protocol requires). Rendering always follows declaration order, regardless
// of the lookup structure, because GUIs present the list in the order the
// engine declared it.
package uci
