// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Rendering of the option registry in the two protocol grammars. GUIs parse
// this output mechanically, so it must be reproduced to the character: every
// line starts with '\n', the " default " token is emitted even for an empty
// string default, and fractional spin defaults are truncated toward zero,
// never rounded.
package uci

import (
	"fmt"
	"strings"
)

// protocolOption is the designated Combo whose current value selects the
// output grammar. It is never itself rendered: it exists for the engine and
// its launcher, not for the GUI.
const protocolOption = "Protocol"

// String renders the whole registry in declaration order. If the registry
// holds a Combo named "Protocol" whose current value is "xboard" (ignoring
// case), the XBoard feature grammar is used; otherwise the UCI grammar.
func (om *OptionsMap) String() string {
	xboard := false
	if p, ok := om.Lookup(protocolOption); ok && p.kind == Combo {
		xboard = p.EqualFold("xboard")
	}

	var b strings.Builder
	for o := range om.All() {
		if equalFoldASCII(o.name, protocolOption) {
			continue
		}
		if xboard {
			writeXBoard(&b, o)
		} else {
			writeUCI(&b, o)
		}
	}
	return b.String()
}

// writeUCI emits one "\noption name <Name> type <kind> ..." line.
func writeUCI(b *strings.Builder, o *Option) {
	b.WriteString("\noption name ")
	b.WriteString(o.name)
	b.WriteString(" type ")
	b.WriteString(o.kind.String())

	switch o.kind {
	case String, Check, Combo:
		b.WriteString(" default ")
		b.WriteString(o.defaultText)
	}
	if o.kind == Combo {
		// The default is repeated in the var list; GUIs expect the full set.
		for _, v := range o.values {
			b.WriteString(" var ")
			b.WriteString(v)
		}
	}
	if o.kind == Spin {
		fmt.Fprintf(b, " default %d min %d max %d", int(o.defaultNum), o.min, o.max)
	}
}

// writeXBoard emits one "\nfeature option=\"<Name> -<kind> ...\"" line.
func writeXBoard(b *strings.Builder, o *Option) {
	b.WriteString("\nfeature option=\"")
	b.WriteString(o.name)
	b.WriteString(" -")
	b.WriteString(o.kind.String())

	switch o.kind {
	case String, Combo:
		b.WriteString(" ")
		b.WriteString(o.defaultText)
	case Check:
		if o.defaultText == "true" {
			b.WriteString(" 1")
		} else {
			b.WriteString(" 0")
		}
	}
	if o.kind == Combo {
		// Unlike the UCI grammar, the default is not repeated here.
		for _, v := range o.values {
			if v != o.defaultText {
				b.WriteString(" /// ")
				b.WriteString(v)
			}
		}
	}
	if o.kind == Spin {
		fmt.Fprintf(b, " %d %d %d", int(o.defaultNum), o.min, o.max)
	}
	b.WriteString("\"")
}
