// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Option, a single named engine setting.
//
// Why do values live as free-form text?
//
// Option values arrive from a remote GUI as raw tokens on a text protocol, and
// the GUI is not obliged to re-validate what the user typed. The engine
// therefore validates on assignment and, when a value is out of protocol,
// silently keeps the previous one: a misbehaving controller must not be able
// to crash or wedge the engine. The flip side is that a rejected assignment is
// indistinguishable from a no-op; callers who care compare the value before
// and after.
package uci

import (
	"fmt"
	"slices"
	"strconv"
)

// Kind classifies an option's value.
type Kind int

const (
	// String holds arbitrary text, including the empty string.
	String Kind = iota
	// Check holds the literal text "true" or "false".
	Check
	// Spin holds a number constrained to an inclusive [min, max] range.
	Spin
	// Combo holds one string out of a fixed allowed set.
	Combo
	// Button holds no value; assigning to it only triggers its change hook.
	Button
)

// String returns the protocol tag for the kind.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Check:
		return "check"
	case Spin:
		return "spin"
	case Combo:
		return "combo"
	case Button:
		return "button"
	default:
		return "unknown"
	}
}

// OnChange is invoked synchronously after a successful assignment, with the
// option's post-mutation state. The hook receives a copy and must treat it as
// read-only. Hooks that do expensive work (resizing a hash table, restarting
// worker threads) block the assigning caller; that cost belongs to the hook's
// owner, not the registry.
type OnChange func(Option)

// Option is one named, typed engine setting. Options are created by the
// per-kind constructors and come to life when declared into an OptionsMap,
// which owns them exclusively.
type Option struct {
	name string
	kind Kind
	idx  int

	// String, Check and Combo values stay textual. Check stores the literal
	// "true"/"false" so serialization round-trips without reformatting.
	defaultText string
	currentText string

	// Spin values are numeric. Defaults may be fractional; serialization
	// truncates toward zero, never rounds.
	defaultNum float64
	currentNum float64
	min, max   int

	// values is the Combo allowed set, in declaration order.
	values []string

	onChange OnChange
}

// NewString returns a String option. An empty default is valid.
func NewString(def string, fn OnChange) *Option {
	return &Option{kind: String, defaultText: def, currentText: def, onChange: fn}
}

// NewCheck returns a Check option.
func NewCheck(def bool, fn OnChange) *Option {
	text := "false"
	if def {
		text = "true"
	}
	return &Option{kind: Check, defaultText: text, currentText: text, onChange: fn}
}

// NewSpin returns a Spin option. It panics if the default falls outside
// [min, max]; a bad default is a defect in the declaring code, not input.
func NewSpin(def float64, min, max int, fn OnChange) *Option {
	if def < float64(min) || def > float64(max) {
		panic(fmt.Sprintf("uci: spin default %v outside [%d, %d]", def, min, max))
	}
	return &Option{kind: Spin, defaultNum: def, currentNum: def, min: min, max: max, onChange: fn}
}

// NewCombo returns a Combo option. It panics if the default is not a member
// of the allowed set (exact comparison).
func NewCombo(def string, values []string, fn OnChange) *Option {
	if !slices.Contains(values, def) {
		panic(fmt.Sprintf("uci: combo default %q not in allowed set %q", def, values))
	}
	return &Option{kind: Combo, defaultText: def, currentText: def, values: slices.Clone(values), onChange: fn}
}

// NewButton returns a Button option.
func NewButton(fn OnChange) *Option {
	return &Option{kind: Button, onChange: fn}
}

// Name returns the name the option was declared under. Empty until declared.
func (o *Option) Name() string { return o.name }

// Kind returns the option's kind.
func (o *Option) Kind() Kind { return o.kind }

// Index returns the registration index assigned at declaration time.
func (o *Option) Index() int { return o.idx }

// Bool returns the current value of a Check option.
// It panics on any other kind: asking a Spin or String for a boolean means
// the caller mismatched kinds, which is a defect, not a runtime condition.
func (o *Option) Bool() bool {
	o.mustBe(Check)
	return o.currentText == "true"
}

// Float returns the current value of a Spin option. Panics on other kinds.
func (o *Option) Float() float64 {
	o.mustBe(Spin)
	return o.currentNum
}

// Int returns the current value of a Spin option truncated toward zero.
// Panics on other kinds.
func (o *Option) Int() int {
	o.mustBe(Spin)
	return int(o.currentNum)
}

// Text returns the current value of a String or Combo option.
// Panics on other kinds.
func (o *Option) Text() string {
	if o.kind != String && o.kind != Combo {
		panic(fmt.Sprintf("uci: Text() called on %s option %q", o.kind, o.name))
	}
	return o.currentText
}

// EqualFold reports whether a Combo option's current value equals lit,
// ignoring ASCII case. Panics on other kinds.
//
// Note the asymmetry with Assign: reading compares case-insensitively, while
// assignment requires an exact member of the allowed set.
func (o *Option) EqualFold(lit string) bool {
	o.mustBe(Combo)
	return equalFoldASCII(o.currentText, lit)
}

func (o *Option) mustBe(k Kind) {
	if o.kind != k {
		panic(fmt.Sprintf("uci: %s accessor called on %s option %q", k, o.kind, o.name))
	}
}

// Assign validates v against the option's kind and, on success, overwrites
// the current value and fires the change hook with the post-mutation state.
// Invalid input is rejected silently: the value stays unchanged and the hook
// does not fire. There is no error return.
//
// Validation per kind:
//   - every kind except Button rejects the empty string
//   - Check accepts exactly "true" or "false"
//   - Combo accepts exact (case-sensitive) members of the allowed set
//   - Spin accepts numbers inside [min, max]; unparseable text is treated
//     like out-of-range input and rejected silently
func (o *Option) Assign(v string) {
	if o.kind != Button && v == "" {
		return
	}
	switch o.kind {
	case Check:
		if v != "true" && v != "false" {
			return
		}
		o.currentText = v
	case Combo:
		if !slices.Contains(o.values, v) {
			return
		}
		o.currentText = v
	case Spin:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n < float64(o.min) || n > float64(o.max) {
			return
		}
		o.currentNum = n
	case String:
		o.currentText = v
	}
	if o.onChange != nil {
		o.onChange(*o)
	}
}
