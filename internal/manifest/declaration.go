// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package manifest

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/skirmish/internal/uci"
)

// Declaration is the fully parsed, type-checked definition of one option
// block. It is format-agnostic: the app package turns Declarations into
// registry entries without touching HCL again.
type Declaration struct {
	// Name is the option name, taken from the block label. Names are unique
	// case-insensitively across all loaded manifests.
	Name string

	// Kind is the option's value class.
	Kind uci.Kind

	// Default holds the typed default value: cty.String for string and combo
	// options, cty.Bool for check, cty.Number for spin, cty.NilVal for button.
	Default cty.Value

	// Min and Max bound a spin option, inclusive. Zero for other kinds.
	Min, Max int

	// Values is a combo option's allowed set, in manifest order.
	Values []string

	// OnChange names the Go hook to fire after a successful assignment, or
	// "" for none.
	OnChange string
}
