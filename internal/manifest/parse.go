// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package manifest

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/skirmish/internal/uci"
)

// rootSchema matches the top level of a manifest file: one or more 'option'
// blocks.
type rootSchema struct {
	Options []*hclOption `hcl:"option,block"`
}

// hclOption is one 'option' block, decoded in two passes: the label here,
// the body against optionBodySchema below.
type hclOption struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// optionBodySchema is the HCL schema for the body of an 'option' block.
var optionBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		// 'type' is required; its absence is diagnosed manually for a
		// clearer message.
		{Name: "type"},
		{Name: "default"},
		{Name: "min"},
		{Name: "max"},
		{Name: "values"},
		{Name: "on_change"},
	},
}

var kindsByTag = map[string]uci.Kind{
	"string": uci.String,
	"check":  uci.Check,
	"spin":   uci.Spin,
	"combo":  uci.Combo,
	"button": uci.Button,
}

// ParseFile decodes all option blocks of one parsed HCL file, in file order.
// seen tracks case-folded names across files so duplicates are caught no
// matter how the manifest is split.
func ParseFile(file *hcl.File, seen map[string]string) ([]Declaration, hcl.Diagnostics) {
	var allDiags hcl.Diagnostics
	if file == nil {
		return nil, hcl.Diagnostics{&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "HCL file is nil",
		}}
	}

	root := &rootSchema{}
	diags := gohcl.DecodeBody(file.Body, nil, root)
	allDiags = append(allDiags, diags...)
	if diags.HasErrors() {
		return nil, allDiags
	}

	decls := make([]Declaration, 0, len(root.Options))
	for _, block := range root.Options {
		decl, blockDiags := parseOption(block, seen)
		allDiags = append(allDiags, blockDiags...)
		if blockDiags.HasErrors() {
			continue // skip this option but keep diagnosing the others
		}
		decls = append(decls, decl)
	}
	return decls, allDiags
}

func parseOption(block *hclOption, seen map[string]string) (Declaration, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	decl := Declaration{Name: block.Name, Default: cty.NilVal}

	content, contentDiags := block.Body.Content(optionBodySchema)
	diags = append(diags, contentDiags...)
	if contentDiags.HasErrors() {
		return decl, diags
	}

	if block.Name == "" {
		missing := block.Body.MissingItemRange()
		return decl, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Empty option name",
			Detail:   "Option blocks must carry a non-empty name label.",
			Subject:  &missing,
		})
	}
	// Option names are case-insensitive on the wire, so the manifest must be
	// unique under folding too.
	folded := strings.ToLower(block.Name)
	if prev, dup := seen[folded]; dup {
		missing := block.Body.MissingItemRange()
		return decl, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Duplicate option definition",
			Detail:   fmt.Sprintf("Option '%s' collides with '%s'; names are case-insensitive.", block.Name, prev),
			Subject:  &missing,
		})
	}

	typeAttr, ok := content.Attributes["type"]
	if !ok {
		missing := block.Body.MissingItemRange()
		return decl, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing 'type' attribute",
			Detail:   "Every option block must declare its type.",
			Subject:  &missing,
		})
	}
	var tag string
	diags = append(diags, gohcl.DecodeExpression(typeAttr.Expr, nil, &tag)...)
	kind, known := kindsByTag[tag]
	if !known {
		return decl, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unknown option type",
			Detail:   fmt.Sprintf("'%s' is not an option type; expected string, check, spin, combo or button.", tag),
			Subject:  typeAttr.Expr.Range().Ptr(),
		})
	}
	decl.Kind = kind

	if attr, exists := content.Attributes["on_change"]; exists {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &decl.OnChange)...)
	}

	kindDiags := parseKindAttributes(&decl, content)
	diags = append(diags, kindDiags...)
	if diags.HasErrors() {
		return decl, diags
	}

	seen[folded] = block.Name
	return decl, diags
}

// parseKindAttributes decodes and validates the attributes whose meaning
// depends on the option kind.
func parseKindAttributes(decl *Declaration, content *hcl.BodyContent) hcl.Diagnostics {
	var diags hcl.Diagnostics

	defaultAttr, hasDefault := content.Attributes["default"]
	_, hasMin := content.Attributes["min"]
	_, hasMax := content.Attributes["max"]
	valuesAttr, hasValues := content.Attributes["values"]

	requireDefault := func() bool {
		if hasDefault {
			return true
		}
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing 'default' attribute",
			Detail:   fmt.Sprintf("Option '%s' of type %s requires a default value.", decl.Name, decl.Kind),
		})
		return false
	}

	// Defaults must be literal values, so no evaluation context is needed.
	decodeDefault := func(want cty.Type) bool {
		raw, valDiags := defaultAttr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			return false
		}
		conv, err := convert.Convert(raw, want)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid default value type",
				Detail:   fmt.Sprintf("The default for '%s' is not compatible with %s: %s.", decl.Name, want.FriendlyName(), err),
				Subject:  defaultAttr.Expr.Range().Ptr(),
			})
			return false
		}
		decl.Default = conv
		return true
	}

	switch decl.Kind {
	case uci.String:
		// A string default is optional; absent means the empty string.
		if hasDefault {
			if !decodeDefault(cty.String) {
				return diags
			}
		} else {
			decl.Default = cty.StringVal("")
		}

	case uci.Check:
		if !requireDefault() || !decodeDefault(cty.Bool) {
			return diags
		}

	case uci.Spin:
		if !hasMin || !hasMax {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Missing spin bounds",
				Detail:   fmt.Sprintf("Spin option '%s' requires both 'min' and 'max'.", decl.Name),
			})
			return diags
		}
		diags = append(diags, gohcl.DecodeExpression(content.Attributes["min"].Expr, nil, &decl.Min)...)
		diags = append(diags, gohcl.DecodeExpression(content.Attributes["max"].Expr, nil, &decl.Max)...)
		if !requireDefault() || !decodeDefault(cty.Number) || diags.HasErrors() {
			return diags
		}
		var def float64
		if err := gocty.FromCtyValue(decl.Default, &def); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid spin default",
				Detail:   fmt.Sprintf("Cannot read the default for '%s' as a number: %s.", decl.Name, err),
				Subject:  defaultAttr.Expr.Range().Ptr(),
			})
			return diags
		}
		if decl.Min > decl.Max || def < float64(decl.Min) || def > float64(decl.Max) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Spin default out of range",
				Detail:   fmt.Sprintf("Option '%s' declares default %v outside [%d, %d].", decl.Name, def, decl.Min, decl.Max),
				Subject:  defaultAttr.Expr.Range().Ptr(),
			})
			return diags
		}

	case uci.Combo:
		if !hasValues {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Missing 'values' attribute",
				Detail:   fmt.Sprintf("Combo option '%s' requires its allowed value list.", decl.Name),
			})
			return diags
		}
		diags = append(diags, gohcl.DecodeExpression(valuesAttr.Expr, nil, &decl.Values)...)
		if !requireDefault() || !decodeDefault(cty.String) || diags.HasErrors() {
			return diags
		}
		var def string
		if err := gocty.FromCtyValue(decl.Default, &def); err != nil {
			return append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid combo default",
				Detail:   fmt.Sprintf("Cannot read the default for '%s' as a string: %s.", decl.Name, err),
				Subject:  defaultAttr.Expr.Range().Ptr(),
			})
		}
		// Membership is exact: a default differing only in case is wrong.
		if !slices.Contains(decl.Values, def) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Combo default not in allowed set",
				Detail:   fmt.Sprintf("Option '%s' declares default '%s', which is not one of %q.", decl.Name, def, decl.Values),
				Subject:  defaultAttr.Expr.Range().Ptr(),
			})
		}

	case uci.Button:
		if hasDefault || hasMin || hasMax || hasValues {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Button options hold no value",
				Detail:   fmt.Sprintf("Option '%s' is a button and cannot declare default, min, max or values.", decl.Name),
			})
		}
	}

	return diags
}
