package app

import (
	"fmt"

	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/skirmish/internal/manifest"
	"github.com/vk/skirmish/internal/uci"
)

// buildOption constructs the registry entry for one manifest declaration.
// The manifest has already type-checked the default, so a conversion failure
// here means the two packages disagree about a kind and is worth surfacing.
func buildOption(d manifest.Declaration, fn uci.OnChange) (*uci.Option, error) {
	switch d.Kind {
	case uci.String:
		var def string
		if err := gocty.FromCtyValue(d.Default, &def); err != nil {
			return nil, fmt.Errorf("option %q: %w", d.Name, err)
		}
		return uci.NewString(def, fn), nil

	case uci.Check:
		var def bool
		if err := gocty.FromCtyValue(d.Default, &def); err != nil {
			return nil, fmt.Errorf("option %q: %w", d.Name, err)
		}
		return uci.NewCheck(def, fn), nil

	case uci.Spin:
		var def float64
		if err := gocty.FromCtyValue(d.Default, &def); err != nil {
			return nil, fmt.Errorf("option %q: %w", d.Name, err)
		}
		return uci.NewSpin(def, d.Min, d.Max, fn), nil

	case uci.Combo:
		var def string
		if err := gocty.FromCtyValue(d.Default, &def); err != nil {
			return nil, fmt.Errorf("option %q: %w", d.Name, err)
		}
		return uci.NewCombo(def, d.Values, fn), nil

	case uci.Button:
		return uci.NewButton(fn), nil

	default:
		return nil, fmt.Errorf("option %q: unknown kind %v", d.Name, d.Kind)
	}
}
