package config_test

import (
	"testing"

	"veil/internal/config"
)

func TestWinTypeOverridesOnlyTouchPresentFields(t *testing.T) {
	opt, _, err := loadString(t, `
[wintypes.tooltip]
fade = true
shadow = false
opacity = 0.75

[wintypes.dock]
full-shadow = true
redir-ignore = true
`)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	tooltip := opt.WinTypeOptions[config.WinTypeTooltip]
	if v, set := tooltip.Fade.Get(); !set || !v {
		t.Fatalf("tooltip fade: got %v, set %v", v, set)
	}
	if v, set := tooltip.Shadow.Get(); !set || v {
		t.Fatalf("tooltip shadow: got %v, set %v", v, set)
	}
	if v, set := tooltip.Opacity.Get(); !set || v != 0.75 {
		t.Fatalf("tooltip opacity: got %v, set %v", v, set)
	}
	if tooltip.Focus.IsSet() || tooltip.FullShadow.IsSet() || tooltip.RedirIgnore.IsSet() {
		t.Fatal("absent tooltip fields must stay unset")
	}

	dock := opt.WinTypeOptions[config.WinTypeDock]
	if v, set := dock.FullShadow.Get(); !set || !v {
		t.Fatalf("dock full-shadow: got %v, set %v", v, set)
	}
	if v, set := dock.RedirIgnore.Get(); !set || !v {
		t.Fatalf("dock redir-ignore: got %v, set %v", v, set)
	}
	if dock.Shadow.IsSet() || dock.Opacity.IsSet() {
		t.Fatal("absent dock fields must stay unset")
	}
}

func TestWinTypeOpacityLeavesOtherCategoriesUnset(t *testing.T) {
	opt, _, err := loadString(t, `
[wintypes.normal]
opacity = 0.5
`)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	v, set := opt.WinTypeOptions[config.WinTypeNormal].Opacity.Get()
	if !set || v != 0.5 {
		t.Fatalf("normal opacity: got %v, set %v; want 0.5, true", v, set)
	}
	for wt := config.WinType(0); wt < config.NumWinTypes; wt++ {
		if wt == config.WinTypeNormal {
			continue
		}
		o := opt.WinTypeOptions[wt]
		if o.Shadow.IsSet() || o.Fade.IsSet() || o.Focus.IsSet() ||
			o.FullShadow.IsSet() || o.RedirIgnore.IsSet() || o.Opacity.IsSet() {
			t.Fatalf("category %s must be fully unset", wt)
		}
	}
}

func TestWinTypeOpacityIsClampedButNotScaled(t *testing.T) {
	opt, _, err := loadString(t, `
inactive-opacity = 1.5

[wintypes.menu]
opacity = 1.5
`)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	// Top-level opacity options scale by the opaque constant...
	if opt.InactiveOpacity != config.Opaque {
		t.Fatalf("inactive-opacity: got %v, want %v", opt.InactiveOpacity, config.Opaque)
	}
	// ...wintype overrides are only clamped into [0, 1].
	if v, set := opt.WinTypeOptions[config.WinTypeMenu].Opacity.Get(); !set || v != 1.0 {
		t.Fatalf("menu opacity: got %v, set %v; want 1.0, true", v, set)
	}
}

func TestWinTypeOpacityAcceptsIntegerLiteral(t *testing.T) {
	opt, _, err := loadString(t, `
[wintypes.splash]
opacity = 1
`)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if v, set := opt.WinTypeOptions[config.WinTypeSplash].Opacity.Get(); !set || v != 1.0 {
		t.Fatalf("splash opacity: got %v, set %v", v, set)
	}
}
