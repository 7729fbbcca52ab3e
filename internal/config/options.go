package config

import (
	"veil/internal/cond"
	"veil/internal/render"
)

// Opaque is the fixed-point scale factor representing 100% opacity. Opacity
// options are normalized into [0, 1] and multiplied by Opaque before they
// reach the renderer.
const Opaque = float64(0xffffffff)

// Opt is an optional value that remembers whether the configuration set it.
// "Explicitly false" and "never mentioned" are different states.
type Opt[T any] struct {
	value T
	set   bool
}

// Set records an explicit value.
func (o *Opt[T]) Set(v T) {
	o.value = v
	o.set = true
}

// Get returns the value and whether it was explicitly set.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the value was explicitly set.
func (o Opt[T]) IsSet() bool {
	return o.set
}

// Or returns the value when set, fallback otherwise.
func (o Opt[T]) Or(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// WinType enumerates the EWMH window roles with per-type overrides.
type WinType int

const (
	WinTypeUnknown WinType = iota
	WinTypeDesktop
	WinTypeDock
	WinTypeToolbar
	WinTypeMenu
	WinTypeUtility
	WinTypeSplash
	WinTypeDialog
	WinTypeNormal
	WinTypeDropdownMenu
	WinTypePopupMenu
	WinTypeTooltip
	WinTypeNotification
	WinTypeCombo
	WinTypeDND
	NumWinTypes
)

var winTypeNames = [NumWinTypes]string{
	"unknown", "desktop", "dock", "toolbar", "menu", "utility", "splash",
	"dialog", "normal", "dropdown_menu", "popup_menu", "tooltip",
	"notification", "combo", "dnd",
}

func (t WinType) String() string {
	if t < 0 || t >= NumWinTypes {
		return "invalid"
	}
	return winTypeNames[t]
}

// WinTypeOptions are the per-window-type overrides. Every field tracks
// whether the document set it; unset fields fall back to global options.
type WinTypeOptions struct {
	Shadow      Opt[bool]
	Fade        Opt[bool]
	Focus       Opt[bool]
	FullShadow  Opt[bool]
	RedirIgnore Opt[bool]
	// Opacity is kept normalized in [0, 1], not scaled by Opaque; the
	// renderer applies the scale when it merges overrides.
	Opacity Opt[float64]
}

// OpacityRule pairs a percentage with the condition it applies to.
type OpacityRule struct {
	Opacity int // 0..100
	Pattern *cond.Pattern
}

// Options is the compositor configuration record. The loader only writes
// fields whose keys appear in the document, so callers pre-populate it with
// Default() and command-line values.
type Options struct {
	// Fading.
	FadingEnable          bool
	FadeDelta             int
	FadeInStep            float64 // scaled by Opaque
	FadeOutStep           float64 // scaled by Opaque
	NoFadingOpenClose     bool
	NoFadingDestroyedARGB bool
	FadeExclude           []*cond.Pattern

	// Shadows.
	ShadowEnable       bool
	ShadowRadius       int
	ShadowOpacity      float64
	ShadowOffsetX      int
	ShadowOffsetY      int
	ShadowRed          float64
	ShadowGreen        float64
	ShadowBlue         float64
	ShadowExcludeReg   string
	ShadowIgnoreShaped bool
	XineramaShadowCrop bool
	ShadowExclude      []*cond.Pattern

	// Opacity.
	InactiveOpacity         float64 // scaled by Opaque
	ActiveOpacity           float64 // scaled by Opaque
	FrameOpacity            float64
	InactiveOpacityOverride bool
	InactiveDim             float64
	InactiveDimFixed        bool
	OpacityRules            []OpacityRule

	// Focus and window detection.
	MarkWmwinFocused     bool
	MarkOvredirFocused   bool
	DetectRoundedCorners bool
	DetectClientOpacity  bool
	UseEwmhActiveWin     bool
	DetectTransient      bool
	DetectClientLeader   bool
	FocusExclude         []*cond.Pattern
	InvertColorInclude   []*cond.Pattern

	// General behavior.
	RefreshRate              int
	SwOpti                   bool
	VSync                    render.VSyncMode
	Backend                  render.Backend
	UnredirIfPossible        bool
	UnredirIfPossibleDelay   int
	UnredirIfPossibleExclude []*cond.Pattern
	ResizeDamage             int

	// Blur.
	BlurBackground        bool
	BlurBackgroundFrame   bool
	BlurBackgroundFixed   bool
	BlurKernels           []render.Kernel
	BlurBackgroundExclude []*cond.Pattern

	// GLX backend tuning.
	GLXNoStencil      bool
	GLXNoRebindPixmap bool
	GLXSwapMethod     render.GLXSwapMethod
	GLXUseGpushader4  bool

	// XRender backend tuning.
	XRenderSync      bool
	XRenderSyncFence bool

	// Per-window-type overrides, indexed by WinType.
	WinTypeOptions [NumWinTypes]WinTypeOptions
}

// Result reports what a load actually did.
type Result struct {
	// Path is the resolved configuration file path, empty when no file was
	// found and built-in defaults remain in effect.
	Path string
	// Loaded reports whether a document was parsed and applied.
	Loaded bool
	// KernelsHaveNegative is set when any blur kernel carries a negative
	// weight; the renderer disables the separable fast path in that case.
	KernelsHaveNegative bool
}
