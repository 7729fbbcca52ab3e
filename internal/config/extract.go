package config

import (
	"veil/internal/cond"
	"veil/internal/logging"
	"veil/internal/render"
)

// A step applies one key (or one key family) from the document to the
// options record. Returning an error aborts the whole load immediately;
// later steps never run.
type step func(l *Loader, doc *document, opt *Options, res *Result) error

// loadSteps is the full extraction pipeline. Presence checking lives in the
// helper constructors, so adding an option is a table change, not new
// control flow. Rule parsing (opacity-rule, blur-kern) runs before the
// fatal enum keys so a malformed rule aborts the load before any
// behavior-critical selection is applied.
var loadSteps = []step{
	intOption("fade-delta", func(o *Options) *int { return &o.FadeDelta }),
	opacityOption("fade-in-step", func(o *Options) *float64 { return &o.FadeInStep }),
	opacityOption("fade-out-step", func(o *Options) *float64 { return &o.FadeOutStep }),
	intOption("shadow-radius", func(o *Options) *int { return &o.ShadowRadius }),
	floatOption("shadow-opacity", func(o *Options) *float64 { return &o.ShadowOpacity }),
	intOption("shadow-offset-x", func(o *Options) *int { return &o.ShadowOffsetX }),
	intOption("shadow-offset-y", func(o *Options) *int { return &o.ShadowOffsetY }),
	opacityOption("inactive-opacity", func(o *Options) *float64 { return &o.InactiveOpacity }),
	opacityOption("active-opacity", func(o *Options) *float64 { return &o.ActiveOpacity }),
	floatOption("frame-opacity", func(o *Options) *float64 { return &o.FrameOpacity }),
	boolOption("shadow", func(o *Options) *bool { return &o.ShadowEnable }),
	noDockShadowShim,
	noDnDShadowShim,
	menuOpacityShim,
	boolOption("fading", func(o *Options) *bool { return &o.FadingEnable }),
	boolOption("no-fading-openclose", func(o *Options) *bool { return &o.NoFadingOpenClose }),
	boolOption("no-fading-destroyed-argb", func(o *Options) *bool { return &o.NoFadingDestroyedARGB }),
	floatOption("shadow-red", func(o *Options) *float64 { return &o.ShadowRed }),
	floatOption("shadow-green", func(o *Options) *float64 { return &o.ShadowGreen }),
	floatOption("shadow-blue", func(o *Options) *float64 { return &o.ShadowBlue }),
	stringOption("shadow-exclude-reg", func(o *Options) *string { return &o.ShadowExcludeReg }),
	boolOption("inactive-opacity-override", func(o *Options) *bool { return &o.InactiveOpacityOverride }),
	floatOption("inactive-dim", func(o *Options) *float64 { return &o.InactiveDim }),
	boolOption("mark-wmwin-focused", func(o *Options) *bool { return &o.MarkWmwinFocused }),
	boolOption("mark-ovredir-focused", func(o *Options) *bool { return &o.MarkOvredirFocused }),
	boolOption("shadow-ignore-shaped", func(o *Options) *bool { return &o.ShadowIgnoreShaped }),
	boolOption("detect-rounded-corners", func(o *Options) *bool { return &o.DetectRoundedCorners }),
	boolOption("xinerama-shadow-crop", func(o *Options) *bool { return &o.XineramaShadowCrop }),
	boolOption("detect-client-opacity", func(o *Options) *bool { return &o.DetectClientOpacity }),
	intOption("refresh-rate", func(o *Options) *int { return &o.RefreshRate }),
	boolOption("sw-opti", func(o *Options) *bool { return &o.SwOpti }),
	boolOption("use-ewmh-active-win", func(o *Options) *bool { return &o.UseEwmhActiveWin }),
	boolOption("unredir-if-possible", func(o *Options) *bool { return &o.UnredirIfPossible }),
	intOption("unredir-if-possible-delay", func(o *Options) *int { return &o.UnredirIfPossibleDelay }),
	boolOption("inactive-dim-fixed", func(o *Options) *bool { return &o.InactiveDimFixed }),
	boolOption("detect-transient", func(o *Options) *bool { return &o.DetectTransient }),
	boolOption("detect-client-leader", func(o *Options) *bool { return &o.DetectClientLeader }),
	condListOption("shadow-exclude", func(o *Options) *[]*cond.Pattern { return &o.ShadowExclude }),
	condListOption("fade-exclude", func(o *Options) *[]*cond.Pattern { return &o.FadeExclude }),
	condListOption("focus-exclude", func(o *Options) *[]*cond.Pattern { return &o.FocusExclude }),
	condListOption("invert-color-include", func(o *Options) *[]*cond.Pattern { return &o.InvertColorInclude }),
	condListOption("blur-background-exclude", func(o *Options) *[]*cond.Pattern { return &o.BlurBackgroundExclude }),
	opacityRuleStep,
	condListOption("unredir-if-possible-exclude", func(o *Options) *[]*cond.Pattern { return &o.UnredirIfPossibleExclude }),
	boolOption("blur-background", func(o *Options) *bool { return &o.BlurBackground }),
	boolOption("blur-background-frame", func(o *Options) *bool { return &o.BlurBackgroundFrame }),
	boolOption("blur-background-fixed", func(o *Options) *bool { return &o.BlurBackgroundFixed }),
	blurKernStep,
	intOption("resize-damage", func(o *Options) *int { return &o.ResizeDamage }),
	boolOption("glx-no-stencil", func(o *Options) *bool { return &o.GLXNoStencil }),
	boolOption("glx-no-rebind-pixmap", func(o *Options) *bool { return &o.GLXNoRebindPixmap }),
	vsyncStep,
	backendStep,
	logLevelStep,
	glxSwapMethodStep,
	boolOption("glx-use-gpushader4", func(o *Options) *bool { return &o.GLXUseGpushader4 }),
	boolOption("xrender-sync", func(o *Options) *bool { return &o.XRenderSync }),
	boolOption("xrender-sync-fence", func(o *Options) *bool { return &o.XRenderSyncFence }),
	removedKeysShim,
	winTypeStep,
}

func intOption(key string, field func(*Options) *int) step {
	return func(_ *Loader, doc *document, opt *Options, _ *Result) error {
		if v, ok := doc.lookupInt(key); ok {
			*field(opt) = v
		}
		return nil
	}
}

func boolOption(key string, field func(*Options) *bool) step {
	return func(_ *Loader, doc *document, opt *Options, _ *Result) error {
		if v, ok := doc.lookupBool(key); ok {
			*field(opt) = v
		}
		return nil
	}
}

// floatOption copies the value verbatim.
func floatOption(key string, field func(*Options) *float64) step {
	return func(_ *Loader, doc *document, opt *Options, _ *Result) error {
		if v, ok := doc.lookupFloat(key); ok {
			*field(opt) = v
		}
		return nil
	}
}

// opacityOption clamps into [0, 1] and scales by Opaque.
func opacityOption(key string, field func(*Options) *float64) step {
	return func(_ *Loader, doc *document, opt *Options, _ *Result) error {
		if v, ok := doc.lookupFloat(key); ok {
			*field(opt) = clampUnit(v) * Opaque
		}
		return nil
	}
}

func stringOption(key string, field func(*Options) *string) step {
	return func(_ *Loader, doc *document, opt *Options, _ *Result) error {
		if v, ok := doc.lookupString(key); ok {
			*field(opt) = v
		}
		return nil
	}
}

func vsyncStep(_ *Loader, doc *document, opt *Options, _ *Result) error {
	s, ok := doc.lookupString("vsync")
	if !ok {
		return nil
	}
	mode, valid := render.ParseVSync(s)
	if !valid {
		return &EnumError{Key: "vsync", Value: s}
	}
	opt.VSync = mode
	return nil
}

func backendStep(_ *Loader, doc *document, opt *Options, _ *Result) error {
	s, ok := doc.lookupString("backend")
	if !ok {
		return nil
	}
	backend, valid := render.ParseBackend(s)
	if !valid {
		return &EnumError{Key: "backend", Value: s}
	}
	opt.Backend = backend
	return nil
}

func glxSwapMethodStep(_ *Loader, doc *document, opt *Options, _ *Result) error {
	s, ok := doc.lookupString("glx-swap-method")
	if !ok {
		return nil
	}
	method, valid := render.ParseGLXSwapMethod(s)
	if !valid {
		return &EnumError{Key: "glx-swap-method", Value: s}
	}
	opt.GLXSwapMethod = method
	return nil
}

// logLevelStep is cosmetic-only: an unknown level warns and keeps the active
// level, unlike the fatal enum keys above.
func logLevelStep(l *Loader, doc *document, _ *Options, _ *Result) error {
	s, ok := doc.lookupString("log-level")
	if !ok {
		return nil
	}
	level, valid := logging.ParseLevel(s)
	if !valid {
		l.logger().Warn("invalid log-level, keeping current level", "value", s)
		return nil
	}
	if l.Level != nil {
		l.Level.Set(level)
	}
	return nil
}
