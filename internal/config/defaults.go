package config

import "veil/internal/render"

const (
	defaultFadeDelta     = 10
	defaultFadeInStep    = 0.028
	defaultFadeOutStep   = 0.03
	defaultShadowRadius  = 12
	defaultShadowOffset  = -15
	defaultShadowOpacity = 0.75
	defaultFrameOpacity  = 1.0
)

// Default returns an Options populated with veil's built-in defaults. Loads
// mutate a record in place, so callers start from here (or from here plus
// command-line values) before handing it to the loader.
func Default() Options {
	return Options{
		FadeDelta:     defaultFadeDelta,
		FadeInStep:    defaultFadeInStep * Opaque,
		FadeOutStep:   defaultFadeOutStep * Opaque,
		ShadowRadius:  defaultShadowRadius,
		ShadowOpacity: defaultShadowOpacity,
		ShadowOffsetX: defaultShadowOffset,
		ShadowOffsetY: defaultShadowOffset,
		ActiveOpacity: Opaque,
		FrameOpacity:  defaultFrameOpacity,
		VSync:         render.VSyncNone,
		Backend:       render.BackendXRender,
		GLXSwapMethod: render.SwapMethodUndefined,
	}
}
