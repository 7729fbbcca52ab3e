package render

import (
	"strconv"
	"strings"
)

// Backend selects the rendering implementation.
type Backend int

const (
	BackendXRender Backend = iota
	BackendGLX
	BackendXRGLXHybrid
)

var backendNames = map[string]Backend{
	"xrender":       BackendXRender,
	"glx":           BackendGLX,
	"xr_glx_hybrid": BackendXRGLXHybrid,
}

// ParseBackend maps a configuration string onto a Backend. The second return
// value reports whether the name is recognized.
func ParseBackend(s string) (Backend, bool) {
	b, ok := backendNames[strings.ToLower(strings.TrimSpace(s))]
	return b, ok
}

func (b Backend) String() string {
	switch b {
	case BackendXRender:
		return "xrender"
	case BackendGLX:
		return "glx"
	case BackendXRGLXHybrid:
		return "xr_glx_hybrid"
	}
	return "unknown"
}

// VSyncMode selects the vertical synchronization strategy.
type VSyncMode int

const (
	VSyncNone VSyncMode = iota
	VSyncDRM
	VSyncOpenGL
	VSyncOpenGLOML
	VSyncOpenGLSWC
	VSyncOpenGLMSWC
)

var vsyncNames = map[string]VSyncMode{
	"none":        VSyncNone,
	"drm":         VSyncDRM,
	"opengl":      VSyncOpenGL,
	"opengl-oml":  VSyncOpenGLOML,
	"opengl-swc":  VSyncOpenGLSWC,
	"opengl-mswc": VSyncOpenGLMSWC,
}

// ParseVSync maps a configuration string onto a VSyncMode.
func ParseVSync(s string) (VSyncMode, bool) {
	v, ok := vsyncNames[strings.ToLower(strings.TrimSpace(s))]
	return v, ok
}

func (v VSyncMode) String() string {
	for name, mode := range vsyncNames {
		if mode == v {
			return name
		}
	}
	return "unknown"
}

// GLXSwapMethod describes how the GLX backend expects buffer contents to
// survive a swap. Negative means the buffer age extension decides at runtime.
type GLXSwapMethod int

const (
	SwapMethodBufferAge GLXSwapMethod = -1
	SwapMethodUndefined GLXSwapMethod = 0
	SwapMethodCopy      GLXSwapMethod = 1
	SwapMethodExchange  GLXSwapMethod = 2
)

// maxSwapAge bounds numeric swap methods; deeper swap chains are not useful.
const maxSwapAge = 5

// ParseGLXSwapMethod accepts the method aliases or a small integer buffer age.
func ParseGLXSwapMethod(s string) (GLXSwapMethod, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "undefined":
		return SwapMethodUndefined, true
	case "copy":
		return SwapMethodCopy, true
	case "exchange":
		return SwapMethodExchange, true
	case "buffer-age":
		return SwapMethodBufferAge, true
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < -1 || n > maxSwapAge {
		return SwapMethodUndefined, false
	}
	return GLXSwapMethod(n), true
}

func (m GLXSwapMethod) String() string {
	switch m {
	case SwapMethodBufferAge:
		return "buffer-age"
	case SwapMethodUndefined:
		return "undefined"
	case SwapMethodCopy:
		return "copy"
	case SwapMethodExchange:
		return "exchange"
	}
	return strconv.Itoa(int(m))
}
