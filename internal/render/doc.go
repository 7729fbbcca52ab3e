// Package render holds the renderer-facing value types the configuration
// subsystem produces: backend and vsync selections, the GLX swap method, and
// blur convolution kernels.
package render
