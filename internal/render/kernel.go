package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxBlurPasses caps how many kernels a blur-kern specification may chain.
const MaxBlurPasses = 5

// Kernel is a convolution matrix applied by the blur passes. Width and
// Height are odd; Data holds Width*Height weights in row-major order with
// the center weight fixed at 1.
type Kernel struct {
	Width  int
	Height int
	Data   []float64
}

// HasNegative reports whether any weight is below zero. The renderer needs
// to know because negative weights break the simple separable fast path.
func (k Kernel) HasNegative() bool {
	for _, w := range k.Data {
		if w < 0 {
			return true
		}
	}
	return false
}

// ParseKernelList parses a blur-kern specification: one or more kernels
// separated by semicolons, at most MaxBlurPasses. Each kernel is either a
// preset name (such as 3x3box or 7x7gaussian) or an explicit
// "width,height,weights..." matrix with odd dimensions and width*height-1
// weights, the center being implicit. The boolean reports whether any
// resulting kernel carries a negative weight.
func ParseKernelList(s string) ([]Kernel, bool, error) {
	parts := strings.Split(s, ";")
	if len(parts) > MaxBlurPasses {
		return nil, false, fmt.Errorf("too many blur kernels: %d (max %d)", len(parts), MaxBlurPasses)
	}
	kernels := make([]Kernel, 0, len(parts))
	hasNeg := false
	for _, part := range parts {
		k, err := parseKernel(strings.TrimSpace(part))
		if err != nil {
			return nil, false, err
		}
		if k.HasNegative() {
			hasNeg = true
		}
		kernels = append(kernels, k)
	}
	return kernels, hasNeg, nil
}

func parseKernel(s string) (Kernel, error) {
	if s == "" {
		return Kernel{}, fmt.Errorf("empty blur kernel")
	}
	if k, ok := presetKernel(s); ok {
		return k, nil
	}
	fields := strings.Split(s, ",")
	if len(fields) < 2 {
		return Kernel{}, fmt.Errorf("blur kernel %q: expected width,height,weights", s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Kernel{}, fmt.Errorf("blur kernel %q: bad width: %w", s, err)
	}
	height, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Kernel{}, fmt.Errorf("blur kernel %q: bad height: %w", s, err)
	}
	if width < 3 || height < 3 || width%2 == 0 || height%2 == 0 {
		return Kernel{}, fmt.Errorf("blur kernel %q: dimensions must be odd and at least 3", s)
	}
	want := width*height - 1
	if len(fields)-2 != want {
		return Kernel{}, fmt.Errorf("blur kernel %q: expected %d weights, got %d", s, want, len(fields)-2)
	}
	data := make([]float64, 0, width*height)
	center := (width*height - 1) / 2
	for i, field := range fields[2:] {
		if len(data) == center {
			data = append(data, 1)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return Kernel{}, fmt.Errorf("blur kernel %q: bad weight %d: %w", s, i+1, err)
		}
		data = append(data, w)
	}
	if len(data) == center {
		data = append(data, 1)
	}
	return Kernel{Width: width, Height: height, Data: data}, nil
}

func presetKernel(name string) (Kernel, bool) {
	var size int
	var gaussian bool
	switch strings.ToLower(name) {
	case "3x3box":
		size = 3
	case "5x5box":
		size = 5
	case "7x7box":
		size = 7
	case "3x3gaussian":
		size, gaussian = 3, true
	case "5x5gaussian":
		size, gaussian = 5, true
	case "7x7gaussian":
		size, gaussian = 7, true
	case "9x9gaussian":
		size, gaussian = 9, true
	case "11x11gaussian":
		size, gaussian = 11, true
	default:
		return Kernel{}, false
	}
	data := make([]float64, size*size)
	center := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if gaussian {
				dx, dy := float64(x-center), float64(y-center)
				sigma := float64(size) / 3
				data[y*size+x] = math.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma))
			} else {
				data[y*size+x] = 1
			}
		}
	}
	data[center*size+center] = 1
	return Kernel{Width: size, Height: size, Data: data}, true
}
