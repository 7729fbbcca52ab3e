package render_test

import (
	"testing"

	"veil/internal/render"
)

func TestParseKernelListExplicitMatrix(t *testing.T) {
	kernels, hasNeg, err := render.ParseKernelList("3,3,1,1,1,1,1,1,1,1")
	if err != nil {
		t.Fatalf("ParseKernelList returned error: %v", err)
	}
	if hasNeg {
		t.Fatal("expected no negative weights")
	}
	if len(kernels) != 1 {
		t.Fatalf("expected one kernel, got %d", len(kernels))
	}
	k := kernels[0]
	if k.Width != 3 || k.Height != 3 {
		t.Fatalf("unexpected dimensions: %dx%d", k.Width, k.Height)
	}
	if len(k.Data) != 9 {
		t.Fatalf("expected 9 weights incl. center, got %d", len(k.Data))
	}
	if k.Data[4] != 1 {
		t.Fatalf("expected implicit center weight 1, got %v", k.Data[4])
	}
}

func TestParseKernelListDetectsNegativeWeights(t *testing.T) {
	kernels, hasNeg, err := render.ParseKernelList("3,3,-1,1,1,1,1,1,1,1")
	if err != nil {
		t.Fatalf("ParseKernelList returned error: %v", err)
	}
	if !hasNeg {
		t.Fatal("expected negative weight detection")
	}
	if !kernels[0].HasNegative() {
		t.Fatal("kernel should report a negative weight")
	}
}

func TestParseKernelListPresetsAndChains(t *testing.T) {
	kernels, hasNeg, err := render.ParseKernelList("3x3box;5x5gaussian")
	if err != nil {
		t.Fatalf("ParseKernelList returned error: %v", err)
	}
	if hasNeg {
		t.Fatal("presets have no negative weights")
	}
	if len(kernels) != 2 {
		t.Fatalf("expected two kernels, got %d", len(kernels))
	}
	if kernels[1].Width != 5 {
		t.Fatalf("expected 5x5 gaussian, got %dx%d", kernels[1].Width, kernels[1].Height)
	}
}

func TestParseKernelListRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"4,4,1,1",
		"3,3,1,1",
		"3,3,1,1,1,1,1,1,1,x",
		"nosuchpreset",
		"3x3box;3x3box;3x3box;3x3box;3x3box;3x3box",
	}
	for _, src := range cases {
		if _, _, err := render.ParseKernelList(src); err == nil {
			t.Fatalf("ParseKernelList(%q) succeeded, want error", src)
		}
	}
}

func TestParseBackendAndVSync(t *testing.T) {
	if b, ok := render.ParseBackend("glx"); !ok || b != render.BackendGLX {
		t.Fatalf("ParseBackend(glx) = %v, %v", b, ok)
	}
	if _, ok := render.ParseBackend("metal"); ok {
		t.Fatal("ParseBackend should reject unknown backend")
	}
	if v, ok := render.ParseVSync("opengl-swc"); !ok || v != render.VSyncOpenGLSWC {
		t.Fatalf("ParseVSync(opengl-swc) = %v, %v", v, ok)
	}
	if _, ok := render.ParseVSync("always"); ok {
		t.Fatal("ParseVSync should reject unknown mode")
	}
}

func TestParseGLXSwapMethod(t *testing.T) {
	cases := map[string]render.GLXSwapMethod{
		"undefined":  render.SwapMethodUndefined,
		"copy":       render.SwapMethodCopy,
		"exchange":   render.SwapMethodExchange,
		"buffer-age": render.SwapMethodBufferAge,
		"3":          render.GLXSwapMethod(3),
	}
	for src, want := range cases {
		got, ok := render.ParseGLXSwapMethod(src)
		if !ok || got != want {
			t.Fatalf("ParseGLXSwapMethod(%q) = %v, %v; want %v", src, got, ok, want)
		}
	}
	for _, src := range []string{"", "fast", "42", "-2"} {
		if _, ok := render.ParseGLXSwapMethod(src); ok {
			t.Fatalf("ParseGLXSwapMethod(%q) succeeded, want failure", src)
		}
	}
}
