package cond_test

import (
	"errors"
	"testing"

	"veil/internal/cond"
)

func TestParseAcceptsCommonConditions(t *testing.T) {
	cases := []string{
		"class_g = 'URxvt'",
		`class_g = "URxvt"`,
		"name *= 'Firefox'",
		"name ~= '^Steam'",
		"! class_i = 'presel_feedback'",
		"window_type = 'tooltip' && class_g != 'Dunst'",
		"class_g = 'mpv' || class_g = 'vlc'",
		"(class_g = 'a' || class_g = 'b') && fullscreen",
		"_NET_WM_STATE@ *= 'HIDDEN'",
		"_COMPTON_SHADOW[0] = 0",
		"bounding_shaped",
		"override_redirect = true",
		"opacity < 95",
		"x >= -10",
		"name = 'quote \\' inside'",
	}
	for _, src := range cases {
		p, err := cond.Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", src, err)
		}
		if p.String() != src {
			t.Fatalf("Parse(%q).String() = %q", src, p.String())
		}
	}
}

func TestParseRejectsMalformedConditions(t *testing.T) {
	cases := []string{
		"",
		"class_g =",
		"class_g = 'unterminated",
		"= 'no target'",
		"(class_g = 'x'",
		"class_g = 'x' &&",
		"class_g = 'x' garbage",
		"name[x] = 'bad index'",
		"class_g == 'double'",
	}
	for _, src := range cases {
		if _, err := cond.Parse(src); err == nil {
			t.Fatalf("Parse(%q) succeeded, want error", src)
		}
	}
}

func TestParseErrorReportsOffset(t *testing.T) {
	_, err := cond.Parse("class_g = ")
	var serr *cond.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *cond.SyntaxError, got %T", err)
	}
	if serr.Text != "class_g = " {
		t.Fatalf("unexpected Text: %q", serr.Text)
	}
	if serr.Offset != len("class_g = ") {
		t.Fatalf("unexpected Offset: %d", serr.Offset)
	}
}
