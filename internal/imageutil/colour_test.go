package imageutil

import (
	"image/color"
	"testing"
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"black", color.NRGBA{0, 0, 0, 0xff}},
		{"White", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"firebrick", color.NRGBA{0xb2, 0x22, 0x22, 0xff}},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#f00a", color.NRGBA{0xff, 0x00, 0x00, 0xaa}},
		{"#102030", color.NRGBA{0x10, 0x20, 0x30, 0xff}},
		{"#10203040", color.NRGBA{0x10, 0x20, 0x30, 0x40}},
		{"none", color.NRGBA{}},
		{"transparent", color.NRGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColour(tt.in)
			if err != nil {
				t.Fatalf("ParseColour(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseColour(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColourRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "notacolour", "#12", "#12345", "#gggggg"} {
		if _, err := ParseColour(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestInvert(t *testing.T) {
	got := Invert(color.NRGBA{R: 0x00, G: 0x80, B: 0xff, A: 0xff})
	want := color.NRGBA{R: 0xff, G: 0x7f, B: 0x00, A: 0xff}
	if got != want {
		t.Fatalf("Invert = %+v, want %+v", got, want)
	}

	if inv := Invert(color.NRGBA{}); inv.A != 0 {
		t.Fatalf("expected alpha preserved, got %+v", inv)
	}
}
