package imageutil

import (
	"image"
	"testing"
)

func TestParseGravity(t *testing.T) {
	tests := []struct {
		in   string
		want Gravity
	}{
		{"center", Center},
		{"Center", Center},
		{"north", North},
		{"  southeast  ", SouthEast},
		{"north_west", NorthWest},
		{"EAST", East},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGravity(tt.in)
			if err != nil {
				t.Fatalf("ParseGravity(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseGravity(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseGravity("sideways"); err == nil {
		t.Fatal("expected error for unknown gravity")
	}
}

func TestAnchor(t *testing.T) {
	tests := []struct {
		g    Gravity
		want image.Point
	}{
		{Center, image.Pt(30, 20)},
		{NorthWest, image.Pt(0, 0)},
		{North, image.Pt(30, 0)},
		{NorthEast, image.Pt(60, 0)},
		{West, image.Pt(0, 20)},
		{East, image.Pt(60, 20)},
		{SouthWest, image.Pt(0, 40)},
		{South, image.Pt(30, 40)},
		{SouthEast, image.Pt(60, 40)},
	}
	for _, tt := range tests {
		t.Run(tt.g.String(), func(t *testing.T) {
			if got := tt.g.Anchor(100, 60, 40, 20); got != tt.want {
				t.Fatalf("Anchor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMirrorX(t *testing.T) {
	tests := []struct {
		in, want Gravity
	}{
		{East, West},
		{West, East},
		{NorthEast, NorthWest},
		{SouthWest, SouthEast},
		{Center, Center},
		{North, North},
	}
	for _, tt := range tests {
		if got := tt.in.MirrorX(); got != tt.want {
			t.Fatalf("MirrorX(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
