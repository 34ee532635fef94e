package main

import (
	"math"
	"testing"
)

func TestParseTimecode(t *testing.T) {
	cases := map[string]float64{
		"95.5":    95.5,
		"0":       0,
		"1:30":    90,
		"02:05.5": 125.5,
	}
	for input, want := range cases {
		got, err := parseTimecode(input)
		if err != nil {
			t.Fatalf("parseTimecode(%q): %v", input, err)
		}
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("parseTimecode(%q) = %v, want %v", input, got, want)
		}
	}

	for _, input := range []string{"", "a", "1:60", "-5", "1:2:3", "1:-4"} {
		if _, err := parseTimecode(input); err == nil {
			t.Fatalf("parseTimecode(%q) should fail", input)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[float64]string{
		0:     "0:00.0",
		95.5:  "1:35.5",
		180:   "3:00.0",
		600.2: "10:00.2",
	}
	for input, want := range cases {
		if got := formatClock(input); got != want {
			t.Fatalf("formatClock(%v) = %q, want %q", input, got, want)
		}
	}
}

func TestParseSize(t *testing.T) {
	width, height, err := parseSize("1280x720")
	if err != nil || width != 1280 || height != 720 {
		t.Fatalf("parseSize: %d %d %v", width, height, err)
	}
	if _, _, err := parseSize("1280"); err == nil {
		t.Fatal("expected error for missing height")
	}
	if _, _, err := parseSize("0x720"); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestDerivedOutputPath(t *testing.T) {
	if got := derivedOutputPath("/v/clip.mp4", "mute"); got != "/v/clip-mute.mp4" {
		t.Fatalf("derivedOutputPath = %q", got)
	}
	if got := derivedOutputPath("clip", "slice"); got != "clip-slice.mp4" {
		t.Fatalf("derivedOutputPath = %q", got)
	}
}
