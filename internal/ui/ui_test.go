package ui

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func runeWidth(s string) int {
	return utf8.RuneCountInString(s)
}

func TestPadScore(t *testing.T) {
	cases := map[int]string{0: "000000", 730: "000730", 123456: "123456", 1234567: "1234567"}
	for in, want := range cases {
		if got := PadScore(in); got != want {
			t.Fatalf("PadScore(%d): got=%q want=%q", in, got, want)
		}
	}
}

func TestThousands(t *testing.T) {
	cases := map[int]string{0: "0", 999: "999", 1000: "1,000", 12345: "12,345", 1234567: "1,234,567", -4500: "-4,500"}
	for in, want := range cases {
		if got := Thousands(in); got != want {
			t.Fatalf("Thousands(%d): got=%q want=%q", in, got, want)
		}
	}
}

func TestWrapRespectsWidth(t *testing.T) {
	lines := Wrap("Defend the station from the void hounds at all costs", 16, runeWidth)
	if len(lines) < 2 {
		t.Fatalf("expected several lines, got %v", lines)
	}
	for _, l := range lines {
		if runeWidth(l) > 16 {
			t.Fatalf("line too wide: %q", l)
		}
	}
	if strings.Join(lines, " ") != "Defend the station from the void hounds at all costs" {
		t.Fatalf("words lost: %v", lines)
	}
}

func TestWrapKeepsLongWord(t *testing.T) {
	lines := Wrap("a SUPERCALIFRAGILISTIC b", 5, runeWidth)
	if len(lines) != 3 || lines[1] != "SUPERCALIFRAGILISTIC" {
		t.Fatalf("lines: %v", lines)
	}
	if got := Wrap("   ", 10, runeWidth); len(got) != 0 {
		t.Fatalf("blank text: %v", got)
	}
}

func TestSanitizeName(t *testing.T) {
	if got := SanitizeName("ace\tpilot", 15); got != "ACEPILOT" {
		t.Fatalf("got=%q want=ACEPILOT", got)
	}
	if got := SanitizeName("кот-пилот-космос-1", 15); utf8.RuneCountInString(got) != 15 || got != "КОТ-ПИЛОТ-КОСМО" {
		t.Fatalf("rune limit: got=%q", got)
	}
}

func TestTextInputEditing(t *testing.T) {
	in := &TextInput{MaxRunes: 4}
	in.Type("ab")
	in.Type("cdef")
	if in.Value() != "ABCD" {
		t.Fatalf("value: got=%q want=ABCD", in.Value())
	}
	in.Backspace()
	in.Backspace()
	if in.Value() != "AB" {
		t.Fatalf("after backspace: got=%q want=AB", in.Value())
	}
	in.Backspace()
	in.Backspace()
	in.Backspace()
	if in.Value() != "" {
		t.Fatalf("backspace on empty: got=%q", in.Value())
	}
}

func TestHealthFraction(t *testing.T) {
	if HealthFraction(50, 100) != 0.5 || HealthFraction(-5, 100) != 0 || HealthFraction(150, 100) != 1 {
		t.Fatalf("fraction out of range")
	}
}

func TestRankLabel(t *testing.T) {
	if RankLabel(0) != "#01" || RankLabel(9) != "#10" {
		t.Fatalf("rank labels: %q %q", RankLabel(0), RankLabel(9))
	}
}

func TestPulseAlphaRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		a := PulseAlpha(float64(i) * 0.05)
		if a < 0 || a > 1 {
			t.Fatalf("alpha out of range at %d: %f", i, a)
		}
	}
}
