package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Marsh" || names[1] != "Pond" || names[2] != "Dusk" {
		t.Fatalf("ThemeNames() = %v, want [Marsh Pond Dusk]", names)
	}
	names[0] = "mutated"
	if ThemeNames()[0] != "Marsh" {
		t.Fatalf("ThemeNames() should return a copy")
	}
}

func TestNextTheme(t *testing.T) {
	cases := map[string]string{
		"Marsh":   "Pond",
		"Pond":    "Dusk",
		"Dusk":    "Marsh",
		"Unknown": "Marsh",
	}
	for in, want := range cases {
		if got := NextTheme(in); got != want {
			t.Fatalf("NextTheme(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Marsh" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Marsh (fallback)", got)
	}
}

func TestStateBadgeColors(t *testing.T) {
	th := defaultTheme()
	s := th.Styles()

	cases := map[string]string{
		"loading": th.Warning,
		"ready":   th.Success,
		"error":   th.Danger,
		"other":   th.Muted,
	}
	for label, want := range cases {
		got := s.StateBadge(label).GetBackground()
		if got != lipgloss.Color(want) {
			t.Fatalf("StateBadge(%s) background = %v, want %v", label, got, want)
		}
	}
}
