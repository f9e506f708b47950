package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	t.Run("NavigationBindings", func(t *testing.T) {
		if !key.Matches(tea.KeyMsg{Type: tea.KeyUp}, km.Up) {
			t.Error("expected up arrow to match Up binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, km.Up) {
			t.Error("expected k to match Up binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyDown}, km.Down) {
			t.Error("expected down arrow to match Down binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, km.Down) {
			t.Error("expected j to match Down binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyHome}, km.Home) {
			t.Error("expected home to match Home binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}, km.End) {
			t.Error("expected G to match End binding")
		}
	})

	t.Run("DisplayBindings", func(t *testing.T) {
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, km.Strict) {
			t.Error("expected s to match Strict binding")
		}
		if key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, km.Seconds) {
			t.Error("expected lowercase s not to match Seconds binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'S'}}, km.Seconds) {
			t.Error("expected S to match Seconds binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, km.Detail) {
			t.Error("expected enter to match Detail binding")
		}
	})

	t.Run("ActionBindings", func(t *testing.T) {
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}}, km.Copy) {
			t.Error("expected c to match Copy binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, km.Refresh) {
			t.Error("expected r to match Refresh binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, km.Help) {
			t.Error("expected ? to match Help binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyEscape}, km.Escape) {
			t.Error("expected escape to match Escape binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, km.Quit) {
			t.Error("expected q to match Quit binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit) {
			t.Error("expected ctrl+c to match Quit binding")
		}
	})
}

func TestKeyBindingsHaveHelpText(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", km.Up},
		{"Down", km.Down},
		{"Home", km.Home},
		{"End", km.End},
		{"PageUp", km.PageUp},
		{"PageDown", km.PageDown},
		{"Strict", km.Strict},
		{"Seconds", km.Seconds},
		{"Detail", km.Detail},
		{"Copy", km.Copy},
		{"Refresh", km.Refresh},
		{"Help", km.Help},
		{"Escape", km.Escape},
		{"Quit", km.Quit},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			help := b.binding.Help()
			if help.Key == "" {
				t.Errorf("%s binding has empty Key help text", b.name)
			}
			if help.Desc == "" {
				t.Errorf("%s binding has empty Desc help text", b.name)
			}
		})
	}
}

func TestRelatedBindingsShareHelpText(t *testing.T) {
	km := DefaultKeyMap()

	if km.Up.Help().Key != km.Down.Help().Key {
		t.Errorf("Up and Down should share Key help text: %q vs %q",
			km.Up.Help().Key, km.Down.Help().Key)
	}
	if km.Up.Help().Desc != km.Down.Help().Desc {
		t.Errorf("Up and Down should share Desc help text: %q vs %q",
			km.Up.Help().Desc, km.Down.Help().Desc)
	}
}
