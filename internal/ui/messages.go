package ui

import (
	"context"
	"time"

	"timeago/internal/feed"

	tea "github.com/charmbracelet/bubbletea"
)

type entriesLoadedMsg struct {
	entries []feed.Entry
	err     error
}

// loadEntries reads the store in a command goroutine and delivers the result
// back into the update loop.
func loadEntries(store feed.Store) tea.Cmd {
	return func() tea.Msg {
		entries, err := store.List(context.Background())
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

type copyToastTickMsg struct{}

func scheduleCopyToastTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return copyToastTickMsg{}
	})
}

type errorToastTickMsg struct{}

func scheduleErrorToastTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return errorToastTickMsg{}
	})
}
