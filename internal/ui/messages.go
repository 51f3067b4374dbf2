package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/truewind/internal/settings"
)

// Message types for async operations

// preferencesLoadedMsg is sent when saved preferences have been read
type preferencesLoadedMsg struct {
	prefs settings.Preferences
	err   error
}

// preferencesSavedMsg is sent when preferences have been written
type preferencesSavedMsg struct {
	err error
}

func loadPreferences(repo *settings.Repository, defaults settings.Preferences) tea.Cmd {
	return func() tea.Msg {
		prefs, err := repo.Load(defaults)
		return preferencesLoadedMsg{prefs: prefs, err: err}
	}
}

func savePreferences(repo *settings.Repository, prefs settings.Preferences) tea.Cmd {
	return func() tea.Msg {
		return preferencesSavedMsg{err: repo.Save(prefs)}
	}
}
