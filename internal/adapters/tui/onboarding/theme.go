package onboarding

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func newTheme() *huh.Theme {
	t := huh.ThemeBase()

	accent := lipgloss.Color("39")
	accentLight := lipgloss.Color("159")
	muted := lipgloss.Color("245")
	text := lipgloss.Color("252")
	danger := lipgloss.Color("203")

	t.Group.Title = lipgloss.NewStyle().Foreground(accent).Bold(true).MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().Foreground(muted).MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(accent)
	t.Focused.Title = lipgloss.NewStyle().Foreground(accentLight).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(danger).SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(danger)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(accent).SetString("> ")
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(accent).SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().Foreground(text)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(accent).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(accent)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(muted)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(accent)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(text)
	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(accent).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(muted).
		Background(lipgloss.Color("236")).
		Padding(0, 2).
		MarginRight(1)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().Foreground(muted)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(muted).SetString("  ")
	t.Blurred.Option = lipgloss.NewStyle().Foreground(muted)

	return t
}
