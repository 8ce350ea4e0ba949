// Package formatter renders domain objects for the terminal: tables,
// progress bars, money and the lipgloss styling shared by the CLI commands
// and the TUI views.
package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/togetherforward/forward/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string  { return StyleDim.Render(text) }
func Bold(text string) string { return StyleBold.Render(text) }

// StatusPill returns a colored indicator for a dream status.
func StatusPill(status domain.DreamStatus) string {
	switch status {
	case domain.DreamActive:
		return StyleGreen.Render("● Active")
	case domain.DreamPaused:
		return StyleYellow.Render("● Paused")
	case domain.DreamAchieved:
		return StyleBlue.Render("● Achieved")
	case domain.DreamArchived:
		return StyleDim.Render("● Archived")
	case domain.DreamDraft:
		return StylePurple.Render("● Draft")
	default:
		return StyleDim.Render("● " + string(status))
	}
}

// TaskMark returns the checkbox marker for a task status.
func TaskMark(status domain.TaskStatus) string {
	switch status {
	case domain.TaskDone:
		return StyleGreen.Render("[x]")
	case domain.TaskInProgress:
		return StyleYellow.Render("[~]")
	default:
		return StyleDim.Render("[ ]")
	}
}

// AssigneeTag renders who a task belongs to.
func AssigneeTag(a domain.TaskAssignee) string {
	switch a {
	case domain.AssigneeMe:
		return StyleBlue.Render("me")
	case domain.AssigneePartner:
		return StylePurple.Render("partner")
	default:
		return StyleFg.Render("both")
	}
}
