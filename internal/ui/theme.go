package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Campus Life theme for the terminal (CLI + TUI).

const (
	IconCampus    = "🎓"
	IconAcademic  = "📚"
	IconLove      = "💕"
	IconActivity  = "⚽"
	IconWealth    = "💰"
	IconQuest     = "✨"
	IconDone      = "✅"
	IconTrophy    = "🏆"
	IconInfo      = "ℹ️"
	IconWarn      = "⚠️"
	IconError     = "🧨"
	IconHourglass = "⏳"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	Notice      = lipgloss.NewStyle().BorderStyle(lipgloss.DoubleBorder()).BorderForeground(cAccent).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// SeverityText styles a notification message by its severity name.
func SeverityText(severity, msg string) string {
	switch severity {
	case "success":
		return Good.Render(IconDone + " " + msg)
	case "error":
		return Bad.Render(IconError + " " + msg)
	default:
		return H2.Render(IconInfo + " " + msg)
	}
}

// GradeText colors a report card grade.
func GradeText(grade string) string {
	switch grade {
	case "SS", "S":
		return Gold.Render(grade)
	case "A", "B":
		return Good.Render(grade)
	case "C":
		return Warn.Render(grade)
	default:
		return Bad.Render(grade)
	}
}

// Swatch renders s in a configured attribute color such as "#667eea".
// Empty colors leave s unstyled.
func Swatch(color, s string) string {
	if color == "" {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
}

// Bar draws value out of total as a fixed-width text bar.
func Bar(value, total float64, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(value / total * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func AttributeIcon(id string) string {
	switch id {
	case "academic":
		return IconAcademic
	case "love":
		return IconLove
	case "activity":
		return IconActivity
	case "wealth":
		return IconWealth
	}
	return IconQuest
}
