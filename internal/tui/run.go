package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"campuslife/internal/content"
)

// Run plays one interactive session in the terminal until the player
// quits. delay is the pause after each main answer.
func Run(ctx context.Context, b *content.Bundle, delay time.Duration, in io.Reader, out io.Writer) error {
	m := newGameModel(b, delay)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
