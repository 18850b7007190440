package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fittrackdev/fittrack/internal/fitness"
)

// RunLogWorkoutTUI starts the interactive log-workout form
func RunLogWorkoutTUI(store *fitness.Store, prefilledTitle string) error {
	model := NewLogWorkoutModel(store, prefilledTitle)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after the TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(LogWorkoutModel); ok {
		if m.cancelled {
			fmt.Println("❌ Workout cancelled, nothing saved.")
		} else if m.completed {
			fmt.Printf("💪 Logged \"%s\": %d exercises, %.0f kg volume\n",
				m.title, len(m.exercises), m.savedVolume)
		} else if m.err != nil {
			fmt.Printf("❌ Failed to save workout: %v\n", m.err)
		}
	}

	return nil
}
