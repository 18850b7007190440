package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fittrackdev/fittrack/internal/fitness"
	"github.com/fittrackdev/fittrack/internal/models"
	"github.com/fittrackdev/fittrack/internal/parser"
	"github.com/fittrackdev/fittrack/internal/stats"
)

// Step represents the current step in the log-workout wizard
type Step int

const (
	StepTitle Step = iota
	StepDate
	StepDuration
	StepExercises
	StepNotes
	StepComplete
)

var stepNames = []string{"Title", "Date", "Duration", "Exercises", "Notes"}

// LogWorkoutModel is the TUI model for the interactive workout form
type LogWorkoutModel struct {
	store       *fitness.Store
	currentStep Step
	inputs      []textinput.Model
	width       int
	height      int

	// Workout data collected so far
	title     string
	date      string
	duration  int
	exercises []models.Exercise
	notes     string

	// State
	err           error
	completed     bool
	cancelled     bool
	validationErr string
	savedVolume   float64
}

// NewLogWorkoutModel creates the wizard model, optionally pre-filling the
// title from command-line arguments
func NewLogWorkoutModel(store *fitness.Store, prefilledTitle string) LogWorkoutModel {
	inputs := make([]textinput.Model, 5)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[StepTitle].Placeholder = "Workout title... (required)"
	inputs[StepTitle].CharLimit = 100
	inputs[StepTitle].SetValue(prefilledTitle)
	inputs[StepTitle].Focus()

	inputs[StepDate].Placeholder = "today / yesterday / YYYY-MM-DD (Enter for today)"
	inputs[StepDate].CharLimit = 20

	inputs[StepDuration].Placeholder = "Duration in minutes (Enter for 45)"
	inputs[StepDuration].CharLimit = 4

	inputs[StepExercises].Placeholder = "e.g. Bench Press 3x10@60kg (Enter on empty line when done)"
	inputs[StepExercises].CharLimit = 100

	inputs[StepNotes].Placeholder = "Notes (Enter to skip)"
	inputs[StepNotes].CharLimit = 500

	return LogWorkoutModel{
		store:  store,
		inputs: inputs,
	}
}

// Init implements tea.Model
func (m LogWorkoutModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m LogWorkoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			return m.handleEnter()
		}
	}

	if m.currentStep < StepComplete {
		var cmd tea.Cmd
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleEnter advances the wizard, validating the current field
func (m LogWorkoutModel) handleEnter() (tea.Model, tea.Cmd) {
	m.validationErr = ""
	value := strings.TrimSpace(m.inputs[m.currentStep].Value())

	switch m.currentStep {
	case StepTitle:
		if value == "" {
			m.validationErr = "Title is required"
			return m, nil
		}
		m.title = value

	case StepDate:
		day, err := parser.ParseDay(value)
		if err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		m.date = day

	case StepDuration:
		if value == "" {
			m.duration = 45
		} else {
			minutes, err := strconv.Atoi(value)
			if err != nil || minutes < 1 {
				m.validationErr = "Duration must be a positive number of minutes"
				return m, nil
			}
			m.duration = minutes
		}

	case StepExercises:
		// Empty line finishes the list; anything else is one more exercise
		if value != "" {
			ex, err := parser.ParseExercise(value)
			if err != nil {
				m.validationErr = err.Error()
				return m, nil
			}
			m.exercises = append(m.exercises, ex)
			m.inputs[StepExercises].SetValue("")
			return m, nil
		}
		if len(m.exercises) == 0 {
			m.validationErr = "Add at least one exercise"
			return m, nil
		}

	case StepNotes:
		m.notes = value
		return m.save()
	}

	m.inputs[m.currentStep].Blur()
	m.currentStep++
	m.inputs[m.currentStep].Focus()
	return m, textinput.Blink
}

// save builds the session and writes it through the store
func (m LogWorkoutModel) save() (tea.Model, tea.Cmd) {
	session := models.WorkoutSession{
		ID:              models.NewID(),
		Date:            m.date,
		Title:           m.title,
		Exercises:       m.exercises,
		DurationMinutes: m.duration,
		Notes:           m.notes,
		CreatedAt:       time.Now(),
	}
	if err := session.Validate(); err != nil {
		m.validationErr = err.Error()
		return m, nil
	}

	if err := m.store.AddWorkout(session); err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.savedVolume = stats.SessionVolume(session)
	m.completed = true
	m.currentStep = StepComplete
	return m, tea.Quit
}

// View implements tea.Model
func (m LogWorkoutModel) View() string {
	if m.completed || m.cancelled {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	stepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	var b strings.Builder
	b.WriteString(titleStyle.Render("fittrack - log workout"))
	b.WriteString("\n\n")

	// Completed fields
	if m.currentStep > StepTitle {
		b.WriteString(doneStyle.Render("Title: "+m.title) + "\n")
	}
	if m.currentStep > StepDate {
		b.WriteString(doneStyle.Render("Date: "+m.date) + "\n")
	}
	if m.currentStep > StepDuration {
		b.WriteString(doneStyle.Render(fmt.Sprintf("Duration: %dm", m.duration)) + "\n")
	}
	for _, ex := range m.exercises {
		b.WriteString(doneStyle.Render(fmt.Sprintf("  • %s %dx%d@%g%s",
			ex.Name, ex.Sets, ex.Reps, ex.Weight, ex.WeightUnit)) + "\n")
	}

	// Current field
	if m.currentStep < StepComplete {
		b.WriteString("\n")
		b.WriteString(stepStyle.Render(fmt.Sprintf("[%d/%d] %s",
			int(m.currentStep)+1, len(stepNames), stepNames[m.currentStep])))
		b.WriteString("\n")
		b.WriteString(m.inputs[m.currentStep].View())
		b.WriteString("\n")
	}

	if m.validationErr != "" {
		b.WriteString(errStyle.Render("✗ "+m.validationErr) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter continue • esc cancel"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(b.String())

	return card + "\n"
}
