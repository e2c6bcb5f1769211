package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"elmdecode.dev/pkg/elmdecode/internal/adapter"
)

// BuiltinSelectorCommand selects the in-process selector instead of an
// external fzf-compatible executable.
const BuiltinSelectorCommand = "builtin"

const ttyPath = "/dev/tty"

var selectorTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

// TUISelector is a bubbletea list with fuzzy filtering. Standard input
// usually carries the JSON document, so keys are read from the controlling
// terminal.
type TUISelector struct {
	prompt string
	input  io.Reader
	output io.Writer
}

// NewTUISelector creates a TUISelector drawing on output. When input is nil
// the controlling terminal is opened for every selection.
func NewTUISelector(prompt string, input io.Reader, output io.Writer) *TUISelector {
	if prompt == "" {
		prompt = adapter.DefaultSelectorPrompt
	}

	return &TUISelector{prompt: prompt, input: input, output: output}
}

// Select shows the candidates and returns the chosen one.
func (s *TUISelector) Select(ctx context.Context, candidates []string) (string, error) {
	input := s.input
	if input == nil {
		tty, err := os.Open(ttyPath)
		if err != nil {
			return "", fmt.Errorf("%w: open terminal: %v", adapter.ErrSelectionCancelled, err)
		}
		defer func() { _ = tty.Close() }()

		input = tty
	}

	program := tea.NewProgram(
		newSelectorModel(s.prompt, candidates),
		tea.WithInput(input),
		tea.WithOutput(s.output),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return "", ctx.Err()
		}

		return "", fmt.Errorf("%w: %v", adapter.ErrSelectionCancelled, err)
	}

	return selectionOf(final)
}

func selectionOf(final tea.Model) (string, error) {
	model, ok := final.(selectorModel)
	if !ok || model.cancelled {
		return "", adapter.ErrSelectionCancelled
	}

	if model.choice == "" {
		return "", adapter.ErrNoSelection
	}

	return model.choice, nil
}

type candidateItem string

func (i candidateItem) FilterValue() string { return string(i) }
func (i candidateItem) Title() string       { return string(i) }
func (i candidateItem) Description() string { return "" }

type selectorModel struct {
	list      list.Model
	choice    string
	cancelled bool
}

func newSelectorModel(prompt string, candidates []string) selectorModel {
	items := make([]list.Item, 0, len(candidates))
	for _, candidate := range candidates {
		items = append(items, candidateItem(candidate))
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, 0, 0)
	l.Title = prompt
	l.Styles.Title = selectorTitleStyle
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return selectorModel{list: l}
}

func (sm selectorModel) Init() tea.Cmd {
	return nil
}

func (sm selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.list.SetSize(msg.Width, msg.Height)
		return sm, nil
	case tea.KeyMsg:
		if next, cmd, handled := sm.handleKeyPress(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	sm.list, cmd = sm.list.Update(msg)

	return sm, cmd
}

func (sm selectorModel) handleKeyPress(msg tea.KeyMsg) (selectorModel, tea.Cmd, bool) {
	// Keys belong to the filter input while the user is typing.
	if sm.list.FilterState() == list.Filtering {
		if msg.Type == tea.KeyCtrlC {
			sm.cancelled = true
			return sm, tea.Quit, true
		}

		return sm, nil, false
	}

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		if msg.Type == tea.KeyEsc && sm.list.FilterState() == list.FilterApplied {
			return sm, nil, false
		}

		sm.cancelled = true

		return sm, tea.Quit, true
	case tea.KeyEnter:
		if item, ok := sm.list.SelectedItem().(candidateItem); ok {
			sm.choice = string(item)
		}

		return sm, tea.Quit, true
	}

	return sm, nil, false
}

func (sm selectorModel) View() string {
	return sm.list.View()
}
