package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elmdecode.dev/pkg/elmdecode/internal/adapter"
)

func sized(t *testing.T, model selectorModel) selectorModel {
	t.Helper()

	next, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 20})

	sm, ok := next.(selectorModel)
	require.True(t, ok)

	return sm
}

func press(t *testing.T, model selectorModel, key tea.KeyType) (selectorModel, tea.Cmd) {
	t.Helper()

	next, cmd := model.Update(tea.KeyMsg{Type: key})

	sm, ok := next.(selectorModel)
	require.True(t, ok)

	return sm, cmd
}

func TestSelectorModel_EnterSelectsCurrent(t *testing.T) {
	model := sized(t, newSelectorModel("Select decoder: ", []string{"A.decoder", "B.decoder"}))

	model, _ = press(t, model, tea.KeyDown)
	model, cmd := press(t, model, tea.KeyEnter)

	require.NotNil(t, cmd)
	assert.Equal(t, "B.decoder", model.choice)
	assert.False(t, model.cancelled)

	choice, err := selectionOf(model)
	require.NoError(t, err)
	assert.Equal(t, "B.decoder", choice)
}

func TestSelectorModel_EscCancels(t *testing.T) {
	model := sized(t, newSelectorModel("", []string{"A.decoder"}))

	model, cmd := press(t, model, tea.KeyEsc)

	require.NotNil(t, cmd)
	assert.True(t, model.cancelled)

	_, err := selectionOf(model)
	assert.ErrorIs(t, err, adapter.ErrSelectionCancelled)
}

func TestSelectorModel_CtrlCCancels(t *testing.T) {
	model := sized(t, newSelectorModel("", []string{"A.decoder"}))

	model, _ = press(t, model, tea.KeyCtrlC)

	_, err := selectionOf(model)
	assert.ErrorIs(t, err, adapter.ErrSelectionCancelled)
}

func TestSelectorModel_EmptyListSelectsNothing(t *testing.T) {
	model := sized(t, newSelectorModel("", nil))

	model, _ = press(t, model, tea.KeyEnter)

	_, err := selectionOf(model)
	assert.ErrorIs(t, err, adapter.ErrNoSelection)
}

func TestSelectionOf_UnexpectedModel(t *testing.T) {
	_, err := selectionOf(nil)
	assert.ErrorIs(t, err, adapter.ErrSelectionCancelled)
}

func TestSelectorModel_ViewShowsPrompt(t *testing.T) {
	model := sized(t, newSelectorModel("Pick one", []string{"A.decoder"}))

	assert.Contains(t, model.View(), "Pick one")
	assert.Contains(t, model.View(), "A.decoder")
}
