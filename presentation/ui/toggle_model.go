package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"labbot/domain/request"
	"labbot/domain/toggle"
)

// Requester performs one authenticated toggle exchange.
type Requester interface {
	Toggle(kind request.Kind) error
}

type toggleResultMsg struct {
	kind request.Kind
	err  error
}

type toggleKeyMap struct {
	Quit key.Binding
}

func defaultToggleKeyMap() toggleKeyMap {
	return toggleKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ToggleModel is the interactive loop: any key sends the request that
// moves the lab out of its current state, ctrl+c quits. The toggle state
// lives here; it flips only when the protocol reported success.
type ToggleModel struct {
	requester Requester
	keys      toggleKeyMap
	state     toggle.State
	busy      bool
	failure   error
	width     int
	height    int
}

func NewToggleModel(requester Requester) ToggleModel {
	return ToggleModel{
		requester: requester,
		keys:      defaultToggleKeyMap(),
		state:     toggle.Closed,
	}
}

func (m ToggleModel) Init() tea.Cmd {
	return nil
}

func (m ToggleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		// one outstanding request at a time; extra key presses are dropped
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, requestCmd(m.requester, m.state.NextRequest())

	case toggleResultMsg:
		m.busy = false
		if msg.err != nil {
			m.failure = msg.err
			return m, nil
		}
		m.failure = nil
		m.state = m.state.Toggled()
		return m, nil
	}

	return m, nil
}

func requestCmd(requester Requester, kind request.Kind) tea.Cmd {
	return func() tea.Msg {
		return toggleResultMsg{kind: kind, err: requester.Toggle(kind)}
	}
}

func (m ToggleModel) View() string {
	var b strings.Builder
	b.WriteString(Banner(m.state))
	b.WriteString("\n\n")

	switch {
	case m.busy:
		b.WriteString(fmt.Sprintf("sending %s request...", m.state.NextRequest()))
	case m.failure != nil:
		b.WriteString(failureStyle.Render(fmt.Sprintf("request failed: %v", m.failure)))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("press any key to toggle, ctrl+c to quit"))

	view := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// State exposes the current toggle state for tests.
func (m ToggleModel) State() toggle.State {
	return m.state
}
