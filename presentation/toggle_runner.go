package presentation

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"labbot/presentation/ui"
)

// ToggleRunner drives the interactive toggle loop until the user quits or
// the application context is cancelled.
type ToggleRunner struct {
	deps ClientAppDependencies
}

func NewToggleRunner(deps ClientAppDependencies) *ToggleRunner {
	return &ToggleRunner{
		deps: deps,
	}
}

func (r *ToggleRunner) Run(ctx context.Context) error {
	program := tea.NewProgram(
		ui.NewToggleModel(r.deps.Client()),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	if ctx.Err() != nil {
		// interrupted shutdown is not a failure
		return nil
	}
	return err
}
