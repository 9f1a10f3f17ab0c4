package tui

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// Run shows the model until the source finishes, the user quits or ctx is
// cancelled. finished reports whether the source ran out on its own.
func Run(ctx context.Context, deps Deps, opts ...tea.ProgramOption) (finished bool, err error) {
	model := New(deps)

	p := tea.NewProgram(&model, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to run tui: %w", err)
	}
	return model.Finished(), nil
}
