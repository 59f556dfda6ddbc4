package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/bluebook/internal/core/logging"
	"github.com/colonyops/bluebook/internal/navigator"
	"github.com/colonyops/bluebook/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	app   *navigator.App
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *navigator.App) *TuiCmd {
	return &TuiCmd{flags: flags, app: app}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	ctx = logging.WithServer(ctx, cmd.app.Catalog.BaseURL())

	m := tui.New(ctx, tui.Options{
		Source: cmd.app.Catalog,
		Index:  cmd.app.Index,
		Opener: cmd.app.Launcher,
	})

	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
