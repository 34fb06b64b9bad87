package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/tunedex/internal/catalog"
	"github.com/desertthunder/tunedex/internal/shared"
	"github.com/desertthunder/tunedex/internal/ui"
	"github.com/urfave/cli/v3"
)

// Browse applies a catalog script and launches the interactive terminal browser.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(cmd.String("log-file"))
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)
	r.store = catalog.New(catalog.WithLogger(fileLogger))

	if _, err := r.applyScript(cmd.StringArg("script")); err != nil {
		return err
	}

	p := tea.NewProgram(ui.NewModel(r.store), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
