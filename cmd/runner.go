package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tunedex/internal/catalog"
	"github.com/desertthunder/tunedex/internal/seed"
	"github.com/desertthunder/tunedex/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	store      *catalog.Store
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Store      *catalog.Store
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Store == nil {
		opts.Store = catalog.New(catalog.WithLogger(opts.Logger))
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		store:      opts.Store,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, replayCommand, exportCommand, browseCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// applyScript loads the catalog script at path into the runner's store.
func (r *Runner) applyScript(path string) (seed.Report, error) {
	if path == "" {
		return seed.Report{}, fmt.Errorf("%w: catalog script path", shared.ErrMissingArgument)
	}

	report, err := seed.LoadInto(path, r.store, r.logger)
	if err != nil {
		return report, fmt.Errorf("failed to apply %s: %w", path, err)
	}

	r.logger.Info("applied catalog script", "path", path, "entries", report.Total())
	return report, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
