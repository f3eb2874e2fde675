package cli

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/gantt/internal/cli/formatter"
	"github.com/alexanderramin/gantt/internal/parser"
	"github.com/alexanderramin/gantt/internal/render"
	"github.com/alexanderramin/gantt/internal/watch"
)

// App holds the writers and configuration the root command runs against.
type App struct {
	Config Config
	Out    io.Writer
	Err    io.Writer
}

// NewRootCmd creates the top-level "gantt" command.
func NewRootCmd(app *App) *cobra.Command {
	cfg := app.Config
	var continuous bool

	cmd := &cobra.Command{
		Use:   "gantt [flags] file",
		Short: "Render a bar chart image from a sectioned task file",
		Long: `Render a bar chart image from a sectioned task file.

The input groups tasks under section markers:

  *Phase 1
  0, 3, This is the first task
  3, 6, This is another task

Each task line is "start, end, label"; labels may contain commas. One
horizontal bar is drawn per task, colored by section.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, app, cfg, args[0], continuous)
		},
	}

	cmd.Flags().BoolVarP(&continuous, "continuous", "c", false,
		"keep running and re-render when the file changes (polled every second)")
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "output image path")
	cmd.Flags().Float64Var(&cfg.Width, "width", cfg.Width, "output width in inches")
	cmd.Flags().Float64Var(&cfg.Height, "height", cfg.Height, "output height in inches")

	return cmd
}

func runRender(cmd *cobra.Command, app *App, cfg Config, file string, continuous bool) error {
	status := formatter.New(app.Out)

	renderOnce := func() error {
		status.Statusf("Parsing %s...", file)
		doc, err := parser.ParseFile(file)
		if err != nil {
			return err
		}
		status.Statusf("Saving to %s...", cfg.Output)
		return render.Chart(doc, render.Config{
			Width:  cfg.Width,
			Height: cfg.Height,
			Output: cfg.Output,
		})
	}

	if !continuous {
		if err := renderOnce(); err != nil {
			return err
		}
		status.Donef("Done.")
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := watch.New(file, cfg.PollInterval, func() error {
		if err := renderOnce(); err != nil {
			return err
		}
		status.Statusf("Waiting for changes...")
		return nil
	})
	w.OnPollError = func(err error) {
		// Editors briefly remove the file mid-save; skip the cycle.
		formatter.New(app.Err).Errorf("read skipped: %v", err)
	}
	return w.Run(ctx)
}
