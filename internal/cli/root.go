package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fixgalleria/fixgalleria/internal/config"
	"github.com/fixgalleria/fixgalleria/internal/format"
	"github.com/fixgalleria/fixgalleria/internal/store"
	"github.com/fixgalleria/fixgalleria/internal/tasklist"
	"github.com/fixgalleria/fixgalleria/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool

	Config *config.Config
}

func NewRootCmd() *cobra.Command {
	app := &App{Config: config.Load()}

	cmd := &cobra.Command{
		Use:          "fixgalleria",
		Short:        "Local task list + image-generation studio (CLI + TUI)",
		SilenceUsage: true,
		Example: `
  # Start the interactive TUI
  fixgalleria

  # Scriptable commands
  fixgalleria tasks list
  fixgalleria tasks add "Buy milk"

  # Generate an image (requires GEMINI_API_KEY)
  fixgalleria generate "a lighthouse at dusk" --aspect 16:9`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("FIXGALLERIA_DIR", ""), "Path to store dir (default: discovered .fixgalleria)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newGenerateCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runTUI(app *App) error {
	s, err := appStore(app)
	if err != nil {
		return err
	}
	return tui.Run(s, app.Config, tui.DefaultDelays())
}

func appStore(app *App) (store.Store, error) {
	dir := app.Dir
	if dir == "" {
		if app.Config != nil && app.Config.Dir != "" {
			dir = app.Config.Dir
		} else {
			d, err := store.DefaultDir()
			if err != nil {
				return store.Store{}, err
			}
			dir = d
		}
		app.Dir = dir
	}
	return store.Store{Dir: dir}, nil
}

// loadManager builds a manager seeded from the store. Absent or malformed
// stored data degrades to an empty list inside the store.
func loadManager(ctx context.Context, app *App) (*tasklist.Manager, error) {
	s, err := appStore(app)
	if err != nil {
		return nil, err
	}
	tasks, err := s.LoadTasks(ctx)
	if err != nil {
		return nil, err
	}
	m := tasklist.NewManager(s)
	m.Load(tasks)
	return m, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
