package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage the task list",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksDoneCmd(app))
	cmd.AddCommand(newTasksEditCmd(app))
	cmd.AddCommand(newTasksRmCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManager(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": m.Tasks()})
		},
	}
}

func newTasksAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManager(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			task, ok := m.Add(cmd.Context(), strings.Join(args, " "))
			if !ok {
				// Empty text is a no-op, not a failure.
				fmt.Fprintln(cmd.ErrOrStderr(), "nothing to add (empty text)")
				return nil
			}
			if err := m.LastErr(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": task})
		},
	}
}

func newTasksDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			m, err := loadManager(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !m.Toggle(cmd.Context(), id) {
				fmt.Fprintf(cmd.ErrOrStderr(), "no task with id %d\n", id)
				return nil
			}
			if err := m.LastErr(); err != nil {
				return writeErr(cmd, err)
			}
			task, _ := m.Task(id)
			return writeOut(cmd, app, map[string]any{"data": task})
		},
	}
}

func newTasksEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Replace a task's text",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			m, err := loadManager(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !m.BeginEdit(id) {
				fmt.Fprintf(cmd.ErrOrStderr(), "no task with id %d\n", id)
				return nil
			}
			if !m.SaveEdit(cmd.Context(), id, strings.Join(args[1:], " ")) {
				fmt.Fprintln(cmd.ErrOrStderr(), "empty text; task unchanged")
				return nil
			}
			if err := m.LastErr(); err != nil {
				return writeErr(cmd, err)
			}
			task, _ := m.Task(id)
			return writeOut(cmd, app, map[string]any{"data": task})
		},
	}
}

func newTasksRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			m, err := loadManager(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !m.Delete(cmd.Context(), id) {
				fmt.Fprintf(cmd.ErrOrStderr(), "no task with id %d\n", id)
				return nil
			}
			if err := m.LastErr(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"deleted": id})
		},
	}
}

func parseTaskID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}
