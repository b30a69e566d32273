package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/taskdesk/internal/common"
	"github.com/dmitrijs2005/taskdesk/internal/services"
)

// parseIDs converts command arguments to task IDs, reporting the first bad
// token to the user.
func parseIDs(args []string) ([]int, bool) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			printlnFn(fmt.Sprintf("Invalid task id: %q", arg))
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// Add creates a task named by the arguments, prompting when none are given.
func (a *App) Add(ctx context.Context, args []string) error {
	svc := a.requireSession()
	if svc == nil {
		return nil
	}

	name := strings.Join(args, " ")
	if strings.TrimSpace(name) == "" {
		var err error
		name, err = getSimpleText(a.reader, "Enter task name", os.Stdout)
		if err != nil {
			return err
		}
	}

	task, err := svc.Add(ctx, name)
	if err != nil {
		if common.IsValidation(err) {
			printlnFn("Please enter a task name!")
			return nil
		}
		printlnFn("Error:", err.Error())
		return nil
	}

	printlnFn(fmt.Sprintf("Task %d added: %s", task.ID, task.Name))
	return nil
}

// List renders the sequence under the active filter, followed by the
// statistics line.
func (a *App) List(ctx context.Context) error {
	svc := a.requireSession()
	if svc == nil {
		return nil
	}

	shown := 0
	for task := range svc.Filter(a.filter) {
		printlnFn(fmt.Sprintf("%3d  %-7s  %-19s  %s", task.ID, task.Status.Label(), task.CreatedAt, task.Name))
		shown++
	}
	if shown == 0 {
		printlnFn("No tasks to show")
	}
	printlnFn(a.statsLine(svc))
	return nil
}

// Edit renames the task given by the first argument (or an interactive
// prompt), asking for the new name interactively.
func (a *App) Edit(ctx context.Context, args []string) error {
	svc := a.requireSession()
	if svc == nil {
		return nil
	}

	if len(args) == 0 {
		id, err := getSimpleText(a.reader, "Enter task id to edit", os.Stdout)
		if err != nil {
			return err
		}
		args = []string{id}
	}
	ids, ok := parseIDs(args[:1])
	if !ok {
		return nil
	}

	newName, err := getSimpleText(a.reader, "Enter new task name", os.Stdout)
	if err != nil {
		return err
	}

	task, err := svc.Edit(ctx, ids[0], newName)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			printlnFn("Task not found!")
		case common.IsValidation(err):
			printlnFn("Task name cannot be empty!")
		default:
			printlnFn("Error:", err.Error())
		}
		return nil
	}

	printlnFn(fmt.Sprintf("Task %d updated: %s", task.ID, task.Name))
	return nil
}

// Done marks the given task done; an already-done task gets a neutral notice.
func (a *App) Done(ctx context.Context, args []string) error {
	return a.setStatus(ctx, args, true)
}

// Pending marks the given task pending again.
func (a *App) Pending(ctx context.Context, args []string) error {
	return a.setStatus(ctx, args, false)
}

func (a *App) setStatus(ctx context.Context, args []string, done bool) error {
	svc := a.requireSession()
	if svc == nil {
		return nil
	}

	if len(args) == 0 {
		printlnFn("Usage: done <id> / pending <id>")
		return nil
	}
	ids, ok := parseIDs(args[:1])
	if !ok {
		return nil
	}

	var (
		changed bool
		err     error
		label   string
	)
	if done {
		changed, err = svc.MarkDone(ctx, ids[0])
		label = "done"
	} else {
		changed, err = svc.MarkPending(ctx, ids[0])
		label = "pending"
	}

	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Task not found!")
		} else {
			printlnFn("Error:", err.Error())
		}
		return nil
	}
	if !changed {
		printlnFn(fmt.Sprintf("Task %d is already %s", ids[0], label))
		return nil
	}

	printlnFn(fmt.Sprintf("Task %d marked %s", ids[0], label))
	return nil
}

// Delete removes the given tasks after confirmation. Remaining tasks are
// renumbered, so the user must re-check ids before the next command.
func (a *App) Delete(ctx context.Context, args []string) error {
	svc := a.requireSession()
	if svc == nil {
		return nil
	}

	if len(args) == 0 {
		line, err := getSimpleText(a.reader, "Enter task id(s) to delete", os.Stdout)
		if err != nil {
			return err
		}
		args = strings.Fields(line)
		if len(args) == 0 {
			return nil
		}
	}
	ids, ok := parseIDs(args)
	if !ok {
		return nil
	}

	yes, err := askYesNo(a.reader, fmt.Sprintf("Delete %d task(s)?", len(ids)), os.Stdout)
	if err != nil {
		return err
	}
	if !yes {
		return nil
	}

	removed, err := svc.Delete(ctx, ids...)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No matching tasks found")
		} else {
			printlnFn("Error:", err.Error())
		}
		return nil
	}

	printlnFn(fmt.Sprintf("Deleted %d task(s); remaining tasks were renumbered", removed))
	return nil
}

// SetFilter updates the caller-held list filter.
func (a *App) SetFilter(ctx context.Context, args []string) error {
	svc := a.requireSession()
	if svc == nil {
		return nil
	}

	if len(args) == 0 {
		printlnFn("Usage: filter all|pending|done")
		return nil
	}

	switch strings.ToLower(args[0]) {
	case "all":
		a.filter = services.FilterAll
	case "pending":
		a.filter = services.FilterPending
	case "done":
		a.filter = services.FilterDone
	default:
		printlnFn("Usage: filter all|pending|done")
		return nil
	}

	return a.List(ctx)
}

// Stats prints the statistics line for the full sequence.
func (a *App) Stats(ctx context.Context) error {
	svc := a.requireSession()
	if svc == nil {
		return nil
	}
	printlnFn(a.statsLine(svc))
	return nil
}

func (a *App) statsLine(svc taskService) string {
	st := svc.Statistics()
	return fmt.Sprintf("Total: %d | Completed: %d | Pending: %d | Completion rate: %.1f%%",
		st.Total, st.Completed, st.Pending, st.CompletionRate)
}
