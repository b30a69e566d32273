package services

import (
	"context"
	"errors"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskdesk/internal/common"
	"github.com/dmitrijs2005/taskdesk/internal/logging"
	"github.com/dmitrijs2005/taskdesk/internal/models"
	"github.com/dmitrijs2005/taskdesk/internal/repositories/tasks"
	"github.com/dmitrijs2005/taskdesk/internal/session"
	"github.com/dmitrijs2005/taskdesk/internal/timex"
)

// StatusFilter selects which tasks a view includes.
type StatusFilter int

const (
	FilterAll StatusFilter = iota
	FilterPending
	FilterDone
)

func (f StatusFilter) matches(s models.Status) bool {
	switch f {
	case FilterPending:
		return s == models.StatusPending
	case FilterDone:
		return s == models.StatusDone
	default:
		return true
	}
}

// Statistics summarizes one task sequence. CompletionRate is a percentage,
// zero when the sequence is empty.
type Statistics struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate float64
}

// TaskService owns the in-memory task sequence for one session and writes it
// through to the store after every mutation. Mutations are write-ahead: the
// candidate sequence is persisted first and committed to memory only after a
// successful save, so a failed write never leaves memory ahead of disk.
//
// Invariant: task IDs are always exactly 1..N in sequence order. Append
// assigns max+1 (which is N+1), and Delete renumbers the survivors.
type TaskService struct {
	sess  *session.Session
	repo  tasks.Repository
	log   logging.Logger
	now   func() time.Time
	tasks []models.Task
}

// NewTaskService loads the session user's persisted sequence and takes
// ownership of it. A corrupt task file is logged and degrades to an empty
// sequence; the file is left untouched until the first successful save.
func NewTaskService(ctx context.Context, sess *session.Session, repo tasks.Repository, log logging.Logger) (*TaskService, error) {
	seq, err := repo.Load(ctx, sess.Username)
	if err != nil {
		if !errors.Is(err, common.ErrCorrupted) {
			return nil, err
		}
		log.Warn(ctx, "task file unreadable, starting empty", "user", sess.Username, "error", err)
		seq = []models.Task{}
	}

	return &TaskService{
		sess:  sess,
		repo:  repo,
		log:   log.With("session_id", sess.ID.String()),
		now:   time.Now,
		tasks: seq,
	}, nil
}

// Tasks returns a copy of the current sequence in insertion order.
func (s *TaskService) Tasks() []models.Task {
	return slices.Clone(s.tasks)
}

// Add appends a new pending task named name and returns it. The new ID is
// max existing + 1, which keeps the 1..N range dense on append.
func (s *TaskService) Add(ctx context.Context, name string) (models.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Task{}, common.NewValidationError("name", "required")
	}

	maxID := 0
	for _, t := range s.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	task := models.Task{
		ID:        maxID + 1,
		Name:      name,
		Status:    models.StatusPending,
		CreatedAt: timex.Stamp(s.now()),
	}

	next := append(slices.Clone(s.tasks), task)
	if err := s.save(ctx, next); err != nil {
		return models.Task{}, err
	}

	s.log.Info(ctx, "task added", "id", task.ID)
	return task, nil
}

// Edit renames the task with the given id, preserving its status and
// creation time.
func (s *TaskService) Edit(ctx context.Context, id int, newName string) (models.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Task{}, common.ErrNotFound
	}

	newName = strings.TrimSpace(newName)
	if newName == "" {
		return models.Task{}, common.NewValidationError("name", "required")
	}

	next := slices.Clone(s.tasks)
	next[idx].Name = newName
	if err := s.save(ctx, next); err != nil {
		return models.Task{}, err
	}

	s.log.Info(ctx, "task renamed", "id", id)
	return next[idx], nil
}

// MarkDone transitions the task to Done. It returns false with a nil error
// when the task is already Done; nothing is written in that case.
func (s *TaskService) MarkDone(ctx context.Context, id int) (bool, error) {
	return s.setStatus(ctx, id, models.StatusDone)
}

// MarkPending transitions the task back to Pending. It returns false with a
// nil error when the task is already Pending; nothing is written.
func (s *TaskService) MarkPending(ctx context.Context, id int) (bool, error) {
	return s.setStatus(ctx, id, models.StatusPending)
}

func (s *TaskService) setStatus(ctx context.Context, id int, target models.Status) (bool, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return false, common.ErrNotFound
	}
	if s.tasks[idx].Status == target {
		return false, nil
	}

	next := slices.Clone(s.tasks)
	next[idx].Status = target
	if err := s.save(ctx, next); err != nil {
		return false, err
	}

	s.log.Info(ctx, "task status changed", "id", id, "status", string(target))
	return true, nil
}

// Delete removes every task whose ID is in ids and renumbers the survivors
// to 1..N in their existing relative order. It returns the number removed.
// When none of the ids exist (a stale view), it returns (0, ErrNotFound)
// and changes nothing.
//
// Renumbering means IDs are only stable between deletions; callers must
// re-resolve IDs from a fresh view after any delete.
func (s *TaskService) Delete(ctx context.Context, ids ...int) (int, error) {
	doomed := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
	}

	next := make([]models.Task, 0, len(s.tasks))
	removed := 0
	for _, t := range s.tasks {
		if _, ok := doomed[t.ID]; ok {
			removed++
			continue
		}
		next = append(next, t)
	}
	if removed == 0 {
		return 0, common.ErrNotFound
	}

	for i := range next {
		next[i].ID = i + 1
	}

	if err := s.save(ctx, next); err != nil {
		return 0, err
	}

	s.log.Info(ctx, "tasks deleted", "count", removed)
	return removed, nil
}

// Filter returns a lazy, restartable view of the tasks matching f, in
// sequence order. The view reads the sequence as of each iteration and never
// mutates it; the active filter itself is caller-held state.
func (s *TaskService) Filter(f StatusFilter) iter.Seq[models.Task] {
	return func(yield func(models.Task) bool) {
		for _, t := range s.tasks {
			if !f.matches(t.Status) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Statistics computes totals over the current sequence. Pure read.
func (s *TaskService) Statistics() Statistics {
	st := Statistics{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Status == models.StatusDone {
			st.Completed++
		}
	}
	st.Pending = st.Total - st.Completed
	if st.Total > 0 {
		st.CompletionRate = float64(st.Completed) / float64(st.Total) * 100
	}
	return st
}

func (s *TaskService) indexOf(id int) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
}

// save persists the candidate sequence and commits it to memory only on
// success.
func (s *TaskService) save(ctx context.Context, next []models.Task) error {
	if err := s.repo.Save(ctx, s.sess.Username, next); err != nil {
		s.log.Error(ctx, "task save failed", "error", err)
		return err
	}
	s.tasks = next
	return nil
}
