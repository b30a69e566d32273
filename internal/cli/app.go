package cli

import (
	"bufio"
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/taskdesk/internal/config"
	"github.com/dmitrijs2005/taskdesk/internal/filex"
	"github.com/dmitrijs2005/taskdesk/internal/logging"
	"github.com/dmitrijs2005/taskdesk/internal/models"
	"github.com/dmitrijs2005/taskdesk/internal/repositories/credentials"
	"github.com/dmitrijs2005/taskdesk/internal/repositories/tasks"
	"github.com/dmitrijs2005/taskdesk/internal/services"
	"github.com/dmitrijs2005/taskdesk/internal/session"
)

// authService is the slice of the Authenticator the CLI uses.
type authService interface {
	Mode() services.Mode
	SetMode(services.Mode)
	Login(ctx context.Context, username string, password []byte) (string, error)
	Signup(ctx context.Context, username string, password, confirm []byte) (string, error)
}

// taskService is the slice of the TaskService the CLI uses.
type taskService interface {
	Tasks() []models.Task
	Add(ctx context.Context, name string) (models.Task, error)
	Edit(ctx context.Context, id int, newName string) (models.Task, error)
	MarkDone(ctx context.Context, id int) (bool, error)
	MarkPending(ctx context.Context, id int) (bool, error)
	Delete(ctx context.Context, ids ...int) (int, error)
	Filter(f services.StatusFilter) iter.Seq[models.Task]
	Statistics() services.Statistics
}

// newTaskService is a test seam for constructing the per-session service.
var newTaskService = func(ctx context.Context, sess *session.Session, repo tasks.Repository, log logging.Logger) (taskService, error) {
	return services.NewTaskService(ctx, sess, repo, log)
}

// App wires the REPL to the Authenticator and the per-session TaskService.
// The active list filter is held here, not in the service: it is view state.
type App struct {
	config   *config.Config
	log      logging.Logger
	auth     authService
	taskRepo tasks.Repository

	sess   *session.Session
	svc    taskService
	filter services.StatusFilter

	// pendingUsername pre-fills the username prompt when switching between
	// the login and signup variants.
	pendingUsername string

	reader *bufio.Reader
}

// NewApp builds the application around the configured data directory,
// creating it if needed.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	credRepo := credentials.NewJSONFileRepository(filepath.Join(dir, cfg.UsersFileName))

	return &App{
		config:   cfg,
		log:      log,
		auth:     services.NewAuthenticator(credRepo, log),
		taskRepo: tasks.NewJSONFileRepository(dir),
		filter:   services.FilterAll,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to Taskdesk (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.sess != nil
}

func (a *App) status() string {
	if a.sess == nil {
		return ""
	}
	return fmt.Sprintf(" (%s)", a.sess.Username)
}

// requireSession returns the active task service, reporting to the user when
// there is none.
func (a *App) requireSession() taskService {
	if a.svc == nil {
		printlnFn("Please login first")
		return nil
	}
	return a.svc
}
