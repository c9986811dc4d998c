package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/plantparent/internal/care"
	"github.com/dmitrijs2005/plantparent/internal/config"
	"github.com/dmitrijs2005/plantparent/internal/filex"
	"github.com/dmitrijs2005/plantparent/internal/i18n"
	"github.com/dmitrijs2005/plantparent/internal/logging"
	"github.com/dmitrijs2005/plantparent/internal/models"
	"github.com/dmitrijs2005/plantparent/internal/notify"
	"github.com/dmitrijs2005/plantparent/internal/plants"
	"github.com/dmitrijs2005/plantparent/internal/premium"
	"github.com/dmitrijs2005/plantparent/internal/settings"
	"github.com/dmitrijs2005/plantparent/internal/storage"
)

type plantStore interface {
	Load(ctx context.Context) error
	Add(ctx context.Context, d models.PlantDraft) (models.Plant, error)
	Update(ctx context.Context, id string, patch models.PlantPatch) error
	Delete(ctx context.Context, id string) error
	AddPhoto(ctx context.Context, id, uri string) (models.Photo, error)
	LogCare(ctx context.Context, id string, c models.CareType) (models.CareEntry, error)
	List(ctx context.Context) ([]models.Plant, error)
	Get(ctx context.Context, id string) (models.Plant, error)
	Close() error
}

type premiumService interface {
	Load(ctx context.Context) bool
	IsPremium() bool
	Purchase(ctx context.Context) (bool, error)
}

type settingsService interface {
	Load(ctx context.Context) settings.Settings
	Current() settings.Settings
	SetLanguage(ctx context.Context, code string) error
	SetDateFormat(ctx context.Context, f settings.DateFormat) error
	FormatDate(t time.Time) string
	Export(ctx context.Context) error
}

type reminderNotifier interface {
	Enabled() bool
	SendReminders(ctx context.Context, tr *i18n.Translator, reminders []care.Reminder) error
}

type errorReporter interface {
	CaptureError(ctx context.Context, err error, component string)
}

type App struct {
	config   *config.Config
	plants   plantStore
	premium  premiumService
	settings settingsService
	notifier reminderNotifier
	reporter errorReporter
	log      logging.Logger

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	closeStorage func() error
}

// NewApp opens storage and wires the services on top of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, reporter errorReporter) (*App, error) {
	repos, err := openStorage(ctx, c)
	if err != nil {
		return nil, err
	}

	notifier, err := notify.New(c.NotifyURLs, c.NotifyTimeout, log)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	prem := premium.New(repos.KV, log)
	set := settings.New(repos.KV, log, c.Locale)
	store := plants.New(repos.KV, prem, log)

	return &App{
		config:       c,
		plants:       store,
		premium:      prem,
		settings:     set,
		notifier:     notifier,
		reporter:     reporter,
		log:          log,
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		now:          time.Now,
		closeStorage: repos.Close,
	}, nil
}

func openStorage(ctx context.Context, c *config.Config) (*storage.Repositories, error) {
	if c.InMemory {
		return storage.OpenMemory(), nil
	}

	if _, err := filex.EnsureParentDir(c.DataPath); err != nil {
		return nil, fmt.Errorf("error preparing data directory: %w", err)
	}

	repos, err := storage.Open(ctx, c.DataPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	return repos, nil
}

// Run starts the REPL on standard input and returns when the user quits,
// input ends or ctx is canceled.
func (a *App) Run(ctx context.Context) {
	if isTerminal(int(os.Stdin.Fd())) {
		printlnFn("Welcome to PlantParent (type 'help' for commands)")
	}
	if err := a.Reload(ctx); err != nil {
		a.handleError(ctx, "load", err)
	}
	runREPL(ctx, a, a.status, a.reader)
}

// Close stops the plant store and releases storage.
func (a *App) Close() error {
	err := a.plants.Close()
	if a.closeStorage != nil {
		if cerr := a.closeStorage(); err == nil {
			err = cerr
		}
	}
	return err
}

// Reload refreshes every service from storage.
func (a *App) Reload(ctx context.Context) error {
	a.premium.Load(ctx)
	a.settings.Load(ctx)
	return a.plants.Load(ctx)
}

func (a *App) status(ctx context.Context) string {
	if a.premium.IsPremium() {
		return "premium"
	}
	list, err := a.plants.List(ctx)
	if err != nil {
		return "free"
	}
	return fmt.Sprintf("free %d/%d", len(list), premium.FreePlantLimit)
}

func (a *App) translator() *i18n.Translator {
	return i18n.New(a.settings.Current().Language)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
