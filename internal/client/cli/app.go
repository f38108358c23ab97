package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/signon/internal/client/collections"
	"github.com/dmitrijs2005/signon/internal/client/config"
	"github.com/dmitrijs2005/signon/internal/client/models"
	"github.com/dmitrijs2005/signon/internal/client/services"
	"github.com/dmitrijs2005/signon/internal/client/session"
	"github.com/dmitrijs2005/signon/internal/client/store"
	"github.com/dmitrijs2005/signon/internal/client/translation"
	"github.com/dmitrijs2005/signon/internal/logging"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	store     *store.KVStore
	machine   *session.Machine
	callbacks session.Callbacks
	account   services.AccountService
	translate services.TranslateService
	lists     *collections.Manager
	reader    *bufio.Reader
	out       io.Writer
	now       func() time.Time

	splashOnce sync.Once
	splashDone chan struct{}

	mu    sync.Mutex
	path  string
	trail []string
	slot  *translation.Slot
	last  *models.HistoryEntry
	admin bool
	slide int
}

// NewApp opens the local database and wires the services. Logs go to
// stderr so they never interleave with prompts.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	opts := logging.Options{Backend: c.LogBackend, Level: c.LogLevel}
	switch strings.ToLower(c.LogFormat) {
	case "", "text":
	case "json":
		opts.JSON = true
	default:
		return nil, fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	logger, err := logging.New(os.Stderr, opts)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, c.DatabasePath,
		store.WithQuota(c.StorageQuotaBytes),
		store.WithAtomicClear(c.AtomicLogout),
		store.WithLogger(logger.With("component", "store")),
	)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	lists := collections.New(st)
	machine := session.NewMachine(st,
		session.WithSplash(c.SplashDuration),
		session.WithLogger(logger.With("component", "session")),
	)
	provider := translation.NewSimulator(translation.Delays{Audio: c.AudioDelay, Video: c.VideoDelay, Text: c.TextDelay})

	a := &App{
		config:     c,
		logger:     logger,
		store:      st,
		machine:    machine,
		callbacks:  machine,
		account:    services.NewAccountService(st, lists, c.AdminPassword, logger.With("component", "account")),
		translate:  services.NewTranslateService(provider, lists.History, logger.With("component", "translate")),
		lists:      lists,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		now:        time.Now,
		splashDone: make(chan struct{}),
		path:       PathHome,
	}
	machine.Subscribe(a.onGateChange)
	return a, nil
}

// Run shows the splash, waits for it to elapse and then serves the REPL
// until the user exits, input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	printlnFn("Sign On: speech, video and text to Indian Sign Language")
	if _, err := a.machine.Start(ctx); err != nil {
		return err
	}

	select {
	case <-a.splashDone:
	case <-ctx.Done():
		return ctx.Err()
	}

	runREPL(ctx, a, a.reader)
	return nil
}

// Close tears down the splash timer, any running translation and the
// database handle.
func (a *App) Close() {
	a.machine.Close()
	a.closeSlot()
	if err := a.store.Close(); err != nil {
		a.logger.Warn(context.Background(), "closing database", "error", err)
	}
}

func (a *App) onGateChange(from, to session.Gate) {
	if from == session.GateHome {
		a.leaveHome()
	}
	if to == session.GateHome {
		a.mu.Lock()
		a.path = PathHome
		a.trail = nil
		a.mu.Unlock()
	}
	if to == session.GateOnboarding {
		a.mu.Lock()
		a.slide = 0
		a.mu.Unlock()
	}

	a.render(context.Background(), Resolve(to, PathHome))

	if from == session.GateSplash {
		a.splashOnce.Do(func() { close(a.splashDone) })
	}
}

func (a *App) leaveHome() {
	a.closeSlot()
	a.mu.Lock()
	defer a.mu.Unlock()
	a.path = PathHome
	a.trail = nil
	a.last = nil
	a.admin = false
}

// closeSlot tears down the current translation slot. It must not run with
// a.mu held: Close waits for an in-flight delivery, which takes a.mu.
func (a *App) closeSlot() {
	a.mu.Lock()
	slot := a.slot
	a.slot = nil
	a.mu.Unlock()
	if slot != nil {
		slot.Close()
	}
}

func (a *App) screen() Screen {
	a.mu.Lock()
	path := a.path
	a.mu.Unlock()
	return Resolve(a.machine.Gate(), path)
}

func (a *App) status() string {
	s := a.screen().Title()
	a.mu.Lock()
	slot := a.slot
	a.mu.Unlock()
	if slot != nil && slot.Busy() {
		s += " (translating...)"
	}
	return fmt.Sprintf("[%s]", s)
}

func (a *App) commands() []command {
	switch a.machine.Gate() {
	case session.GateSplash:
		return nil
	case session.GateOnboarding:
		return a.onboardingCommands()
	case session.GateAuth:
		return a.authCommands()
	case session.GateProfileSetup:
		return a.profileSetupCommands()
	case session.GateHome:
		return append(a.navCommands(), a.screenCommands(a.screen())...)
	default:
		return nil
	}
}

func (a *App) screenCommands(s Screen) []command {
	switch s {
	case ScreenDashboard:
		return a.dashboardCommands()
	case ScreenAudio, ScreenVideo, ScreenText:
		return a.translateCommands(s)
	case ScreenLearn:
		return a.learnCommands()
	case ScreenHistory:
		return a.historyCommands()
	case ScreenFavorites:
		return a.favoritesCommands()
	case ScreenProfile:
		return a.profileCommands()
	case ScreenHelp:
		return a.helpCommands()
	case ScreenAdmin:
		return a.adminCommands()
	default:
		return nil
	}
}

// render prints the intro of a screen.
func (a *App) render(ctx context.Context, s Screen) {
	printlnFn("")
	printlnFn("== " + s.Title() + " ==")
	switch s {
	case ScreenSplash:
		printlnFn("Loading...")
	case ScreenOnboarding:
		a.showSlide()
	case ScreenAuth:
		printlnFn("Type 'login' to sign in or 'signup' to create an account.")
	case ScreenProfileSetup:
		printlnFn("Tell us a little about yourself. Type 'setup' to begin.")
	case ScreenDashboard:
		a.showDashboard(ctx)
	case ScreenAudio:
		printlnFn("Type 'record [seconds]' to translate a recording.")
	case ScreenVideo:
		printlnFn("Type 'upload <file>' to translate a video.")
	case ScreenText:
		printlnFn("Type 'translate <text>' to translate text.")
	case ScreenLearn:
		a.showLessons()
	case ScreenHistory:
		a.reportIf(a.listHistory(ctx, nil))
	case ScreenFavorites:
		a.reportIf(a.listFavorites(ctx, nil))
	case ScreenProfile:
		a.reportIf(a.showProfile(ctx))
	case ScreenNotifications:
		printlnFn("All caught up! You have no new notifications.")
	case ScreenHelp:
		a.showFAQ()
	case ScreenAdmin:
		a.showAdmin(ctx)
	case ScreenNotFound:
		printlnFn("There is nothing here. Type 'home' to go back.")
	}
}
