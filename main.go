// lockscreen is a terminal lock/home screen: a live clock and date, a row of
// launcher tiles, a toast confirming each launch, a pull-down shade with
// build and host details, and an ambient shimmer that respects the user's
// reduced-motion preference.
//
// Usage:
//
//	lockscreen [flags]
//
// Flags:
//
//	-config string     Path to configuration file (default: ~/.config/lockscreen/config.toml)
//	-once              Render a single frame to stdout and exit
//	-verbose           Enable debug logging
//	-version           Print version and exit
//	--reduce-motion    Disable ambient animation
//	--no-animations    Same as --reduce-motion
//
// LOCKSCREEN_REDUCE_MOTION=1 (or true, TRUE, yes, YES) also disables
// ambient animation.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"

	"gitlab.com/tinyland/lab/lockscreen/pkg/config"
	"gitlab.com/tinyland/lab/lockscreen/pkg/home"
	"gitlab.com/tinyland/lab/lockscreen/pkg/instance"
	"gitlab.com/tinyland/lab/lockscreen/pkg/sched"
	"gitlab.com/tinyland/lab/lockscreen/pkg/sysinfo"
	"gitlab.com/tinyland/lab/lockscreen/pkg/terminal"
	"gitlab.com/tinyland/lab/lockscreen/pkg/theme"
	"gitlab.com/tinyland/lab/lockscreen/pkg/tui"
	"gitlab.com/tinyland/lab/lockscreen/pkg/version"
	"gitlab.com/tinyland/lab/lockscreen/pkg/view"
)

// hostInfoTimeout bounds the startup host query.
const hostInfoTimeout = 2 * time.Second

func main() {
	var (
		configPath   = flag.String("config", "", "Path to configuration file")
		once         = flag.Bool("once", false, "Render a single frame to stdout and exit")
		verbose      = flag.Bool("verbose", false, "Enable debug logging")
		showVersion  = flag.Bool("version", false, "Print version and exit")
		reduceMotion = flag.Bool("reduce-motion", false, "Disable ambient animation")
		noAnimations = flag.Bool("no-animations", false, "Disable ambient animation")
	)
	flag.Parse()

	if *showVersion {
		v := version.Get()
		fmt.Printf("lockscreen %s (%s) built %s %s\n", v.Version, v.Commit, v.BuildTime, v.Platform())
		os.Exit(0)
	}

	// Load configuration
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	st, err := config.Capture(cfg, os.LookupEnv, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}
	// The flag package also accepts the single-dash spelling.
	st.ReduceMotion = st.ReduceMotion || *reduceMotion || *noAnimations

	logFile, logger, err := setupLogging(cfg.General, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)

	if err := run(st, cfg, logger, *once); err != nil {
		logger.Error("lockscreen exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "lockscreen: %v\n", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(st config.Startup, cfg *config.Config, logger *slog.Logger, once bool) error {
	if _, err := st.Build.Semver(); err != nil {
		logger.Warn("version is not valid semver", "version", st.Build.Version, "error", err)
	}

	out := terminal.Inspect(os.Stdout, os.LookupEnv)
	th := loadTheme(cfg.Theme.Name, logger)
	host := collectHost(logger)

	logger.Info("starting lockscreen",
		"version", st.Build.Version,
		"platform", st.Build.Platform(),
		"terminal", out.Term.String(),
		"colors", out.ColorName(),
		"reduce_motion", st.ReduceMotion,
		"tiles", len(st.Tiles),
	)

	clock := clockwork.NewRealClock()
	surface := view.NewSurface()
	loop := sched.New(clock, sched.WithAfterRun(surface.Flush))
	ctrl := home.New(st, surface.Handle(), loop, clock, logger, home.WithHostText(host))

	if once || !out.Interactive {
		ctrl.Start()
		lipgloss.SetColorProfile(out.Profile)
		fmt.Println(tui.RenderFrame(surface.Snapshot(), st.Tiles, th, out.Size.Cols, out.Size.Rows))
		loop.Close()
		surface.Close()
		return nil
	}

	if pidFile := cfg.General.PIDFile; pidFile != "" {
		lock, err := instance.Acquire(pidFile)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("failed to release PID file", "path", lock.Path(), "error", err)
			}
		}()
	}

	return runInteractive(st, th, out, clock, surface, loop, ctrl, logger)
}

// runInteractive drives the bubbletea program. The controller and the view
// model are only touched from the loop goroutine; the program talks to it
// through Post and receives snapshots through Send.
func runInteractive(
	st config.Startup,
	th theme.Theme,
	out terminal.Output,
	clock clockwork.Clock,
	surface *view.Surface,
	loop *sched.Loop,
	ctrl *home.Controller,
	logger *slog.Logger,
) error {
	started := clock.Now()
	model := tui.New(st.Tiles, home.NewInbox(loop.Post, ctrl), th)
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if out.Mouse() {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	surface.Subscribe(func(s view.Snapshot) { p.Send(tui.SnapshotMsg{Snapshot: s}) })
	ctrl.Start()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		loop.Run(ctx)
	}()
	loop.Post(surface.Flush)

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			logger.Info("received shutdown signal")
			p.Quit()
		case <-ctx.Done():
		}
	}()

	_, err := p.Run()

	cancel()
	<-loopDone
	surface.Close()

	logger.Info("lockscreen stopped", "uptime", clock.Since(started).Round(time.Second))
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// setupLogging opens the log file and returns a text logger writing to it.
// The TUI owns the terminal, so nothing is logged to stderr.
func setupLogging(gc config.GeneralConfig, verbose bool) (io.WriteCloser, *slog.Logger, error) {
	if err := ensureLogDir(gc.LogFile); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(gc.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(gc.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return f, logger, nil
}

func ensureLogDir(logFile string) error {
	return os.MkdirAll(filepath.Dir(logFile), 0755)
}

// loadTheme registers user themes and resolves name, falling back to the
// default theme when name is unknown.
func loadTheme(name string, logger *slog.Logger) theme.Theme {
	dir := config.ThemesDir()
	loaded, err := theme.LoadDir(dir)
	if err != nil {
		logger.Warn("some user themes failed to load", "dir", dir, "error", err)
	}
	if len(loaded) > 0 {
		logger.Debug("loaded user themes", "dir", dir, "themes", loaded)
	}
	if !slices.Contains(theme.Names(), strings.ToLower(name)) {
		logger.Warn("unknown theme, using default", "theme", name)
	}
	return theme.Get(name)
}

// collectHost returns the host line for the shade, or "" if the host could
// not be described.
func collectHost(logger *slog.Logger) string {
	ctx, cancel := context.WithTimeout(context.Background(), hostInfoTimeout)
	defer cancel()

	h, err := sysinfo.Collect(ctx, os.LookupEnv)
	if err != nil {
		logger.Debug("host info unavailable", "error", err)
	}
	return h.String()
}
