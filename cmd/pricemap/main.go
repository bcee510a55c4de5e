// cmd/pricemap/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/julianshen/pricemap/internal/board"
	"github.com/julianshen/pricemap/internal/catalog"
	"github.com/julianshen/pricemap/internal/config"
	"github.com/julianshen/pricemap/internal/output"
	"github.com/julianshen/pricemap/internal/runner"
	"github.com/julianshen/pricemap/internal/snapshot"
	"github.com/julianshen/pricemap/internal/store"
	"github.com/julianshen/pricemap/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	configPath  string
	catalogFlag string
	cacheFlag   string
	verbose     bool
)

func versionString() string {
	return fmt.Sprintf("pricemap %s (commit: %s, built: %s)", version, commit, date)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pricemap",
		Short: "Compare AI model pricing",
		Long: `pricemap shows per-token prices of hosted AI models side by side,
estimates what a prompt and response would cost on each, and draws a map
of the providers' AI services.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isTerminal(cmd.OutOrStdout()) {
				return runInteractive(cmd)
			}
			return runPlain(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "load the catalog from a YAML file")
	rootCmd.PersistentFlags().StringVar(&cacheFlag, "cache", "", "path to the snapshot cache database")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(estimateCmd())
	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(diagramCmd())
	rootCmd.AddCommand(servicesCmd())
	rootCmd.AddCommand(refreshCmd())
	rootCmd.AddCommand(exportCmd())

	return rootCmd
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if catalogFlag != "" {
		cfg.Catalog.File = catalogFlag
	}
	if cacheFlag != "" {
		cfg.Cache.Path = cacheFlag
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds a zerolog logger at the configured level. Console output
// is human-readable; file output is JSON lines.
func newLogger(w io.Writer, level string, console bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// app is the wiring shared by every command.
type app struct {
	cfg       *config.Config
	log       zerolog.Logger
	store     *store.Store
	refresher *snapshot.Refresher
}

// newApp loads config, opens the cache and builds the refresher. logOut
// receives console logs; a nil logOut sends JSON logs to the log file.
func newApp(logOut io.Writer) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	if logOut != nil {
		a.log = newLogger(logOut, cfg.Log.Level, true)
	} else {
		a.log = newFileLogger(cfg.Log.Level)
	}

	expiry, err := cfg.Cache.ExpiryDuration()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Cache.Path), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}
	s, err := store.NewStore(cfg.Cache.Path)
	if err != nil {
		// The cache is an accessory: run without it rather than fail.
		a.log.Warn().Err(err).Str("path", cfg.Cache.Path).Msg("opening snapshot cache")
	} else {
		a.store = s
	}

	var kv snapshot.KV
	if a.store != nil {
		kv = a.store
	}
	a.refresher = snapshot.NewRefresher(catalogSource(cfg), kv,
		snapshot.WithLogger(a.log),
		snapshot.WithExpiry(expiry))
	return a, nil
}

func newFileLogger(level string) zerolog.Logger {
	path := filepath.Join(config.DefaultDir(), "pricemap.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return newLogger(f, level, false)
}

func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
}

// catalogSource picks the configured catalog source.
func catalogSource(cfg *config.Config) catalog.Source {
	if cfg.Catalog.File != "" {
		return catalog.NewFileSource(cfg.Catalog.File)
	}
	return catalog.StaticSource{}
}

// load refreshes the catalog and returns its records.
func (a *app) load(ctx context.Context) ([]catalog.ModelRecord, error) {
	snap, err := a.refresher.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Data, nil
}

// defaultState returns the board state selected by the config's [view].
func (a *app) defaultState() board.State {
	s := board.NewState()
	s.SetProvider(catalog.ProviderGroup(a.cfg.View.Provider))
	s.SetClass(catalog.ModelClass(a.cfg.View.Class))
	return s
}

func runInteractive(cmd *cobra.Command) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	records, err := a.load(cmd.Context())
	if err != nil {
		return err
	}

	model := tui.NewModel(records, a.refresher, resolveConfigPath(), a.cfg)
	model.SetLogger(a.log)
	prog := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// runPlain prints the Markdown grid for the configured view when stdout is
// not a terminal.
func runPlain(cmd *cobra.Command) error {
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	records, err := a.load(cmd.Context())
	if err != nil {
		return err
	}
	report := output.NewReport(board.Build(records, a.defaultState()), a.refresher.LastUpdated())
	return writeReport(cmd.OutOrStdout(), "markdown", report)
}

func writeReport(w io.Writer, format string, report *output.Report) error {
	formatter, err := output.NewFormatter(format)
	if err != nil {
		return err
	}
	out, err := formatter.Format(report)
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// applyFilters overrides the state's selection with validated flag values.
func applyFilters(s *board.State, provider, class string) error {
	if provider != "" {
		g := catalog.ProviderGroup(provider)
		if !g.Valid() {
			return fmt.Errorf("unknown provider %q", provider)
		}
		s.SetProvider(g)
	}
	if class != "" {
		c := catalog.ModelClass(class)
		if !c.Valid() {
			return fmt.Errorf("unknown class %q", class)
		}
		s.SetClass(c)
	}
	return nil
}
