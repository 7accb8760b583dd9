package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"salarywatch/internal/config"
	"salarywatch/internal/core/earnings"
	"salarywatch/internal/core/model"
	"salarywatch/internal/core/salary"
	"salarywatch/internal/core/stopwatch"
	"salarywatch/internal/lib/sl"
	"salarywatch/internal/storage"
	"salarywatch/internal/ui/preferences"
	"salarywatch/internal/ui/tui"
)

// ErrInvalidWage is returned by the project command for unusable wages.
var ErrInvalidWage = errors.New("hourly wage must be a number greater than zero")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "salarywatch",
		Short:         "Live salary stopwatch",
		Long:          "Track your real-time earnings as you work.\n\nEnvironment:\n" + config.Usage(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runGUI(cfg, sl.New(cfg.LogLevel, cmd.ErrOrStderr()))
		},
	}

	root.AddCommand(newTUICmd())
	root.AddCommand(newProjectCmd())
	return root
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the stopwatch in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// The alternate screen owns stdout; keep stderr quiet below warn.
			level := cfg.LogLevel
			if sl.ParseLevel(level) < slog.LevelWarn {
				level = "warn"
			}
			return runTUI(cfg, sl.New(level, cmd.ErrOrStderr()))
		},
	}
}

func newProjectCmd() *cobra.Command {
	var dark bool

	cmd := &cobra.Command{
		Use:   "project <hourly-wage>",
		Short: "Print daily, weekly and monthly projections for a wage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wage, ok := earnings.ParseWage(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", ErrInvalidWage, args[0])
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			formatter := earnings.NewFormatter(cfg.Language(), cfg.CurrencySymbol)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderProjections(formatter, wage, dark))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dark, "dark", true, "use the dark palette")
	return cmd
}

func renderProjections(formatter earnings.Formatter, wage float64, dark bool) string {
	styles := tui.StylesFor(dark)
	schedule := model.DefaultWorkSchedule()
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Earnings Projections"),
		styles.Muted.Render("Hourly wage: ")+styles.Value.Render(formatter.Format(wage)+"/hr"),
		"",
		tui.ProjectionLines(styles, formatter, schedule, earnings.ProjectWith(schedule, wage)),
	)
	return styles.Pane.Render(body)
}

// session bundles what both front ends share.
type session struct {
	prefs     *preferences.Manager
	watch     *stopwatch.Stopwatch
	tracker   *salary.Tracker
	formatter earnings.Formatter
}

func openSession(cfg config.Config, log *slog.Logger) *session {
	store := storage.NewYAMLStore(cfg.ConfigDir)
	prefs, err := preferences.NewManager(store)
	if err != nil {
		log.Warn("load preferences, using defaults", slog.String("path", store.Path()), sl.Err(err))
	}
	watch := stopwatch.New(model.StopwatchConfig{RefreshInterval: cfg.RefreshInterval})
	return &session{
		prefs:     prefs,
		watch:     watch,
		tracker:   salary.NewTracker(watch),
		formatter: earnings.NewFormatter(cfg.Language(), cfg.CurrencySymbol),
	}
}

func (s *session) close() {
	s.watch.Stop()
	s.prefs.Close()
}

func runTUI(cfg config.Config, log *slog.Logger) error {
	s := openSession(cfg, log)
	defer s.close()

	return tui.Run(tui.New(s.tracker, s.prefs, s.formatter, cfg.RefreshInterval, log))
}
