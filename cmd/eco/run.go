package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-eco/internal/config"
	"github.com/vovakirdan/tui-eco/internal/core"
	"github.com/vovakirdan/tui-eco/internal/eco"
	"github.com/vovakirdan/tui-eco/internal/platform/tui"
	"github.com/vovakirdan/tui-eco/internal/storage"
)

var (
	flagFixedDT        time.Duration
	flagReportInterval int
	flagNoHistory      bool
	flagLogFile        string
)

var runCmd = &cobra.Command{
	Use:   "run [scenario|file.yaml]",
	Short: "Watch a simulation in the terminal",
	Long: `Start the readout viewer for a scenario or topology file.
Without an argument a scenario picker is shown first.

Controls:
  Space/P   - Pause / resume
  ?         - Toggle help
  Esc/B     - Back to picker
  Q/Ctrl+C  - Quit

Report lines go to the log file so the screen stays clean. Periodic
reports are also recorded in the history database unless --no-history
is set.

Examples:
  eco run
  eco run foundry
  eco run ./topologies/mine.yaml --fixed-dt 16ms
  eco run default --report-interval 60 --log-file ./eco.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().DurationVar(&flagFixedDT, "fixed-dt", 0, "Advance every tick by exactly this much (0 = wall clock)")
	runCmd.Flags().IntVar(&flagReportInterval, "report-interval", 0, "Ticks between reports (0 = topology setting)")
	runCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record reports in the history database")
	runCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.eco/eco.log", "Path to the report log")
}

func runRun(_ *cobra.Command, args []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := runtimeConfig(width, height)
	cfg.FixedDelta = flagFixedDT
	cfg.ReportInterval = flagReportInterval

	var logOut io.Writer = io.Discard
	if f, err := openLogFile(flagLogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	} else {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "eco")

	var store *storage.Store
	if !flagNoHistory {
		var err error
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
			// Continue without history
			store = nil
		} else {
			defer store.Close()
		}
	}

	// A named scenario runs once; the picker loops until the user quits.
	if len(args) == 1 {
		if _, err := runScenario(args[0], store, logger, cfg, false); err != nil {
			fail("%v", err)
		}
		return
	}

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			fail("%v", err)
		}
		if result.Quit {
			return
		}
		cfg = keepHostSettings(result.Config, cfg)

		back, err := runScenario(result.ScenarioID, store, logger, cfg, true)
		if err != nil {
			fail("%v", err)
		}
		if !back {
			return
		}
	}
}

// keepHostSettings copies the screen size reported by the picker onto cfg.
func keepHostSettings(picked, cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenW = picked.ScreenW
	cfg.ScreenH = picked.ScreenH
	return cfg
}

// runScenario loads ref, wires its reporter and runs the viewer until the
// user quits or goes back.
func runScenario(ref string, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, fromMenu bool) (bool, error) {
	topo, err := config.Load(ref)
	if err != nil {
		return false, err
	}

	opts := []eco.ReporterOption{eco.WithInterval(cfg.ReportInterval)}
	if store != nil {
		runID, runErr := store.StartRun(ref, "local")
		if runErr != nil {
			logger.Warn("history disabled for run", "error", runErr)
		} else {
			opts = append(opts, eco.WithRecorder(store.Recorder(runID)))
		}
	}

	inst, err := config.Instantiate(topo, logger.With("scenario", ref), opts...)
	if err != nil {
		return false, err
	}

	return tui.Run(inst, cfg, fromMenu)
}
