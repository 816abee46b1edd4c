// eco is a terminal viewer and headless runner for resource-flow simulations.
//
// Usage:
//
//	eco list                  - List built-in scenarios
//	eco run [scenario|file]   - Watch a simulation in the terminal
//	eco step [scenario|file]  - Run a fixed number of ticks headless
//	eco check <file>          - Validate a topology file
//	eco serve                 - Start SSH server for remote viewing
//	eco history [run-id]      - Show recorded report history
//
// Global flags:
//
//	--tps <rate>         - Host tick rate (default: 60)
//	--db <path>          - History database path (default: ~/.eco/history.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-eco/internal/core"
)

var (
	// Global flags
	flagTPS      int
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eco",
	Short: "eco - Resource-flow simulations in your terminal",
	Long: `eco simulates small networks of stockpiles joined by producers and
converters, advanced once per tick under capacity limits.

Available commands:
  list     - Show built-in scenarios
  run      - Watch a scenario in the terminal
  step     - Run a scenario headless for N ticks
  check    - Validate a topology file
  serve    - Start SSH server for remote viewing
  history  - View recorded report history

Examples:
  eco list
  eco run default
  eco run ./my-topology.yaml --fixed-dt 100ms
  eco step foundry --ticks 600 --dt 0.5
  eco serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 60, "Host tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.eco/history.db", "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// runtimeConfig builds the host config from global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickRate = flagTPS
	return cfg
}

// newLogger creates a charm logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens path for appending, expanding a leading ~.
func openLogFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
