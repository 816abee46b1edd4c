package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-eco/internal/platform/tui"
	"github.com/vovakirdan/tui-eco/internal/storage"
)

var (
	flagBrowse bool
	flagLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded report history",
	Long: `List recorded runs, newest first, or print the readings of one run.

Examples:
  eco history
  eco history 12
  eco history --browse`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse history interactively")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Max runs or readings to print (0 = all readings)")
}

func runHistory(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening history database: %v", err)
	}
	defer store.Close()

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	if len(args) == 1 {
		printReadings(store, args[0])
		return
	}

	runs, err := store.Runs(flagLimit)
	if err != nil {
		store.Close()
		fail("retrieving runs: %v", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'eco run' to record the first one.")
		return
	}

	fmt.Printf("  %-6s  %-14s  %-12s  %-8s  %s\n", "Run", "Scenario", "Host", "Readings", "Started")
	fmt.Printf("  %-6s  %-14s  %-12s  %-8s  %s\n", "---", "--------", "----", "--------", "-------")
	for _, r := range runs {
		fmt.Printf("  %-6d  %-14s  %-12s  %-8d  %s\n",
			r.ID, r.Scenario, r.Host, r.Readings, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// printReadings prints the readings of the run named by arg.
func printReadings(store *storage.Store, arg string) {
	runID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		store.Close()
		fail("invalid run id %q", arg)
	}

	readings, err := store.Readings(runID, flagLimit)
	if err != nil {
		store.Close()
		fail("retrieving readings: %v", err)
	}

	if len(readings) == 0 {
		fmt.Printf("No readings recorded for run %d.\n", runID)
		return
	}

	fmt.Printf("  %-8s  %-16s  %-14s  %s\n", "Tick", "Stockpile", "Amount", "Capacity")
	fmt.Printf("  %-8s  %-16s  %-14s  %s\n", "----", "---------", "------", "--------")
	for _, rd := range readings {
		capacity := "-"
		if rd.Capacity.Valid {
			capacity = strconv.FormatFloat(rd.Capacity.Float64, 'f', -1, 64)
		}
		fmt.Printf("  %-8d  %-16s  %-14.4f  %s\n", rd.Tick, rd.Label, rd.Amount, capacity)
	}
}
