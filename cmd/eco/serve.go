package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-eco/internal/platform/tui"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagIdleTimeout   int
	flagServeFixedDT  time.Duration
	flagServeInterval int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the eco SSH server",
	Long: `Start an SSH server that lets users connect and watch simulations.

Each SSH connection gets its own scenario picker and its own simulation;
nothing is shared between sessions. Reports of every session are recorded
in the history database under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.eco/host_key

Examples:
  eco serve                           # Listen on :23235 with auto-generated key
  eco serve --ssh :2222               # Listen on port 2222
  eco serve --host-key ./my_host_key  # Use specific host key
  eco serve --db ./history.db         # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().DurationVar(&flagServeFixedDT, "fixed-dt", 0, "Advance every tick by exactly this much (0 = wall clock)")
	serveCmd.Flags().IntVar(&flagServeInterval, "report-interval", 0, "Ticks between reports (0 = topology setting)")
}

func runServe(_ *cobra.Command, _ []string) {
	rc := runtimeConfig(80, 24)
	rc.FixedDelta = flagServeFixedDT
	rc.ReportInterval = flagServeInterval

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Runtime:     rc,
		Logger:      newLogger(os.Stderr, ""),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting eco SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}

// port returns the port part of a listen address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
