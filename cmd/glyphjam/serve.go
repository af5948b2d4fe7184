package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphjam/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that opens the main menu for every connection.

Each SSH connection gets its own session; documents are loaded per
session from the same application root as 'glyphjam play'.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.glyphjam/host_key

Examples:
  glyphjam serve                           # Listen on :23234 with auto-generated key
  glyphjam serve --ssh :2222               # Listen on port 2222
  glyphjam serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	logger := loggerFromContext(cmd.Context())
	r := newResolver()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}
	opts := tui.Options{
		Resolver: r,
		Config:   loadConfig(r),
		Builtin:  flagBuiltin,
	}

	server, err := tui.NewSSHServer(cfg, opts, logger)
	if err != nil {
		fatal("creating server: %v", err)
	}

	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Serve(cmd.Context()); err != nil {
		fatal("%v", err)
	}
}
