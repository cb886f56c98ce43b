package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"coldwire/internal/config"
	"coldwire/internal/logger"
	"coldwire/internal/report"
)

const usage = `Usage:
  coldwire --server <server-url> --state-file <file-path> [--debug] [--use-proxy]
If --use-proxy is present you can pass:
  --proxy-type <HTTP|SOCKS4|SOCKS5>    (default: SOCKS5)
  --proxy-addr <host:port>             (default: 127.0.0.1:9050)
  --proxy-user <username>
  --proxy-pass <password>
Without --use-proxy the --proxy-* flags are accepted but have no effect.`

var rootCmd = &cobra.Command{
	Use:   "coldwire",
	Short: "Desktop client front end for a coldwire server",
	// The argument grammar is the contract, down to its exact error
	// strings. Flag parsing stays disabled so cobra never intercepts
	// --help or rejects a token with its own wording.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoot(args, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// runRoot drives the parse pipeline and renders one of its three outcomes.
// Help and success exit 0; any parse error is echoed with the usage block on
// stderr and exits 1.
func runRoot(args []string, stdout, stderr io.Writer) error {
	cfg, help, err := config.ParseArgs(args)
	if help {
		fmt.Fprintln(stdout, usage)
		return nil
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, usage)
		return err
	}

	logger.Init(cfg.Debug)
	defer logger.Sync()

	if cfg.Debug {
		logger.Log.Debugf("State file: %s (not opened yet)", cfg.StateFilePath)
		return report.DebugDump(stderr, cfg)
	}

	report.Summary(stdout, cfg)
	// TODO: hand cfg to the connection/auth layer once it exists.
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
