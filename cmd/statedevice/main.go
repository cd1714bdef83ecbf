// statedevice decodes, inspects and creates state device records.
//
// Devices arrive either as structured objects (JSON or YAML) or as binary
// wire messages. The tool validates them and prints them as text, JSON or
// hex-encoded wire bytes.
//
// Usage:
//
//	statedevice decode [-format text|json|hex] FILE
//	statedevice inspect [-hex] [-format text|json|hex] FILE
//	statedevice new -name NAME -type TYPE -state STATE [-id ID] [-format ...]
//
// Configuration is read from $STATEDEVICE_CONFIG (default
// configs/statedevice.yaml); a missing file means built-in defaults.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/statedevice/internal/infrastructure/config"
	"github.com/nerrad567/statedevice/internal/infrastructure/logging"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0"
var version = "dev"

// Default configuration file path
const defaultConfigPath = "configs/statedevice.yaml"

// Exit codes.
const (
	exitFailure = 1
	exitUsage   = 2
)

// errUsage marks errors caused by bad command-line arguments.
var errUsage = errors.New("usage error")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(exitUsage)
		}
		os.Exit(exitFailure)
	}
}

// run is the actual application logic, separated from main for testability.
//
// Parameters:
//   - ctx: Context for cancellation
//   - args: Command-line arguments without the program name
//   - stdout: Destination for command results
//   - stderr: Destination for logs and usage text
//
// Returns:
//   - error: nil on success, or error describing failure
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		printUsage(stderr)
		return fmt.Errorf("%w: no command given", errUsage)
	}

	cmd, cmdArgs := args[0], args[1:]
	switch cmd {
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	case "version", "-v", "--version":
		fmt.Fprintf(stdout, "statedevice version %s\n", version)
		return nil
	}

	configPath := getConfigPath()
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logging.NewWithWriter(cfg.Logging, version, logWriter(cfg.Logging, stdout, stderr)).
		With("command", cmd)
	log.Debug("configuration loaded", "path", configPath, "output_format", cfg.Output.Format)

	env := &commandEnv{
		cfg:    cfg,
		log:    log,
		stdout: stdout,
		stderr: stderr,
	}

	switch cmd {
	case "decode":
		return runDecode(ctx, env, cmdArgs)
	case "inspect":
		return runInspect(ctx, env, cmdArgs)
	case "new":
		return runNew(ctx, env, cmdArgs)
	default:
		printUsage(stderr)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// getConfigPath returns the configuration file path.
// Checks STATEDEVICE_CONFIG environment variable, falls back to default.
func getConfigPath() string {
	if path := os.Getenv("STATEDEVICE_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// logWriter picks the log destination. Results go to stdout, so logs only
// share it when explicitly configured.
func logWriter(cfg config.LoggingConfig, stdout, stderr io.Writer) io.Writer {
	if cfg.Output == "stdout" {
		return stdout
	}
	return stderr
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `statedevice - state device decoding and inspection tool

Usage:
  statedevice <command> [options] FILE

Commands:
  decode    Decode JSON or YAML device records (object or list of objects)
  inspect   Decode a binary wire message (raw bytes, or hex text with -hex)
  new       Build a device from flags

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  statedevice decode devices.json
  statedevice decode -format hex porch.yaml
  statedevice inspect -hex porch.hex
  statedevice new -name "Porch Light" -type light -state on

Output formats: text, json, hex (CBOR wire bytes, hex encoded).`)
}
