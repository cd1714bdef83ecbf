package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/nerrad567/statedevice/internal/device"
	"github.com/nerrad567/statedevice/internal/infrastructure/config"
	"github.com/nerrad567/statedevice/internal/infrastructure/logging"
)

// commandEnv carries what every subcommand needs.
type commandEnv struct {
	cfg    *config.Config
	log    *logging.Logger
	stdout io.Writer
	stderr io.Writer
}

// newFlagSet returns a flag set that reports errors instead of exiting.
func (e *commandEnv) newFlagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	format := fs.String("format", e.cfg.Output.Format, "output format: text, json, or hex")
	return fs, format
}

// runDecode decodes structured device records. Every record must decode;
// one failure rejects the whole file and nothing is printed.
func runDecode(ctx context.Context, env *commandEnv, args []string) error {
	fs, format := env.newFlagSet("decode")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if err := checkFormat(*format); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: decode needs exactly one FILE", errUsage)
	}
	path := fs.Arg(0)

	records, err := readRecords(path)
	if err != nil {
		return err
	}

	devices := make([]*device.StateDevice, 0, len(records))
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		obj, ok := rec.(map[string]any)
		if !ok {
			return fmt.Errorf("record %d: %w: not an object", i, device.ErrInvalidArgument)
		}
		dev, err := device.FromObject(obj)
		if err != nil {
			env.log.Warn("rejecting input", "path", path, "record", i, "error", err)
			return fmt.Errorf("record %d: %w", i, err)
		}
		env.log.Debug("decoded device", "record", i, "device", dev)
		devices = append(devices, dev)
	}

	for _, dev := range devices {
		if err := writeDevice(env.stdout, dev, *format); err != nil {
			return err
		}
	}
	env.log.Info("decoded devices", "path", path, "count", len(devices))
	return nil
}

// readRecords parses a JSON or YAML file into a list of generic records.
// A single top-level object becomes a one-element list.
func readRecords(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w: %v", path, device.ErrInvalidArgument, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w: %v", path, device.ErrInvalidArgument, err)
		}
	}

	switch v := doc.(type) {
	case []any:
		return v, nil
	case map[string]any:
		return []any{v}, nil
	default:
		return nil, fmt.Errorf("parsing %s: %w: expected an object or a list of objects", path, device.ErrInvalidArgument)
	}
}

// runInspect decodes one binary wire message.
func runInspect(_ context.Context, env *commandEnv, args []string) error {
	fs, format := env.newFlagSet("inspect")
	hexInput := fs.Bool("hex", false, "input file holds hex text instead of raw bytes")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if err := checkFormat(*format); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: inspect needs exactly one FILE", errUsage)
	}
	path := fs.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if *hexInput {
		data, err = hex.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return fmt.Errorf("decoding hex in %s: %w", path, err)
		}
	}

	dev, err := device.DecodeBinary(data)
	if err != nil {
		return err
	}
	if !dev.IsComplete() {
		env.log.Info("wire message is partial", "device", dev)
	}

	return writeDevice(env.stdout, dev, *format)
}

// runNew builds a device from flags. Type and state use the same vocabulary
// as structured records.
func runNew(_ context.Context, env *commandEnv, args []string) error {
	fs, format := env.newFlagSet("new")
	id := fs.String("id", "", "device id (random UUID when empty)")
	name := fs.String("name", "", "device name (required)")
	typ := fs.String("type", "", "device type: light, ceilingfan, garagedoor, doorbell")
	state := fs.String("state", "", "device state: on, off, active, inactive, open, closed")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if err := checkFormat(*format); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("%w: -name is required", errUsage)
	}

	devType, err := device.ParseDeviceType(*typ)
	if err != nil {
		return err
	}
	devState, err := device.ParseDeviceState(*state)
	if err != nil {
		return err
	}

	if *id == "" {
		*id = uuid.NewString()
	}

	dev := device.NewBuilder().
		SetID(*id).
		SetName(*name).
		SetType(devType).
		SetState(devState).
		Build()
	env.log.Debug("built device", "device", dev)

	return writeDevice(env.stdout, dev, *format)
}

func checkFormat(format string) error {
	if !config.IsOutputFormat(format) {
		return fmt.Errorf("%w: unknown output format %q", errUsage, format)
	}
	return nil
}

// writeDevice prints dev in the requested format, one device per line
// (text output is a multi-line block).
func writeDevice(w io.Writer, dev *device.StateDevice, format string) error {
	var out string
	switch format {
	case config.OutputFormatJSON:
		data, err := dev.MarshalJSON()
		if err != nil {
			return err
		}
		out = string(data)
	case config.OutputFormatHex:
		data, err := dev.MarshalBinary()
		if err != nil {
			return err
		}
		out = hex.EncodeToString(data)
	default:
		out = dev.String()
	}

	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
