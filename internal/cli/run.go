package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/dl/sermon/internal/device"
	"github.com/dl/sermon/internal/monitor"
	"github.com/dl/sermon/internal/output"
)

// Run executes the monitor with the given config.
// Returns exit code: 0 = clean exit, 1 = runtime failure, 2 = bad config.
func Run(cfg Config) int {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: log.WarnLevel,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		return 2
	}

	if cfg.List || cfg.ListJSON {
		return runList(os.Stdout, cfg.ListJSON, logger)
	}

	// Determine color mode
	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	case ColorAuto:
		useColor = output.StdoutIsTerminal()
	}

	status := NewStatus(os.Stdout, cfg.Quiet, useColor)

	// The log destination is opened once, before monitoring starts; the
	// pipeline only ever writes to it.
	var logFile *os.File
	if cfg.LogPath != "" {
		f, err := os.Create(cfg.LogPath)
		if err != nil {
			status.Error("Failed to open logfile: " + err.Error())
			return 1
		}
		logFile = f
		defer f.Close()
	}

	format, _ := output.ParseFormat(cfg.Format) // validated above
	outCfg := output.Config{
		AddTimestamp: cfg.Timestamp,
		Color:        useColor,
		ShowASCII:    cfg.ShowASCII,
		HexWidth:     cfg.HexBytes,
	}

	policy := monitor.Policy{
		WaitForDevice: cfg.Wait,
		PersistOnDrop: cfg.Persist,
	}
	mgr := monitor.NewManager(device.Open, policy, status)

	// An operator interrupt must still flush a partial hex row, so it is
	// routed through the manager instead of killing the process.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		mgr.Interrupt()
	}()

	session := func(stream device.Stream) error {
		var logDest io.Writer
		if logFile != nil {
			logDest = logFile
		}
		sink := output.NewSink(os.Stdout, logDest, logger)
		fmtr := output.New(format, outCfg, sink)
		err := monitor.New(monitor.NewReader(stream), fmtr).Run()
		// The flush runs on every exit path so a trailing partial hex
		// row is never lost.
		if flushErr := fmtr.Flush(); flushErr != nil {
			logger.Warn("failed to flush trailing output", "err", flushErr)
		}
		return err
	}

	if err := mgr.Run(cfg.Port, cfg.Baud, session); err != nil {
		logger.Error("monitor failed", "err", err)
		return 1
	}
	return 0
}

// runList prints the available serial ports, either human-readable or
// as a single JSON document.
func runList(out io.Writer, asJSON bool, logger *log.Logger) int {
	list, err := device.List()
	if err != nil {
		logger.Error("failed to list serial ports", "err", err)
		return 1
	}

	if asJSON {
		data, err := json.Marshal(list)
		if err != nil {
			logger.Error("failed to encode port list", "err", err)
			return 1
		}
		fmt.Fprintln(out, string(data))
		return 0
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Available serial ports:")
	for _, p := range list.Ports {
		fmt.Fprintf(out, " * %-20s: %s\n", p.Device, p.Description)
	}
	fmt.Fprintln(out)
	return 0
}
