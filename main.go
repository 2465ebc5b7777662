package main

import (
	"fmt"
	"os"

	"rdct/internal/app"
	"rdct/internal/config"
	"rdct/internal/logging"
	"rdct/internal/logging/events"

	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Setup(runtimeCfg.Logging.FilePath, runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records the resolved configuration and the terminal
// the session is about to take over.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	payload := map[string]interface{}{
		"args":  cfg.Args,
		"flags": cfg.Flags,
	}
	if info, ok := detectTerminal(); ok {
		payload["terminal"] = info
	}
	return payload
}

type terminalInfo struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// detectTerminal reports the first standard descriptor that is a terminal
// with a readable size. stdout comes first since the TUI renders there.
func detectTerminal() (terminalInfo, bool) {
	probes := []struct {
		name string
		fd   int
	}{
		{"stdout", int(os.Stdout.Fd())},
		{"stderr", int(os.Stderr.Fd())},
		{"stdin", int(os.Stdin.Fd())},
	}
	for _, probe := range probes {
		if !term.IsTerminal(probe.fd) {
			continue
		}
		width, height, err := term.GetSize(probe.fd)
		if err != nil {
			continue
		}
		return terminalInfo{Source: probe.name, Width: width, Height: height}, true
	}
	return terminalInfo{}, false
}
