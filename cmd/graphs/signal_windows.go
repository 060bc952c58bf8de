//go:build windows

package main

import (
	"os"
	"os/signal"
)

// signalChannel receives Ctrl+C, ending `theme -watch`. Windows has no SIGTERM.
func signalChannel() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	return ch
}
