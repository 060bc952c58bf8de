//go:build !windows

package main

import (
	"os"
	"os/signal"
	"syscall"
)

// signalChannel receives SIGINT and SIGTERM, ending `theme -watch`.
func signalChannel() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	return ch
}
