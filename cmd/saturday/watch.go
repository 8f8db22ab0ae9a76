package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
)

// runWatching invokes run once immediately, then, if watch is set, invokes
// it again every time path's contents change, until interrupted. Errors from
// run are printed rather than aborting the loop, so a transiently broken
// problem document doesn't kill the watcher.
func runWatching(path string, watch bool, run func() error) error {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	if !watch {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Fprintf(os.Stderr, "--- %s changed, re-running ---\n", path)
			if err := run(); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "watch error:", err)
		case <-sig:
			return nil
		}
	}
}
