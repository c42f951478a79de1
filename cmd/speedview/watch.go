package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/roffe/speedview/pkg/widgets/speedview"
)

// watchAttributes calls apply with the new attributes whenever filename is
// written. The directory is watched so editors that replace the file are
// handled.
func watchAttributes(filename string, apply func(*speedview.Attributes)) (func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filename, err)
	}
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				a, err := readAttributes(abs)
				if err != nil {
					log.Println("attributes:", err)
					continue
				}
				log.Println("reloaded", filename)
				apply(a)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Println("watch:", err)
			}
		}
	}()
	return func() { w.Close() }, nil
}
