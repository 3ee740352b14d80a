// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watcher converts PDFs as they appear in watched directories. Each
// new file is handed to a callback one at a time, preserving the pipeline's
// sequential processing model.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes directory trees for newly created PDF files.
type Watcher struct {
	w     *fsnotify.Watcher
	roots []string
	onPDF func(path string)
}

// New creates a recursive watcher over roots. onPDF is invoked, from the
// watch loop's goroutine, for every PDF that appears.
func New(roots []string, onPDF func(path string)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	return &Watcher{w: w, roots: roots, onPDF: onPDF}, nil
}

// Start registers the roots and their subdirectories and blocks handling
// events until ctx is cancelled. Files that are still being written when
// they first appear simply fail to load and surface as per-document errors
// on conversion, so no settling delay is applied here.
func (wr *Watcher) Start(ctx context.Context) error {
	if err := wr.registerAll(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-wr.w.Events:
			if !ok {
				return nil
			}
			wr.handleEvent(ev)
		case err, ok := <-wr.w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watcher error: %v\n", err)
		}
	}
}

// Close stops the underlying fsnotify watcher.
func (wr *Watcher) Close() error { return wr.w.Close() }

func (wr *Watcher) registerAll() error {
	for _, root := range wr.roots {
		if _, err := os.Stat(root); err != nil {
			return fmt.Errorf("watch root %s: %w", root, err)
		}
		filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				_ = wr.w.Add(path)
			}
			return nil
		})
	}
	return nil
}

func (wr *Watcher) handleEvent(ev fsnotify.Event) {
	if ev.Op&fsnotify.Create == 0 {
		return
	}

	info, err := os.Stat(ev.Name)
	if err != nil {
		return
	}

	// New directories join the watch set so nested drops are seen.
	if info.IsDir() {
		_ = filepath.WalkDir(ev.Name, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				_ = wr.w.Add(path)
			}
			return nil
		})
		return
	}

	if IsPDF(ev.Name) {
		wr.onPDF(ev.Name)
	}
}

// IsPDF reports whether path has a .pdf extension, case-insensitively.
func IsPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}
