// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounce is how long the scene file must stay quiet before it is
// re-rendered. Editors often write a file in several steps.
const debounce = 200 * time.Millisecond

// watch calls render each time the file at path changes, until ctx is
// done. Render errors are logged, not returned.
func (a *app) watch(ctx context.Context, path string, render func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory so that replace-by-rename saves are seen.
	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	a.logger.Info("watching scene", zap.String("path", path))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			a.logger.Debug("scene changed", zap.Stringer("op", ev.Op))
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("watch error", zap.Error(err))

		case <-timer.C:
			if err := render(); err != nil {
				a.logger.Error("render failed", zap.Error(err))
			}
		}
	}
}
