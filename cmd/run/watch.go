/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package run

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"jsrun.dev/jsrun/internal/logger"
)

// watchAndRun executes the script, then re-executes it whenever the file
// changes. The containing directory is watched rather than the file itself
// because editors commonly replace files on save.
func watchAndRun(script string, execute func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	abs, err := filepath.Abs(script)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	if err := execute(); err != nil {
		logger.Warn("%v", err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != abs || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Info("%s changed, re-running", script)
			if err := execute(); err != nil {
				logger.Warn("%v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)
		}
	}
}
