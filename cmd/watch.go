package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/skein-lang/skein/internal/config"
)

var WatchCmd = &cobra.Command{
	Use:          "watch ./folder",
	Short:        "Re-check a skein project whenever its sources change",
	RunE:         runWatch,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

// debounce batches the editor's burst of writes into one re-check.
const debounce = 200 * time.Millisecond

func runWatch(cmd *cobra.Command, args []string) error {
	target, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("could not get absolute path of target: %w", err)
	}
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("could not stat target: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch takes a project folder, not a file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not start watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()
	if err := watcher.Add(target); err != nil {
		return fmt.Errorf("could not watch %s: %w", target, err)
	}

	check := func() {
		pkg, err := loadAndReport(target)
		switch {
		case err != nil:
			_, _ = fmt.Fprintln(os.Stderr, err)
		case pkg.HasErrors():
			_, _ = fmt.Fprintf(os.Stderr, "found errors in %s\n", pkg.Name())
		default:
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s ok\n", pkg.Name())
		}
	}
	check()

	var pending *time.Timer
	recheck := make(chan struct{}, 1)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(debounce, func() {
				select {
				case recheck <- struct{}{}:
				default:
				}
			})
		case <-recheck:
			check()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			_, _ = fmt.Fprintln(os.Stderr, "watch error:", err)
		case <-cmd.Context().Done():
			return nil
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	return filepath.Ext(name) == ".sk" || name == config.FileName
}
