package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/usedassets/pkg/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-sync assets whenever the page source changes",
	Long: `Run a sync, then keep watching the page source and sync again after
every save. Bursts of events are debounced (watch_debounce_ms in the config).

The parent directory is watched rather than the file itself so editors that
save by renaming a temp file are still picked up.

Press Ctrl+C to stop.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(getContext(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()

	if err := appLayout.Validate(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(appLayout.PagePath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", appLayout.PagePath, err)
	}

	fmt.Fprintln(out, ui.FormatWatch("Watching "+appLayout.Rel(appLayout.PagePath)))
	fmt.Fprintln(out, ui.FormatMuted("Press Ctrl+C to stop"))
	fmt.Fprintln(out)

	resync := func() {
		if _, err := syncOnce(ctx, out); err != nil {
			// Keep watching; the next save may fix it
			fmt.Fprintln(out, ui.FormatError("Sync failed: "+err.Error()))
		}
		fmt.Fprintln(out)
	}

	resync()

	debounce := time.Duration(appConfig.WatchDebounceMS) * time.Millisecond
	return watchLoop(ctx, watcher.Events, watcher.Errors, appLayout.PagePath, debounce, resync, func() {
		fmt.Fprintln(out, ui.FormatMuted("Watcher stopped"))
	})
}

// watchLoop debounces page events and runs onChange on the loop goroutine,
// so syncs never overlap.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error,
	page string, debounce time.Duration, onChange func(), onStop func()) error {

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if !isPageEvent(event, page) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)

		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			if onStop != nil {
				onStop()
			}
			return nil
		}
	}
}

// isPageEvent reports whether event changes the page file's content
func isPageEvent(event fsnotify.Event, page string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(page) {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename)
}
