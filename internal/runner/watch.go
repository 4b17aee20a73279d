package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchDebounce coalesces the burst of events editors emit per save.
const watchDebounce = 300 * time.Millisecond

// Watch re-runs a day whenever its solution file changes, until the
// context is cancelled. The first run happens immediately.
func (r *Runner) Watch(ctx context.Context, day int, opts Options) error {
	if err := r.RunOrCreate(ctx, day, opts); err != nil {
		r.log.Error("run failed", zap.Error(err))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("runner: start watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(r.cfg.DaysDir()); err != nil {
		return fmt.Errorf("runner: watch %s: %w", r.cfg.DaysDir(), err)
	}
	target := filepath.Base(r.cfg.DayFile(day))
	r.log.Info("watching for changes", zap.String("file", target))

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if pending && !debounce.Stop() {
				<-debounce.C
			}
			debounce.Reset(watchDebounce)
			pending = true
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.log.Warn("watch error", zap.Error(err))
		case <-debounce.C:
			pending = false
			fmt.Fprintln(r.out)
			if err := r.RunOrCreate(ctx, day, opts); err != nil {
				r.log.Error("run failed", zap.Error(err))
			}
		}
	}
}
