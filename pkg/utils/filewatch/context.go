package filewatch

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// UntilModifyContext starts watching path and returns a context that is
// canceled when path is modified (written, created, removed, or renamed),
// along with a cancel function releasing the watcher.
//
// The cause of the cancellation describes the filesystem event.
// Watcher errors cancel the context as well.
//
// When it fails to start watching, it returns a non-nil error and both
// the context and the cancel function are nil.
func UntilModifyContext(ctx context.Context, path string) (context.Context, func(), error) {
	cctx, cancel := context.WithCancelCause(ctx)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		cancel(err)
		return nil, nil, err
	}

	go func() {
		defer w.Close()

		for {
			select {
			case <-cctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				cancel(fmt.Errorf("%s is updated (%s)", event.Name, event.Op.String()))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				cancel(fmt.Errorf("watching %s: %w", path, err))
			}
		}
	}()

	if err := w.Add(path); err != nil {
		cancel(err)
		return nil, nil, err
	}
	return cctx, func() { cancel(nil) }, nil
}
