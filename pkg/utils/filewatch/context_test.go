package filewatch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/recordbin/recordbin/pkg/utils/filewatch"
)

func TestUntilModifyContext_FileWritten(t *testing.T) {
	t.Run("when the watched file is written, it cancels context", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "file")
		if f, err := os.Create(file); err != nil {
			t.Fatal(err)
		} else {
			f.Close()
		}

		basectx := context.Background()
		ctx, cancel, err := filewatch.UntilModifyContext(basectx, file)
		if err != nil {
			t.Fatal(err)
		}
		defer cancel()

		if err := ctx.Err(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := os.WriteFile(file, []byte("content"), 0644); err != nil {
			t.Fatal(err)
		}

		deadlineCh := make(<-chan time.Time)
		if dl, ok := t.Deadline(); ok {
			deadlineCh = time.After(time.Until(dl) - 1*time.Second)
		}
		select {
		case <-ctx.Done():
			return
		case <-deadlineCh:
		}
		t.Fatalf("expected error, but got nil")
	})
}

func TestUntilModifyContext_FileCreated(t *testing.T) {
	t.Run("when a file is created in a watched directory, it cancels context", func(t *testing.T) {
		dir := t.TempDir()

		basectx := context.Background()
		ctx, cancel, err := filewatch.UntilModifyContext(basectx, dir)
		if err != nil {
			t.Fatal(err)
		}
		defer cancel()

		if err := ctx.Err(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		file := filepath.Join(dir, "file")
		if f, err := os.Create(file); err != nil {
			t.Fatal(err)
		} else {
			f.Close()
		}

		deadlineCh := make(<-chan time.Time)
		if dl, ok := t.Deadline(); ok {
			deadlineCh = time.After(time.Until(dl) - 1*time.Second)
		}
		select {
		case <-ctx.Done():
			return
		case <-deadlineCh:
		}
		t.Fatalf("expected error, but got nil")
	})
}

func TestUntilModifyContext_MissingFile(t *testing.T) {
	t.Run("when the target does not exist, it fails to start watching", func(t *testing.T) {
		dir := t.TempDir()

		_, _, err := filewatch.UntilModifyContext(
			context.Background(), filepath.Join(dir, "no-such-file"),
		)
		if err == nil {
			t.Fatal("expected error, but got nil")
		}
	})
}
