package mongodb_test

import (
	"context"
	"testing"

	kmg "github.com/recordbin/recordbin/pkg/db/mongodb"
)

func TestNew(t *testing.T) {

	// mongo clients connect lazily. New succeeds without a reachable server,
	// and network failure is deferred to the first insert or scan.
	t.Run("it prepares a client without dialing the store", func(t *testing.T) {
		ctx := context.Background()

		testee, err := kmg.New(ctx, "mongodb://localhost.invalid:27017")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer testee.Close()

		if testee.Records() == nil {
			t.Error("record interface is nil")
		}
	})

	t.Run("it rejects a malformed uri", func(t *testing.T) {
		ctx := context.Background()

		if _, err := kmg.New(ctx, "://not-a-uri"); err == nil {
			t.Error("expected error, but got nil")
		}
	})
}
