package server_test

import (
	"testing"

	kcs "github.com/recordbin/recordbin/pkg/configs/server"
)

func TestLoadServerConfig(t *testing.T) {

	t.Run("it can be created from a config file", func(t *testing.T) {
		t.Setenv(kcs.StoreURIEnvName, "")

		result, err := kcs.LoadServerConfig("./testdata/config.yaml")

		if err != nil {
			t.Errorf("failed to parse config.: %v", err)
		}
		expectedURI := "mongodb://recordbin-store-svc:27017"
		if result.StoreURI != expectedURI {
			t.Errorf("unmatch storeuri:%s, expected:%s", result.StoreURI, expectedURI)
		}
		expectedServerPort := "8080"
		if result.ServerPort != expectedServerPort {
			t.Errorf("unmatch serverport:%s, expected:%s", result.ServerPort, expectedServerPort)
		}
	})

	t.Run("it falls back to defaults without a config file", func(t *testing.T) {
		t.Setenv(kcs.StoreURIEnvName, "")

		result, err := kcs.LoadServerConfig("")

		if err != nil {
			t.Errorf("failed to build config.: %v", err)
		}
		if result.StoreURI != kcs.DefaultStoreURI {
			t.Errorf("unmatch storeuri:%s, expected:%s", result.StoreURI, kcs.DefaultStoreURI)
		}
		if result.ServerPort != kcs.DefaultServerPort {
			t.Errorf("unmatch serverport:%s, expected:%s", result.ServerPort, kcs.DefaultServerPort)
		}
	})

	t.Run("the environment variable overrides the store URI from file", func(t *testing.T) {
		overridden := "mongodb://another-host:27017"
		t.Setenv(kcs.StoreURIEnvName, overridden)

		result, err := kcs.LoadServerConfig("./testdata/config.yaml")

		if err != nil {
			t.Errorf("failed to parse config.: %v", err)
		}
		if result.StoreURI != overridden {
			t.Errorf("unmatch storeuri:%s, expected:%s", result.StoreURI, overridden)
		}
	})

	t.Run("it fails for a missing config file", func(t *testing.T) {
		if _, err := kcs.LoadServerConfig("./testdata/no-such-config.yaml"); err == nil {
			t.Error("expected error, but got nil")
		}
	})
}
