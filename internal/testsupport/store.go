package testsupport

import (
	"testing"

	"recipechat/internal/config"
	"recipechat/internal/recipecache"
)

// MustOpenCache opens a recipecache.Store for tests and registers cleanup.
func MustOpenCache(t testing.TB, cfg *config.Config, opts ...recipecache.Option) *recipecache.Store {
	t.Helper()

	store, err := recipecache.Open(cfg, opts...)
	if err != nil {
		t.Fatalf("recipecache.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
