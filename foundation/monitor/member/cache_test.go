package member

import (
	"reflect"
	"testing"

	"golang.org/x/sync/errgroup"

	mdwlog "github.com/msto63/devmon/foundation/core/log"
)

func TestCacheComputesOncePerType(t *testing.T) {
	cache := NewCache(Options{Logger: mdwlog.Discard()})
	typ := reflect.TypeOf(newSensor())

	var g errgroup.Group
	sets := make([]*Set, 64)
	for i := range sets {
		g.Go(func() error {
			set, err := cache.Get(typ)
			sets[i] = set
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	for i, set := range sets {
		if set != sets[0] {
			t.Fatalf("goroutine %d saw a different set", i)
		}
	}
	stats := cache.Stats()
	if stats.Builds != 1 || stats.Types != 1 {
		t.Errorf("Stats() = %+v, want exactly one build", stats)
	}
	if stats.Hits+stats.Misses != 64 || stats.Misses != 1 {
		t.Errorf("Stats() = %+v, want 1 miss and 63 hits", stats)
	}
}

func TestCacheClear(t *testing.T) {
	ext := NewExtensions()
	cache := NewCache(Options{Extensions: ext, Logger: mdwlog.Discard()})
	s := newSensor()

	before, err := cache.For(s)
	if err != nil {
		t.Fatalf("For() error = %v", err)
	}
	if err := ext.Register("Ping", func(*sensor) string { return "pong" }); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	stale, _ := cache.For(s)
	if stale != before || len(stale.ExtensionsNamed("Ping")) != 0 {
		t.Error("registration alone must not change cached sets")
	}

	cache.Clear()
	after, err := cache.For(s)
	if err != nil {
		t.Fatalf("For() error = %v", err)
	}
	if after == before {
		t.Error("Clear() should force a rebuild")
	}
	if len(after.ExtensionsNamed("Ping")) != 1 {
		t.Error("rebuilt set should include the new extension")
	}
	if len(before.ExtensionsNamed("Ping")) != 0 {
		t.Error("sets handed out before Clear() must stay unchanged")
	}
	if got := cache.Stats(); got.Builds != 2 || got.Clears != 1 {
		t.Errorf("Stats() = %+v", got)
	}
}

func TestCacheRemembersErrors(t *testing.T) {
	cache := NewCache(Options{Logger: mdwlog.Discard()})
	for i := 0; i < 2; i++ {
		if _, err := cache.For(badArity{}); err == nil {
			t.Fatal("For(badArity) should fail")
		}
	}
	if got := cache.Stats().Builds; got != 1 {
		t.Errorf("Builds = %d, want 1", got)
	}
	if _, err := cache.Get(nil); err == nil {
		t.Error("Get(nil) should fail")
	}
}
