package icons

import (
	"sync"
	"testing"
)

func TestNewCacheSeedsBundledSet(t *testing.T) {
	c := NewCache()
	if len(c.entries) != len(bundled) {
		t.Fatalf("expected %d seeded entries, got %d", len(bundled), len(c.entries))
	}
	for _, name := range bundled {
		if _, ok := c.entries[Key{Name: name, Size: SizeMenu}]; !ok {
			t.Fatalf("expected %q to be seeded at size %d", name, SizeMenu)
		}
	}
}

func TestGetHandleMemoizes(t *testing.T) {
	c := NewCache()
	first := c.GetHandle("folder-symbolic", SizeMenu)
	second := c.GetHandle("folder-symbolic", SizeMenu)
	if first != second {
		t.Fatalf("expected identical handles, got %#v and %#v", first, second)
	}
	if got := len(c.entries); got != len(bundled) {
		t.Fatalf("expected seeded lookup to add no entries, cache has %d", got)
	}
}

func TestGetHandleCachesMisses(t *testing.T) {
	c := NewCache()
	before := len(c.entries)
	h := c.GetHandle("no-such-icon", SizeMenu)
	if h.Name() != "no-such-icon" {
		t.Fatalf("expected handle name to be preserved, got %q", h.Name())
	}
	if h.String() == "" {
		t.Fatalf("expected unknown icon to render through the fallback")
	}
	if len(c.entries) != before+1 {
		t.Fatalf("expected miss to be cached, cache grew from %d to %d", before, len(c.entries))
	}
	c.GetHandle("no-such-icon", SizeMenu)
	if len(c.entries) != before+1 {
		t.Fatalf("expected repeated miss to reuse the cached entry")
	}
}

func TestGetHandleDistinctSizes(t *testing.T) {
	c := NewCache()
	small := c.GetHandle("folder-symbolic", 1)
	wide := c.GetHandle("folder-symbolic", 4)
	if small == wide {
		t.Fatalf("expected different renderings per size")
	}
}

func TestGetHandleClampsSize(t *testing.T) {
	c := NewCache()
	clamped := c.GetHandle("folder-symbolic", 0)
	one := c.GetHandle("folder-symbolic", 1)
	if clamped != one {
		t.Fatalf("expected size 0 to clamp to 1, got %#v and %#v", clamped, one)
	}
}

func TestGetReturnsHandleText(t *testing.T) {
	c := NewCache()
	h := c.GetHandle("cut-symbolic", SizeMenu)
	if got := c.Get("cut-symbolic", SizeMenu); got != h.String() {
		t.Fatalf("expected Get to return the handle text %q, got %q", h.String(), got)
	}
}

func TestConcurrentLookups(t *testing.T) {
	c := NewCache()
	names := []string{"folder-symbolic", "cut-symbolic", "no-such-icon", "text-x-generic-symbolic"}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				name := names[(i+j)%len(names)]
				if c.Get(name, SizeMenu) == "" {
					t.Errorf("expected non-empty render for %q", name)
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestProcessWideCache(t *testing.T) {
	Init()
	first := GetHandle("folder-symbolic", SizeMenu)
	second := GetHandle("folder-symbolic", SizeMenu)
	if first != second {
		t.Fatalf("expected process-wide cache to return identical handles")
	}
	if Get("folder-symbolic", SizeMenu) != first.String() {
		t.Fatalf("expected Get and GetHandle to agree")
	}
}
