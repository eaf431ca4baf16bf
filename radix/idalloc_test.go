package radix

import "testing"

import "github.com/bnclabs/goradix/dict"

func TestIdRecycle(t *testing.T) {
	store := dict.NewDict("recycle")
	tree := NewTree("recycle", store, Defaultsettings())

	tree.Set("cow", "moo")
	tree.Set("coweb", "web") // split allocates id "0"
	if value, ok, _ := store.Get("#"); !ok {
		t.Fatalf("expected counter")
	} else if value.(int64) != 1 {
		t.Fatalf("unexpected %v", value)
	}

	if ok, _ := tree.Delete("coweb"); !ok { // collapse frees id "0"
		t.Fatalf("expected delete")
	}
	if _, ok, _ := store.Get("0"); ok {
		t.Errorf("unexpected node record")
	}

	tree.Set("cowx", "x") // split draws from the recycle pool
	if value, _, _ := store.Get("#"); value.(int64) != 1 {
		t.Errorf("expected counter to hold at 1, got %v", value)
	}
	if _, ok, _ := store.Get("0"); !ok {
		t.Errorf("expected recycled node record")
	}

	stats := tree.Stats()
	if x := stats["n_allocs"].(int64); x != 1 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_reclaims"].(int64); x != 1 {
		t.Errorf("unexpected %v", x)
	}
}

func TestIdNoReuse(t *testing.T) {
	store := dict.NewDict("noreuse")
	setts := Defaultsettings()
	setts["allocator.reuseids"] = false
	tree := NewTree("noreuse", store, setts)

	tree.Set("cow", "moo")
	tree.Set("coweb", "web")
	tree.Delete("coweb")
	tree.Set("cowx", "x")

	if value, _, _ := store.Get("#"); value.(int64) != 2 {
		t.Errorf("expected counter at 2, got %v", value)
	}
}

func TestIdSharedCounter(t *testing.T) {
	// two handles over one store share the counter cache, ids never
	// collide.
	store := dict.NewDict("sharedcounter")
	tree1 := NewTree("shared1", store, Defaultsettings())
	tree2 := NewTree("shared2", store, Defaultsettings())

	tree1.Set("cow", "moo")
	tree1.Set("coweb", "web") // allocates "0"
	tree2.Set("coin", "metal")
	tree2.Set("coinbase", "plate")

	// three splits, three distinct ordinals drawn off one cache.
	if value, _, _ := store.Get("#"); value.(int64) != 3 {
		t.Errorf("unexpected %v", value)
	}
	for _, key := range []string{"cow", "coweb", "coin", "coinbase"} {
		if ok, _ := tree1.Has(key); !ok {
			t.Errorf("expected key %v", key)
		}
		if ok, _ := tree2.Has(key); !ok {
			t.Errorf("expected key %v", key)
		}
	}
}

func TestIdCounterHydrate(t *testing.T) {
	// the persisted counter outlives handles, a fresh tree over a
	// store carrying "#" resumes allocation from it.
	store := dict.NewDict("hydrate")
	store.Set("#", int64(5))

	tree := NewTree("hydrate", store, Defaultsettings())
	tree.Set("cow", "moo")
	tree.Set("coweb", "web") // first split draws ordinal 5

	if _, ok, _ := store.Get("5"); !ok {
		t.Errorf("expected node record 5")
	}
	if value, _, _ := store.Get("#"); value.(int64) != 6 {
		t.Errorf("expected counter at 6, got %v", value)
	}
}

func TestIdCounterTextual(t *testing.T) {
	// stores round-tripping records through text hand the counter back
	// as a string, allocation still resumes from it.
	store := dict.NewDict("textual")
	store.Set("#", "7")

	tree := NewTree("textual", store, Defaultsettings())
	tree.Set("cow", "moo")
	tree.Set("coweb", "web")

	if _, ok, _ := store.Get("7"); !ok {
		t.Errorf("expected node record 7")
	}
	if value, _, _ := store.Get("#"); value.(int64) != 8 {
		t.Errorf("expected counter at 8, got %v", value)
	}
}

func TestBase36Ids(t *testing.T) {
	store := dict.NewDict("base36")
	setts := Defaultsettings()
	setts["allocator.reuseids"] = false
	tree := NewTree("base36", store, setts)

	// 40 splits off one long chain pushes the ordinal past 36, the
	// 37th allocated id is "10" in base-36.
	key := ""
	for i := 0; i < 41; i++ {
		key += "a"
		tree.Set(key, float64(i))
	}
	if _, ok, _ := store.Get("z"); !ok {
		t.Errorf("expected node record z")
	}
	if _, ok, _ := store.Get("10"); !ok {
		t.Errorf("expected node record 10")
	}
	if err := tree.Validate(); err != nil {
		t.Errorf("unexpected %v", err)
	}
}
