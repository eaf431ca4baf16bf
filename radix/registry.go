package radix

import "sync"

import "github.com/bnclabs/goradix/api"

// storectx is the per-store coordination context: the read/write gate
// serializing every tree bound to the store, the shared id-counter
// cache, and the shared node cache. Keying the gate by store identity
// lets trees over independent stores proceed fully in parallel, while
// trees sharing a store never interleave with a writer.
type storectx struct {
	rw       sync.RWMutex
	nextord  int64
	hydrated bool
	cache    *nodecache
}

var registrym sync.Mutex
var registry = map[api.Store]*storectx{}

// getstorectx return the context for store, creating it on first use.
// The first tree constructed against a store fixes the cache
// configuration for every later tree on the same store.
func getstorectx(store api.Store, cacheon bool, capacity int64) *storectx {
	registrym.Lock()
	defer registrym.Unlock()

	if ctx, ok := registry[store]; ok {
		return ctx
	}
	ctx := &storectx{}
	if cacheon {
		ctx.cache = newnodecache(capacity)
	}
	registry[store] = ctx
	return ctx
}
