package radix

import "fmt"
import "io"
import "sync/atomic"

import "github.com/bnclabs/goradix/api"
import "github.com/bnclabs/goradix/lib"
import "github.com/bnclabs/golog"
import s "github.com/bnclabs/gosettings"

// Tree manage a single instance of a path-compressed radix tree whose
// nodes are persisted as records inside an api.Store backend. Keys
// are arbitrary strings, values arbitrary structured data. Every tree
// bound to the same store shares one read/write gate, one id-counter
// cache and one node cache, so any number of tree handles can work
// against one store within a process.
type Tree struct { // tree container
	// 64-bit aligned
	treestats

	name  string
	store api.Store
	ctx   *storectx
	pool  map[string]bool // recycled node ids, private to this handle
	dead  bool

	// settings
	reuseids      bool
	cachenable    bool
	cachecapacity int64
	setts         s.Settings
	logprefix     string
}

// NewTree create a new tree handle over store. Settings missing from
// setts take their Defaultsettings() value.
func NewTree(name string, store api.Store, setts s.Settings) *Tree {
	t := &Tree{name: name, store: store}
	t.logprefix = fmt.Sprintf("RADIX [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	t.readsettings(setts)
	t.setts = setts

	t.ctx = getstorectx(store, t.cachenable, t.cachecapacity)
	t.pool = make(map[string]bool)

	log.Infof("%v started ...\n", t.logprefix)
	return t
}

func (t *Tree) readsettings(setts s.Settings) {
	t.cachenable = setts.Bool("cache.enable")
	t.cachecapacity = setts.Int64("cache.capacity")
	t.reuseids = setts.Bool("allocator.reuseids")
}

// ID return tree id.
func (t *Tree) ID() string {
	return t.name
}

//---- reader operations.

// Get entry for key, absence is signalled by ok as false.
func (t *Tree) Get(key string) (value interface{}, ok bool, err error) {
	if t.dead {
		panic("Get(): already dead tree")
	}
	t.ctx.rw.RLock()
	defer t.ctx.rw.RUnlock()

	atomic.AddInt64(&t.n_lookups, 1)
	e, err := t.lookup(key)
	if err != nil || e == nil {
		return nil, false, err
	}
	value, err = lib.DecodeValue(e.leaf)
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Has check whether key is present in the tree.
func (t *Tree) Has(key string) (bool, error) {
	if t.dead {
		panic("Has(): already dead tree")
	}
	t.ctx.rw.RLock()
	defer t.ctx.rw.RUnlock()

	atomic.AddInt64(&t.n_lookups, 1)
	e, err := t.lookup(key)
	return e != nil, err
}

// View start a lazy scan over entries matching q, in ascending key
// order unless q asks for descending. Pass nil to scan everything.
// The returned cursor holds the read gate of the backing store until
// Close, callers abandoning a scan midway must still call Close.
func (t *Tree) View(q *Query) *Cursor {
	if t.dead {
		panic("View(): already dead tree")
	}
	t.ctx.rw.RLock()
	atomic.AddInt64(&t.n_ranges, 1)
	atomic.AddInt64(&t.n_activeiter, 1)
	return opencursor(t, q)
}

// Count the number of entries in the tree, walking all of it.
func (t *Tree) Count() (int64, error) {
	cur := t.View(nil)
	defer cur.Close()

	count := int64(0)
	for {
		if _, _, err := cur.Next(); err == io.EOF {
			return count, nil
		} else if err != nil {
			return 0, err
		}
		count++
	}
}

//---- writer operations.

// Set upsert value for key, creating intermediate nodes as needed.
func (t *Tree) Set(key string, value interface{}) error {
	if t.dead {
		panic("Set(): already dead tree")
	}
	text, err := lib.EncodeValue(value)
	if err != nil {
		return err
	}

	t.ctx.rw.Lock()
	defer t.ctx.rw.Unlock()

	return t.upsert(key, text)
}

// Delete entry for key, return whether the key was found and removed.
func (t *Tree) Delete(key string) (bool, error) {
	if t.dead {
		panic("Delete(): already dead tree")
	}
	t.ctx.rw.Lock()
	defer t.ctx.rw.Unlock()

	return t.remove(key)
}

// Destroy delete every record the tree holds in the backing store,
// including the root and the id counter, and mark this handle dead.
// Fails with api.ErrorActiveIterators while cursors are open.
func (t *Tree) Destroy() error {
	if t.dead {
		panic("Destroy(): already dead tree")
	}
	if n := atomic.LoadInt64(&t.n_activeiter); n > 0 {
		log.Infof("%v n_activeiter: %v\n", t.logprefix, n)
		return api.ErrorActiveIterators
	}

	t.ctx.rw.Lock()
	defer t.ctx.rw.Unlock()

	root, err := t.fetchnode(rootkey)
	if err != nil {
		return err
	}
	if err := t.destroynode(root); err != nil {
		return err
	}
	if err := t.store.Del(counterkey); err != nil {
		return err
	}
	t.pool, t.dead = nil, true
	log.Infof("%v destroyed\n", t.logprefix)
	return nil
}

func (t *Tree) destroynode(nd *node) error {
	for _, e := range nd.edges {
		if e.cont == false {
			continue
		}
		child, err := t.fetchnode(e.ref)
		if err != nil {
			return err
		}
		if err := t.destroynode(child); err != nil {
			return err
		}
	}
	return t.delnode(nd.id)
}

//---- store i/o.

// fetchnode load a node record, consulting the shared cache first. An
// absent root means an empty tree, an absent non-root id means the
// store was mutated behind our back.
func (t *Tree) fetchnode(id string) (*node, error) {
	if cache := t.ctx.cache; cache != nil {
		if nd := cache.getnode(id); nd != nil {
			return nd, nil
		}
	}
	value, ok, err := t.store.Get(id)
	if err != nil {
		return nil, err
	} else if !ok {
		if id == rootkey {
			return &node{id: rootkey}, nil
		}
		return nil, fmt.Errorf("%w: dangling node %q", api.ErrorInvalidRecord, id)
	}
	nd, err := fromrecord(id, value)
	if err != nil {
		return nil, err
	}
	if cache := t.ctx.cache; cache != nil {
		cache.putnode(nd)
	}
	return nd, nil
}

func (t *Tree) putnode(nd *node) error {
	if err := t.store.Set(nd.id, nd.torecord()); err != nil {
		return err
	}
	if cache := t.ctx.cache; cache != nil {
		cache.putnode(nd)
	}
	return nil
}

func (t *Tree) delnode(id string) error {
	if err := t.store.Del(id); err != nil {
		return err
	}
	if cache := t.ctx.cache; cache != nil {
		cache.delnode(id)
	}
	return nil
}
