package radix

import "fmt"
import "strconv"
import "sync/atomic"

import "github.com/bnclabs/goradix/api"

// allocid produce a node id, preferring the handle-local recycle
// pool over drawing a fresh ordinal. Ordinals come from a counter
// cache shared by every tree on this store, hydrated lazily from the
// persisted counter, so concurrent handles never draw colliding ids.
// Only writers allocate and writers hold the gate exclusively, the
// counter cache needs no lock of its own.
func (t *Tree) allocid() (string, error) {
	if t.reuseids {
		for id := range t.pool {
			delete(t.pool, id)
			atomic.AddInt64(&t.n_reclaims, 1)
			return id, nil
		}
	}

	ctx := t.ctx
	if ctx.hydrated == false {
		value, ok, err := t.store.Get(counterkey)
		if err != nil {
			return "", err
		}
		if ok {
			ord, err := toint64(value)
			if err != nil {
				return "", err
			}
			ctx.nextord = ord
		}
		ctx.hydrated = true
	}

	ord := ctx.nextord
	if err := t.store.Set(counterkey, ord+1); err != nil {
		return "", err
	}
	ctx.nextord = ord + 1
	atomic.AddInt64(&t.n_allocs, 1)
	return strconv.FormatInt(ord, 36), nil
}

// freeid return a node id to the in-memory recycle pool. The pool is
// not persisted, ids pending in it when the process dies are leaked
// ordinals, the counter keeps growing past them.
func (t *Tree) freeid(id string) {
	if t.reuseids {
		t.pool[id] = true
	}
}

func toint64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	}
	return 0, fmt.Errorf("%w: counter %v", api.ErrorInvalidRecord, value)
}
