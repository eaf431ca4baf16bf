// Package dict implement a dictionary of key,value pairs based on
// golang map. Primarily meant as reference backend for testing more
// useful storage backends.
package dict

import "sync"
import "sync/atomic"

import "github.com/bnclabs/goradix/api"

var _ api.Store = (*Dict)(nil)

// Dict is a reference api.Store implementation, for validation
// purpose. Read-your-writes holds trivially, every operation works
// directly on the underlying map.
type Dict struct {
	n_gets int64
	n_sets int64
	n_dels int64

	id string
	mu sync.Mutex
	m  map[string]interface{}
}

// NewDict create a new golang map backed store.
func NewDict(id string) *Dict {
	return &Dict{id: id, m: make(map[string]interface{})}
}

// ID return store id.
func (d *Dict) ID() string {
	return d.id
}

// Count return the number of entries in the store.
func (d *Dict) Count() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return int64(len(d.m))
}

// Keys return a snapshot of every key in the store, in no particular
// order.
func (d *Dict) Keys() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	keys := make([]string, 0, len(d.m))
	for key := range d.m {
		keys = append(keys, key)
	}
	return keys
}

// Stats return store statistics.
func (d *Dict) Stats() map[string]interface{} {
	return map[string]interface{}{
		"n_gets":  atomic.LoadInt64(&d.n_gets),
		"n_sets":  atomic.LoadInt64(&d.n_sets),
		"n_dels":  atomic.LoadInt64(&d.n_dels),
		"n_count": d.Count(),
	}
}

//---- api.Store{} interface.

// Get implement api.Store{} interface.
func (d *Dict) Get(key string) (interface{}, bool, error) {
	atomic.AddInt64(&d.n_gets, 1)
	d.mu.Lock()
	defer d.mu.Unlock()
	value, ok := d.m[key]
	return value, ok, nil
}

// Set implement api.Store{} interface.
func (d *Dict) Set(key string, value interface{}) error {
	atomic.AddInt64(&d.n_sets, 1)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.m[key] = value
	return nil
}

// Del implement api.Store{} interface.
func (d *Dict) Del(key string) error {
	atomic.AddInt64(&d.n_dels, 1)
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.m, key)
	return nil
}
