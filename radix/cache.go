package radix

import "sync"

// nodecache hold decoded node records, bounded by an approximate
// byte capacity. It is shared by every tree bound to one store and
// carries its own mutex, the store gate admits concurrent readers and
// all of them fill the cache. Entries are cloned on the way in and
// out, the mutation engine edits nodes in place before persisting
// them.
type nodecache struct {
	mu       sync.Mutex
	n_hits   int64
	n_misses int64
	n_evicts int64
	capacity int64
	size     int64
	nodes    map[string]*node
}

func newnodecache(capacity int64) *nodecache {
	return &nodecache{capacity: capacity, nodes: make(map[string]*node)}
}

func (c *nodecache) getnode(id string) *node {
	c.mu.Lock()
	defer c.mu.Unlock()
	if nd, ok := c.nodes[id]; ok {
		c.n_hits++
		return nd.clone()
	}
	c.n_misses++
	return nil
}

func (c *nodecache) putnode(nd *node) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(nd.id)
	size := nd.footprint()
	if size > c.capacity {
		return
	}
	for c.size+size > c.capacity {
		c.evict()
	}
	c.nodes[nd.id] = nd.clone()
	c.size += size
}

func (c *nodecache) delnode(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(id)
}

func (c *nodecache) stats() (hits, misses, evicts, size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n_hits, c.n_misses, c.n_evicts, c.size
}

func (c *nodecache) remove(id string) {
	if nd, ok := c.nodes[id]; ok {
		c.size -= nd.footprint()
		delete(c.nodes, id)
	}
}

// evict drop an arbitrary entry, map iteration order serves as a
// cheap random pick.
func (c *nodecache) evict() {
	for id, nd := range c.nodes {
		c.size -= nd.footprint()
		delete(c.nodes, id)
		c.n_evicts++
		return
	}
}
