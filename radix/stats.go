package radix

import "sync/atomic"

import "github.com/bnclabs/golog"
import humanize "github.com/dustin/go-humanize"

type treestats struct {
	n_lookups    int64
	n_inserts    int64
	n_updates    int64
	n_deletes    int64
	n_ranges     int64
	n_activeiter int64
	n_splits     int64
	n_collapses  int64
	n_allocs     int64
	n_reclaims   int64
}

// Stats return a set of tree statistics, operation counters for this
// handle and cache counters for the backing store.
func (t *Tree) Stats() map[string]interface{} {
	t.ctx.rw.RLock()
	defer t.ctx.rw.RUnlock()

	stats := map[string]interface{}{
		"n_lookups":    atomic.LoadInt64(&t.n_lookups),
		"n_inserts":    atomic.LoadInt64(&t.n_inserts),
		"n_updates":    atomic.LoadInt64(&t.n_updates),
		"n_deletes":    atomic.LoadInt64(&t.n_deletes),
		"n_ranges":     atomic.LoadInt64(&t.n_ranges),
		"n_activeiter": atomic.LoadInt64(&t.n_activeiter),
		"n_splits":     atomic.LoadInt64(&t.n_splits),
		"n_collapses":  atomic.LoadInt64(&t.n_collapses),
		"n_allocs":     atomic.LoadInt64(&t.n_allocs),
		"n_reclaims":   atomic.LoadInt64(&t.n_reclaims),
		"n_freeids":    int64(len(t.pool)),
	}
	if cache := t.ctx.cache; cache != nil {
		hits, misses, evicts, size := cache.stats()
		stats["cache.hits"] = hits
		stats["cache.misses"] = misses
		stats["cache.evicts"] = evicts
		stats["cache.size"] = size
		stats["cache.capacity"] = cache.capacity
	}
	return stats
}

// Log current statistics in human readable format.
func (t *Tree) Log() {
	stats := t.Stats()
	fmsg := "%v lookups:%v inserts:%v updates:%v deletes:%v ranges:%v\n"
	log.Infof(
		fmsg, t.logprefix,
		humanize.Comma(stats["n_lookups"].(int64)),
		humanize.Comma(stats["n_inserts"].(int64)),
		humanize.Comma(stats["n_updates"].(int64)),
		humanize.Comma(stats["n_deletes"].(int64)),
		humanize.Comma(stats["n_ranges"].(int64)))
	fmsg = "%v splits:%v collapses:%v allocs:%v reclaims:%v freeids:%v\n"
	log.Infof(
		fmsg, t.logprefix,
		humanize.Comma(stats["n_splits"].(int64)),
		humanize.Comma(stats["n_collapses"].(int64)),
		humanize.Comma(stats["n_allocs"].(int64)),
		humanize.Comma(stats["n_reclaims"].(int64)),
		humanize.Comma(stats["n_freeids"].(int64)))
	if cache := t.ctx.cache; cache != nil {
		hits, misses, _, size := cache.stats()
		fmsg = "%v cache hits:%v misses:%v size:%v of %v\n"
		log.Infof(
			fmsg, t.logprefix,
			humanize.Comma(hits), humanize.Comma(misses),
			humanize.Bytes(uint64(size)), humanize.Bytes(uint64(cache.capacity)))
	}
}
