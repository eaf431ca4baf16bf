package radix

import "io"
import "sync/atomic"

import "github.com/bnclabs/goradix/lib"

// cframe is one level of the depth-first walk, the node, the
// accumulated path prefix leading to it, and how many of its edges
// were visited so far.
type cframe struct {
	nd     *node
	prefix string
	next   int
}

// Cursor pull entries lazily out of a View scan. The walk is single
// pass and strictly ordered, edges are persisted pre-sorted so no
// runtime sort happens, and subtrees that cannot satisfy the query
// are skipped without touching the store.
type Cursor struct {
	t      *Tree
	q      *Query
	stack  []cframe
	budget int64 // entries still allowed, -1 for unlimited
	failed error
	done   bool
	closed bool
}

func opencursor(t *Tree, q *Query) *Cursor {
	if q == nil {
		q = NewQuery()
	}
	cur := &Cursor{t: t, q: q, budget: q.count}
	if cur.budget <= 0 {
		cur.budget = -1
	}
	root, err := t.fetchnode(rootkey)
	if err != nil {
		cur.failed = err
		return cur
	}
	cur.stack = append(cur.stack, cframe{nd: root})
	return cur
}

// Next return the next matching entry. Exhaustion is io.EOF, any
// store or decode failure surfaces once and finishes the cursor.
// Close must be called regardless of how the scan ends.
func (cur *Cursor) Next() (key string, value interface{}, err error) {
	if cur.closed {
		panic("cannot iterate over a closed cursor")
	}
	if cur.failed != nil {
		err, cur.failed, cur.done = cur.failed, nil, true
		return "", nil, err
	}
	if cur.done || cur.budget == 0 {
		return "", nil, io.EOF
	}

	for len(cur.stack) > 0 {
		top := &cur.stack[len(cur.stack)-1]
		if top.next >= len(top.nd.edges) {
			cur.stack = cur.stack[:len(cur.stack)-1]
			continue
		}
		i := top.next
		if cur.q.desc {
			i = len(top.nd.edges) - 1 - top.next
		}
		e := top.nd.edges[i]
		top.next++

		path := top.prefix + e.label
		if e.cont {
			if cur.q.matchbranch(path) == false {
				continue // prune, descendants never loaded
			}
			child, err := cur.t.fetchnode(e.ref)
			if err != nil {
				cur.done = true
				return "", nil, err
			}
			cur.stack = append(cur.stack, cframe{nd: child, prefix: path})
			continue
		}

		if cur.q.matchkey(path) == false {
			continue
		}
		value, err := lib.DecodeValue(e.leaf)
		if err != nil {
			cur.done = true
			return "", nil, err
		}
		if cur.budget > 0 {
			cur.budget--
		}
		return path, value, nil
	}

	cur.done = true
	return "", nil, io.EOF
}

// Close release the store gate and retire the cursor. Safe to call
// once the scan is exhausted or abandoned midway, but never twice.
func (cur *Cursor) Close() {
	if cur.closed {
		panic("cannot close a closed cursor")
	}
	cur.closed, cur.stack = true, nil
	atomic.AddInt64(&cur.t.n_activeiter, -1)
	cur.t.ctx.rw.RUnlock()
}
