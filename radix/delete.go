package radix

import "strings"
import "sync/atomic"

// frame records one step of the descent, the node and the index of
// the edge taken out of it.
type frame struct {
	nd   *node
	eidx int
}

// remove delete the leaf edge for key and re-compress the path. A
// node left with a single edge is merged into its parent, a node left
// empty is dropped from its parent, and the check repeats at every
// ancestor that changes, so no reachable non-root node ever keeps
// fewer than two edges. Freed node ids are recycled.
func (t *Tree) remove(key string) (bool, error) {
	nd, err := t.fetchnode(rootkey)
	if err != nil {
		return false, err
	}

	// descend, recording the path for the collapse phase.
	var stack []frame
	suffix := key
	for {
		i := nd.pickedge(suffix)
		if i < 0 {
			return false, nil
		}
		e := nd.edges[i]
		if strings.HasPrefix(suffix, e.label) == false {
			return false, nil
		}
		suffix = suffix[len(e.label):]
		if e.cont == false {
			if len(suffix) > 0 {
				return false, nil
			}
			nd.removedge(i)
			break
		}
		stack = append(stack, frame{nd: nd, eidx: i})
		if nd, err = t.fetchnode(e.ref); err != nil {
			return false, err
		}
	}
	atomic.AddInt64(&t.n_deletes, 1)

	// collapse upward from the node that lost the leaf.
	for {
		if nd.isroot() || len(nd.edges) >= 2 {
			return true, t.putnode(nd)
		}

		parent := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := t.delnode(nd.id); err != nil {
			return false, err
		}
		t.freeid(nd.id)
		atomic.AddInt64(&t.n_collapses, 1)

		if len(nd.edges) == 1 {
			// splice the surviving edge into the parent, label
			// prefixed by the label that pointed here.
			rem := nd.edges[0]
			rem.label = parent.nd.edges[parent.eidx].label + rem.label
			parent.nd.edges[parent.eidx] = rem
			parent.nd.sortedges()
			return true, t.putnode(parent.nd)
		}

		// nd went empty, drop the parent edge that pointed to it and
		// re-check the parent.
		parent.nd.removedge(parent.eidx)
		nd = parent.nd
	}
}
