package radix

import "sync/atomic"

// upsert insert or replace the encoded value text for key. Descent
// matches by longest common prefix rather than full-label
// containment, insertion is where partial overlaps surface.
func (t *Tree) upsert(key, text string) error {
	nd, err := t.fetchnode(rootkey)
	if err != nil {
		return err
	}

	suffix := key
	for {
		i := nd.pickedge(suffix)
		if i < 0 {
			// no edge can lead to suffix, append a fresh leaf.
			nd.edges = append(nd.edges, edge{label: suffix, leaf: text})
			nd.sortedges()
			atomic.AddInt64(&t.n_inserts, 1)
			return t.putnode(nd)
		}

		e := nd.edges[i]
		common := lcp(suffix, e.label)

		if common == len(e.label) {
			if common == len(suffix) && e.cont == false {
				// exact hit on a leaf, replace its value in place.
				nd.edges[i].leaf = text
				atomic.AddInt64(&t.n_updates, 1)
				return t.putnode(nd)
			}
			if e.cont {
				// label fully consumed, carry on below. A fully
				// consumed key lands on the child's empty-label edge.
				suffix = suffix[common:]
				if nd, err = t.fetchnode(e.ref); err != nil {
					return err
				}
				continue
			}
		}

		// the key diverges inside this edge, split it. The new node
		// carries the two unmatched suffixes, of the key as a fresh
		// leaf and of the label with the original target.
		id, err := t.allocid()
		if err != nil {
			return err
		}
		split := &node{id: id}
		split.edges = append(split.edges, edge{label: suffix[common:], leaf: text})
		rest := e
		rest.label = e.label[common:]
		split.edges = append(split.edges, rest)
		split.sortedges()
		if err := t.putnode(split); err != nil {
			return err
		}

		nd.edges[i] = edge{label: e.label[:common], ref: id, cont: true}
		nd.sortedges()
		atomic.AddInt64(&t.n_inserts, 1)
		atomic.AddInt64(&t.n_splits, 1)
		return t.putnode(nd)
	}
}
