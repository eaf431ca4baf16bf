package radix

import "strings"

// lookup descend from the root towards key, dispatching on the first
// byte of the remaining suffix at every node. Return the leaf edge
// holding the key, nil when the key is absent. Insert and delete
// rebuild this walk with their own bookkeeping, reads share it.
func (t *Tree) lookup(key string) (*edge, error) {
	nd, err := t.fetchnode(rootkey)
	if err != nil {
		return nil, err
	}

	suffix := key
	for {
		i := nd.pickedge(suffix)
		if i < 0 {
			return nil, nil
		}
		e := nd.edges[i]
		if strings.HasPrefix(suffix, e.label) == false {
			// partial overlap, the key diverges inside this label.
			return nil, nil
		}
		suffix = suffix[len(e.label):]
		if e.cont == false {
			if len(suffix) == 0 {
				return &e, nil
			}
			return nil, nil // key continues past a leaf
		}
		if nd, err = t.fetchnode(e.ref); err != nil {
			return nil, err
		}
	}
}
