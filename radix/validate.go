package radix

import "fmt"

// Validate walk the full tree and check its structural invariants:
// edges strictly sorted ascending by label, no two edges sharing a
// first byte, empty labels only on leaf edges, and no reachable
// non-root node with fewer than two edges.
func (t *Tree) Validate() error {
	t.ctx.rw.RLock()
	defer t.ctx.rw.RUnlock()

	root, err := t.fetchnode(rootkey)
	if err != nil {
		return err
	}
	return t.validatenode(root)
}

func (t *Tree) validatenode(nd *node) error {
	if nd.isroot() == false && len(nd.edges) < 2 {
		return fmt.Errorf("node %q has %v edges", nd.id, len(nd.edges))
	}
	for i, e := range nd.edges {
		if len(e.label) == 0 {
			if e.cont {
				return fmt.Errorf("node %q empty label on branch edge", nd.id)
			}
			if i != 0 {
				return fmt.Errorf("node %q empty label not first", nd.id)
			}
		}
		if i > 0 {
			prev := nd.edges[i-1]
			if prev.label >= e.label {
				return fmt.Errorf("node %q edges unsorted at %v", nd.id, i)
			}
			if len(prev.label) > 0 && prev.label[0] == e.label[0] {
				return fmt.Errorf("node %q first byte clash at %v", nd.id, i)
			}
		}
		if e.cont {
			child, err := t.fetchnode(e.ref)
			if err != nil {
				return err
			}
			if err := t.validatenode(child); err != nil {
				return err
			}
		}
	}
	return nil
}
