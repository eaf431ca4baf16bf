package radix

import "fmt"
import "sort"

import "github.com/bnclabs/goradix/api"

// Reserved store keys. Node ids are base-36 ordinals and never
// collide with either.
const rootkey = "_"
const counterkey = "#"

// edge is a (label, target) pair within a node. A leaf edge
// terminates the accumulated key with its encoded value, a branch
// edge points to another persisted node. Labels are non-empty, except
// for the leaf edge that marks "the key ends here" inside a branch
// node, which carries the empty label and sorts first.
type edge struct {
	label string
	ref   string // target node id, branch edges only
	leaf  string // encoded value text, leaf edges only
	cont  bool   // true for branch edges
}

// node is an ordered sequence of edges, persisted under rootkey or an
// allocated id. Edges are kept sorted ascending by label and no two
// edges share a first byte, so dispatch by first byte is unambiguous.
type node struct {
	id    string
	edges []edge
}

func (nd *node) isroot() bool {
	return nd.id == rootkey
}

func (nd *node) sortedges() {
	sort.Slice(nd.edges, func(i, j int) bool {
		return nd.edges[i].label < nd.edges[j].label
	})
}

// pickedge return the index of the only edge that can lead to suffix,
// -1 when no edge qualifies. The empty suffix is led to only by the
// empty-label edge and vice versa.
func (nd *node) pickedge(suffix string) int {
	for i, e := range nd.edges {
		if len(suffix) == 0 || len(e.label) == 0 {
			if len(suffix) == len(e.label) {
				return i
			}
			continue
		}
		if e.label[0] == suffix[0] {
			return i
		}
	}
	return -1
}

func (nd *node) removedge(index int) {
	nd.edges = append(nd.edges[:index], nd.edges[index+1:]...)
}

// torecord flatten the node to its persisted shape, a sequence of
// [label, target] pairs where target is a bare id string for branches
// and a single-element sequence wrapping the value text for leaves.
func (nd *node) torecord() interface{} {
	record := make([]interface{}, 0, len(nd.edges))
	for _, e := range nd.edges {
		var target interface{}
		if e.cont {
			target = e.ref
		} else {
			target = []interface{}{e.leaf}
		}
		record = append(record, []interface{}{e.label, target})
	}
	return record
}

func fromrecord(id string, value interface{}) (*node, error) {
	entries, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: node %q", api.ErrorInvalidRecord, id)
	}
	nd := &node{id: id, edges: make([]edge, 0, len(entries))}
	for _, entry := range entries {
		pair, ok := entry.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("%w: node %q", api.ErrorInvalidRecord, id)
		}
		label, ok := pair[0].(string)
		if !ok {
			return nil, fmt.Errorf("%w: node %q", api.ErrorInvalidRecord, id)
		}
		switch target := pair[1].(type) {
		case string:
			nd.edges = append(nd.edges, edge{label: label, ref: target, cont: true})
		case []interface{}:
			if len(target) != 1 {
				return nil, fmt.Errorf("%w: node %q", api.ErrorInvalidRecord, id)
			}
			text, ok := target[0].(string)
			if !ok {
				return nil, fmt.Errorf("%w: node %q", api.ErrorInvalidRecord, id)
			}
			nd.edges = append(nd.edges, edge{label: label, leaf: text})
		default:
			return nil, fmt.Errorf("%w: node %q", api.ErrorInvalidRecord, id)
		}
	}
	return nd, nil
}

func (nd *node) clone() *node {
	return &node{id: nd.id, edges: append([]edge(nil), nd.edges...)}
}

// footprint approximate the in-memory size of the node, for cache
// accounting.
func (nd *node) footprint() int64 {
	size := int64(len(nd.id)) + 48
	for _, e := range nd.edges {
		size += int64(len(e.label)+len(e.ref)+len(e.leaf)) + 56
	}
	return size
}

// lcp return the longest common prefix length of two strings.
func lcp(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
