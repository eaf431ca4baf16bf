package radix

import "strings"

type clausekind byte

const (
	qgt clausekind = iota + 1
	qgte
	qlt
	qlte
	qprefix
	qprefixnot
	qprefixsome
)

// clause is one bound of a query. Queries evaluate as the conjunction
// of their clauses, represented as plain data rather than any kind of
// compiled predicate.
type clause struct {
	kind   clausekind
	bound  string
	bounds []string // qprefixsome only
}

// Query restrict and order a View scan. All bounds are optional and
// AND-combined. The zero query matches every key in ascending order
// without limit.
type Query struct {
	count   int64
	desc    bool
	clauses []clause
}

// NewQuery create an empty query, bounds are added by chaining.
func NewQuery() *Query {
	return &Query{}
}

// Count limit the scan to at most n entries. Zero or negative means
// unlimited.
func (q *Query) Count(n int64) *Query {
	q.count = n
	return q
}

// Sort order the scan, 1 for ascending, -1 for descending, over full
// keys lexicographically.
func (q *Query) Sort(order int) *Query {
	q.desc = order < 0
	return q
}

// GT keep keys strictly greater than key.
func (q *Query) GT(key string) *Query {
	q.clauses = append(q.clauses, clause{kind: qgt, bound: key})
	return q
}

// GTE keep keys greater than or equal to key.
func (q *Query) GTE(key string) *Query {
	q.clauses = append(q.clauses, clause{kind: qgte, bound: key})
	return q
}

// LT keep keys strictly less than key.
func (q *Query) LT(key string) *Query {
	q.clauses = append(q.clauses, clause{kind: qlt, bound: key})
	return q
}

// LTE keep keys less than or equal to key.
func (q *Query) LTE(key string) *Query {
	q.clauses = append(q.clauses, clause{kind: qlte, bound: key})
	return q
}

// Prefix keep keys starting with literal.
func (q *Query) Prefix(literal string) *Query {
	q.clauses = append(q.clauses, clause{kind: qprefix, bound: literal})
	return q
}

// PrefixNot drop keys starting with literal.
func (q *Query) PrefixNot(literal string) *Query {
	q.clauses = append(q.clauses, clause{kind: qprefixnot, bound: literal})
	return q
}

// PrefixSome keep keys starting with any of the literals.
func (q *Query) PrefixSome(literals ...string) *Query {
	q.clauses = append(q.clauses, clause{kind: qprefixsome, bounds: literals})
	return q
}

// matchkey evaluate the exact predicate against a full key.
func (q *Query) matchkey(key string) bool {
	for _, c := range q.clauses {
		if c.matchkey(key) == false {
			return false
		}
	}
	return true
}

// matchbranch evaluate the conservative predicate against an
// accumulated, necessarily incomplete prefix: could any key under
// this subtree still satisfy every clause? False prunes the subtree
// without loading it.
func (q *Query) matchbranch(prefix string) bool {
	for _, c := range q.clauses {
		if c.matchbranch(prefix) == false {
			return false
		}
	}
	return true
}

func (c *clause) matchkey(key string) bool {
	switch c.kind {
	case qgt:
		return key > c.bound
	case qgte:
		return key >= c.bound
	case qlt:
		return key < c.bound
	case qlte:
		return key <= c.bound
	case qprefix:
		return strings.HasPrefix(key, c.bound)
	case qprefixnot:
		return strings.HasPrefix(key, c.bound) == false
	case qprefixsome:
		for _, bound := range c.bounds {
			if strings.HasPrefix(key, bound) {
				return true
			}
		}
		return false
	}
	panic("unreachable code")
}

func (c *clause) matchbranch(prefix string) bool {
	switch c.kind {
	case qgt, qgte:
		// compare against the bound truncated to the prefix length,
		// prune only when the prefix sorts strictly before it.
		return prefix >= truncate(c.bound, len(prefix))
	case qlt, qlte:
		// inclusive either way, an ambiguous prefix never prunes.
		return prefix <= truncate(c.bound, len(prefix))
	case qprefix:
		return matchbranchprefix(prefix, c.bound)
	case qprefixnot:
		if len(prefix) < len(c.bound) {
			return true // ambiguous, cannot prune yet
		}
		return prefix[:len(c.bound)] != c.bound
	case qprefixsome:
		for _, bound := range c.bounds {
			if matchbranchprefix(prefix, bound) {
				return true
			}
		}
		return false
	}
	panic("unreachable code")
}

// matchbranchprefix prefix and bound, each truncated to the other's
// length, must agree.
func matchbranchprefix(prefix, bound string) bool {
	n := len(prefix)
	if len(bound) < n {
		n = len(bound)
	}
	return prefix[:n] == bound[:n]
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
