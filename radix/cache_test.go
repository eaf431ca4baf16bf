package radix

import "fmt"
import "math/rand"
import "reflect"
import "testing"

import "github.com/bnclabs/goradix/dict"

func TestCacheEquivalence(t *testing.T) {
	cachedsetts := Defaultsettings()
	plainsetts := Defaultsettings()
	plainsetts["cache.enable"] = false

	cached := NewTree("cached", dict.NewDict("cacheon"), cachedsetts)
	plain := NewTree("plain", dict.NewDict("cacheoff"), plainsetts)

	rnd := rand.New(rand.NewSource(7))
	letters := "abcd"
	keys := []string{}
	for i := 0; i < 300; i++ {
		n := 1 + rnd.Intn(6)
		key := make([]byte, n)
		for j := range key {
			key[j] = letters[rnd.Intn(len(letters))]
		}
		keys = append(keys, string(key))
	}
	for i, key := range keys {
		cached.Set(key, float64(i))
		plain.Set(key, float64(i))
	}
	for _, key := range keys[:100] { // duplicates delete as not-found
		ok1, err1 := cached.Delete(key)
		ok2, err2 := plain.Delete(key)
		if ok1 != ok2 || err1 != err2 {
			t.Fatalf("diverged on delete %v: %v %v %v %v", key, ok1, err1, ok2, err2)
		}
	}

	got1 := collect(t, cached, nil)
	got2 := collect(t, plain, nil)
	if reflect.DeepEqual(got1, got2) == false {
		t.Errorf("expected %v, got %v", got2, got1)
	}
	for _, key := range keys {
		v1, ok1, _ := cached.Get(key)
		v2, ok2, _ := plain.Get(key)
		if ok1 != ok2 || reflect.DeepEqual(v1, v2) == false {
			t.Errorf("diverged on %v: %v %v %v %v", key, v1, ok1, v2, ok2)
		}
	}

	hits := cached.Stats()["cache.hits"].(int64)
	if hits == 0 {
		t.Errorf("expected cache hits")
	}
	if _, ok := plain.Stats()["cache.hits"]; ok {
		t.Errorf("unexpected cache stats")
	}
}

func TestNodecache(t *testing.T) {
	c := newnodecache(1024)

	nd := &node{id: "a", edges: []edge{{label: "x", leaf: `"v"`}}}
	c.putnode(nd)
	if got := c.getnode("a"); got == nil {
		t.Fatalf("expected entry")
	} else if got == nd {
		t.Errorf("expected a clone")
	} else if got.edges[0].label != "x" {
		t.Errorf("unexpected %v", got.edges[0])
	}
	if got := c.getnode("b"); got != nil {
		t.Errorf("unexpected %v", got)
	}

	c.delnode("a")
	if got := c.getnode("a"); got != nil {
		t.Errorf("unexpected %v", got)
	}
	if c.size != 0 {
		t.Errorf("unexpected %v", c.size)
	}

	// capacity bounds the cache, eviction keeps it under.
	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("node%v", i)
		c.putnode(&node{id: id, edges: []edge{{label: "xx", leaf: `"vv"`}}})
	}
	if c.size > c.capacity {
		t.Errorf("size %v exceeds capacity %v", c.size, c.capacity)
	}
	_, _, evicts, _ := c.stats()
	if evicts == 0 {
		t.Errorf("expected evictions")
	}

	// an oversized record is simply not cached.
	big := &node{id: "big", edges: []edge{{label: string(make([]byte, 2048))}}}
	c.putnode(big)
	if got := c.getnode("big"); got != nil {
		t.Errorf("unexpected %v", got)
	}
}
