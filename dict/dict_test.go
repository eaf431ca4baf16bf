package dict

import "testing"

func TestDict(t *testing.T) {
	d := NewDict("testdict")
	if d.ID() != "testdict" {
		t.Errorf("unexpected %v", d.ID())
	}

	if _, ok, err := d.Get("missing"); err != nil {
		t.Errorf("unexpected %v", err)
	} else if ok {
		t.Errorf("unexpected entry")
	}

	if err := d.Set("key1", "value1"); err != nil {
		t.Errorf("unexpected %v", err)
	}
	if value, ok, _ := d.Get("key1"); !ok {
		t.Errorf("expected key1")
	} else if value.(string) != "value1" {
		t.Errorf("unexpected %v", value)
	}
	if d.Count() != 1 {
		t.Errorf("unexpected %v", d.Count())
	}

	if err := d.Del("key1"); err != nil {
		t.Errorf("unexpected %v", err)
	}
	if _, ok, _ := d.Get("key1"); ok {
		t.Errorf("unexpected entry")
	}
	if err := d.Del("key1"); err != nil { // absent delete is a no-op
		t.Errorf("unexpected %v", err)
	}

	d.Set("a", 1.0)
	d.Set("b", 2.0)
	if keys := d.Keys(); len(keys) != 2 {
		t.Errorf("unexpected %v", keys)
	}

	stats := d.Stats()
	if x := stats["n_sets"].(int64); x != 3 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_dels"].(int64); x != 2 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_count"].(int64); x != 2 {
		t.Errorf("unexpected %v", x)
	}
}
