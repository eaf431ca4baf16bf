package lib

import "math"
import "reflect"
import "testing"

func TestEncodeValue(t *testing.T) {
	testcases := []struct {
		value interface{}
		text  string
	}{
		{nil, "null"},
		{true, "true"},
		{float64(10.5), "10.5"},
		{"hello world", `"hello world"`},
		{math.Inf(1), "9e999"},
		{math.Inf(-1), "-9e999"},
		{[]interface{}{float64(1), "two", math.Inf(1)}, `[1,"two",9e999]`},
		{map[string]interface{}{"x": math.Inf(-1)}, `{"x":-9e999}`},
	}
	for _, tcase := range testcases {
		text, err := EncodeValue(tcase.value)
		if err != nil {
			t.Errorf("unexpected %v", err)
		} else if text != tcase.text {
			t.Errorf("expected %v, got %v", tcase.text, text)
		}
	}
}

func TestDecodeValue(t *testing.T) {
	testcases := []struct {
		text  string
		value interface{}
	}{
		{"null", nil},
		{"false", false},
		{"10.5", float64(10.5)},
		{`"hello world"`, "hello world"},
		{"9e999", math.Inf(1)},
		{"-9e999", math.Inf(-1)},
		{`[1,"two",9e999]`, []interface{}{float64(1), "two", math.Inf(1)}},
		{`{"x":-9e999}`, map[string]interface{}{"x": math.Inf(-1)}},
	}
	for _, tcase := range testcases {
		value, err := DecodeValue(tcase.text)
		if err != nil {
			t.Errorf("unexpected %v", err)
		} else if reflect.DeepEqual(value, tcase.value) == false {
			t.Errorf("expected %v, got %v", tcase.value, value)
		}
	}
}

func TestValueRoundtrip(t *testing.T) {
	values := []interface{}{
		nil, true, false, "", "x", float64(0), float64(-1.25),
		math.Inf(1), math.Inf(-1),
		[]interface{}{},
		map[string]interface{}{
			"nested": []interface{}{
				map[string]interface{}{"deep": math.Inf(1)},
				float64(42),
			},
		},
	}
	for _, value := range values {
		text, err := EncodeValue(value)
		if err != nil {
			t.Fatalf("encode %v: %v", value, err)
		}
		back, err := DecodeValue(text)
		if err != nil {
			t.Fatalf("decode %q: %v", text, err)
		}
		if reflect.DeepEqual(value, back) == false {
			t.Errorf("expected %v, got %v", value, back)
		}
	}
}

func TestDecodeBadText(t *testing.T) {
	if _, err := DecodeValue("{"); err == nil {
		t.Errorf("expected error")
	}
}
