package lib

import "encoding/json"
import "math"
import "strconv"
import "strings"

// rawnum emits its text unquoted into the encoded stream.
type rawnum string

func (r rawnum) MarshalJSON() ([]byte, error) {
	return []byte(r), nil
}

// EncodeValue serialize a structured value to JSON text. JSON has no
// literal for the infinities, so positive and negative infinity are
// written unquoted as 9e999 and -9e999, which overflow back to the
// infinities under standard float parsing.
func EncodeValue(value interface{}) (string, error) {
	data, err := json.Marshal(encodable(value))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeValue parse JSON text into a structured value. Numbers come
// back as float64, the 9e999 / -9e999 literals as the infinities.
func DecodeValue(text string) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	return normalize(value), nil
}

func encodable(value interface{}) interface{} {
	switch v := value.(type) {
	case float64:
		if math.IsInf(v, 1) {
			return rawnum("9e999")
		} else if math.IsInf(v, -1) {
			return rawnum("-9e999")
		}
		return v
	case float32:
		return encodable(float64(v))
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = encodable(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[key] = encodable(item)
		}
		return out
	}
	return value
}

func normalize(value interface{}) interface{} {
	switch v := value.(type) {
	case json.Number:
		// ParseFloat overflows out-of-range literals to the
		// infinities, which is exactly what 9e999 relies on.
		f, _ := strconv.ParseFloat(string(v), 64)
		return f
	case []interface{}:
		for i, item := range v {
			v[i] = normalize(item)
		}
		return v
	case map[string]interface{}:
		for key, item := range v {
			v[key] = normalize(item)
		}
		return v
	}
	return value
}
