package timer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Field names with meaning to the client.
const (
	FieldID    = "id"
	FieldStart = "start"
)

// ErrNotObject is returned when a JSON value that should hold a timer is not an object.
var ErrNotObject = errors.New("timer: not a JSON object")

// Timer is a single timer record. The zero value (nil) is an empty record.
type Timer map[string]any

// ID returns the value of the "id" field, or nil if absent.
func (t Timer) ID() any {
	return t[FieldID]
}

// Start returns the value of the "start" field, or nil if absent.
func (t Timer) Start() any {
	return t[FieldStart]
}

// Get returns the named field and whether it is present.
func (t Timer) Get(key string) (any, bool) {
	v, ok := t[key]
	return v, ok
}

// With returns a copy of t with key set to value.
func (t Timer) With(key string, value any) Timer {
	c := t.Clone()
	if c == nil {
		c = make(Timer, 1)
	}
	c[key] = value
	return c
}

// Clone returns a shallow copy of t. Nested objects are shared.
func (t Timer) Clone() Timer {
	if t == nil {
		return nil
	}
	c := make(Timer, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

// Decode parses a single timer from JSON.
// Numbers are decoded as float64.
func Decode(data []byte) (Timer, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, ErrNotObject
	}
	var t Timer
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("timer: decode: %w", err)
	}
	return t, nil
}

// DecodeList parses a JSON array of timers. A JSON null yields an empty list.
func DecodeList(data []byte) ([]Timer, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return []Timer{}, nil
	}
	if len(data) == 0 || data[0] != '[' {
		return nil, fmt.Errorf("timer: decode list: expected JSON array")
	}
	var ts []Timer
	if err := json.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("timer: decode list: %w", err)
	}
	if ts == nil {
		ts = []Timer{}
	}
	return ts, nil
}

// KeyEqual reports whether two key values are strictly equal.
//
// Numbers of any Go numeric type compare by value. Strings, bools and nil
// compare by value within their own type. Values of other kinds (objects,
// arrays) are never equal to anything.
func KeyEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	}
	return false
}

// PathID formats a key value the way it appears in a URL path segment.
// Integral numbers are written without a fraction, so 1 and 1.0 both give "1".
func PathID(id any) string {
	if f, ok := toFloat(id); ok {
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return strconv.FormatInt(int64(f), 10)
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	}
	return fmt.Sprint(id)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
