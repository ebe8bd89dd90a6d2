package health

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Data is an insertion-ordered string map attached to a check. Its JSON form
// lists keys in insertion order so serialized reports are byte-stable.
//
// The zero value is an empty, usable Data. Methods on a nil *Data behave like
// an empty one, except Set.
type Data struct {
	keys   []string
	values map[string]string
}

// NewData builds Data from alternating key/value pairs. A trailing key
// without a value is ignored.
func NewData(kv ...string) *Data {
	d := &Data{}
	for i := 0; i+1 < len(kv); i += 2 {
		d.Set(kv[i], kv[i+1])
	}
	return d
}

// Set stores value under key. Setting an existing key keeps its original
// position.
func (d *Data) Set(key, value string) {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value stored under key.
func (d *Data) Get(key string) (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d.values[key]
	return v, ok
}

// Len returns the number of entries.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns a copy of the keys in insertion order.
func (d *Data) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Clone returns an independent copy. Cloning nil or empty Data returns nil.
func (d *Data) Clone() *Data {
	if d.Len() == 0 {
		return nil
	}
	c := &Data{
		keys:   make([]string, len(d.keys)),
		values: make(map[string]string, len(d.values)),
	}
	copy(c.keys, d.keys)
	for k, v := range d.values {
		c.values[k] = v
	}
	return c
}

// MarshalJSON writes a JSON object with keys in insertion order.
func (d *Data) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("marshalling data key %q: %w", k, err)
		}
		vb, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, fmt.Errorf("marshalling data value for %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of string values, preserving key order.
func (d *Data) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding data: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("decoding data: expected JSON object")
	}

	*d = Data{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding data key: %w", err)
		}
		key, _ := keyTok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decoding data value for %q: %w", key, err)
		}
		d.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decoding data: %w", err)
	}
	return nil
}
