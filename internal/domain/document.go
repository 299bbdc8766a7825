package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is a JSON object that remembers the order its keys first
// appeared in. Fields the tool does not understand ride along as raw
// bytes and survive read-modify-write cycles verbatim.
type Document struct {
	keys   []string
	values map[string]json.RawMessage
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{values: make(map[string]json.RawMessage)}
}

// UnmarshalJSON decodes a JSON object token by token so key order is
// captured. A JSON null decodes to an empty document.
func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		d.keys = nil
		d.values = make(map[string]json.RawMessage)
		return nil
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("document: expected JSON object, got %v", tok)
	}

	d.keys = nil
	d.values = make(map[string]json.RawMessage)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("document: expected object key, got %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if _, seen := d.values[key]; !seen {
			d.keys = append(d.keys, key)
		}
		d.values[key] = raw
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON emits the object with keys in insertion order. Output is
// compact; callers that want indentation re-indent the whole tree.
func (d *Document) MarshalJSON() ([]byte, error) {
	if d == nil || len(d.keys) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		val := d.values[key]
		if len(val) == 0 {
			val = json.RawMessage("null")
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Len returns the number of keys.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *Document) Keys() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	if d == nil {
		return false
	}
	_, ok := d.values[key]
	return ok
}

// Raw returns the raw JSON value for key.
func (d *Document) Raw(key string) (json.RawMessage, bool) {
	if d == nil {
		return nil, false
	}
	raw, ok := d.values[key]
	return raw, ok
}

// SetRaw stores raw under key, appending the key if it is new.
func (d *Document) SetRaw(key string, raw json.RawMessage) {
	if d.values == nil {
		d.values = make(map[string]json.RawMessage)
	}
	if _, seen := d.values[key]; !seen {
		d.keys = append(d.keys, key)
	}
	d.values[key] = raw
}

// Delete removes key and its value.
func (d *Document) Delete(key string) {
	if d == nil || d.values == nil {
		return
	}
	if _, ok := d.values[key]; !ok {
		return
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// StringField returns the string value for key, false if absent or not
// a string.
func (d *Document) StringField(key string) (string, bool) {
	raw, ok := d.Raw(key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// FloatField returns the numeric value for key.
func (d *Document) FloatField(key string) (float64, bool) {
	raw, ok := d.Raw(key)
	if !ok {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

// BoolField returns the boolean value for key.
func (d *Document) BoolField(key string) (bool, bool) {
	raw, ok := d.Raw(key)
	if !ok {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, false
	}
	return b, true
}

// StringsField returns the string-array value for key.
func (d *Document) StringsField(key string) ([]string, bool) {
	raw, ok := d.Raw(key)
	if !ok {
		return nil, false
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false
	}
	return list, true
}

// DocumentField returns the nested object under key. The second result
// is false when the key is absent or the value is not an object; the
// returned document is never nil so callers can read from it directly.
func (d *Document) DocumentField(key string) (*Document, bool) {
	raw, ok := d.Raw(key)
	if !ok {
		return NewDocument(), false
	}
	child := NewDocument()
	if err := json.Unmarshal(raw, child); err != nil {
		return NewDocument(), false
	}
	return child, true
}

// SetString stores a string value under key.
func (d *Document) SetString(key, value string) {
	raw, _ := json.Marshal(value)
	d.SetRaw(key, raw)
}

// SetFloat stores a numeric value under key.
func (d *Document) SetFloat(key string, value float64) {
	raw, _ := json.Marshal(value)
	d.SetRaw(key, raw)
}

// SetBool stores a boolean value under key.
func (d *Document) SetBool(key string, value bool) {
	raw, _ := json.Marshal(value)
	d.SetRaw(key, raw)
}

// SetStrings stores a string array under key.
func (d *Document) SetStrings(key string, values []string) {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	d.SetRaw(key, raw)
}

// SetAny stores an arbitrary marshalable value under key.
func (d *Document) SetAny(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	d.SetRaw(key, raw)
	return nil
}

// SetDocument stores a nested document under key.
func (d *Document) SetDocument(key string, child *Document) {
	raw, _ := json.Marshal(child)
	d.SetRaw(key, raw)
}
