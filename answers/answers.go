// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package answers

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/michallipa-df/ai-medical-form/schema"
)

// Sentinel strings that all mean "no answer". The source UI leaked these
// placeholder values into stored data; they are canonicalized to Unanswered
// at this boundary so validators never see them.
var unansweredSentinels = map[string]bool{
	"":                   true,
	"--select--":         true,
	"--select an item--": true,
}

// Value is a single answer: unanswered, a string, or an ordered string list.
type Value struct {
	kind int // 0 unanswered, 1 text, 2 list
	text string
	list []string
}

// Unanswered is the canonical "no answer" value.
var Unanswered = Value{}

// Text builds a string answer, canonicalizing sentinel placeholders.
func Text(s string) Value {
	if unansweredSentinels[s] {
		return Unanswered
	}
	return Value{kind: 1, text: s}
}

// List builds an ordered multi-select answer. Sentinel and empty items are
// dropped; an empty list is Unanswered.
func List(items []string) Value {
	var kept []string
	for _, it := range items {
		if !unansweredSentinels[it] {
			kept = append(kept, it)
		}
	}
	if len(kept) == 0 {
		return Unanswered
	}
	return Value{kind: 2, list: kept}
}

// IsAnswered reports whether the value carries an actual answer.
func (v Value) IsAnswered() bool { return v.kind != 0 }

// Text returns the string form of a single-valued answer ("" when
// unanswered or multi-valued).
func (v Value) Text() string { return v.text }

// List returns the items of a multi-valued answer (nil otherwise).
func (v Value) List() []string { return v.list }

// Contains reports whether a multi-valued answer includes item.
func (v Value) Contains(item string) bool {
	for _, it := range v.list {
		if it == item {
			return true
		}
	}
	return false
}

// Equal compares two values, treating all unanswered forms as equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case 1:
		return v.text == o.text
	case 2:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
	}
	return true
}

// String renders the value for hints and logs.
func (v Value) String() string {
	switch v.kind {
	case 1:
		return v.text
	case 2:
		return fmt.Sprintf("%v", v.list)
	default:
		return "(unanswered)"
	}
}

// MarshalJSON emits a string, a string array, or null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case 1:
		return json.Marshal(v.text)
	case 2:
		return json.Marshal(v.list)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a string, a string array, or null, canonicalizing
// sentinels either way.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = Unanswered
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*v = List(items)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("answer must be a string, string array, or null: %w", err)
	}
	*v = Text(s)
	return nil
}

// Map is the answer store: field id to current value. A key that is absent
// behaves exactly like an Unanswered value.
type Map map[schema.FieldID]Value

// Get returns the stored value, or Unanswered for a missing key.
func (m Map) Get(id schema.FieldID) Value {
	return m[id]
}

// Set stores a value. Entries are never deleted individually; storing
// Unanswered records the erasure.
func (m Map) Set(id schema.FieldID, v Value) {
	m[id] = v
}

// Clone returns a deep copy.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		if v.kind == 2 {
			items := make([]string, len(v.list))
			copy(items, v.list)
			v.list = items
		}
		out[k] = v
	}
	return out
}

// Subset copies the entries for the given fields (missing keys stay missing,
// which Get treats as Unanswered).
func (m Map) Subset(ids []schema.FieldID) Map {
	out := make(Map, len(ids))
	for _, id := range ids {
		if v, ok := m[id]; ok {
			out[id] = v
		}
	}
	return out
}

// EqualOn reports whether two maps agree on every listed field, with absent
// and Unanswered treated as equal.
func (m Map) EqualOn(o Map, ids []schema.FieldID) bool {
	for _, id := range ids {
		if !m.Get(id).Equal(o.Get(id)) {
			return false
		}
	}
	return true
}

// Visible evaluates a field's visibility conditions against the map. All
// conditions must hold. Fields hidden by a condition keep their stored
// values but are excluded from validation and export payloads.
func Visible(f schema.Field, m Map) bool {
	for _, c := range f.DependsOn {
		v := m.Get(c.Field)
		if c.Contains != "" {
			if !v.Contains(c.Contains) {
				return false
			}
			continue
		}
		matched := false
		for _, want := range c.AnyOf {
			if v.kind == 1 && v.text == want {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// VisibleFields returns the visible fields of one step in schema order.
func VisibleFields(s *schema.Schema, step int, m Map) []schema.Field {
	var out []schema.Field
	for _, f := range s.StepFields(step) {
		if Visible(f, m) {
			out = append(out, f)
		}
	}
	return out
}

// VisibleThrough returns the visible fields of steps 1..step in schema order.
func VisibleThrough(s *schema.Schema, step int, m Map) []schema.Field {
	var out []schema.Field
	for _, f := range s.FieldsThrough(step) {
		if Visible(f, m) {
			out = append(out, f)
		}
	}
	return out
}
