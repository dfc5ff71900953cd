package collection

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/tidwall/gjson"
)

// Seq is the list result of a value helper.
// It renders as its comma-joined elements and marshals to a JSON array.
type Seq struct {
	Items []interface{}
}

// NewSeq creates a Seq holding items
func NewSeq(items ...interface{}) Seq {
	if items == nil {
		items = []interface{}{}
	}
	return Seq{Items: items}
}

// Len returns the number of elements
func (s Seq) Len() int {
	return len(s.Items)
}

// String joins the string form of every element with ","
func (s Seq) String() string {
	return joinItems(s.Items, ",")
}

// MarshalJSON encodes the elements as a JSON array
func (s Seq) MarshalJSON() ([]byte, error) {
	if s.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Items)
}

// Coerce returns the ordered sequence held by value.
//
// Slices, arrays, Seq values and JSON-encoded array strings are accepted. The boolean is false
// for nil, for any other type, and for strings that do not decode to a JSON array.
func Coerce(value interface{}) ([]interface{}, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case Seq:
		return v.Items, true
	case *Seq:
		if v == nil {
			return nil, false
		}
		return v.Items, true
	case []interface{}:
		return v, true
	case string:
		return decodeArray(v)
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]interface{}, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return items, true
	}

	return nil, false
}

// Arrayify returns value as a sequence, wrapping a non-sequence into a one-element sequence.
// nil yields an empty sequence.
func Arrayify(value interface{}) []interface{} {
	if value == nil {
		return []interface{}{}
	}
	if items, ok := Coerce(value); ok {
		return items
	}
	return []interface{}{value}
}

// IsSequence reports whether value is a slice, an array or a Seq. Strings never qualify.
func IsSequence(value interface{}) bool {
	switch value.(type) {
	case nil, string:
		return false
	case Seq, *Seq:
		return true
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}

// looksLikeArray reports whether s is shaped like a JSON array
func looksLikeArray(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "[")
}

// decodeArray parses a JSON-encoded array
func decodeArray(s string) ([]interface{}, bool) {
	if !looksLikeArray(s) || !gjson.Valid(s) {
		return nil, false
	}

	result := gjson.Parse(s)
	if !result.IsArray() {
		return nil, false
	}

	items, ok := result.Value().([]interface{})
	if !ok {
		return nil, false
	}
	if items == nil {
		items = []interface{}{}
	}
	return items, true
}
