package collection

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Str returns the template-facing string form of value.
// Whole floats print without a fraction and nested sequences are comma-joined.
func Str(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Slice, reflect.Array:
		items, _ := Coerce(value)
		return joinItems(items, ",")
	}

	return fmt.Sprint(value)
}

// joinItems joins the string form of items with sep
func joinItems(items []interface{}, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = Str(item)
	}
	return strings.Join(parts, sep)
}

// toFloat converts any Go numeric value to float64. Strings are not numbers.
func toFloat(value interface{}) (float64, bool) {
	if value == nil {
		return 0, false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// toInt converts a count argument to int. Numeric strings are accepted.
func toInt(value interface{}) (int, bool) {
	if s, ok := value.(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		return n, err == nil
	}
	if f, ok := toFloat(value); ok {
		return int(f), true
	}
	return 0, false
}

// equal is strict equality: same type and value, with numbers compared by value
func equal(a, b interface{}) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// compareText orders two values by their string form
func compareText(a, b interface{}) int {
	return strings.Compare(Str(a), Str(b))
}

// compareNatural orders numbers numerically, strings and booleans by value and
// everything else by string form. nil sorts first.
func compareNatural(a, b interface{}) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}

	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ba == bb:
				return 0
			case !ba:
				return -1
			}
			return 1
		}
	}

	return compareText(a, b)
}

// Get resolves a dot-separated property path against maps, structs and slices.
// Struct fields match by name or by their json tag. Missing segments yield nil.
func Get(value interface{}, path string) interface{} {
	if path == "" {
		return value
	}

	current := value
	for _, key := range strings.Split(path, ".") {
		current = getField(current, key)
		if current == nil {
			return nil
		}
	}
	return current
}

// getField resolves a single path segment
func getField(value interface{}, key string) interface{} {
	if m, ok := value.(map[string]interface{}); ok {
		return m[key]
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		keyType := rv.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(keyType))
		if !mv.IsValid() {
			return nil
		}
		return mv.Interface()

	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			tag := strings.Split(field.Tag.Get("json"), ",")[0]
			if field.Name == key || tag == key {
				return rv.Field(i).Interface()
			}
		}

	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(key)
		if err == nil && idx >= 0 && idx < rv.Len() {
			return rv.Index(idx).Interface()
		}
	}

	return nil
}
