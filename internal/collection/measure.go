package collection

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/pretty"
)

// Length returns the element count of a sequence or JSON-array string, the character count
// of any other string and the key count of a map, as a string.
// nil yields "" and a malformed JSON-array string yields "0".
func Length(value interface{}) string {
	if value == nil {
		return ""
	}

	if s, ok := value.(string); ok {
		if !looksLikeArray(s) {
			return strconv.Itoa(utf8.RuneCountInString(s))
		}
		items, ok := decodeArray(s)
		if !ok {
			return "0"
		}
		return strconv.Itoa(len(items))
	}

	return strconv.Itoa(count(value))
}

// LengthEqual renders the block when the collection has exactly n elements, else the inverse
func LengthEqual(collection interface{}, n int, opts Options) string {
	if count(collection) == n {
		return opts.Fn()
	}
	return opts.Inverse()
}

// Count converts a count argument supplied by a template to int
func Count(value interface{}) (int, bool) {
	return toInt(value)
}

// Stringify encodes value as JSON, indented by indent spaces when indent is positive.
// Values that cannot be encoded yield "".
func Stringify(value interface{}, indent int) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return ""
	}

	out := bytes.TrimRight(buf.Bytes(), "\n")
	if indent > 0 {
		out = pretty.PrettyOptions(out, &pretty.Options{
			Width:  1,
			Indent: strings.Repeat(" ", indent),
		})
		out = bytes.TrimRight(out, "\n")
	}
	return string(out)
}

// count returns the number of elements or keys held by value, 0 for anything else
func count(value interface{}) int {
	if items, ok := Coerce(value); ok {
		return len(items)
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Map {
		return rv.Len()
	}
	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s)
	}
	return 0
}
