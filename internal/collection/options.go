package collection

import (
	"strconv"
	"strings"
)

// Options is the block rendering capability handed to a helper by the host renderer
type Options interface {
	// Fn renders the primary block against the current scope
	Fn() string

	// FnWith renders the primary block with ctx as the active scope
	FnWith(ctx interface{}) string

	// FnData renders the primary block with ctx as scope and data as private @-variables
	FnData(ctx interface{}, data map[string]interface{}) string

	// Inverse renders the else block against the current scope
	Inverse() string

	// Hash returns the named hash argument, or nil when absent
	Hash(name string) interface{}
}

// Mapper transforms a single element
type Mapper func(item interface{}) interface{}

// Comparator orders two elements: negative when a sorts first, zero when equal
type Comparator func(a, b interface{}) int

// Truthy reports whether a hash or positional flag is set.
// Strings are parsed with strconv.ParseBool; any other non-empty string counts as set.
func Truthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return false
		}
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		return true
	}

	if f, ok := toFloat(value); ok {
		return f != 0
	}
	return true
}

// hashString returns the named hash argument as a string, or "" when absent
func hashString(opts Options, name string) string {
	if opts == nil {
		return ""
	}
	if v := opts.Hash(name); v != nil {
		return Str(v)
	}
	return ""
}
