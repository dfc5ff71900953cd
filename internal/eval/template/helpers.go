package template

import (
	"github.com/aymerick/raymond"

	"github.com/aescanero/dago-collection-helpers/internal/collection"
)

// Registry receives helper bindings. *raymond.Template satisfies it.
type Registry interface {
	RegisterHelper(name string, helper interface{})
}

// blockOptions adapts raymond's helper options to collection.Options
type blockOptions struct {
	opts *raymond.Options
}

func (b blockOptions) Fn() string {
	return b.opts.Fn()
}

func (b blockOptions) FnWith(ctx interface{}) string {
	return b.opts.FnWith(ctx)
}

func (b blockOptions) FnData(ctx interface{}, data map[string]interface{}) string {
	frame := b.opts.NewDataFrame()
	for key, value := range data {
		frame.Set(key, value)
	}
	return b.opts.FnCtxData(ctx, frame)
}

func (b blockOptions) Inverse() string {
	return b.opts.Inverse()
}

func (b blockOptions) Hash(name string) interface{} {
	return b.opts.HashProp(name)
}

// RegisterHelpers binds every collection helper onto r, resolving named functions from funcs.
//
// raymond calls a helper only with its exact arity. A value helper with an optional positional
// argument therefore declares a trailing interface{} that receives either that argument or
// raymond's *Options. Block helpers read their optional arguments from the hash. A helper
// with two or more declared arguments cannot be called bare: raymond rejects the call.
func RegisterHelpers(r Registry, funcs *Funcs) {
	if funcs == nil {
		funcs = NewFuncs()
	}

	// slicing
	r.RegisterHelper("first", func(c, n interface{}) interface{} {
		return collection.First(c, counts(n)...)
	})
	r.RegisterHelper("last", func(c, n interface{}) interface{} {
		return collection.Last(c, counts(n)...)
	})
	r.RegisterHelper("before", func(c, n interface{}) interface{} {
		return collection.Before(c, count(n))
	})
	r.RegisterHelper("after", func(c, n interface{}) interface{} {
		return collection.After(c, count(n))
	})
	r.RegisterHelper("withFirst", func(c interface{}, options *raymond.Options) raymond.SafeString {
		return raymond.SafeString(collection.WithFirst(c, blockOptions{options}, counts(options.HashProp("count"))...))
	})
	r.RegisterHelper("withLast", func(c interface{}, options *raymond.Options) raymond.SafeString {
		return raymond.SafeString(collection.WithLast(c, blockOptions{options}, counts(options.HashProp("count"))...))
	})
	r.RegisterHelper("withBefore", func(c, n interface{}, options *raymond.Options) raymond.SafeString {
		return raymond.SafeString(collection.WithBefore(c, count(n), blockOptions{options}))
	})
	r.RegisterHelper("withAfter", func(c, n interface{}, options *raymond.Options) raymond.SafeString {
		return raymond.SafeString(collection.WithAfter(c, count(n), blockOptions{options}))
	})

	// predicates
	r.RegisterHelper("any", func(c interface{}, options *raymond.Options) raymond.SafeString {
		return raymond.SafeString(collection.Any(c, blockOptions{options}))
	})
	r.RegisterHelper("empty", func(c interface{}, options *raymond.Options) raymond.SafeString {
		return raymond.SafeString(collection.Empty(c, blockOptions{options}))
	})
	r.RegisterHelper("inArray", func(c, value interface{}, options *raymond.Options) raymond.SafeString {
		return raymond.SafeString(collection.InArray(c, value, blockOptions{options}))
	})
	r.RegisterHelper("isArray", func(value interface{}) string {
		return collection.IsArray(arg(value))
	})
	r.RegisterHelper("filter", func(c, value interface{}, options *raymond.Options) raymond.SafeString {
		property := collection.Str(options.HashProp("property"))
		return raymond.SafeString(collection.Filter(c, value, property, blockOptions{options}))
	})

	// iteration; each is left to raymond's built-in helper
	r.RegisterHelper("forEach", func(c interface{}, options *raymond.Options) raymond.SafeString {
		return raymond.SafeString(collection.ForEach(c, blockOptions{options}))
	})
	r.RegisterHelper("eachIndex", func(c interface{}, options *raymond.Options) raymond.SafeString {
		return raymond.SafeString(collection.EachIndex(c, blockOptions{options}))
	})
	r.RegisterHelper("eachIndexPlusOne", func(c interface{}, options *raymond.Options) raymond.SafeString {
		return raymond.SafeString(collection.EachIndexPlusOne(c, blockOptions{options}))
	})

	// transformation
	r.RegisterHelper("map", func(c, fn interface{}) string {
		name, ok := fn.(string)
		if !ok {
			return ""
		}
		mapper, ok := funcs.Mapper(name)
		if !ok {
			return ""
		}
		return collection.Map(c, mapper)
	})
	r.RegisterHelper("sort", func(c, reverse interface{}) interface{} {
		if options, ok := reverse.(*raymond.Options); ok {
			reverse = options.HashProp("reverse")
		}
		return collection.Sort(c, collection.Truthy(reverse))
	})
	r.RegisterHelper("sortBy", func(c, key interface{}) interface{} {
		switch k := key.(type) {
		case *raymond.Options:
			return collection.SortBy(c, nil)
		case string:
			if cmp, ok := funcs.Comparator(k); ok {
				return collection.SortBy(c, cmp)
			}
			return collection.SortBy(c, k)
		}
		return collection.SortBy(c, nil)
	})
	r.RegisterHelper("withSort", func(c interface{}, options *raymond.Options) raymond.SafeString {
		property := collection.Str(options.HashProp("property"))
		reverse := collection.Truthy(options.HashProp("reverse"))
		return raymond.SafeString(collection.WithSort(c, property, reverse, blockOptions{options}))
	})
	r.RegisterHelper("join", func(c, sep interface{}) string {
		if s, ok := sep.(string); ok {
			return collection.Join(c, s)
		}
		return collection.Join(c)
	})

	// measurement
	r.RegisterHelper("length", func(value interface{}) string {
		return collection.Length(arg(value))
	})
	r.RegisterHelper("lengthEqual", func(c, n interface{}, options *raymond.Options) raymond.SafeString {
		return raymond.SafeString(collection.LengthEqual(c, count(n), blockOptions{options}))
	})

	// data
	r.RegisterHelper("arrayify", func(value interface{}) interface{} {
		return collection.Arrayify(arg(value))
	})
	r.RegisterHelper("stringify", func(value, indent interface{}) string {
		return collection.Stringify(value, count(indent))
	})
}

// arg returns the argument in a single-slot helper, nil when the helper was called bare and
// the slot holds raymond's options
func arg(value interface{}) interface{} {
	if _, ok := value.(*raymond.Options); ok {
		return nil
	}
	return value
}

// counts returns the optional count argument, or none when the slot holds raymond's options
func counts(value interface{}) []int {
	if arg(value) == nil {
		return nil
	}
	if n, ok := collection.Count(value); ok {
		return []int{n}
	}
	return nil
}

// count returns the count argument, 0 when absent
func count(value interface{}) int {
	if n := counts(value); len(n) > 0 {
		return n[0]
	}
	return 0
}
