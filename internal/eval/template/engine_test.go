package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aescanero/dago-collection-helpers/internal/collection"
)

func letters() map[string]interface{} {
	return map[string]interface{}{
		"array": []string{"a", "b", "c", "d", "e", "f", "g", "h"},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	engine := NewEngine(logger)
	engine.RegisterMapper("double", func(item interface{}) interface{} {
		s := collection.Str(item)
		return s + s
	})
	engine.RegisterComparator("desc", func(a, b interface{}) int {
		return strings.Compare(collection.Str(b), collection.Str(a))
	})
	return engine
}

func render(t *testing.T, engine *Engine, tmpl string, data interface{}) string {
	t.Helper()

	if data == nil {
		data = map[string]interface{}{}
	}
	out, err := engine.Render(tmpl, data)
	require.NoError(t, err)
	return out
}

func TestEngine_Slicing(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name string
		tmpl string
		data interface{}
		want string
	}{
		{"after index", "{{after array 5}}", letters(), "f,g,h"},
		{"before index", "{{before array 5}}", letters(), "a,b,c"},
		{"after missing", "{{after missing 5}}", nil, ""},
		{"first item", "{{first foo}}", map[string]interface{}{"foo": []string{"a", "b", "c"}}, "a"},
		{"first two", "{{first foo 2}}", map[string]interface{}{"foo": []string{"a", "b", "c"}}, "a,b"},
		{"first missing", "{{first missing}}", nil, ""},
		{"last item", "{{last array}}", letters(), "h"},
		{"last two", "{{last array 2}}", letters(), "g,h"},
		{"last missing", "{{last missing}}", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, engine, tt.tmpl, tt.data))
		})
	}
}

func TestEngine_WithSlicing(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{"withAfter", "{{#withAfter array 5}}<{{this}}>{{/withAfter}}", "<f><g><h>"},
		{"withBefore", "{{#withBefore array 5}}<{{this}}>{{/withBefore}}", "<a><b><c>"},
		{"withFirst", "{{#withFirst array}}<p>{{this}} is smart.</p>{{/withFirst}}", "<p>a is smart.</p>"},
		{"withFirst count", "{{#withFirst array count=2}}<p>{{this}} is smart.</p>{{/withFirst}}", "<p>a is smart.</p><p>b is smart.</p>"},
		{"withFirst missing", "{{#withFirst missing}}x{{else}}y{{/withFirst}}", ""},
		{"withLast", "{{#withLast array}}<p>{{this}} is dumb.</p>{{/withLast}}", "<p>h is dumb.</p>"},
		{"withLast count", "{{#withLast array count=2}}<p>{{this}} is dumb.</p>{{/withLast}}", "<p>g is dumb.</p><p>h is dumb.</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, engine, tt.tmpl, letters()))
		})
	}
}

func TestEngine_Predicates(t *testing.T) {
	engine := newTestEngine(t)
	empty := map[string]interface{}{"array": []string{}}

	assert.Equal(t, "AAA", render(t, engine, "{{#any array}}AAA{{else}}BBB{{/any}}", letters()))
	assert.Equal(t, "BBB", render(t, engine, "{{#any array}}AAA{{else}}BBB{{/any}}", empty))
	assert.Equal(t, "AAA", render(t, engine, "{{#empty array}}AAA{{else}}BBB{{/empty}}", empty))
	assert.Equal(t, "BBB", render(t, engine, "{{#empty array}}AAA{{else}}BBB{{/empty}}", letters()))
	assert.Equal(t, "AAA", render(t, engine, `{{#inArray array "d"}}AAA{{else}}BBB{{/inArray}}`, letters()))
	assert.Equal(t, "BBB", render(t, engine, `{{#inArray array "foo"}}AAA{{else}}BBB{{/inArray}}`, letters()))
	assert.Equal(t, "AAA", render(t, engine, "{{#lengthEqual array 8}}AAA{{else}}BBB{{/lengthEqual}}", letters()))
	assert.Equal(t, "BBB", render(t, engine, "{{#lengthEqual array 3}}AAA{{else}}BBB{{/lengthEqual}}", letters()))
}

func TestEngine_IsArray(t *testing.T) {
	engine := newTestEngine(t)

	assert.Equal(t, "false", render(t, engine, `{{isArray "foo"}}`, nil))
	assert.Equal(t, "true", render(t, engine, "{{isArray foo}}", map[string]interface{}{"foo": []string{"foo"}}))
	assert.Equal(t, "true", render(t, engine, `{{isArray (arrayify "foo")}}`, nil))
}

func TestEngine_Filter(t *testing.T) {
	engine := newTestEngine(t)

	assert.Equal(t, "AAA", render(t, engine, `{{#filter array "d"}}AAA{{else}}BBB{{/filter}}`, letters()))

	ctx := map[string]interface{}{
		"collection": []interface{}{
			map[string]interface{}{"first": "aaa", "last": "bbb"},
			map[string]interface{}{"first": "b"},
			map[string]interface{}{"title": "ccc", "last": "ddd"},
			map[string]interface{}{"first": "d"},
			map[string]interface{}{"first": "eee", "last": "fff"},
			map[string]interface{}{"first": "f"},
			map[string]interface{}{"title": "ggg", "last": "hhh"},
			map[string]interface{}{"first": "h"},
		},
	}
	tmpl := `{{#filter collection "d" property="first"}}{{this.first}}{{else}}ZZZ{{/filter}}`
	assert.Equal(t, "d", render(t, engine, tmpl, ctx))

	tmpl = `{{#filter collection "q" property="first"}}{{this.first}}{{else}}ZZZ{{/filter}}`
	assert.Equal(t, "ZZZ", render(t, engine, tmpl, ctx))
}

func TestEngine_Iteration(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("each is the built-in", func(t *testing.T) {
		data := map[string]interface{}{"obj": map[string]interface{}{"fry": 3}}
		assert.Equal(t, "fry: 3 ", render(t, engine, "{{#each obj}}{{@key}}: {{this}} {{/each}}", data))
	})

	t.Run("eachIndex", func(t *testing.T) {
		tmpl := "{{#eachIndex array}} {{item}} is {{index}} {{/eachIndex}}"
		assert.Equal(t, " a is 0  b is 1  c is 2  d is 3  e is 4  f is 5  g is 6  h is 7 ", render(t, engine, tmpl, letters()))
	})

	t.Run("eachIndexPlusOne", func(t *testing.T) {
		tmpl := "{{#eachIndexPlusOne array}} {{item}} is {{index}} {{/eachIndexPlusOne}}"
		assert.Equal(t, " a is 1  b is 2  c is 3  d is 4  e is 5  f is 6  g is 7  h is 8 ", render(t, engine, tmpl, letters()))
	})

	arr := map[string]interface{}{
		"arr": []interface{}{
			map[string]interface{}{"name": "a"},
			map[string]interface{}{"name": "b"},
			map[string]interface{}{"name": "c"},
		},
	}

	for _, tt := range []struct {
		field string
		want  string
	}{
		{"name", "abc"},
		{"index", "123"},
		{"total", "333"},
		{"isFirst", "truefalsefalse"},
		{"isLast", "falsefalsetrue"},
	} {
		t.Run("forEach "+tt.field, func(t *testing.T) {
			tmpl := "{{#forEach arr}}{{" + tt.field + "}}{{/forEach}}"
			assert.Equal(t, tt.want, render(t, engine, tmpl, arr))
		})
	}

	t.Run("forEach private data", func(t *testing.T) {
		tmpl := "{{#forEach arr}}{{@index}}{{/forEach}}"
		assert.Equal(t, "012", render(t, engine, tmpl, arr))
	})

	t.Run("forEach struct elements", func(t *testing.T) {
		type person struct {
			Name string `json:"name"`
		}
		data := map[string]interface{}{"arr": []person{{"a"}, {"b"}}}
		tmpl := "{{#forEach arr}}{{name}}{{Name}}:{{index}} {{/forEach}}"
		assert.Equal(t, "aa:1 bb:2 ", render(t, engine, tmpl, data))
	})

	t.Run("forEach scalar elements", func(t *testing.T) {
		data := map[string]interface{}{"arr": []string{"a", "b"}}
		tmpl := "{{#forEach arr}}[{{this}}{{#if @isLast}}.{{/if}}]{{/forEach}}"
		assert.Equal(t, "[a][b.]", render(t, engine, tmpl, data))
	})
}

func TestEngine_Transformation(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name string
		tmpl string
		data interface{}
		want string
	}{
		{"join default", "{{join array}}", letters(), "a, b, c, d, e, f, g, h"},
		{"join custom", `{{join array " | "}}`, letters(), "a | b | c | d | e | f | g | h"},
		{"length array", "{{length array}}", letters(), "8"},
		{"length string", `{{length "foo"}}`, nil, "3"},
		{"length json", `{{length '["b", "c", "a"]'}}`, nil, "3"},
		{"length malformed", `{{length '["b", "c", "a"'}}`, nil, "0"},
		{"length missing", "{{length missing}}", nil, ""},
		{"map", `{{map '["a","b","c"]' "double"}}`, nil, "aa,bb,cc"},
		{"map builtin", `{{map array "uppercase"}}`, letters(), "A,B,C,D,E,F,G,H"},
		{"map malformed", `{{map '["b", "c", "a"'}}`, nil, ""},
		{"map unknown function", `{{map array "nope"}}`, letters(), ""},
		{"sort", "{{sort array}}", map[string]interface{}{"array": []string{"c", "a", "b"}}, "a,b,c"},
		{"sort reverse", `{{sort array reverse="true"}}`, map[string]interface{}{"array": []string{"c", "a", "b"}}, "c,b,a"},
		{"sort missing", "{{sort missing}}", nil, ""},
		{"sortBy", `{{sortBy '["b", "c", "a"]'}}`, nil, "a,b,c"},
		{"sortBy malformed", `{{sortBy '["b", "c", "a"'}}`, nil, ""},
		{"sortBy comparator", `{{sortBy '["b", "c", "a"]' "desc"}}`, nil, "c,b,a"},
		{
			"sortBy property",
			`{{{stringify (sortBy arr "a") 0}}}`,
			map[string]interface{}{"arr": []interface{}{
				map[string]interface{}{"a": "zzz"},
				map[string]interface{}{"a": "aaa"},
			}},
			`[{"a":"aaa"},{"a":"zzz"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, engine, tt.tmpl, tt.data))
		})
	}
}

func TestEngine_WithSort(t *testing.T) {
	engine := newTestEngine(t)

	assert.Equal(t,
		"<p>a</p><p>b</p><p>c</p><p>d</p><p>e</p><p>f</p><p>g</p><p>h</p>",
		render(t, engine, "{{#withSort array}}<p>{{this}}</p>{{/withSort}}", letters()),
	)
	assert.Equal(t,
		"<p>h</p><p>g</p><p>f</p><p>e</p><p>d</p><p>c</p><p>b</p><p>a</p>",
		render(t, engine, `{{#withSort array reverse="true"}}<p>{{this}}</p>{{/withSort}}`, letters()),
	)

	data := map[string]interface{}{
		"collection": []interface{}{
			map[string]interface{}{"name": "f", "deliveries": 8021},
			map[string]interface{}{"name": "b", "deliveries": 239},
			map[string]interface{}{"name": "d", "deliveries": -12},
		},
	}
	assert.Equal(t,
		"d: -12 <br>b: 239 <br>f: 8021 <br>",
		render(t, engine, `{{#withSort collection property="deliveries"}}{{name}}: {{deliveries}} <br>{{/withSort}}`, data),
	)
	assert.Equal(t,
		"f: 8021 <br>b: 239 <br>d: -12 <br>",
		render(t, engine, `{{#withSort collection property="deliveries" reverse="true"}}{{name}}: {{deliveries}} <br>{{/withSort}}`, data),
	)
}

func TestEngine_Errors(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Render("{{#any array}}unclosed", letters())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse template")

	assert.Error(t, engine.ValidateTemplate("{{#any array}}unclosed"))
	assert.NoError(t, engine.ValidateTemplate("{{#any array}}ok{{/any}}"))
}

func TestEngine_BareCalls(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("single-argument helpers render as if given nothing", func(t *testing.T) {
		assert.Equal(t, "", render(t, engine, "{{length}}", nil))
		assert.Equal(t, "false", render(t, engine, "{{isArray}}", nil))
		assert.Equal(t, "", render(t, engine, "{{arrayify}}", nil))
	})

	// raymond has no variadic helpers, so these cannot also accept zero arguments
	for _, tmpl := range []string{
		"{{first}}", "{{last}}", "{{before}}", "{{after}}", "{{map}}", "{{sort}}",
		"{{sortBy}}", "{{join}}", "{{#withFirst}}{{/withFirst}}",
	} {
		t.Run(tmpl, func(t *testing.T) {
			_, err := engine.Render(tmpl, map[string]interface{}{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "wrong number of arguments")
		})
	}
}

func TestEngine_MapperErrorsSurface(t *testing.T) {
	engine := newTestEngine(t)
	engine.RegisterMapper("fail", func(interface{}) interface{} {
		panic(assert.AnError)
	})

	_, err := engine.Render(`{{map array "fail"}}`, letters())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template execution failed")
}

func TestRegisterHelpers_Names(t *testing.T) {
	registry := recordingRegistry{}
	RegisterHelpers(registry, nil)

	for _, name := range []string{
		"first", "last", "before", "after", "any", "empty", "inArray", "isArray", "filter",
		"forEach", "eachIndex", "eachIndexPlusOne", "map", "sort", "sortBy", "withFirst",
		"withLast", "withBefore", "withAfter", "withSort", "length", "lengthEqual",
		"join", "arrayify", "stringify",
	} {
		assert.Contains(t, registry, name)
	}
	assert.NotContains(t, registry, "each")
}

type recordingRegistry map[string]interface{}

func (r recordingRegistry) RegisterHelper(name string, helper interface{}) {
	r[name] = helper
}
