package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var letters = []string{"a", "b", "c", "d", "e", "f", "g", "h"}

func TestFirst(t *testing.T) {
	assert.Equal(t, "a", First([]string{"a", "b", "c"}))
	assert.Equal(t, NewSeq("a", "b"), First([]string{"a", "b", "c"}, 2))
	assert.Equal(t, "a,b", Str(First(letters, 2)))
	assert.Equal(t, NewSeq("a", "b", "c"), First([]string{"a", "b", "c"}, 10))
	assert.Equal(t, "", First(nil))
	assert.Equal(t, "", First([]string{}))
	assert.Equal(t, "b", First(`["b", "c"]`))
}

func TestLast(t *testing.T) {
	assert.Equal(t, "h", Last(letters))
	assert.Equal(t, NewSeq("g", "h"), Last(letters, 2))
	assert.Equal(t, "g,h", Str(Last(letters, 2)))
	assert.Equal(t, "", Last(nil))
	assert.Equal(t, "", Last(`["b"`))
}

func TestBeforeAfter(t *testing.T) {
	assert.Equal(t, NewSeq("a", "b", "c"), Before(letters, 5))
	assert.Equal(t, NewSeq("f", "g", "h"), After(letters, 5))
	assert.Equal(t, "", Before(nil, 1))
	assert.Equal(t, "", After(nil, 1))

	t.Run("out of range", func(t *testing.T) {
		assert.Equal(t, NewSeq(), Before(letters, 20))
		assert.Equal(t, NewSeq(), After(letters, 20))
		assert.Equal(t, 8, After(letters, 0).(Seq).Len())
		assert.Equal(t, 8, Before(letters, 0).(Seq).Len())
	})

	t.Run("does not alias the input", func(t *testing.T) {
		input := []interface{}{"x", "y", "z"}
		got := After(input, 1).(Seq)
		got.Items[0] = "changed"
		assert.Equal(t, "y", input[1])
	})
}

func TestWithFirst(t *testing.T) {
	opts := &fakeOptions{render: func(ctx interface{}, _ map[string]interface{}) string {
		return "<p>" + Str(ctx) + " is smart.</p>"
	}}

	assert.Equal(t, "<p>a is smart.</p>", WithFirst(letters, opts))
	assert.Equal(t, "<p>a is smart.</p><p>b is smart.</p>", WithFirst(letters, opts, 2))
	assert.Equal(t, "", WithFirst(nil, opts))
	assert.Equal(t, "", WithFirst([]string{}, wrapOptions()))
}

func TestWithLast(t *testing.T) {
	opts := &fakeOptions{render: func(ctx interface{}, _ map[string]interface{}) string {
		return "<p>" + Str(ctx) + " is dumb.</p>"
	}}

	assert.Equal(t, "<p>h is dumb.</p>", WithLast(letters, opts))
	assert.Equal(t, "<p>g is dumb.</p><p>h is dumb.</p>", WithLast(letters, opts, 2))
	assert.Equal(t, "", WithLast(nil, opts))
}

func TestWithBeforeAfter(t *testing.T) {
	assert.Equal(t, "<a><b><c>", WithBefore(letters, 5, wrapOptions()))
	assert.Equal(t, "<f><g><h>", WithAfter(letters, 5, wrapOptions()))

	// an empty selection renders nothing, not the inverse
	assert.Equal(t, "", WithAfter(letters, 8, wrapOptions()))
	assert.Equal(t, "", WithBefore(nil, 2, wrapOptions()))
}
