package option_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/nuclear/pkg/rop/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomeAndNone(t *testing.T) {
	some := option.Some(10)
	require.True(t, some.IsSome())
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, "Some(10)", some.String())

	none := option.None[int]()
	assert.True(t, none.IsNone())
	assert.Equal(t, 7, none.GetOrElse(7))
	assert.Equal(t, "None", none.String())

	var zero option.Option[string]
	assert.True(t, zero.IsNone())
}

func TestFromOk(t *testing.T) {
	m := map[string]int{"a": 1}
	v, ok := m["a"]
	assert.True(t, option.FromOk(v, ok).IsSome())
	v, ok = m["b"]
	assert.True(t, option.FromOk(v, ok).IsNone())
}

func TestMapAndFlatMap(t *testing.T) {
	m := option.Map(option.Some(3), strconv.Itoa)
	s, ok := m.Holding()
	require.True(t, ok)
	assert.Equal(t, "3", s)

	calls := 0
	half := func(x int) option.Option[int] {
		calls++
		if x%2 == 0 {
			return option.Some(x / 2)
		}
		return option.None[int]()
	}
	assert.Equal(t, option.Some(2), option.FlatMap(option.Some(4), half))
	assert.True(t, option.FlatMap(option.Some(3), half).IsNone())
	assert.True(t, option.FlatMap(option.None[int](), half).IsNone())
	assert.Equal(t, 2, calls)
}

func TestFold(t *testing.T) {
	onNone := func() string { return "none" }
	onSome := func(v int) string { return strconv.Itoa(v) }
	assert.Equal(t, "5", option.Fold(option.Some(5), onNone, onSome))
	assert.Equal(t, "none", option.Fold(option.None[int](), onNone, onSome))
}

func TestToResult(t *testing.T) {
	missing := errors.New("missing")
	r := option.Some(1).ToResult(missing)
	require.True(t, r.IsSuccess())
	assert.Equal(t, 1, r.Result())

	r = option.None[int]().ToResult(missing)
	require.True(t, r.IsFailure())
	assert.Same(t, missing, r.Err())
}

func TestShape(t *testing.T) {
	s := option.Shape[int, string]{}
	assert.Equal(t, option.Family{}, s.Family())
	assert.Equal(t, option.Some("x"), s.Wrap("x"))

	called := false
	out := s.Chain(option.None[int](), func(v int) option.Option[string] {
		called = true
		return option.Some("never")
	})
	assert.False(t, called)
	assert.True(t, out.IsNone())
}
