// typedfield_test.go — verification of typed variant-field access.
package xgxreport

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypedField(t *testing.T) {
	t.Parallel()

	typ := MustDefine(Schema{
		Name: "T",
		Variants: []VariantSchema{{
			Name: "Http",
			Fields: []FieldSchema{
				{Name: "status", Kind: KindInt},
				{Name: "url", Kind: KindString},
			},
		}},
	}, StringTracer())

	status := Typed[int]("status")
	url := Typed[string]("url")
	r := typ.MustVariant("Http").New("status", 503, "url", "https://example.com")

	t.Run("get", func(t *testing.T) {
		require.Equal(t, "status", status.Key())
		v, ok := status.Get(r)
		require.True(t, ok)
		require.Equal(t, 503, v)

		u, ok := url.Get(fmt.Errorf("fetch: %w", r))
		require.True(t, ok)
		require.Equal(t, "https://example.com", u)
	})

	t.Run("wrong dynamic type", func(t *testing.T) {
		_, ok := Typed[string]("status").Get(r)
		require.False(t, ok, "no implicit conversions")
	})

	t.Run("missing field", func(t *testing.T) {
		_, ok := Typed[int]("ghost").Get(r)
		require.False(t, ok)
	})

	t.Run("no report in chain", func(t *testing.T) {
		_, ok := status.Get(errors.New("plain"))
		require.False(t, ok)
		_, ok = status.Get(nil)
		require.False(t, ok)
	})

	t.Run("must get", func(t *testing.T) {
		require.Equal(t, 503, status.MustGet(r))
		require.Panics(t, func() { Typed[int]("ghost").MustGet(r) })
	})
}

func TestFieldValue_NonVariantDetail(t *testing.T) {
	t.Parallel()

	r := NewReport(&staticDetail{msg: "x"}, EmptyTrace, NoopTracer())
	_, ok := FieldValue[string](r, "anything")
	require.False(t, ok)
}
