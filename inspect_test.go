// inspect_test.go — verification of the programmatic handling helpers.
package xgxreport

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func inspectType(t *testing.T) *Type {
	t.Helper()
	return MustDefine(Schema{
		Name: "SvcError",
		Variants: []VariantSchema{
			{Name: "Db", Fields: []FieldSchema{{Name: "table"}}},
			{Name: "Api", Source: SourceSelf},
		},
	}, StringTracer())
}

func TestReportOf_DetailOf(t *testing.T) {
	t.Parallel()

	typ := inspectType(t)
	r := typ.MustVariant("Db").New("table", "users")

	t.Run("direct", func(t *testing.T) {
		got, ok := ReportOf(r)
		require.True(t, ok)
		require.Same(t, r, got)

		d, ok := DetailOf(r)
		require.True(t, ok)
		require.Same(t, r.Detail(), d)
	})

	t.Run("found behind fmt.Errorf wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("request failed: %w", r)
		got, ok := ReportOf(wrapped)
		require.True(t, ok)
		require.Same(t, r, got)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := ReportOf(errors.New("plain"))
		require.False(t, ok)
		_, ok = ReportOf(nil)
		require.False(t, ok)
	})
}

func TestVariantOf(t *testing.T) {
	t.Parallel()

	typ := inspectType(t)
	r := typ.MustVariant("Db").New("table", "users")

	require.Equal(t, "Db", VariantOf(r))
	require.Equal(t, "Db", VariantOf(fmt.Errorf("x: %w", r)))
	require.Equal(t, "", VariantOf(errors.New("plain")))
	require.Equal(t, "", VariantOf(nil))
}

func TestIsVariant(t *testing.T) {
	t.Parallel()

	typ := inspectType(t)
	inner := typ.MustVariant("Db").New("table", "users")
	outer := typ.MustVariant("Api").Wrap(inner)

	require.True(t, IsVariant(outer, "Api"))
	require.True(t, IsVariant(outer, "Db"), "nested variants are visible")
	require.True(t, IsVariant(fmt.Errorf("x: %w", outer), "Db"))
	require.False(t, IsVariant(outer, "Net"))
	require.False(t, IsVariant(nil, "Db"))
	require.False(t, IsVariant(outer, ""))
}

func TestHas(t *testing.T) {
	t.Parallel()

	typ := inspectType(t)
	sentinel := errors.New("gone")
	absorbing := MustDefine(Schema{
		Name:     "T",
		Variants: []VariantSchema{{Name: "Io", Source: SourceExternal}},
	}, StringTracer())
	r := absorbing.MustVariant("Io").Absorb(sentinel)

	require.True(t, Has(r, sentinel))
	require.False(t, Has(r, errors.New("other")))
	require.False(t, Has(nil, sentinel))
	require.False(t, Has(r, nil))

	db := typ.MustVariant("Db").New("table", "t")
	require.True(t, Has(fmt.Errorf("x: %w", db), db))
}
