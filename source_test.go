// source_test.go — verification of the default Source conversion rules.
package xgxreport

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStdSource_Convert(t *testing.T) {
	t.Parallel()

	src := StdSource()

	t.Run("nil yields empty detail and no trace", func(t *testing.T) {
		d, tr := src.Convert(nil)
		require.NotNil(t, d)
		require.Equal(t, "", d.Message())
		require.Nil(t, d.Cause())
		require.Nil(t, tr)
	})

	t.Run("plain error yields message and no trace", func(t *testing.T) {
		d, tr := src.Convert(errors.New("disk full"))
		require.Equal(t, "disk full", d.Message())
		require.Nil(t, d.Cause())
		require.Nil(t, tr)
	})

	t.Run("wrapped error yields a cause chain", func(t *testing.T) {
		base := errors.New("refused")
		d, tr := src.Convert(fmt.Errorf("dial: %w", base))
		require.Equal(t, "dial: refused", d.Message())
		require.NotNil(t, d.Cause())
		require.Equal(t, "refused", d.Cause().Message())
		require.Nil(t, tr)
	})

	t.Run("report yields its own detail and trace", func(t *testing.T) {
		typ := MustDefine(Schema{
			Name:     "T",
			Variants: []VariantSchema{{Name: "Foo", Fields: []FieldSchema{{Name: "msg"}}}},
		}, StringTracer())
		r := typ.MustVariant("Foo").New("msg", "bad")

		d, tr := src.Convert(r)
		require.Same(t, r.Detail(), d)
		require.Equal(t, r.Trace(), tr)
	})

	t.Run("error wrapping a report reuses the report's trace", func(t *testing.T) {
		typ := MustDefine(Schema{
			Name:     "T",
			Variants: []VariantSchema{{Name: "Foo", Fields: []FieldSchema{{Name: "msg"}}}},
		}, StringTracer())
		r := typ.MustVariant("Foo").New("msg", "bad")
		wrapped := fmt.Errorf("handler: %w", r)

		d, tr := src.Convert(wrapped)
		require.Equal(t, "handler: Foo: bad", d.Message())
		require.NotNil(t, d.Cause(), "chain continues into the report's detail")
		require.Same(t, r.Detail(), d.Cause())
		require.Equal(t, r.Trace(), tr)
	})
}
