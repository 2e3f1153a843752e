// kind_test.go — verification of the built-in field kinds.
package xgxreport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinKinds(t *testing.T) {
	t.Parallel()

	kinds := BuiltinKinds()
	require.Equal(t, []FieldKind{
		KindString, KindInt, KindFloat, KindBool, KindDuration, KindTime, KindAny,
	}, kinds, "order is stable")

	t.Run("defensive copy", func(t *testing.T) {
		kinds[0] = FieldKind("mutated")
		require.Equal(t, KindString, BuiltinKinds()[0])
	})

	t.Run("membership", func(t *testing.T) {
		for _, k := range BuiltinKinds() {
			require.True(t, k.IsBuiltin(), string(k))
		}
		require.False(t, FieldKind("decimal").IsBuiltin())
		require.False(t, FieldKind("").IsBuiltin())
	})
}

func TestFieldKind_GoType(t *testing.T) {
	t.Parallel()

	cases := map[FieldKind]string{
		KindString:          "string",
		KindInt:             "int64",
		KindFloat:           "float64",
		KindBool:            "bool",
		KindDuration:        "time.Duration",
		KindTime:            "time.Time",
		KindAny:             "any",
		FieldKind("mystery"): "any",
	}
	for k, want := range cases {
		require.Equal(t, want, k.GoType(), string(k))
	}
}
