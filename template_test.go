// template_test.go — verification of message-template parsing and total
// rendering.
package xgxreport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	t.Run("empty is valid and means default rendering", func(t *testing.T) {
		tmpl, err := parseTemplate("")
		require.NoError(t, err)
		require.True(t, tmpl.empty())
		require.Empty(t, tmpl.slots())
	})

	t.Run("literal only", func(t *testing.T) {
		tmpl, err := parseTemplate("plain text")
		require.NoError(t, err)
		require.Empty(t, tmpl.slots())
		require.Equal(t, "plain text", tmpl.render(nil, ""))
	})

	t.Run("slots in order with duplicates", func(t *testing.T) {
		tmpl, err := parseTemplate("{a} and {b} and {a}")
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b", "a"}, tmpl.slots())
	})

	t.Run("unclosed slot", func(t *testing.T) {
		_, err := parseTemplate("bad {slot")
		require.ErrorContains(t, err, "unclosed interpolation slot")
	})

	t.Run("empty slot", func(t *testing.T) {
		_, err := parseTemplate("bad {}")
		require.ErrorContains(t, err, "empty interpolation slot")
	})

	t.Run("malformed slot", func(t *testing.T) {
		_, err := parseTemplate("bad {a b}")
		require.ErrorContains(t, err, "malformed interpolation slot")
	})
}

func TestTemplate_Render(t *testing.T) {
	t.Parallel()

	tmpl, err := parseTemplate("read {path} failed after {attempts} tries: {cause}")
	require.NoError(t, err)

	t.Run("all values present", func(t *testing.T) {
		fs := fieldsFromKV("path", "/tmp/a", "attempts", 3)
		require.Equal(t, "read /tmp/a failed after 3 tries: no space", tmpl.render(fs, "no space"))
	})

	t.Run("missing values render empty", func(t *testing.T) {
		fs := fieldsFromKV("path", "/tmp/a")
		require.Equal(t, "read /tmp/a failed after  tries: ", tmpl.render(fs, ""))
	})

	t.Run("nil value renders empty", func(t *testing.T) {
		fs := fieldsFromKV("path", nil, "attempts", 1)
		require.Equal(t, "read  failed after 1 tries: ", tmpl.render(fs, ""))
	})
}

func TestFieldsFromKV(t *testing.T) {
	t.Parallel()

	t.Run("pairs in order", func(t *testing.T) {
		fs := fieldsFromKV("a", 1, "b", 2)
		require.Equal(t, fields{{Key: "a", Val: 1}, {Key: "b", Val: 2}}, fs)
	})

	t.Run("non-string key drops the whole pair", func(t *testing.T) {
		fs := fieldsFromKV(42, "oops", "b", 2)
		require.Equal(t, fields{{Key: "b", Val: 2}}, fs)
	})

	t.Run("trailing key gets nil value", func(t *testing.T) {
		fs := fieldsFromKV("a")
		require.Equal(t, fields{{Key: "a", Val: nil}}, fs)
	})

	t.Run("empty input", func(t *testing.T) {
		require.Empty(t, fieldsFromKV())
	})
}
