package emit_test

import (
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inikulin/all-the-same/internal/emit"
	"github.com/inikulin/all-the-same/internal/expand"
	"github.com/inikulin/all-the-same/internal/syntax"
)

func render(t *testing.T, arg, indent string) string {
	t.Helper()
	base := lexer.Position{Filename: "test.rs", Offset: 0, Line: 1, Column: 1}
	m, err := syntax.Parse([]byte(arg), 0, len(arg), base)
	require.NoError(t, err)
	return emit.Match([]byte(arg), m, expand.Match(m), indent)
}

func TestEmitCompact(t *testing.T) {
	src := `match x { S::[A, #[cfg(feature = "b")] B](v) => v.go(), _ => 0 }`
	want := "match x {\n" +
		"        S::A(v) => v.go(),\n" +
		"        #[cfg(feature = \"b\")]\n" +
		"        S::B(v) => v.go(),\n" +
		"        _ => 0,\n" +
		"    }"
	assert.Equal(t, want, render(t, src, "    "))
}

func TestEmitVerbatimArms(t *testing.T) {
	src := "match x { 0 => 1, n if n > 10 => n - 1, _ => 0 }"
	want := "match x {\n" +
		"    0 => 1,\n" +
		"    n if n > 10 => n - 1,\n" +
		"    _ => 0,\n" +
		"}"
	assert.Equal(t, want, render(t, src, ""))
}

func TestEmitEmptyBody(t *testing.T) {
	src := "match x { }"
	assert.Equal(t, "match x {\n}", render(t, src, ""))
}
