package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inikulin/all-the-same/internal/scan"
)

func TestFileFindsInvocation(t *testing.T) {
	src := []byte("fn f() {\n    all_the_same!(match x { E::[A](v) => v })\n}\n")
	invs, err := scan.File("f.rs", src)
	require.NoError(t, err)
	require.Len(t, invs, 1)

	inv := invs[0]
	assert.Equal(t, "all_the_same", string(src[inv.Start:inv.Start+len(scan.Macro)]))
	assert.Equal(t, "match x { E::[A](v) => v }", string(src[inv.ArgStart:inv.ArgEnd]))
	assert.Equal(t, byte(')'), src[inv.End-1])
	assert.Equal(t, "    ", inv.Indent)
	assert.Equal(t, 2, inv.ArgPos.Line)
	assert.Equal(t, inv.ArgStart, inv.ArgPos.Offset)
}

func TestFileDelimiters(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "Parens", src: "all_the_same!(match x { E::[A](v) => v })"},
		{name: "Brackets", src: "all_the_same![match x { E::[A](v) => v }]"},
		{name: "Braces", src: "all_the_same! { match x { E::[A](v) => v } }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invs, err := scan.File("f.rs", []byte(tt.src))
			require.NoError(t, err)
			require.Len(t, invs, 1)
			assert.Equal(t, len(tt.src), invs[0].End)
		})
	}
}

func TestFileSkipsLiteralsAndComments(t *testing.T) {
	src := []byte(`// all_the_same!(in comment)
/* all_the_same!(in block /* nested */ comment) */
let s = "all_the_same!(in string)";
let c = '"';
not_all_the_same!(ident prefix)
`)
	invs, err := scan.File("f.rs", src)
	require.NoError(t, err)
	assert.Empty(t, invs)
}

func TestFileSkipsRawStrings(t *testing.T) {
	src := []byte(`let s = r#"all_the_same!(in raw string)"#;
let b = br"all_the_same!(in raw byte string)";
all_the_same!(match x { E::[A](v) => v })
`)
	invs, err := scan.File("f.rs", src)
	require.NoError(t, err)
	require.Len(t, invs, 1)
	assert.Equal(t, 3, invs[0].ArgPos.Line)
}

func TestFileRawStringBackslashBeforeQuote(t *testing.T) {
	// In a raw string the backslash is literal and the quote closes the
	// literal, so the invocation after it must still be found.
	src := []byte(`let re = r"\"; all_the_same!(match x { E::[A](v) => v })`)
	invs, err := scan.File("f.rs", src)
	require.NoError(t, err)
	require.Len(t, invs, 1)
	assert.Equal(t, len(src), invs[0].End)
}

func TestFileMultipleInvocations(t *testing.T) {
	src := []byte("all_the_same!(match a { E::[A](v) => v });\nall_the_same!(match b { E::[B](v) => v });\n")
	invs, err := scan.File("f.rs", src)
	require.NoError(t, err)
	require.Len(t, invs, 2)
	assert.Less(t, invs[0].End, invs[1].Start)
	assert.Equal(t, 2, invs[1].ArgPos.Line)
}

func TestFileNestedDelimiters(t *testing.T) {
	src := []byte(`all_the_same!(match f(")") { E::[A](v) => g(v, (1)) })`)
	invs, err := scan.File("f.rs", src)
	require.NoError(t, err)
	require.Len(t, invs, 1)
	assert.Equal(t, len(src), invs[0].End)
}

func TestFileUnterminated(t *testing.T) {
	src := []byte("all_the_same!(match x { E::[A](v) => v }\n")
	_, err := scan.File("f.rs", src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated all_the_same! invocation")
}

func TestFileMacroNameWithoutBang(t *testing.T) {
	src := []byte("let all_the_same = 1;\n")
	invs, err := scan.File("f.rs", src)
	require.NoError(t, err)
	assert.Empty(t, invs)
}

func TestFileTabIndent(t *testing.T) {
	src := []byte("\t\tall_the_same!(match x { E::[A](v) => v })\n")
	invs, err := scan.File("f.rs", src)
	require.NoError(t, err)
	require.Len(t, invs, 1)
	assert.Equal(t, "\t\t", invs[0].Indent)
}
