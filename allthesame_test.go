package allthesame_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	allthesame "github.com/inikulin/all-the-same"
)

// TestExpand runs the expander over txtar fixtures. Each fixture holds an
// "in" template and either the expected "out" source or a fragment of the
// expected "err" diagnostic.
func TestExpand(t *testing.T) {
	ents, err := os.ReadDir(filepath.FromSlash("testdata/expand"))
	require.NoError(t, err)

	for _, ent := range ents {
		name := strings.TrimSuffix(ent.Name(), ".txt")
		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(filepath.Join("testdata", "expand", ent.Name()))
			require.NoError(t, err)

			files := make(map[string]string)
			for _, f := range ar.Files {
				files[f.Name] = string(f.Data)
			}

			in, ok := files["in"]
			require.True(t, ok, "fixture must contain an \"in\" file")

			got, err := allthesame.Expand(name+".rs.in", []byte(in))

			if want, ok := files["err"]; ok {
				require.Error(t, err)
				assert.Contains(t, err.Error(), strings.TrimSpace(want))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, files["out"], string(got))
		})
	}
}

func TestExpandUnchangedWithoutInvocations(t *testing.T) {
	src := []byte("fn nothing() {}\n")
	got, err := allthesame.Expand("plain.rs.in", src)
	require.NoError(t, err)
	assert.Equal(t, string(src), string(got))
}

// Expansion is a pure function of its input: re-running it yields
// byte-identical output.
func TestExpandDeterministic(t *testing.T) {
	src := []byte("all_the_same!(match x {\n    E::[A, B](v) => v.go()\n})\n")
	first, err := allthesame.Expand("f.rs.in", src)
	require.NoError(t, err)
	second, err := allthesame.Expand("f.rs.in", src)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}
