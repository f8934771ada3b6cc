// Package allthesameinternal drives the expansion of template files. It
// wires the scanner, parser, expander, and emitter into one pass over a
// file, and exposes the command-line entry point used by cmd/allthesame.
package allthesameinternal

import (
	"bytes"

	"github.com/inikulin/all-the-same/internal/emit"
	"github.com/inikulin/all-the-same/internal/expand"
	"github.com/inikulin/all-the-same/internal/scan"
	"github.com/inikulin/all-the-same/internal/syntax"
)

// Expand rewrites every all_the_same! invocation in src. ok reports whether
// the file contained any invocation at all; callers typically skip writing
// output for files that did not.
//
// Expansion is all-or-nothing: the first malformed invocation aborts the
// whole file with a positioned diagnostic and no partial output.
func Expand(filename string, src []byte) (code []byte, ok bool, err error) {
	invs, err := scan.File(filename, src)
	if err != nil {
		return nil, false, err
	}
	if len(invs) == 0 {
		return src, false, nil
	}

	var b bytes.Buffer
	last := 0
	for _, inv := range invs {
		m, err := syntax.Parse(src, inv.ArgStart, inv.ArgEnd, inv.ArgPos)
		if err != nil {
			return nil, true, err
		}

		arms := expand.Match(m)
		b.Write(src[last:inv.Start])
		b.WriteString(emit.Match(src, m, arms, inv.Indent))
		last = inv.End
	}
	b.Write(src[last:])

	return b.Bytes(), true, nil
}
