// Package emit reassembles the output match expression from the expanded
// arm list.
package emit

import (
	"strings"

	"github.com/inikulin/all-the-same/internal/expand"
	"github.com/inikulin/all-the-same/internal/syntax"
)

// Match renders the expanded match expression. src is the original file and
// indent is the leading whitespace of the invocation's line; the scrutinee
// and every captured span are sliced from src verbatim.
func Match(src []byte, m *syntax.Match, arms []expand.Arm, indent string) string {
	var b strings.Builder
	b.WriteString("match ")
	b.WriteString(m.Scrutinee.Text(src))
	b.WriteString(" {\n")

	for _, arm := range arms {
		if arm.Verbatim != nil {
			b.WriteString(indent)
			b.WriteString("    ")
			b.WriteString(arm.Verbatim.Text(src))
			b.WriteString(",\n")
			continue
		}

		for _, attr := range arm.Attrs {
			b.WriteString(indent)
			b.WriteString("    ")
			b.WriteString(attr.Text(src))
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteString("    ")
		b.WriteString(arm.Pattern)
		b.WriteString(" => ")
		b.WriteString(arm.Body.Text(src))
		b.WriteString(",\n")
	}

	b.WriteString(indent)
	b.WriteString("}")
	return b.String()
}
