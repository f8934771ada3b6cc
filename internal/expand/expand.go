// Package expand turns compact source arms into ordinary match arms.
package expand

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/inikulin/all-the-same/internal/syntax"
)

// Arm is one arm of the output match expression.
//
// A pass-through arm keeps Verbatim pointing at the original arm's source
// span and is copied byte-for-byte. A synthesized arm carries the attribute
// spans of its variant spec, the rendered destructuring pattern, and the
// shared body span.
type Arm struct {
	Verbatim *syntax.Group // non-nil for ordinary source arms

	Attrs   []syntax.Group
	Pattern string
	Body    syntax.Group
}

// Match flattens the invocation's arms. Ordinary arms pass through in place;
// each compact arm is replaced by one arm per variant spec, contiguously and
// in list order.
func Match(m *syntax.Match) []Arm {
	var arms []Arm
	for _, a := range m.Arms {
		switch a := a.(type) {
		case *syntax.OrdinaryArm:
			span := a.Span()
			arms = append(arms, Arm{Verbatim: &span})
		case *syntax.CompactArm:
			arms = append(arms, Compact(a)...)
		}
	}
	return arms
}

// Compact expands one compact arm into exactly len(a.Specs) arms. Every arm
// binds the same identifier and shares the body span, so compiler
// diagnostics for any clone still point at the user-written expression. A
// spec's attributes apply only to its own arm, never to siblings.
func Compact(a *syntax.CompactArm) []Arm {
	arms := make([]Arm, 0, len(a.Specs))
	for _, spec := range a.Specs {
		arms = append(arms, Arm{
			Attrs:   spec.Attrs,
			Pattern: pattern(a, spec.Name),
			Body:    a.Body,
		})
	}
	return arms
}

// pattern renders the destructuring pattern "Path::Name(binding)".
func pattern(a *syntax.CompactArm, name lexer.Token) string {
	var b strings.Builder
	for _, seg := range a.Path {
		b.WriteString(seg.Value)
		b.WriteString("::")
	}
	b.WriteString(name.Value)
	b.WriteByte('(')
	b.WriteString(a.Binding.Value)
	b.WriteByte(')')
	return b.String()
}
