package syntax

import "github.com/alecthomas/participle/v2/lexer"

// Group is a balanced run of tokens captured verbatim from the source.
// [Start, End) are byte offsets into the original file, so the exact user
// written text, including inner whitespace, can always be recovered.
type Group struct {
	Toks  []lexer.Token
	Start int
	End   int
}

// Pos returns the position of the group's first token.
func (g Group) Pos() lexer.Position {
	if len(g.Toks) == 0 {
		return lexer.Position{}
	}
	return g.Toks[0].Pos
}

// Text returns the group's original source text.
func (g Group) Text(src []byte) string { return string(src[g.Start:g.End]) }

func (g *Group) push(t lexer.Token) {
	if len(g.Toks) == 0 {
		g.Start = t.Pos.Offset
	}
	g.Toks = append(g.Toks, t)
	g.End = t.Pos.Offset + len(t.Value)
}

// VariantSpec is one identifier in a compact arm's bracket list together with
// the attributes to attach to its generated arm. Attributes are opaque token
// groups, relocated but never interpreted.
type VariantSpec struct {
	Attrs []Group
	Name  lexer.Token
}

// Arm is one source arm of the match body: either *OrdinaryArm or
// *CompactArm.
type Arm interface{ arm() }

// OrdinaryArm is a regular pattern-guard-body arm, passed through to the
// output verbatim.
type OrdinaryArm struct {
	Pattern Group
	Guard   *Group // nil when the arm has no "if" guard
	Body    Group
}

// CompactArm is the shorthand form Path::[A, B, C](binding) => body.
type CompactArm struct {
	Path    []lexer.Token // "::"-separated path segment identifiers
	Specs   []VariantSpec
	Binding lexer.Token
	Body    Group
}

func (*OrdinaryArm) arm() {}
func (*CompactArm) arm()  {}

// Span covers the whole arm from the first pattern token through the body.
func (a *OrdinaryArm) Span() Group {
	return Group{Start: a.Pattern.Start, End: a.Body.End}
}

// Match is the parsed argument of one macro invocation.
type Match struct {
	Scrutinee Group
	Arms      []Arm
}
