package syntax

import (
	"fmt"
	"slices"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/inikulin/all-the-same/pkg/allthesameerrors"
)

// cursor is a backtracking reader over the lexed tokens. The token slice
// always ends with an EOF token, so peek never runs off the end.
type cursor struct {
	toks []lexer.Token
	i    int
}

func (c *cursor) peek() lexer.Token { return c.toks[c.i] }

func (c *cursor) next() lexer.Token {
	t := c.toks[c.i]
	if !t.EOF() {
		c.i++
	}
	return t
}

func (c *cursor) save() int        { return c.i }
func (c *cursor) restore(mark int) { c.i = mark }

// at reports whether the next token has exactly the given value. Literal
// tokens keep their quotes in Value, so they never collide with punctuation
// or keywords.
func (c *cursor) at(val string) bool { return c.peek().Value == val }

// eat consumes the next token if it has the given value.
func (c *cursor) eat(val string) bool {
	if !c.at(val) {
		return false
	}
	c.next()
	return true
}

// expect consumes the next token, failing with a diagnostic if its value
// differs.
func (c *cursor) expect(want string) (lexer.Token, error) {
	t := c.peek()
	if t.Value != want {
		return t, allthesameerrors.Errorf(t.Pos, "expected %q, found %s", want, describe(t))
	}
	return c.next(), nil
}

// group captures a balanced token run, stopping before the first token at
// bracket depth zero whose value is in stops. The stop token is not consumed.
func (c *cursor) group(stops ...string) (Group, error) {
	var g Group
	depth := 0
	for {
		t := c.peek()
		if t.EOF() {
			return g, allthesameerrors.Errorf(t.Pos, "unexpected end of macro input")
		}
		if depth == 0 && slices.Contains(stops, t.Value) {
			return g, nil
		}

		switch t.Value {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			if depth == 0 {
				return g, allthesameerrors.Errorf(t.Pos, "unexpected %q", t.Value)
			}
			depth--
		}
		g.push(c.next())
	}
}

func describe(t lexer.Token) string {
	if t.EOF() {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Value)
}
