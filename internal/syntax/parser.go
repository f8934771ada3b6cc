// Package syntax lexes and parses the argument of one all_the_same!
// invocation into a match expression made of ordinary and compact arms.
//
// The parser never resolves names: paths, variants, attributes, and body
// expressions are captured as spans of the original source and handed to the
// expander untouched. Validation of variant existence is the downstream
// compiler's job.
package syntax

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/inikulin/all-the-same/pkg/allthesameerrors"
)

// Parse parses the argument of one invocation. src is the entire original
// file, [start, end) delimits the argument text within it, and base is the
// argument's file position used to anchor diagnostics.
func Parse(src []byte, start, end int, base lexer.Position) (*Match, error) {
	toks, err := lex(string(src[start:end]), base)
	if err != nil {
		return nil, err
	}
	c := &cursor{toks: toks}

	if _, err := c.expect("match"); err != nil {
		return nil, err
	}

	// The scrutinee ends at the first top-level "{", which opens the match
	// body. Braced expressions inside parentheses are still fine.
	scrutinee, err := c.group("{")
	if err != nil {
		return nil, err
	}
	if len(scrutinee.Toks) == 0 {
		return nil, allthesameerrors.Errorf(c.peek().Pos, "expected scrutinee expression after %q", "match")
	}

	if _, err := c.expect("{"); err != nil {
		return nil, err
	}

	m := &Match{Scrutinee: scrutinee}
	for !c.at("}") {
		arm, err := parseArm(c)
		if err != nil {
			return nil, err
		}
		m.Arms = append(m.Arms, arm)

		if !c.eat(",") {
			break
		}
	}
	if _, err := c.expect("}"); err != nil {
		return nil, err
	}
	if t := c.peek(); !t.EOF() {
		return nil, allthesameerrors.Errorf(t.Pos, "unexpected %q after match expression", t.Value)
	}

	return m, nil
}

func parseArm(c *cursor) (Arm, error) {
	arm, ok, err := tryCompact(c)
	if err != nil {
		return nil, err
	}
	if ok {
		return arm, nil
	}
	return parseOrdinary(c)
}

// tryCompact attempts the compact form "Path::[spec, ...](binding) => body".
// Until the "[" is seen the cursor backtracks and the arm reparses as an
// ordinary arm; after it, any shape mismatch is a diagnostic.
func tryCompact(c *cursor) (*CompactArm, bool, error) {
	mark := c.save()

	var path []lexer.Token
	for {
		if c.peek().Type != tokIdent {
			c.restore(mark)
			return nil, false, nil
		}
		path = append(path, c.next())
		if !c.eat("::") {
			c.restore(mark)
			return nil, false, nil
		}
		if c.at("[") {
			break
		}
	}
	c.next() // "["

	arm := &CompactArm{Path: path}
	for {
		if len(arm.Specs) == 0 && c.at("]") {
			return nil, false, allthesameerrors.Errorf(c.peek().Pos, "expected at least one variant identifier")
		}

		var spec VariantSpec
		for c.at("#") {
			attr, err := parseAttr(c)
			if err != nil {
				return nil, false, err
			}
			spec.Attrs = append(spec.Attrs, attr)
		}

		t := c.peek()
		if t.Type != tokIdent {
			return nil, false, allthesameerrors.Errorf(t.Pos, "expected variant identifier, found %s", describe(t))
		}
		spec.Name = c.next()
		arm.Specs = append(arm.Specs, spec)

		if c.eat(",") {
			if c.at("]") {
				break // trailing comma
			}
			continue
		}
		break
	}
	if _, err := c.expect("]"); err != nil {
		return nil, false, err
	}

	if _, err := c.expect("("); err != nil {
		return nil, false, err
	}
	t := c.peek()
	if t.Type != tokIdent {
		return nil, false, allthesameerrors.Errorf(t.Pos, "binding must be a single identifier or %q, found %s", "_", describe(t))
	}
	arm.Binding = c.next()
	if _, err := c.expect(")"); err != nil {
		return nil, false, err
	}

	if _, err := c.expect("=>"); err != nil {
		return nil, false, err
	}

	body, err := armBody(c)
	if err != nil {
		return nil, false, err
	}
	arm.Body = body

	return arm, true, nil
}

func parseOrdinary(c *cursor) (Arm, error) {
	pattern, err := c.group("if", "=>")
	if err != nil {
		return nil, err
	}
	if len(pattern.Toks) == 0 {
		return nil, allthesameerrors.Errorf(c.peek().Pos, "expected match arm pattern")
	}

	arm := &OrdinaryArm{Pattern: pattern}
	if c.eat("if") {
		guard, err := c.group("=>")
		if err != nil {
			return nil, err
		}
		if len(guard.Toks) == 0 {
			return nil, allthesameerrors.Errorf(c.peek().Pos, "expected guard expression after %q", "if")
		}
		arm.Guard = &guard
	}

	if _, err := c.expect("=>"); err != nil {
		return nil, err
	}

	body, err := armBody(c)
	if err != nil {
		return nil, err
	}
	arm.Body = body

	return arm, nil
}

// parseAttr captures one "#[...]" attribute group verbatim.
func parseAttr(c *cursor) (Group, error) {
	var g Group

	hash, err := c.expect("#")
	if err != nil {
		return g, err
	}
	open, err := c.expect("[")
	if err != nil {
		return g, err
	}
	g.push(hash)
	g.push(open)

	depth := 0
	for {
		t := c.peek()
		if t.EOF() {
			return g, allthesameerrors.Errorf(t.Pos, "unterminated attribute")
		}
		if depth == 0 && t.Value == "]" {
			g.push(c.next())
			return g, nil
		}

		switch t.Value {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		}
		g.push(c.next())
	}
}

// armBody captures the arm expression, ending at a top-level "," or at the
// closing "}" of the match body. Neither terminator is consumed. A top-level
// "=>" cannot occur inside an arm expression, so reaching one means the comma
// before the next arm is missing.
func armBody(c *cursor) (Group, error) {
	body, err := c.group(",", "}", "=>")
	if err != nil {
		return body, err
	}
	if len(body.Toks) == 0 {
		return body, allthesameerrors.Errorf(c.peek().Pos, "expected arm expression after %q", "=>")
	}
	if c.at("=>") {
		return body, allthesameerrors.Errorf(c.peek().Pos, "expected %q between match arms", ",")
	}
	return body, nil
}
