package syntax

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/inikulin/all-the-same/pkg/allthesameerrors"
)

// def tokenizes macro arguments. Scrutinees and arm bodies follow the host
// expression grammar, which the expander never interprets beyond bracket
// balance, so one rule set covering identifiers, literals, comments, and
// multi-character operators is enough. "::" and "=>" must survive as single
// tokens because the arm grammar dispatches on them.
var def = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|/\*(?:[^*]|\*+[^*/])*\*+/`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	// Char literals ('x', '\n') and lifetimes ('a, '_) share a rule.
	{Name: "Char", Pattern: `'(?:\\.|[^'\\])'|'[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `[0-9][0-9_]*(?:\.[0-9][0-9_]*)?(?:[eE][+-]?[0-9]+)?[a-zA-Z0-9_]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `=>|::|->|\.\.=|\.\.|<<=|>>=|&&|\|\||<<|>>|<=|>=|==|!=|\+=|-=|\*=|/=|%=|\^=|&=|\|=|[-+*/%^&|!<>=.,;:#?@~$(){}\[\]]`},
})

var (
	symbols    = def.Symbols()
	tokIdent   = symbols["Ident"]
	tokComment = symbols["Comment"]
	tokSpace   = symbols["Whitespace"]
)

// lex tokenizes the macro argument src located at base in the original file.
// Whitespace and comments are dropped; the returned slice always ends with an
// EOF token. Token positions point into the original file.
func lex(src string, base lexer.Position) ([]lexer.Token, error) {
	lx, err := def.LexString(base.Filename, src)
	if err != nil {
		return nil, allthesameerrors.Errorf(base, "%s", err.Error())
	}

	var toks []lexer.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			pos := base
			if perr, ok := err.(interface{ Position() lexer.Position }); ok {
				pos = rebase(perr.Position(), base)
			}
			msg := err.Error()
			if merr, ok := err.(interface{ Message() string }); ok {
				msg = merr.Message()
			}
			return nil, allthesameerrors.Errorf(pos, "%s", msg)
		}

		tok.Pos = rebase(tok.Pos, base)
		if tok.EOF() {
			return append(toks, tok), nil
		}
		if tok.Type == tokComment || tok.Type == tokSpace {
			continue
		}
		toks = append(toks, tok)
	}
}

// rebase maps a position produced while lexing the argument substring to the
// corresponding position in the original file.
func rebase(pos, base lexer.Position) lexer.Position {
	pos.Filename = base.Filename
	pos.Offset += base.Offset
	if pos.Line == 1 {
		pos.Column += base.Column - 1
	}
	pos.Line += base.Line - 1
	return pos
}
