// Package scan locates all_the_same! invocations embedded in host source
// text. The host syntax is opaque; the scanner only understands enough of it
// (string, raw string, and character literals, line and block comments) to
// avoid false positives inside them.
package scan

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/inikulin/all-the-same/pkg/allthesameerrors"
)

// Macro is the identifier introducing an invocation in host text.
const Macro = "all_the_same"

// Invocation is one macro call site in a file.
type Invocation struct {
	// Start and End delimit the whole invocation, from the macro identifier
	// through the closing delimiter. The expansion replaces exactly this span.
	Start, End int

	// ArgStart and ArgEnd delimit the argument between the delimiters.
	ArgStart, ArgEnd int

	// ArgPos is the file position of ArgStart, anchoring parser diagnostics.
	ArgPos lexer.Position

	// Indent is the leading whitespace of the line the invocation starts on,
	// used to indent the emitted match expression.
	Indent string
}

// delims maps accepted outer delimiters to their closing counterparts. The
// host's macro call convention allows all three bracket kinds.
var delims = map[byte]byte{'(': ')', '[': ']', '{': '}'}

// File scans src and returns its invocations in order of appearance.
func File(filename string, src []byte) ([]Invocation, error) {
	var invs []Invocation

	for i := 0; i < len(src); {
		if n := skipComment(src, i); n > i {
			i = n
			continue
		}
		if n := skipString(src, i); n > i {
			i = n
			continue
		}
		if n := skipChar(src, i); n > i {
			i = n
			continue
		}
		if n := skipRawString(src, i); n > i {
			i = n
			continue
		}
		if !identStart(src[i]) {
			i++
			continue
		}

		start := i
		for i < len(src) && identPart(src[i]) {
			i++
		}
		if string(src[start:i]) != Macro {
			continue
		}

		j := skipSpace(src, i)
		if j >= len(src) || src[j] != '!' {
			continue
		}
		j = skipSpace(src, j+1)
		if j >= len(src) {
			continue
		}
		closing, ok := delims[src[j]]
		if !ok {
			continue
		}

		argStart := j + 1
		argEnd, ok := matchDelim(src, argStart, src[j], closing)
		if !ok {
			pos := position(filename, src, start)
			return nil, allthesameerrors.Errorf(pos, "unterminated %s! invocation", Macro)
		}

		invs = append(invs, Invocation{
			Start:    start,
			End:      argEnd + 1,
			ArgStart: argStart,
			ArgEnd:   argEnd,
			ArgPos:   position(filename, src, argStart),
			Indent:   indentAt(src, start),
		})
		i = argEnd + 1
	}

	return invs, nil
}

// matchDelim returns the offset of the close delimiter matching the one just
// before i, honoring literals, comments, and nesting of the same pair.
func matchDelim(src []byte, i int, open, closing byte) (int, bool) {
	depth := 1
	for i < len(src) {
		if n := skipComment(src, i); n > i {
			i = n
			continue
		}
		if n := skipString(src, i); n > i {
			i = n
			continue
		}
		if n := skipChar(src, i); n > i {
			i = n
			continue
		}
		if n := skipRawString(src, i); n > i {
			i = n
			continue
		}

		switch src[i] {
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return i, true
			}
		}
		i++
	}
	return 0, false
}

// skipComment advances past a line or block comment at i. Block comments
// nest, matching the host convention.
func skipComment(src []byte, i int) int {
	if i+1 >= len(src) || src[i] != '/' {
		return i
	}
	switch src[i+1] {
	case '/':
		for i < len(src) && src[i] != '\n' {
			i++
		}
		return i
	case '*':
		depth := 1
		i += 2
		for i < len(src) && depth > 0 {
			switch {
			case i+1 < len(src) && src[i] == '/' && src[i+1] == '*':
				depth++
				i += 2
			case i+1 < len(src) && src[i] == '*' && src[i+1] == '/':
				depth--
				i += 2
			default:
				i++
			}
		}
		return i
	}
	return i
}

// skipString advances past a double-quoted string literal at i.
func skipString(src []byte, i int) int {
	if i >= len(src) || src[i] != '"' {
		return i
	}
	i++
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1
		default:
			i++
		}
	}
	return i
}

// skipRawString advances past a raw string literal at i: an "r" or "br"
// prefix, any number of "#" guards, and a closing quote followed by the same
// number of guards. Backslashes inside are literal, so the ordinary string
// skipper would close the literal in the wrong place.
func skipRawString(src []byte, i int) int {
	if i > 0 && identPart(src[i-1]) {
		return i
	}
	j := i
	if j < len(src) && src[j] == 'b' {
		j++
	}
	if j >= len(src) || src[j] != 'r' {
		return i
	}
	j++
	hashes := 0
	for j < len(src) && src[j] == '#' {
		hashes++
		j++
	}
	if j >= len(src) || src[j] != '"' {
		return i
	}
	j++
	for j < len(src) {
		if src[j] != '"' {
			j++
			continue
		}
		j++
		n := 0
		for j < len(src) && n < hashes && src[j] == '#' {
			n++
			j++
		}
		if n == hashes {
			return j
		}
	}
	return j
}

// skipChar advances past a character literal at i. A lone quote starting a
// lifetime ('a) is consumed as a single byte so the identifier after it is
// scanned normally.
func skipChar(src []byte, i int) int {
	if i >= len(src) || src[i] != '\'' {
		return i
	}
	if i+1 < len(src) && src[i+1] == '\\' {
		j := i + 2
		for j < len(src) && src[j] != '\'' {
			j++
		}
		return min(j+1, len(src))
	}
	if i+2 < len(src) && src[i+2] == '\'' {
		return i + 3
	}
	return i + 1
}

func skipSpace(src []byte, i int) int {
	for i < len(src) {
		switch src[i] {
		case ' ', '\t', '\r', '\n':
			i++
		default:
			return i
		}
	}
	return i
}

func identStart(b byte) bool {
	return b == '_' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func identPart(b byte) bool {
	return identStart(b) || '0' <= b && b <= '9'
}

// position computes the line and column of offset the same way the macro
// lexer does, so scanner and parser diagnostics agree.
func position(filename string, src []byte, offset int) lexer.Position {
	pos := lexer.Position{Filename: filename, Offset: offset, Line: 1, Column: 1}
	for _, b := range src[:offset] {
		if b == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

// indentAt returns the leading whitespace of the line containing offset.
func indentAt(src []byte, offset int) string {
	start := offset
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	end := start
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	return string(src[start:end])
}
