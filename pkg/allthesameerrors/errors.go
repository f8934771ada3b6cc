// Package allthesameerrors provides the positioned diagnostic type reported
// by the all-the-same expander. Every parse or scan failure is an [Error]
// anchored at the offending token in the user's source file.
package allthesameerrors

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/participle/v2/lexer"
)

// Error indicates where the diagnostic occurred in the user's source code.
type Error struct {
	err error
	pos lexer.Position
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.err }

// Pos returns the position where the error occurred. It may be invalid.
func (e *Error) Pos() lexer.Position { return e.pos }

// Error implements the error interface. The position is prepended to the
// message.
func (e *Error) Error() string {
	if e.err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", FormatPosition(e.pos), e.err.Error())
}

// Errorf formats a diagnostic anchored at pos.
func Errorf(pos lexer.Position, format string, args ...any) error {
	// Prevent wrapping error in args
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("allthesameerrors: diagnostic cannot wrap error")
		}
	}
	return &Error{fmt.Errorf(format, args...), pos}
}

// wd is the cached working directory.
var wd, _ = os.Getwd()

// FormatPosition renders pos as "file:line:col" with the file path made
// relative to the working directory when possible. An invalid position
// renders as "-:-".
func FormatPosition(pos lexer.Position) string {
	if pos.Line == 0 {
		return "-:-"
	}

	filename := pos.Filename
	if rel, err := filepath.Rel(wd, filename); err == nil {
		filename = rel
	}

	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}
