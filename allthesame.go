// Package allthesame expands the all_the_same! macro: a match expression
// whose arms can name several enum variants at once, for enums whose variants
// each wrap a different concrete type behind the same method surface.
//
// If you ever had code that looks like this:
//
//	match self.get_mut() {
//	    Stream::Tcp(s) => Pin::new(s).poll_write(cx, buf),
//	    Stream::Unix(s) => Pin::new(s).poll_write(cx, buf),
//	    Stream::Custom(s) => Pin::new(s).poll_write(cx, buf),
//	}
//
// you can replace it with:
//
//	all_the_same!(match self.get_mut() {
//	    Stream::[Tcp, Unix, Custom](s) => Pin::new(s).poll_write(cx, buf)
//	})
//
// and run the expander over your template files:
//
//	go run github.com/inikulin/all-the-same/cmd/allthesame '**/*.rs.in'
//
// Each template is rewritten with every invocation replaced by the ordinary
// match expression, one arm per listed variant, and written next to the
// template without the .in extension. Ordinary arms may be mixed with compact
// ones; they pass through byte-for-byte at their original position.
//
// # Per-variant attributes
//
// A variant name inside the bracket list may be preceded by attributes, which
// attach to that generated arm only. This keeps feature-gated enum variants
// working:
//
//	all_the_same!(match self {
//	    Variants::[Foo, #[cfg(test)] Bar](v) => v
//	})
//
// expands to:
//
//	match self {
//	    Variants::Foo(v) => v,
//	    #[cfg(test)]
//	    Variants::Bar(v) => v,
//	}
//
// # What the expander does not do
//
// The expander never resolves names or types. Whether a listed variant
// exists, whether an attribute is meaningful, and whether a duplicate variant
// makes an arm unreachable are all left to the compiler that consumes the
// expanded code. Arm bodies are copied verbatim into every generated arm, so
// compiler diagnostics keep pointing at the user-written expression.
//
// Comments are preserved only where they sit inside a copied span: a comment
// within an arm's pattern, guard, or body survives, while comments between
// arms of an invocation are dropped from the output.
package allthesame

import (
	allthesameinternal "github.com/inikulin/all-the-same/internal/allthesame"
)

// Expand rewrites every all_the_same! invocation in src and returns the
// expanded source. src comes back unchanged when it contains no invocation.
// filename only anchors diagnostics; Expand performs no I/O.
func Expand(filename string, src []byte) ([]byte, error) {
	code, _, err := allthesameinternal.Expand(filename, src)
	return code, err
}
