package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sys/unix"

	allthesameinternal "github.com/inikulin/all-the-same/internal/allthesame"
)

var Version = "dev"

var (
	xFlag = flag.String("x", ".in", "template extension stripped to name the output file")
	dFlag = flag.Bool("d", false, "print unified diffs instead of writing files")
	cFlag = flag.String("c", "auto", "colorize (auto|always|never)")
)

func init() {
	allthesameinternal.Version = Version
}

func main() {
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	color := false
	switch *cFlag {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		fmt.Fprintln(os.Stderr, "invalid -c value:", *cFlag)
		os.Exit(1)
	}

	outs, err := allthesameinternal.Main(wd, *xFlag, flag.Args())
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		os.Exit(1)
	}

	it := outs.Iterator()
	for it.Next() {
		out := it.Key().(string)
		code := it.Value().([]byte)

		rel := out
		if r, err := filepath.Rel(wd, out); err == nil {
			rel = r
		}

		if *dFlag {
			diff, err := unifiedDiff(out, rel, code)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if color {
				diff = colorizeDiff(diff)
			}
			fmt.Print(diff)
			continue
		}

		if err := os.WriteFile(out, code, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("Expanded:", rel)
	}
}

// unifiedDiff renders the pending change against the current content of the
// output file. A missing output file diffs against nothing.
func unifiedDiff(path, rel string, code []byte) (string, error) {
	old, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(old)),
		B:        difflib.SplitLines(string(code)),
		FromFile: rel,
		ToFile:   rel + " (expanded)",
		Context:  3,
	})
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	rePos     = regexp.MustCompile(`(?m)^[^\s:]+:\d+:\d+:`)
	reDiffDel = regexp.MustCompile(`(?m)^-.*`)
	reDiffAdd = regexp.MustCompile(`(?m)^\+.*`)
)

// colorize adds ANSI color codes to diagnostic positions.
func colorize(message string) string {
	const (
		red   = "\033[31m"
		reset = "\033[0m"
	)
	return rePos.ReplaceAllStringFunc(message, func(s string) string {
		return red + s + reset
	})
}

// colorizeDiff adds ANSI color codes to diff lines.
func colorizeDiff(diff string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)
	diff = reDiffDel.ReplaceAllStringFunc(diff, func(s string) string {
		return red + s + reset
	})
	diff = reDiffAdd.ReplaceAllStringFunc(diff, func(s string) string {
		return green + s + reset
	})
	return diff
}
