package allthesameinternal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

var Version string

// Main is the main entry point for the expander. It is used by the
// command-line tool directly.
//
// wd is the path of the working directory. ext is the template extension
// stripped from each input file to name its output. patterns are doublestar
// globs selecting the template files to expand.
//
// It returns an insertion-ordered map of output file paths to their expanded
// contents, so callers report results deterministically. Files containing no
// invocation are skipped. If any file fails, all failures are joined and
// nothing is returned.
func Main(wd, ext string, patterns []string) (*linkedhashmap.Map, error) {
	if ext == "" {
		return nil, errors.New("need a template extension")
	}

	files, err := glob(wd, patterns)
	if err != nil {
		return nil, err
	}

	outs := linkedhashmap.New()
	var errs error

	for _, file := range files {
		if !strings.HasSuffix(file, ext) {
			err := fmt.Errorf("%s: missing template extension %q", file, ext)
			errs = errors.Join(errs, err)
			continue
		}

		src, err := os.ReadFile(file)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		code, ok, err := Expand(file, src)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if !ok {
			continue
		}

		outs.Put(strings.TrimSuffix(file, ext), code)
	}
	if errs != nil {
		return nil, errs
	}

	return outs, nil
}

// glob resolves the patterns relative to wd into a sorted, deduplicated file
// list.
func glob(wd string, patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(wd, pattern)
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		files = append(files, matches...)
	}

	slices.Sort(files)
	files = slices.Compact(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no files found: %v", patterns)
	}
	return files, nil
}
