package batch

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/srcfold/srcfold/internal/compress"
)

// CompressFiles compresses each input and concatenates the results.
// Every file gets a header block:
//
//	@@@ <path> | <language>
//	> Lines: <start>-<end>
//	```
//	<compressed source>
//	```
//
// The line range comes from the numbered form even when numbered
// output is off. outputBase, when non-empty, relativizes header paths.
func CompressFiles(fsys afero.Fs, paths []string, numbered bool, outputBase string, rep *Reporter) (string, error) {
	rep.Start(len(paths))
	defer rep.Done()

	var parts []string
	for _, path := range paths {
		src, ok, _ := loadSource(fsys, path, rep)
		if !ok {
			continue
		}

		numberedOut := compress.Lines(src.lines, src.spec, true)
		start, end := extractLineRange(numberedOut)
		out := numberedOut
		if !numbered {
			out = compress.Lines(src.lines, src.spec, false)
		}

		parts = append(parts, fmt.Sprintf("@@@ %s | %s\n> Lines: %d-%d\n```\n%s\n```",
			headerPath(path, outputBase), src.spec.Key, start, end, out))
		rep.OK(path)
	}

	if len(parts) == 0 {
		return "", ErrNoValidInput
	}
	return strings.Join(parts, "\n\n"), nil
}

// extractLineRange reads the first and last original line numbers from
// "L<n>> " prefixes. Returns 0, 0 for empty output.
func extractLineRange(numbered string) (start, end int) {
	for _, line := range strings.Split(numbered, "\n") {
		rest, ok := strings.CutPrefix(line, "L")
		if !ok {
			continue
		}
		marker, _, ok := strings.Cut(rest, ">")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(marker)
		if err != nil {
			continue
		}
		if start == 0 {
			start = n
		}
		end = n
	}
	return start, end
}

// headerPath relativizes a source path against base for the @@@ header.
func headerPath(path, base string) string {
	if base == "" {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
