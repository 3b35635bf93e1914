package batch

import (
	"errors"
	"strings"

	"github.com/spf13/afero"

	"github.com/srcfold/srcfold/internal/enrich"
	"github.com/srcfold/srcfold/internal/lang"
	"github.com/srcfold/srcfold/internal/render"
	"github.com/srcfold/srcfold/internal/scan"
)

// ErrNoValidInput signals that a batch produced zero successful files.
var ErrNoValidInput = errors.New("no valid source files processed")

// fileSource is one readable input resolved against the registry.
type fileSource struct {
	path  string
	spec  *lang.Spec
	lines []string
	total int
}

// loadSource stats, detects, and reads one input file. A false second
// return means the file was skipped (and reported); a non-nil error
// means it failed.
func loadSource(fsys afero.Fs, path string, rep *Reporter) (*fileSource, bool, error) {
	info, err := fsys.Stat(path)
	if err != nil || info.IsDir() {
		rep.Skip(path, "file not found")
		return nil, false, nil
	}
	spec, err := lang.Default().DetectPath(path)
	if err != nil {
		rep.Skip(path, "unsupported extension")
		return nil, false, nil
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		rep.Fail(path, err)
		return nil, false, err
	}
	lines := strings.Split(string(data), "\n")
	return &fileSource{path: path, spec: spec, lines: lines, total: countLines(lines)}, true, nil
}

// countLines reports the source line count, ignoring the empty
// fragment after a trailing newline.
func countLines(lines []string) int {
	if n := len(lines); n > 0 && lines[n-1] == "" {
		return n - 1
	}
	return len(lines)
}

// GenerateMarkdown analyzes every input file and concatenates the
// per-file markdown with "---" separators. Missing files and unknown
// extensions downgrade to skips; ErrNoValidInput is returned when
// nothing succeeds.
func GenerateMarkdown(fsys afero.Fs, paths []string, rep *Reporter) (string, error) {
	rep.Start(len(paths))
	defer rep.Done()

	var parts []string
	for _, path := range paths {
		src, ok, _ := loadSource(fsys, path, rep)
		if !ok {
			continue
		}
		elements := scan.Scan(src.lines, src.spec)
		enrich.Enrich(elements, src.spec, src.lines)
		parts = append(parts, render.Markdown(elements, render.FileInfo{
			Path:       path,
			Language:   src.spec.Key,
			LangName:   src.spec.Name,
			TotalLines: src.total,
		}))
		rep.OK(path)
	}

	if len(parts) == 0 {
		return "", ErrNoValidInput
	}
	return strings.Join(parts, "\n\n---\n\n"), nil
}
