package batch

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"

	"github.com/srcfold/srcfold/internal/lang"
)

// compiledPattern holds both the pattern string and compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Discovery expands directory roots into analyzable source files using
// glob include and ignore patterns. An empty include list admits every
// file whose extension the registry recognizes.
type Discovery struct {
	fsys    afero.Fs
	include []compiledPattern
	ignore  []compiledPattern
}

// NewDiscovery compiles the include and ignore globs.
func NewDiscovery(fsys afero.Fs, includePatterns, ignorePatterns []string) (*Discovery, error) {
	d := &Discovery{fsys: fsys}
	for _, pattern := range includePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		d.include = append(d.include, compiledPattern{pattern: pattern, glob: g})
	}
	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		d.ignore = append(d.ignore, compiledPattern{pattern: pattern, glob: g})
	}
	return d, nil
}

// Resolve expands each root into source files. Plain file roots pass
// through untouched so explicit arguments never get glob-filtered.
// Directory roots are walked recursively; results are sorted.
func (d *Discovery) Resolve(roots []string) ([]string, error) {
	var files []string
	seen := map[string]bool{}

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range roots {
		info, err := d.fsys.Stat(root)
		if err != nil {
			// Missing roots surface later as per-file skips.
			add(root)
			continue
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		err = afero.Walk(d.fsys, root, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			rel, rerr := filepath.Rel(root, path)
			if rerr != nil {
				return rerr
			}
			rel = filepath.ToSlash(rel)
			if fi.IsDir() {
				if d.shouldIgnore(rel) {
					return filepath.SkipDir
				}
				return nil
			}
			if d.shouldIgnore(rel) {
				return nil
			}
			if !d.matchesInclude(rel, path) {
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

// matchesInclude applies include globs, or falls back to extension
// recognition when none were given.
func (d *Discovery) matchesInclude(rel, path string) bool {
	if len(d.include) == 0 {
		_, err := lang.Default().DetectPath(path)
		return err == nil
	}
	for _, p := range d.include {
		if p.glob.Match(rel) {
			return true
		}
	}
	return false
}

// shouldIgnore checks a relative path against the ignore patterns, also
// treating "dir" as matching an ignore written as "dir/**".
func (d *Discovery) shouldIgnore(rel string) bool {
	if rel == "." {
		return false
	}
	for _, p := range d.ignore {
		if p.glob.Match(rel) {
			return true
		}
		// A pattern like "node_modules/**" should prune the
		// node_modules directory itself.
		if base, ok := strings.CutSuffix(p.pattern, "/**"); ok && rel == base {
			return true
		}
	}
	return false
}
