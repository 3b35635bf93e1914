package lang

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrUnsupportedLanguage is returned when a language token or file
// extension resolves to no known spec.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Registry resolves language names and aliases to immutable Specs.
// Construction compiles dozens of patterns per language, so a Registry
// is built once and shared; it is safe for concurrent use afterwards.
type Registry struct {
	specs   map[string]*Spec // canonical key -> spec
	aliases map[string]string
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared process-wide registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
	})
	return defaultReg
}

// NewRegistry builds a registry covering all supported languages.
func NewRegistry() *Registry {
	r := &Registry{
		specs:   map[string]*Spec{},
		aliases: map[string]string{},
	}
	for _, s := range []*Spec{
		specC(), specCPP(), specCSharp(), specElixir(), specGo(),
		specHaskell(), specJava(), specJavaScript(), specKotlin(),
		specLua(), specPerl(), specPHP(), specPython(), specRuby(),
		specRust(), specScala(), specShell(), specSwift(),
		specTypeScript(), specZig(),
	} {
		r.specs[s.Key] = s
	}
	for alias, key := range map[string]string{
		"js": "javascript", "ts": "typescript", "rs": "rust",
		"py": "python", "rb": "ruby", "hs": "haskell",
		"cc": "cpp", "cxx": "cpp", "hpp": "cpp", "h": "c",
		"kt": "kotlin", "ex": "elixir", "exs": "elixir",
		"pl": "perl", "cs": "csharp",
		"sh": "shell", "bash": "shell", "zsh": "shell",
	} {
		r.aliases[alias] = key
	}
	return r
}

// Normalize lower-cases a language token, trims whitespace, and strips a
// leading dot so that file extensions resolve like explicit names.
func Normalize(name string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".")
}

// Resolve maps a language name, alias, or dotted extension to its Spec.
func (r *Registry) Resolve(name string) (*Spec, error) {
	key := Normalize(name)
	if canonical, ok := r.aliases[key]; ok {
		key = canonical
	}
	if s, ok := r.specs[key]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q (supported: %s)",
		ErrUnsupportedLanguage, name, strings.Join(r.Languages(), ", "))
}

// DetectPath resolves a spec from a file path's extension.
func (r *Registry) DetectPath(path string) (*Spec, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, fmt.Errorf("%w: no extension on %q", ErrUnsupportedLanguage, path)
	}
	return r.Resolve(ext)
}

// Specs returns every canonical spec, sorted by key.
func (r *Registry) Specs() []*Spec {
	out := make([]*Spec, 0, len(r.specs))
	for _, s := range r.specs {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Languages returns the sorted canonical language keys.
func (r *Registry) Languages() []string {
	keys := make([]string, 0, len(r.specs))
	for k := range r.specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Aliases returns the alias table (alias -> canonical key).
func (r *Registry) Aliases() map[string]string {
	out := make(map[string]string, len(r.aliases))
	for a, k := range r.aliases {
		out[a] = k
	}
	return out
}
