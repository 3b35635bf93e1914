// Package enrich is the post-pass over scanned elements: it cleans
// identifiers, derives signatures, computes the two-level hierarchy,
// infers visibility and inheritance, and attaches body annotations.
package enrich

import (
	"strings"

	"github.com/srcfold/srcfold/internal/lang"
	"github.com/srcfold/srcfold/internal/scan"
)

// Enrich mutates the scanned elements in place. sourceLines may be nil;
// body annotations and doc-comment field extraction need the full source
// and are skipped without it.
func Enrich(elements []*scan.Element, spec *lang.Spec, sourceLines []string) {
	cleanNames(elements, spec)
	extractSignatures(elements)
	detectHierarchy(elements)
	extractVisibility(elements, spec)
	extractInheritance(elements, spec)
	if sourceLines != nil {
		extractBodyAnnotations(elements, spec, sourceLines)
		extractDoxygenFields(elements)
	}
}

// cleanNames re-applies the defining pattern to each element's first
// excerpt line and keeps the right-most non-empty capture group. The
// scanner's initial capture can hold the whole match text when a
// pattern's group layout nests the identifier.
func cleanNames(elements []*scan.Element, spec *lang.Spec) {
	for _, e := range elements {
		if e.Name == "" {
			continue
		}
		first := e.FirstLine()
		for _, p := range spec.Patterns {
			if p.Kind != e.Kind {
				continue
			}
			m := p.Re.FindStringSubmatch(first)
			if m != nil {
				for gi := len(m) - 1; gi >= 1; gi-- {
					if g := strings.TrimSpace(m[gi]); g != "" {
						e.Name = g
						break
					}
				}
			}
			break
		}
	}
}

// extractSignatures derives a single-line signature from the excerpt,
// dropping the block-opening suffix.
func extractSignatures(elements []*scan.Element) {
	for _, e := range elements {
		if e.Kind.IsComment() || e.Kind == lang.Import || e.Kind == lang.Decorator {
			continue
		}
		sig := strings.TrimSpace(e.FirstLine())
		for _, suffix := range []string{" {", "{", ":", ";"} {
			if strings.HasSuffix(sig, suffix) && !strings.HasSuffix(sig, "::") {
				sig = strings.TrimRight(sig[:len(sig)-len(suffix)], " \t")
				break
			}
		}
		e.Signature = sig
	}
}
