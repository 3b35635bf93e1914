package enrich

import (
	"github.com/srcfold/srcfold/internal/lang"
	"github.com/srcfold/srcfold/internal/scan"
)

// detectHierarchy assigns depth 1 and a parent name to every non-container
// element whose range is nested inside a container. The model is exactly
// two levels deep: containers stay at depth 0 even when nested inside
// another container.
func detectHierarchy(elements []*scan.Element) {
	var containers []*scan.Element
	for _, e := range elements {
		if e.Kind.Container() {
			containers = append(containers, e)
		}
	}
	for _, e := range elements {
		if e.Kind.IsComment() || e.Kind == lang.Import || e.Kind.Container() {
			continue
		}
		var best *scan.Element
		for _, c := range containers {
			if c == e {
				continue
			}
			if c.StartLine <= e.StartLine && c.EndLine >= e.EndLine {
				switch {
				case best == nil:
					best = c
				case c.StartLine > best.StartLine:
					best = c
				case c.StartLine == best.StartLine && c.EndLine < best.EndLine:
					best = c
				}
			}
		}
		if best != nil {
			e.ParentName = best.Name
			e.Depth = 1
		}
	}
}
