package enrich

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/srcfold/srcfold/internal/lang"
	"github.com/srcfold/srcfold/internal/scan"
)

// Visibility labels form a closed set; languages without a visibility
// concept yield the empty string, rendered as unknown.
const (
	VisPublic      = "pub"
	VisPrivate     = "priv"
	VisProtected   = "prot"
	VisInternal    = "int"
	VisFilePrivate = "fpriv"
)

var (
	publicRe      = regexp.MustCompile(`\bpublic\b`)
	privateRe     = regexp.MustCompile(`\bprivate\b`)
	protectedRe   = regexp.MustCompile(`\bprotected\b`)
	internalRe    = regexp.MustCompile(`\binternal\b`)
	filePrivateRe = regexp.MustCompile(`\bfileprivate\b`)
	pubOpenRe     = regexp.MustCompile(`\b(?:public|open)\b`)
	rustPubRe     = regexp.MustCompile(`^\s*pub\b`)
)

func extractVisibility(elements []*scan.Element, spec *lang.Spec) {
	for _, e := range elements {
		if e.Kind.IsComment() || e.Kind == lang.Import {
			continue
		}
		sig := strings.TrimSpace(e.FirstLine())
		if vis := parseVisibility(sig, e.Name, spec.Key); vis != "" {
			e.Visibility = vis
		}
	}
}

// parseVisibility maps declaration-line tokens to a visibility label
// using the language family's convention.
func parseVisibility(sig, name, key string) string {
	switch key {
	case "python":
		if strings.HasPrefix(name, "__") && !strings.HasSuffix(name, "__") {
			return VisPrivate
		}
		if strings.HasPrefix(name, "_") {
			return VisPrivate
		}
		return VisPublic
	case "java", "csharp", "kotlin", "php":
		switch {
		case publicRe.MatchString(sig):
			return VisPublic
		case privateRe.MatchString(sig):
			return VisPrivate
		case protectedRe.MatchString(sig):
			return VisProtected
		case internalRe.MatchString(sig):
			return VisInternal
		}
		return ""
	case "rust", "zig":
		if rustPubRe.MatchString(sig) {
			return VisPublic
		}
		return VisPrivate
	case "go":
		if name != "" && unicode.IsUpper(rune(name[0])) {
			return VisPublic
		}
		return VisPrivate
	case "swift":
		switch {
		case filePrivateRe.MatchString(sig):
			return VisFilePrivate
		case privateRe.MatchString(sig):
			return VisPrivate
		case pubOpenRe.MatchString(sig):
			return VisPublic
		}
		return ""
	case "cpp":
		switch {
		case publicRe.MatchString(sig):
			return VisPublic
		case privateRe.MatchString(sig):
			return VisPrivate
		case protectedRe.MatchString(sig):
			return VisProtected
		}
		return ""
	}
	return ""
}
