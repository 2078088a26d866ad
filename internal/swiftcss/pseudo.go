package swiftcss

import "strings"

var pseudoClasses = toSet(
	"active", "any", "any-link", "checked", "default", "defined", "dir", "disabled",
	"empty", "enabled", "first", "first-child", "first-of-type", "fullscreen", "focus",
	"focus-visible", "focus-within", "has", "hover", "indeterminate", "in-range",
	"invalid", "lang", "last-child", "last-of-type", "link", "not", "nth-child",
	"nth-last-child", "nth-last-of-type", "nth-of-type", "only-child", "only-of-type",
	"optional", "out-of-range", "placeholder-shown", "read-only", "read-write",
	"required", "root", "scope", "target", "target-within", "user-invalid", "valid",
	"visited",
	// logical combinations
	"is", "where",
)

var pseudoElements = toSet(
	"after", "before", "first-line", "first-letter", "selection", "placeholder",
	"marker", "backdrop", "cue", "part", "slotted", "file-selector-button",
)

// IsPseudoClass reports whether name is a known pseudo-class.
func IsPseudoClass(name string) bool {
	_, ok := pseudoClasses[name]
	return ok
}

// IsPseudoElement reports whether name is a known pseudo-element.
func IsPseudoElement(name string) bool {
	_, ok := pseudoElements[name]
	return ok
}

// pseudoSelector is a classified selector segment.
type pseudoSelector struct {
	selector string // rendered form: "hover", "nth-child(2)"
	element  bool
}

// separator returns ":" for pseudo-classes and "::" for pseudo-elements.
func (p pseudoSelector) separator() string {
	if p.element {
		return "::"
	}
	return ":"
}

// parsePseudoSegment classifies a selector segment. A functional segment such
// as "nth-child-[2]" matches on its base name and renders as "nth-child(2)".
func parsePseudoSegment(seg string) (pseudoSelector, bool) {
	base, arg, functional := splitFunctional(seg)

	switch {
	case IsPseudoClass(base):
	case IsPseudoElement(base):
	default:
		return pseudoSelector{}, false
	}

	sel := base
	if functional {
		sel = base + "(" + arg + ")"
	}
	return pseudoSelector{selector: sel, element: !IsPseudoClass(base)}, true
}

// splitFunctional splits "name-[arg]" into name and arg.
func splitFunctional(seg string) (string, string, bool) {
	if !strings.HasSuffix(seg, "]") {
		return seg, "", false
	}
	open := strings.Index(seg, "-[")
	if open <= 0 {
		return seg, "", false
	}
	return seg[:open], seg[open+2 : len(seg)-1], true
}

// splitSelectorSegment splits a token at its first ":" into the segment, the
// separator (":" or "::") and the remaining value.
func splitSelectorSegment(token string) (seg, sep, value string, ok bool) {
	i := strings.Index(token, ":")
	if i <= 0 {
		return "", "", "", false
	}
	seg, value = token[:i], token[i+1:]
	sep = ":"
	if strings.HasPrefix(value, ":") {
		sep, value = "::", value[1:]
	}
	if value == "" {
		return "", "", "", false
	}
	return seg, sep, value, true
}

// contentDeclaration renders the pseudo-element content special case:
// "content-[hello]" becomes "content: hello;" with the payload kept verbatim.
func contentDeclaration(value string) (string, bool) {
	if !strings.HasPrefix(value, "content-[") || !strings.HasSuffix(value, "]") {
		return "", false
	}
	payload := value[len("content-[") : len(value)-1]
	if payload == "" {
		return "", false
	}
	return "content: " + payload + ";", true
}

func toSet(items ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
