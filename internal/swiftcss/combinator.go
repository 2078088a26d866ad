package swiftcss

import "strings"

// DependencyKind is the relationship between a combinator's selector and the styled element.
type DependencyKind int

const (
	// DependencyDescendant styles the element when it sits inside the selector.
	DependencyDescendant DependencyKind = iota
	// DependencyHas styles the element when it contains the selector.
	DependencyHas
)

func (k DependencyKind) String() string {
	if k == DependencyHas {
		return "has"
	}
	return "descendant"
}

// Combinator is a parsed "(<selector>):<rest>" token.
type Combinator struct {
	Selector string // inner selector with any "has:" keyword removed
	Kind     DependencyKind
	Rest     string // utility applied under the relationship
}

// Dependency returns the selector prefix used when building rule keys.
func (c Combinator) Dependency() string {
	if c.Kind == DependencyHas {
		return ":has(" + c.Selector + ")"
	}
	return c.Selector
}

// Key joins the dependency with the styled element's own selector.
func (c Combinator) Key(self string) string {
	if c.Kind == DependencyHas {
		return c.Dependency() + self
	}
	return c.Dependency() + " " + self
}

// CombinatorResult is the resolved form of a combinator token.
type CombinatorResult struct {
	Declarations []string
	Dependency   string
	Kind         DependencyKind
}

// parseCombinator recognizes "(<inner>):<rest>" tokens.
func parseCombinator(token string) (Combinator, bool) {
	if !strings.HasPrefix(token, "(") {
		return Combinator{}, false
	}
	closing := strings.Index(token, ")")
	if closing < 2 || closing+1 >= len(token) || token[closing+1] != ':' {
		return Combinator{}, false
	}

	inner := token[1:closing]
	rest := token[closing+2:]
	if rest == "" {
		return Combinator{}, false
	}

	c := Combinator{Selector: inner, Kind: DependencyDescendant, Rest: rest}
	if sel, ok := strings.CutPrefix(inner, "has:"); ok {
		if sel == "" {
			return Combinator{}, false
		}
		c.Selector = sel
		c.Kind = DependencyHas
	}
	return c, true
}

// ResolveCombinator resolves the rest of a combinator token. An unresolvable
// rest yields no declarations.
func ResolveCombinator(c Combinator, reg *Registry) CombinatorResult {
	return CombinatorResult{
		Declarations: resolveValue(c.Rest, reg),
		Dependency:   c.Dependency(),
		Kind:         c.Kind,
	}
}
