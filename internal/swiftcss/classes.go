package swiftcss

import "strings"

// Theme prefixes recognized on class-attribute tokens.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ClassRules are the rules synthesized from class and className tokens.
type ClassRules struct {
	// Base holds the stylesheet text of every referenced registry class, in stylesheet order.
	Base        []string
	Dynamic     *RuleSet
	Pseudo      *RuleSet
	Combinators *RuleSet
	// Variants holds dark:/light: prefixed tokens under flat theme selectors.
	Variants *RuleSet
}

// SplitTheme strips one leading "dark:" or "light:" prefix from a class token.
func SplitTheme(raw string) (theme, rest string) {
	for _, t := range []string{ThemeDark, ThemeLight} {
		if r, ok := strings.CutPrefix(raw, t+":"); ok && r != "" {
			return t, r
		}
	}
	return "", raw
}

// SynthesizeClasses builds the class rules for tokens in first-seen order.
func SynthesizeClasses(tokens []string, reg *Registry) ClassRules {
	cr := ClassRules{
		Dynamic:     NewRuleSet(),
		Pseudo:      NewRuleSet(),
		Combinators: NewRuleSet(),
		Variants:    NewRuleSet(),
	}
	used := newOrderedSet()

	for _, raw := range tokens {
		theme, rest := SplitTheme(raw)
		t := Classify(rest)
		sel := classSelector(raw, t)
		decls := t.Declarations(reg)

		if theme != "" {
			cr.Variants.Add(themeVariantSelector(theme, sel), decls...)
			continue
		}

		switch {
		case t.Kind == KindPlain:
			used.add(raw)
		case t.Kind == KindDynamic:
			cr.Dynamic.Add(sel, decls...)
		case t.IsPseudo():
			cr.Pseudo.Add(sel, decls...)
		case t.Kind == KindCombinator:
			cr.Combinators.Add(sel, decls...)
		}
	}

	if reg != nil {
		cr.Base = reg.Filter(used.has)
	}
	return cr
}

// ResolveClass returns the declarations a class-attribute token produces.
func ResolveClass(raw string, reg *Registry) []string {
	_, rest := SplitTheme(raw)
	return Classify(rest).Declarations(reg)
}

// classSelector renders the selector for a class token: the escaped raw token
// plus any pseudo suffix or combinator dependency.
func classSelector(raw string, t Token) string {
	self := "." + escapeClass(raw)
	switch {
	case t.IsPseudo():
		return self + t.PseudoSuffix()
	case t.Kind == KindCombinator:
		return t.Combinator.Key(self)
	}
	return self
}
