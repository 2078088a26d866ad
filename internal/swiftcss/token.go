// Package swiftcss turns extracted class tokens into stylesheet rules.
package swiftcss

import "strings"

// Kind is the classification of a class token.
type Kind int

// Token kinds, listed from lowest to highest precedence.
const (
	KindPlain Kind = iota
	KindDynamic
	KindPseudoClass
	KindPseudoElement
	KindCombinator
)

func (k Kind) String() string {
	switch k {
	case KindDynamic:
		return "dynamic"
	case KindPseudoClass:
		return "pseudo-class"
	case KindPseudoElement:
		return "pseudo-element"
	case KindCombinator:
		return "combinator"
	default:
		return "plain"
	}
}

// Token is a classified class token.
type Token struct {
	Raw  string // as written: "hover:color-[#fff]"
	Kind Kind

	// Pseudo is the rendered pseudo selector ("hover", "nth-child(2)") for pseudo kinds.
	Pseudo string
	// Value is the utility part that resolves to declarations. For plain and
	// dynamic tokens it equals Raw.
	Value string
	// Combinator is set for KindCombinator.
	Combinator Combinator
}

// IsPseudo reports whether the token carries a pseudo-class or pseudo-element.
func (t Token) IsPseudo() bool {
	return t.Kind == KindPseudoClass || t.Kind == KindPseudoElement
}

// PseudoSuffix returns the selector suffix including its separator (":hover", "::before").
func (t Token) PseudoSuffix() string {
	switch t.Kind {
	case KindPseudoClass:
		return ":" + t.Pseudo
	case KindPseudoElement:
		return "::" + t.Pseudo
	}
	return ""
}

type matcher func(raw string) (Token, bool)

// matchers run in precedence order; the first match wins.
var matchers = []matcher{
	matchCombinator,
	matchPseudo,
	matchDynamic,
}

// Classify tags a raw token with exactly one Kind.
func Classify(raw string) Token {
	for _, m := range matchers {
		if t, ok := m(raw); ok {
			return t
		}
	}
	return Token{Raw: raw, Kind: KindPlain, Value: raw}
}

// Tokenize splits an attribute value on whitespace and classifies each token.
func Tokenize(value string) []Token {
	fields := strings.Fields(value)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, Classify(f))
	}
	return tokens
}

func matchCombinator(raw string) (Token, bool) {
	c, ok := parseCombinator(raw)
	if !ok {
		return Token{}, false
	}
	return Token{Raw: raw, Kind: KindCombinator, Value: c.Rest, Combinator: c}, true
}

func matchPseudo(raw string) (Token, bool) {
	seg, _, value, ok := splitSelectorSegment(raw)
	if !ok {
		return Token{}, false
	}
	p, ok := parsePseudoSegment(seg)
	if !ok {
		return Token{}, false
	}
	kind := KindPseudoClass
	if p.element {
		kind = KindPseudoElement
	}
	return Token{Raw: raw, Kind: kind, Pseudo: p.selector, Value: value}, true
}

func matchDynamic(raw string) (Token, bool) {
	if !HasDynamicSegment(raw) {
		return Token{}, false
	}
	return Token{Raw: raw, Kind: KindDynamic, Value: raw}, true
}

// Declarations resolves a classified token. Unresolvable tokens return nil.
func (t Token) Declarations(reg *Registry) []string {
	switch t.Kind {
	case KindCombinator:
		return ResolveCombinator(t.Combinator, reg).Declarations
	case KindPseudoElement:
		if decl, ok := contentDeclaration(t.Value); ok {
			return []string{decl}
		}
		return resolveValue(t.Value, reg)
	default:
		return resolveValue(t.Value, reg)
	}
}

// resolveValue tries the dynamic value parser first, then the registry.
// A value carrying a bracketed segment never falls back to the registry.
func resolveValue(value string, reg *Registry) []string {
	if HasDynamicSegment(value) {
		return DecodeDynamic(value)
	}
	if reg == nil {
		return nil
	}
	decls, _ := reg.Lookup(value)
	return decls
}
