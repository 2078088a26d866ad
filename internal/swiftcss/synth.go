package swiftcss

// SynthesizeGroup builds the rule set for one theme or media attribute group.
//
// For every distinct raw value V, tokens are classified and keyed as:
//
//	pseudo      [attr="V"]:hover   (or ::before for pseudo-elements)
//	plain       [attr="V"]
//	combinator  <dep> [attr="V"]   (descendant) or <dep>[attr="V"] (has)
//
// Per value, pseudo keys are added first, then plain keys, then combinator keys.
// A token that resolves to nothing contributes nothing.
func SynthesizeGroup(g *AttributeGroup, reg *Registry) *RuleSet {
	rs := NewRuleSet()
	if g == nil {
		return rs
	}

	for _, entry := range g.Entries() {
		self := attributeSelector(g.Name, entry.Raw)

		var pseudo, plain, combinators []Token
		for _, raw := range entry.Tokens {
			t := Classify(raw)
			switch {
			case t.Kind == KindCombinator:
				combinators = append(combinators, t)
			case t.IsPseudo():
				pseudo = append(pseudo, t)
			default:
				plain = append(plain, t)
			}
		}

		for _, t := range pseudo {
			rs.Add(self+t.PseudoSuffix(), t.Declarations(reg)...)
		}
		for _, t := range plain {
			rs.Add(self, t.Declarations(reg)...)
		}
		for _, t := range combinators {
			res := ResolveCombinator(t.Combinator, reg)
			rs.Add(t.Combinator.Key(self), res.Declarations...)
		}
	}

	return rs
}
