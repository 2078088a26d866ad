package swiftcss

// OptimizeStats counts what Optimize removed from a ScanContext.
type OptimizeStats struct {
	DuplicateTokens   int `json:"duplicate_tokens"`
	UnresolvedTokens  int `json:"unresolved_tokens"`
	EmptyEntries      int `json:"empty_entries"`
	UnresolvedClasses int `json:"unresolved_classes"`
}

// Removed returns the total number of dropped items.
func (s OptimizeStats) Removed() int {
	return s.DuplicateTokens + s.UnresolvedTokens + s.EmptyEntries + s.UnresolvedClasses
}

// Optimize prunes scan in place before generation. Raw attribute values are
// left untouched so selector keys do not change.
func Optimize(scan *ScanContext, reg *Registry) OptimizeStats {
	var stats OptimizeStats

	for _, g := range scan.Groups() {
		for _, e := range g.Entries() {
			seen := make(map[string]struct{}, len(e.Tokens))
			kept := e.Tokens[:0]
			for _, tok := range e.Tokens {
				if _, dup := seen[tok]; dup {
					stats.DuplicateTokens++
					continue
				}
				seen[tok] = struct{}{}
				if len(Classify(tok).Declarations(reg)) == 0 {
					stats.UnresolvedTokens++
					continue
				}
				kept = append(kept, tok)
			}
			e.Tokens = kept
		}

		before := g.Len()
		g.retain(func(e *AttributeEntry) bool { return len(e.Tokens) > 0 })
		stats.EmptyEntries += before - g.Len()
	}

	before := scan.classes.len()
	scan.classes.retain(func(tok string) bool {
		return len(ResolveClass(tok, reg)) > 0
	})
	stats.UnresolvedClasses = before - scan.classes.len()

	return stats
}
