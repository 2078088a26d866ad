package swiftcss

import "strings"

// Rule is one selector key and its deduplicated declarations.
type Rule struct {
	Selector     string
	Declarations []string
}

// RuleSet is an insertion-ordered collection of rules keyed by selector.
// Declarations within a rule have set semantics.
type RuleSet struct {
	rules []*ruleEntry
	index map[string]int
}

type ruleEntry struct {
	selector string
	decls    *orderedSet
}

// NewRuleSet creates an empty RuleSet.
func NewRuleSet() *RuleSet {
	return &RuleSet{index: make(map[string]int)}
}

// Add merges declarations into the rule for selector. Adding no declarations
// does not create the rule.
func (rs *RuleSet) Add(selector string, decls ...string) {
	if len(decls) == 0 {
		return
	}
	i, ok := rs.index[selector]
	if !ok {
		i = len(rs.rules)
		rs.index[selector] = i
		rs.rules = append(rs.rules, &ruleEntry{selector: selector, decls: newOrderedSet()})
	}
	for _, d := range decls {
		rs.rules[i].decls.add(d)
	}
}

// Len returns the number of distinct selectors.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Rules returns the rules in insertion order.
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	for i, r := range rs.rules {
		out[i] = Rule{Selector: r.selector, Declarations: append([]string(nil), r.decls.items()...)}
	}
	return out
}

// Rule returns the rule for a selector.
func (rs *RuleSet) Rule(selector string) (Rule, bool) {
	i, ok := rs.index[selector]
	if !ok {
		return Rule{}, false
	}
	r := rs.rules[i]
	return Rule{Selector: r.selector, Declarations: append([]string(nil), r.decls.items()...)}, true
}

// Render writes every rule indented by indent.
func (rs *RuleSet) Render(indent string) string {
	var sb strings.Builder
	for _, r := range rs.rules {
		writeRule(&sb, indent, r.selector, r.decls.items())
	}
	return sb.String()
}

// Fragments renders each rule as its own top-level string.
func (rs *RuleSet) Fragments() []string {
	out := make([]string, 0, len(rs.rules))
	for _, r := range rs.rules {
		var sb strings.Builder
		writeRule(&sb, "", r.selector, r.decls.items())
		out = append(out, strings.TrimSuffix(sb.String(), "\n"))
	}
	return out
}

func writeRule(sb *strings.Builder, indent, selector string, decls []string) {
	sb.WriteString(indent)
	sb.WriteString(selector)
	sb.WriteString(" {\n")
	for _, d := range decls {
		sb.WriteString(indent)
		sb.WriteString("\t")
		sb.WriteString(d)
		sb.WriteString("\n")
	}
	sb.WriteString(indent)
	sb.WriteString("}\n")
}

// wrapBlock renders rules nested inside an outer block such as "@media (...)".
func wrapBlock(header string, rs *RuleSet) string {
	if rs.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString(" {\n")
	sb.WriteString(rs.Render("\t"))
	sb.WriteString("}")
	return sb.String()
}

// escapeClass backslash-escapes every ASCII byte outside [A-Za-z0-9_-] so a raw
// token can be used as a class selector. A leading digit uses the hex form.
func escapeClass(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw) + 8)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case i == 0 && c >= '0' && c <= '9':
			sb.WriteString(`\3`)
			sb.WriteByte(c)
			sb.WriteByte(' ')
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_', c >= 0x80:
			sb.WriteByte(c)
		default:
			sb.WriteByte('\\')
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// attributeSelector renders [name="value"] with quotes and backslashes escaped.
func attributeSelector(name, value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)
	return "[" + name + `="` + value + `"]`
}
