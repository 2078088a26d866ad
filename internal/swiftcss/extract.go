package swiftcss

import (
	"regexp"
	"sort"
	"strings"
)

// Recognized attribute names.
const (
	AttrClass      = "class"
	AttrClassName  = "className"
	AttrStyleDark  = "style-dark"
	AttrStyleLight = "style-light"
)

// ThemeAttributes lists the theme attributes in emission order.
var ThemeAttributes = []string{AttrStyleDark, AttrStyleLight}

// MediaAttribute returns the attribute name for a breakpoint: "sd" -> "style-sd".
func MediaAttribute(breakpoint string) string {
	return "style-" + breakpoint
}

// AttributeNames is the set of attribute names a scan recognizes.
type AttributeNames struct {
	media   []string
	pattern *regexp.Regexp
}

// NewAttributeNames builds the recognizer for class, theme and breakpoint attributes.
func NewAttributeNames(breakpoints []string) AttributeNames {
	names := []string{AttrClassName, AttrClass, AttrStyleDark, AttrStyleLight}

	bps := append([]string(nil), breakpoints...)
	sort.Strings(bps)
	media := make([]string, 0, len(bps))
	for _, bp := range bps {
		media = append(media, MediaAttribute(bp))
	}
	names = append(names, media...)

	// Longer names first so "className" wins over "class".
	sort.SliceStable(names, func(i, j int) bool {
		return len(names[i]) > len(names[j])
	})

	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}

	expr := `(?:^|[^\w-])(` + strings.Join(quoted, "|") + `)\s*=\s*(?:"([^"]*)"|'([^']*)'|` + "`([^`]*)`" + `)`
	return AttributeNames{media: media, pattern: regexp.MustCompile(expr)}
}

// Media returns the breakpoint attribute names, sorted.
func (a AttributeNames) Media() []string {
	return a.media
}

// Occurrence is one attribute found in a file.
type Occurrence struct {
	Attribute string // as written: "className", "style-dark"
	Value     string // literal quoted value
	Offset    int    // byte offset of the value within the file
}

// IsClass reports whether the occurrence is a class or className attribute.
func (o Occurrence) IsClass() bool {
	return o.Attribute == AttrClass || o.Attribute == AttrClassName
}

// Extract returns every recognized attribute occurrence in text, in file order.
// Empty values are skipped.
func Extract(text string, names AttributeNames) []Occurrence {
	if names.pattern == nil {
		return nil
	}

	var out []Occurrence
	for _, m := range names.pattern.FindAllStringSubmatchIndex(text, -1) {
		attr := text[m[2]:m[3]]
		for g := 4; g+1 < len(m); g += 2 {
			if m[g] < 0 {
				continue
			}
			value := text[m[g]:m[g+1]]
			if strings.TrimSpace(value) != "" {
				out = append(out, Occurrence{Attribute: attr, Value: value, Offset: m[g]})
			}
			break
		}
	}
	return out
}

// AttributeEntry is one distinct raw value of an attribute and its tokens.
type AttributeEntry struct {
	Raw    string
	Tokens []string
}

// AttributeGroup holds the distinct values seen for one attribute name.
type AttributeGroup struct {
	Name    string
	entries []*AttributeEntry
	index   map[string]int
}

// NewAttributeGroup creates an empty group.
func NewAttributeGroup(name string) *AttributeGroup {
	return &AttributeGroup{Name: name, index: make(map[string]int)}
}

// Add records a raw value; duplicates collapse by equality.
func (g *AttributeGroup) Add(raw string) {
	if _, seen := g.index[raw]; seen {
		return
	}
	g.index[raw] = len(g.entries)
	g.entries = append(g.entries, &AttributeEntry{Raw: raw, Tokens: strings.Fields(raw)})
}

// Entries returns the group's entries in first-seen order.
func (g *AttributeGroup) Entries() []*AttributeEntry {
	return g.entries
}

// Len returns the number of distinct values.
func (g *AttributeGroup) Len() int {
	return len(g.entries)
}

// retain keeps only entries for which keep returns true.
func (g *AttributeGroup) retain(keep func(*AttributeEntry) bool) {
	kept := g.entries[:0]
	g.index = make(map[string]int, len(g.entries))
	for _, e := range g.entries {
		if keep(e) {
			g.index[e.Raw] = len(kept)
			kept = append(kept, e)
		}
	}
	g.entries = kept
}

// ScanContext accumulates everything extracted during one run.
type ScanContext struct {
	names   AttributeNames
	classes *orderedSet
	groups  map[string]*AttributeGroup
}

// NewScanContext creates an empty context for the given breakpoints.
func NewScanContext(breakpoints []string) *ScanContext {
	names := NewAttributeNames(breakpoints)
	s := &ScanContext{
		names:   names,
		classes: newOrderedSet(),
		groups:  make(map[string]*AttributeGroup),
	}
	for _, attr := range ThemeAttributes {
		s.groups[attr] = NewAttributeGroup(attr)
	}
	for _, attr := range names.Media() {
		s.groups[attr] = NewAttributeGroup(attr)
	}
	return s
}

// Names returns the attribute recognizer used by the context.
func (s *ScanContext) Names() AttributeNames {
	return s.names
}

// AddFile extracts and accumulates the attributes of one file.
func (s *ScanContext) AddFile(text string) {
	for _, occ := range Extract(text, s.names) {
		s.AddOccurrence(occ)
	}
}

// AddOccurrence accumulates a single extracted attribute.
func (s *ScanContext) AddOccurrence(occ Occurrence) {
	if occ.IsClass() {
		for _, tok := range strings.Fields(occ.Value) {
			s.classes.add(tok)
		}
		return
	}
	if g, ok := s.groups[occ.Attribute]; ok {
		g.Add(occ.Value)
	}
}

// Classes returns the class-attribute tokens in first-seen order.
func (s *ScanContext) Classes() []string {
	return s.classes.items()
}

// Group returns the group for an attribute name, or nil if it is not recognized.
func (s *ScanContext) Group(name string) *AttributeGroup {
	return s.groups[name]
}

// Groups returns the theme groups (dark, light) followed by the media groups in name order.
func (s *ScanContext) Groups() []*AttributeGroup {
	out := make([]*AttributeGroup, 0, len(s.groups))
	for _, attr := range ThemeAttributes {
		out = append(out, s.groups[attr])
	}
	for _, attr := range s.names.Media() {
		out = append(out, s.groups[attr])
	}
	return out
}

// orderedSet is an insertion-ordered set of strings.
type orderedSet struct {
	order []string
	seen  map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (o *orderedSet) add(s string) bool {
	if _, ok := o.seen[s]; ok {
		return false
	}
	o.seen[s] = struct{}{}
	o.order = append(o.order, s)
	return true
}

func (o *orderedSet) has(s string) bool {
	_, ok := o.seen[s]
	return ok
}

func (o *orderedSet) items() []string {
	return o.order
}

func (o *orderedSet) len() int {
	return len(o.order)
}

func (o *orderedSet) retain(keep func(string) bool) {
	kept := o.order[:0]
	o.seen = make(map[string]struct{}, len(o.order))
	for _, s := range o.order {
		if keep(s) {
			o.seen[s] = struct{}{}
			kept = append(kept, s)
		}
	}
	o.order = kept
}
