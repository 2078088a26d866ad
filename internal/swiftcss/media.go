package swiftcss

import (
	"fmt"
	"sort"
	"strings"
)

// Breakpoint is a named viewport range in pixels. Zero means unbounded.
type Breakpoint struct {
	Name string
	Min  int
	Max  int
}

// Query renders the media condition, e.g. "(min-width: 600px) and (max-width: 1200px)".
func (b Breakpoint) Query() string {
	var parts []string
	if b.Min > 0 {
		parts = append(parts, fmt.Sprintf("(min-width: %dpx)", b.Min))
	}
	if b.Max > 0 {
		parts = append(parts, fmt.Sprintf("(max-width: %dpx)", b.Max))
	}
	if len(parts) == 0 {
		return "all"
	}
	return strings.Join(parts, " and ")
}

// SortBreakpoints orders breakpoints by ascending min width, then name.
func SortBreakpoints(bps []Breakpoint) []Breakpoint {
	out := append([]Breakpoint(nil), bps...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Min != out[j].Min {
			return out[i].Min < out[j].Min
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// BreakpointNames returns the names of bps.
func BreakpointNames(bps []Breakpoint) []string {
	names := make([]string, len(bps))
	for i, b := range bps {
		names[i] = b.Name
	}
	return names
}

// MediaCSS renders one @media block per breakpoint that has resolvable tokens.
func MediaCSS(scan *ScanContext, reg *Registry, bps []Breakpoint) []string {
	var out []string
	for _, bp := range SortBreakpoints(bps) {
		rs := SynthesizeGroup(scan.Group(MediaAttribute(bp.Name)), reg)
		if block := wrapBlock("@media "+bp.Query(), rs); block != "" {
			out = append(out, block)
		}
	}
	return out
}
