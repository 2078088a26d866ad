package swiftcss

import (
	"fmt"
	"strings"
)

// Input is a user stylesheet copied verbatim to the top of the output.
type Input struct {
	Path string
	CSS  string
}

// Assemble concatenates every section of the stylesheet in its fixed order:
// input CSS, base classes, dynamic rules, pseudo and combinator rules, theme
// blocks, media blocks and theme variants. Fragments with identical text are
// emitted once.
func Assemble(inputs []Input, scan *ScanContext, reg *Registry, bps []Breakpoint) (string, RuleCounts) {
	var counts RuleCounts
	a := newAssembler()

	for _, in := range inputs {
		css := strings.TrimRight(in.CSS, "\n")
		counts.Input += a.add(fmt.Sprintf("%s\n/* inserted from input file %s */", css, in.Path))
	}

	cr := SynthesizeClasses(scan.Classes(), reg)
	for _, text := range cr.Base {
		counts.Base += a.add(text)
	}
	for _, text := range cr.Dynamic.Fragments() {
		counts.Dynamic += a.add(text)
	}
	for _, text := range cr.Pseudo.Fragments() {
		counts.Pseudo += a.add(text)
	}
	for _, text := range cr.Combinators.Fragments() {
		counts.Pseudo += a.add(text)
	}
	for _, text := range ThemeCSS(scan, reg) {
		counts.Theme += a.add(text)
	}
	for _, text := range MediaCSS(scan, reg, bps) {
		counts.Media += a.add(text)
	}
	for _, text := range cr.Variants.Fragments() {
		counts.Variants += a.add(text)
	}

	counts.Duplicates = a.dropped
	return a.String(), counts
}

// assembler collects fragments and drops exact duplicates.
type assembler struct {
	fragments *orderedSet
	dropped   int
}

func newAssembler() *assembler {
	return &assembler{fragments: newOrderedSet()}
}

// add returns 1 when the fragment is new and 0 when it was a duplicate.
func (a *assembler) add(fragment string) int {
	if a.fragments.add(fragment) {
		return 1
	}
	a.dropped++
	return 0
}

func (a *assembler) String() string {
	if a.fragments.len() == 0 {
		return ""
	}
	return strings.Join(a.fragments.items(), "\n") + "\n"
}
