package swiftcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	reg := NewBuiltinRegistry(nil)
	bps := []Breakpoint{{Name: "sd", Max: 600}}

	scan := NewScanContext(BreakpointNames(bps))
	scan.AddFile(`<div class="flex bg-[#000] hover:fs-14" style-dark="fs-14" style-sd="flex">`)
	scan.AddFile(`<a class="bg-[#000] dark:flex">`)

	inputs := []Input{
		{Path: "base.css", CSS: "body { margin: 0; }\n\n"},
		{Path: "base.css", CSS: "body { margin: 0; }\n\n"},
	}

	got, counts := Assemble(inputs, scan, reg, bps)

	want := "body { margin: 0; }\n" +
		"/* inserted from input file base.css */\n" +
		".flex {\n  display: flex;\n}\n" +
		".bg-\\[\\#000\\] {\n\tbackground: #000;\n}\n" +
		".hover\\:fs-14:hover {\n\tfont-size: 14px;\n}\n" +
		"dark.dark, body.dark {\n\t[style-dark=\"fs-14\"] {\n\t\tfont-size: 14px;\n\t}\n}\n" +
		"@media (max-width: 600px) {\n\t[style-sd=\"flex\"] {\n\t\tdisplay: flex;\n\t}\n}\n" +
		"dark.dark .dark\\:flex, body.dark .dark\\:flex {\n\tdisplay: flex;\n}\n"
	assert.Equal(t, want, got)

	assert.Equal(t, RuleCounts{
		Input:      1,
		Base:       1,
		Dynamic:    1,
		Pseudo:     1,
		Theme:      1,
		Media:      1,
		Variants:   1,
		Duplicates: 1,
	}, counts)
	assert.Equal(t, 7, counts.Total())
}

func TestAssembleEmpty(t *testing.T) {
	got, counts := Assemble(nil, NewScanContext(nil), NewBuiltinRegistry(nil), nil)
	assert.Empty(t, got)
	assert.Zero(t, counts.Total())
}

func TestAssembleIsDeterministic(t *testing.T) {
	reg := NewBuiltinRegistry(nil)
	files := []string{
		`<div class="flex hover:color-[#fff] (has:img):fs-14" style-light="cursor-pointer">`,
		`<span className="flex block" style-dark="before:content-[x]">`,
	}

	run := func() string {
		scan := NewScanContext(nil)
		for _, f := range files {
			scan.AddFile(f)
		}
		out, _ := Assemble(nil, scan, reg, nil)
		return out
	}

	first := run()
	require.NotEmpty(t, first)
	assert.Equal(t, first, run())
}

func TestOptimize(t *testing.T) {
	reg := NewBuiltinRegistry(nil)
	bps := []Breakpoint{{Name: "sd", Max: 600}}
	text := `<div class="flex nope dark:nope bg-[#000]" style-dark="fs-14 fs-14 nope" style-light="nope" style-sd="flex">`

	plain := NewScanContext(BreakpointNames(bps))
	plain.AddFile(text)
	optimized := NewScanContext(BreakpointNames(bps))
	optimized.AddFile(text)

	stats := Optimize(optimized, reg)
	assert.Equal(t, OptimizeStats{
		DuplicateTokens:   1,
		UnresolvedTokens:  2,
		EmptyEntries:      1,
		UnresolvedClasses: 2,
	}, stats)
	assert.Equal(t, 6, stats.Removed())

	assert.Equal(t, []string{"flex", "bg-[#000]"}, optimized.Classes())
	assert.Equal(t, 0, optimized.Group(AttrStyleLight).Len())
	dark := optimized.Group(AttrStyleDark).Entries()
	require.Len(t, dark, 1)
	assert.Equal(t, "fs-14 fs-14 nope", dark[0].Raw)
	assert.Equal(t, []string{"fs-14"}, dark[0].Tokens)

	// Pruning never changes the generated CSS.
	want, _ := Assemble(nil, plain, reg, bps)
	got, _ := Assemble(nil, optimized, reg, bps)
	assert.Equal(t, want, got)
}
