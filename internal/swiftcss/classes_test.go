package swiftcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTheme(t *testing.T) {
	tests := []struct {
		raw, theme, rest string
	}{
		{raw: "dark:flex", theme: "dark", rest: "flex"},
		{raw: "light:hover:fs-14", theme: "light", rest: "hover:fs-14"},
		{raw: "dark:", theme: "", rest: "dark:"},
		{raw: "hover:flex", theme: "", rest: "hover:flex"},
		{raw: "darker:flex", theme: "", rest: "darker:flex"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			theme, rest := SplitTheme(tt.raw)
			assert.Equal(t, tt.theme, theme)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestSynthesizeClasses(t *testing.T) {
	reg := NewBuiltinRegistry(nil)
	cr := SynthesizeClasses([]string{
		"cursor-pointer",
		"bg-[#000]",
		"hover:color-[#fff]",
		"before:content-[x]",
		"(has:.open):flex",
		"(.card):fs-14",
		"dark:fs-14",
		"light:hover:bg-[#fff]",
		"flex",
		"nope",
		"hover:nope",
	}, reg)

	assert.Equal(t, []string{
		".flex {\n  display: flex;\n}",
		".cursor-pointer {\n  cursor: pointer;\n}",
	}, cr.Base)

	assert.Equal(t, []Rule{
		{Selector: `.bg-\[\#000\]`, Declarations: []string{"background: #000;"}},
	}, cr.Dynamic.Rules())

	assert.Equal(t, []Rule{
		{Selector: `.hover\:color-\[\#fff\]:hover`, Declarations: []string{"color: #fff;"}},
		{Selector: `.before\:content-\[x\]::before`, Declarations: []string{"content: x;"}},
	}, cr.Pseudo.Rules())

	assert.Equal(t, []Rule{
		{Selector: `:has(.open).\(has\:\.open\)\:flex`, Declarations: []string{"display: flex;"}},
		{Selector: `.card .\(\.card\)\:fs-14`, Declarations: []string{"font-size: 14px;"}},
	}, cr.Combinators.Rules())

	assert.Equal(t, []Rule{
		{Selector: `dark.dark .dark\:fs-14, body.dark .dark\:fs-14`, Declarations: []string{"font-size: 14px;"}},
		{Selector: `light.light .light\:hover\:bg-\[\#fff\]:hover, body.light .light\:hover\:bg-\[\#fff\]:hover`, Declarations: []string{"background: #fff;"}},
	}, cr.Variants.Rules())
}

func TestResolveClass(t *testing.T) {
	reg := NewBuiltinRegistry(nil)
	assert.Equal(t, []string{"font-size: 14px;"}, ResolveClass("dark:fs-14", reg))
	assert.Equal(t, []string{"color: #fff;"}, ResolveClass("hover:color-[#fff]", reg))
	assert.Empty(t, ResolveClass("dark:nope", reg))
}
