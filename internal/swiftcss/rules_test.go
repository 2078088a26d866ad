package swiftcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeClass(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "flex", want: "flex"},
		{raw: "bg-[#000]", want: `bg-\[\#000\]`},
		{raw: "hover:fs-14", want: `hover\:fs-14`},
		{raw: "bg-img-[url(a.png)]", want: `bg-img-\[url\(a\.png\)\]`},
		{raw: "(has:.x):flex", want: `\(has\:\.x\)\:flex`},
		{raw: "2xl", want: `\32 xl`},
		{raw: "w-1/2", want: `w-1\/2`},
		{raw: "ünï", want: "ünï"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeClass(tt.raw))
		})
	}
}

func TestAttributeSelector(t *testing.T) {
	assert.Equal(t, `[style-dark="flex"]`, attributeSelector("style-dark", "flex"))
	assert.Equal(t, `[style-sd="after:content-[\"x\"]"]`, attributeSelector("style-sd", `after:content-["x"]`))
	assert.Equal(t, `[style-sd="a\\b"]`, attributeSelector("style-sd", `a\b`))
}

func TestRuleSet(t *testing.T) {
	rs := NewRuleSet()
	rs.Add(".a", "color: red;", "margin: 0;")
	rs.Add(".b")
	rs.Add(".a", "color: red;", "padding: 0;")
	rs.Add(".c", "display: flex;")

	require.Equal(t, 2, rs.Len(), "adding no declarations must not create a rule")
	assert.Equal(t, []Rule{
		{Selector: ".a", Declarations: []string{"color: red;", "margin: 0;", "padding: 0;"}},
		{Selector: ".c", Declarations: []string{"display: flex;"}},
	}, rs.Rules())

	r, ok := rs.Rule(".c")
	require.True(t, ok)
	assert.Equal(t, []string{"display: flex;"}, r.Declarations)
	_, ok = rs.Rule(".b")
	assert.False(t, ok)

	assert.Equal(t, []string{
		".a {\n\tcolor: red;\n\tmargin: 0;\n\tpadding: 0;\n}",
		".c {\n\tdisplay: flex;\n}",
	}, rs.Fragments())
	assert.Equal(t, "\t.c {\n\t\tdisplay: flex;\n\t}\n", func() string {
		one := NewRuleSet()
		one.Add(".c", "display: flex;")
		return one.Render("\t")
	}())
}

func TestWrapBlock(t *testing.T) {
	assert.Empty(t, wrapBlock("@media all", NewRuleSet()))

	rs := NewRuleSet()
	rs.Add(".x", "color: #fff;")
	assert.Equal(t, "@media all {\n\t.x {\n\t\tcolor: #fff;\n\t}\n}", wrapBlock("@media all", rs))
}
