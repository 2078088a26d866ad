package swiftcss

import "strings"

// themeScopes maps a theme attribute to the selector list that activates it.
var themeScopes = map[string]string{
	AttrStyleDark:  "dark.dark, body.dark",
	AttrStyleLight: "light.light, body.light",
}

// ThemeScope returns the scope selector for "dark" or "light".
func ThemeScope(theme string) string {
	return themeScopes["style-"+theme]
}

// ThemeCSS renders the dark block followed by the light block. Themes with no
// resolvable tokens are omitted.
func ThemeCSS(scan *ScanContext, reg *Registry) []string {
	var out []string
	for _, attr := range ThemeAttributes {
		rs := SynthesizeGroup(scan.Group(attr), reg)
		if block := wrapBlock(themeScopes[attr], rs); block != "" {
			out = append(out, block)
		}
	}
	return out
}

// themeVariantSelector prefixes sel with every selector of a theme scope:
// "dark.dark .x, body.dark .x".
func themeVariantSelector(theme, sel string) string {
	scopes := strings.Split(ThemeScope(theme), ", ")
	for i, s := range scopes {
		scopes[i] = s + " " + sel
	}
	return strings.Join(scopes, ", ")
}
