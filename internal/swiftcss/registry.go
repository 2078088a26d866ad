package swiftcss

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// builtinStylesheet is the static utility stylesheet shipped with swiftcss.
//
//go:embed style.css
var builtinStylesheet string

// BuiltinStylesheet returns the embedded utility stylesheet.
func BuiltinStylesheet() string {
	return builtinStylesheet
}

// classBlockPattern matches the first `.className {` of a `}`-delimited block.
var classBlockPattern = regexp.MustCompile(`\.([a-zA-Z0-9_-]+)\s*\{`)

// variablePrefixes are the utility prefixes generated for every configured variable.
var variablePrefixes = []string{"color", "bg", "brd-color", "fill", "stroke", "outline-color"}

// Block is one class rule of the base stylesheet.
type Block struct {
	Name         string   // "cursor-pointer"
	Text         string   // ".cursor-pointer {\n  cursor: pointer;\n}"
	Declarations []string // ["cursor: pointer;"]
}

// Registry maps plain utility class names to their declaration lines.
// It is built once and never mutated afterwards.
type Registry struct {
	blocks []Block
	index  map[string]int
}

// NewRegistry parses a stylesheet into a Registry. Variables ("$name" -> value)
// are substituted into the stylesheet and also produce color utilities such as
// color-name and bg-name.
func NewRegistry(stylesheet string, variables map[string]string) *Registry {
	vars := normalizeVariables(variables)
	stylesheet = substituteVariables(stylesheet, vars)

	r := &Registry{index: make(map[string]int)}
	r.parse(stylesheet)

	for _, name := range sortedKeys(vars) {
		short := strings.TrimPrefix(name, "$")
		for _, prefix := range variablePrefixes {
			className := prefix + "-" + short
			if _, exists := r.index[className]; exists {
				continue
			}
			property := dynamicProperties[prefix]
			decl := fmt.Sprintf("%s: %s;", property, vars[name])
			r.add(Block{
				Name:         className,
				Text:         fmt.Sprintf(".%s {\n  %s\n}", className, decl),
				Declarations: []string{decl},
			})
		}
	}

	return r
}

// NewBuiltinRegistry builds a Registry from the embedded stylesheet.
func NewBuiltinRegistry(variables map[string]string) *Registry {
	return NewRegistry(builtinStylesheet, variables)
}

// parse splits the stylesheet on "}" and records every block that opens with a class selector.
func (r *Registry) parse(stylesheet string) {
	for _, chunk := range strings.Split(stylesheet, "}") {
		chunk = strings.TrimSpace(chunk)
		loc := classBlockPattern.FindStringSubmatchIndex(chunk)
		if loc == nil {
			continue
		}

		name := chunk[loc[2]:loc[3]]
		body := chunk[loc[1]:]

		var decls []string
		for _, line := range strings.Split(body, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				decls = append(decls, line)
			}
		}

		r.add(Block{
			Name:         name,
			Text:         chunk[loc[0]:] + "\n}",
			Declarations: decls,
		})
	}
}

// add registers a block; a later definition of the same class replaces the earlier one in place.
func (r *Registry) add(b Block) {
	if i, exists := r.index[b.Name]; exists {
		r.blocks[i] = b
		return
	}
	r.index[b.Name] = len(r.blocks)
	r.blocks = append(r.blocks, b)
}

// Lookup returns a copy of the declarations of a plain class name.
func (r *Registry) Lookup(name string) ([]string, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), r.blocks[i].Declarations...), true
}

// Has reports whether the class exists in the registry.
func (r *Registry) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Len returns the number of classes known to the registry.
func (r *Registry) Len() int {
	return len(r.blocks)
}

// Filter returns the text of every block whose class is in used, in stylesheet order.
func (r *Registry) Filter(used func(string) bool) []string {
	var out []string
	for _, b := range r.blocks {
		if used(b.Name) {
			out = append(out, b.Text)
		}
	}
	return out
}

// normalizeVariables makes sure every variable name carries its "$" sigil.
func normalizeVariables(variables map[string]string) map[string]string {
	vars := make(map[string]string, len(variables))
	for name, value := range variables {
		name = strings.TrimSpace(name)
		if name == "" || name == "$" {
			continue
		}
		if !strings.HasPrefix(name, "$") {
			name = "$" + name
		}
		vars[name] = value
	}
	return vars
}

// substituteVariables replaces "$name" references, longest names first so that
// "$green" never clobbers "$greenish".
func substituteVariables(stylesheet string, vars map[string]string) string {
	if len(vars) == 0 {
		return stylesheet
	}

	names := sortedKeys(vars)
	sort.SliceStable(names, func(i, j int) bool {
		return len(names[i]) > len(names[j])
	})

	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, name, vars[name])
	}
	return strings.NewReplacer(pairs...).Replace(stylesheet)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
