package swiftcss

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// DefinedClasses returns every class name used in a selector of a stylesheet.
// Declaration blocks are skipped, so values such as "0.5em" are never mistaken
// for classes.
func DefinedClasses(src string) map[string]struct{} {
	classes := make(map[string]struct{})
	lexer := css.NewLexer(parse.NewInputString(src))

	// blocks records, per open brace, whether it holds declarations.
	var blocks []bool
	atPrelude := false
	pendingDot := false

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}

		declaring := len(blocks) > 0 && blocks[len(blocks)-1]

		switch tt {
		case css.LeftBraceToken:
			blocks = append(blocks, !atPrelude)
			atPrelude = false
		case css.RightBraceToken:
			if len(blocks) > 0 {
				blocks = blocks[:len(blocks)-1]
			}
		case css.AtKeywordToken:
			if !declaring {
				atPrelude = nestingAtRule(string(text))
			}
		case css.SemicolonToken:
			atPrelude = false
		case css.DelimToken:
			pendingDot = !declaring && len(text) == 1 && text[0] == '.'
			continue
		case css.IdentToken:
			if pendingDot {
				classes[string(text)] = struct{}{}
			}
		}
		pendingDot = false
	}
	return classes
}

// nestingAtRule reports whether an at-rule's block contains rules rather than declarations.
func nestingAtRule(keyword string) bool {
	switch strings.ToLower(keyword) {
	case "@media", "@supports", "@layer", "@container", "@document", "@scope":
		return true
	}
	return false
}

// CheckFile reports every token in text that resolves to no declarations.
// Class tokens found in defined count as resolved.
func CheckFile(path, text string, names AttributeNames, reg *Registry, defined map[string]struct{}) []Issue {
	var issues []Issue
	lines := newLineIndex(text)

	for _, occ := range Extract(text, names) {
		for _, f := range fieldsWithOffsets(occ.Value) {
			tok := f.text
			var issue Issue
			if occ.IsClass() {
				if len(ResolveClass(tok, reg)) > 0 {
					continue
				}
				if _, rest := SplitTheme(tok); isDefined(defined, rest) {
					continue
				}
				issue = Issue{
					Text:     fmt.Sprintf(IssueUnresolvedClass, tok),
					Severity: SeverityWarning,
				}
			} else {
				if len(Classify(tok).Declarations(reg)) > 0 {
					continue
				}
				issue = Issue{
					Text:     fmt.Sprintf(IssueUnresolvedToken, tok, occ.Attribute),
					Severity: SeverityError,
				}
			}

			line, col := lines.position(occ.Offset + f.offset)
			issue.FromLinter = "swiftcss"
			issue.Attribute = occ.Attribute
			issue.Token = tok
			issue.Pos = IssuePos{Filename: path, Line: line, Column: col}
			issue.SourceLines = []string{lines.line(line)}
			issues = append(issues, issue)
		}
	}
	return issues
}

// SortIssues orders issues by file, line, then column.
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i].Pos, issues[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

func isDefined(defined map[string]struct{}, class string) bool {
	_, ok := defined[class]
	return ok
}

type field struct {
	text   string
	offset int
}

// fieldsWithOffsets splits s like strings.Fields and records each field's byte offset.
func fieldsWithOffsets(s string) []field {
	var out []field
	start := -1
	for i, r := range s {
		switch {
		case unicode.IsSpace(r) && start >= 0:
			out = append(out, field{text: s[start:i], offset: start})
			start = -1
		case !unicode.IsSpace(r) && start < 0:
			start = i
		}
	}
	if start >= 0 {
		out = append(out, field{text: s[start:], offset: start})
	}
	return out
}

// lineIndex maps byte offsets to 1-based line and column numbers.
type lineIndex struct {
	text   string
	starts []int
}

func newLineIndex(text string) lineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return lineIndex{text: text, starts: starts}
}

func (l lineIndex) position(offset int) (line, col int) {
	i := sort.Search(len(l.starts), func(i int) bool { return l.starts[i] > offset }) - 1
	return i + 1, offset - l.starts[i] + 1
}

func (l lineIndex) line(n int) string {
	start := l.starts[n-1]
	end := len(l.text)
	if n < len(l.starts) {
		end = l.starts[n] - 1
	}
	return strings.TrimSuffix(l.text[start:end], "\r")
}
