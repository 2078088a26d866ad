package swiftcss

import "time"

// RuleCounts tracks how many rules each section of the stylesheet contributed.
type RuleCounts struct {
	Input    int `json:"input"`
	Base     int `json:"base"`
	Dynamic  int `json:"dynamic"`
	Pseudo   int `json:"pseudo"`
	Theme    int `json:"theme"`
	Media    int `json:"media"`
	Variants int `json:"variants"`
	// Duplicates counts fragments dropped by the final exact-text pass.
	Duplicates int `json:"duplicates"`
}

// Total returns the number of emitted fragments.
func (c RuleCounts) Total() int {
	return c.Input + c.Base + c.Dynamic + c.Pseudo + c.Theme + c.Media + c.Variants
}

// Stats summarizes one pipeline run.
type Stats struct {
	Output       string
	FilesScanned int
	ClassTokens  int
	Rules        RuleCounts
	Optimized    *OptimizeStats // nil unless the run optimized
	Minified     bool
	Bytes        int
	Duration     time.Duration
	Warnings     []string
}

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue messages.
const (
	IssueUnresolvedClass = "class token %q does not resolve to any declaration"
	IssueUnresolvedToken = "token %q in %s does not resolve to any declaration"
)

// Issue is one unresolved token reported by a check, in golangci-lint shape.
type Issue struct {
	FromLinter  string   `json:"FromLinter"` // "swiftcss"
	Text        string   `json:"Text"`
	Severity    string   `json:"Severity"`
	Attribute   string   `json:"Attribute"` // "className", "style-dark"
	Token       string   `json:"Token"`
	SourceLines []string `json:"SourceLines"`
	Pos         IssuePos `json:"Pos"`
}

// IssuePos is the 1-based location of the first byte of a token.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"`
}

// CheckResult is the outcome of scanning a project for unresolved tokens.
type CheckResult struct {
	Issues       []Issue
	FilesScanned int
	TokensFound  int
	Warnings     []string
}
