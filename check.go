package swiftcss

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	core "github.com/yacobolo/swiftcss/internal/swiftcss"
)

// CheckResult lists the tokens that resolve to no declarations.
type CheckResult = core.CheckResult

// Issue is one unresolved token.
type Issue = core.Issue

// Check scans the project like Run but writes nothing. Every token that
// produces no CSS is reported with its position. Classes defined by the
// configured input files count as resolved.
func (c *Compiler) Check(ctx context.Context) (*CheckResult, error) {
	inputs, err := c.readInputs()
	if err != nil {
		return nil, err
	}
	defined := make(map[string]struct{})
	for _, in := range inputs {
		for name := range core.DefinedClasses(in.CSS) {
			defined[name] = struct{}{}
		}
	}

	paths, err := c.discovery.files(c.cfg.Directories, c.cfg.extensions())
	if err != nil {
		return nil, fmt.Errorf("discover files: %w", err)
	}

	names := core.NewAttributeNames(core.BreakpointNames(c.cfg.Screens))
	result := &CheckResult{}
	var warnings error
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := c.readFile(path)
		if err != nil {
			warnings = multierr.Append(warnings, fmt.Errorf("read %s: %w", path, err))
			continue
		}
		result.FilesScanned++
		text := string(data)
		for _, occ := range core.Extract(text, names) {
			result.TokensFound += len(core.Tokenize(occ.Value))
		}
		result.Issues = append(result.Issues, core.CheckFile(path, text, names, c.reg, defined)...)
	}

	core.SortIssues(result.Issues)
	for _, w := range multierr.Errors(warnings) {
		result.Warnings = append(result.Warnings, w.Error())
	}
	c.logger.Debug("check complete", "files", result.FilesScanned, "issues", len(result.Issues))
	return result, nil
}
