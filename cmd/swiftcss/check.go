package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	core "github.com/yacobolo/swiftcss/internal/swiftcss"
)

// errIssuesFound makes the process exit 1 without printing an extra error.
var errIssuesFound = errors.New("issues found")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report tokens that produce no CSS",
	Long: `Scan the configured directories and report, with file, line and column,
every class or attribute token that resolves to no declarations. Classes
defined in the input CSS files are treated as resolved.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.Bool("strict", false, "Exit 1 when any issue is found (CI mode)")
	f.String("output-format", "", "Output format: issues|json")
	f.Bool("print-lines", true, "Show source lines with issues")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	c, err := newCompiler(false)
	if err != nil {
		return err
	}

	result, err := c.Check(cmd.Context())
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	format := strings.ToLower(getStringWithFallback("output-format", "check.output-format", "issues"))
	w := cmd.OutOrStdout()

	switch {
	case quiet:
	case format == "json":
		if err := core.WriteJSON(w, *result, version); err != nil {
			return fmt.Errorf("writing json: %w", err)
		}
	case format == "issues":
		reporter := core.NewReporter(w, core.ReporterConfig{
			UseColors:  getBoolWithFallback("color", "color", false),
			PrintLines: getBoolWithFallback("print-lines", "check.print-lines", true),
		})
		reporter.PrintIssues(result.Issues)
		reporter.PrintCheckSummary(*result)
	default:
		return fmt.Errorf("unknown output format %q (want issues or json)", format)
	}

	if getBoolWithFallback("strict", "check.strict", false) && len(result.Issues) > 0 {
		return errIssuesFound
	}
	return nil
}
