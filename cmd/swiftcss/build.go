package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/swiftcss"
	core "github.com/yacobolo/swiftcss/internal/swiftcss"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate an optimized, minified stylesheet",
	Long: `Scan the configured directories once, drop tokens that produce no CSS,
and write the minified stylesheet to the output file.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, _ []string) error {
	c, err := newCompiler(false)
	if err != nil {
		return err
	}

	result, err := c.Run(cmd.Context(), swiftcss.ModeBuild)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		reporter := core.NewReporter(cmd.OutOrStdout(), core.ReporterConfig{
			UseColors: getBoolWithFallback("color", "color", false),
		})
		reporter.PrintStats(*result)
	}
	return nil
}

// newCompiler builds a Compiler from the loaded configuration.
func newCompiler(timestamps bool) (*swiftcss.Compiler, error) {
	config, err := buildConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(timestamps)
	if loadedConfigFile != "" {
		logger.Debug("using config file", "path", loadedConfigFile)
	}
	c, err := swiftcss.New(config, swiftcss.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return c, nil
}
