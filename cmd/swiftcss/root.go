package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "swiftcss",
	Short: "Utility-class CSS generator",
	Long: `Scan markup and script files for utility class tokens and generate one stylesheet.
Supports dark/light themes (style-dark, style-light), breakpoints (style-<name>),
pseudo variants (hover:color-[#fff]) and inline values (bg-[#000]).`,
	// Default behavior: run build when no subcommand is given.
	// loadConfig is called here because PreRunE of buildCmd is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runBuild(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.Bool("quiet", false, "Only log errors")
	pf.Bool("color", false, "Force color output")
	pf.String("config", defaultConfigFile, "Config file path")
	pf.StringSlice("dir", nil, "Directories to scan (repeatable)")
	pf.StringSlice("ext", nil, "File extensions to scan (repeatable)")
	pf.StringSlice("input", nil, "CSS files copied to the top of the output")
	pf.StringP("output", "o", "", "Output CSS file")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(devCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
