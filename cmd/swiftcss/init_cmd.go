package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .swiftcss.yaml config file",
	Long:  `Create a .swiftcss.yaml configuration file in the current directory with the default settings.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# swiftcss configuration
# Environment variables override this file: SWIFTCSS_OUTPUT, SWIFTCSS_DIRECTORIES=a,b

# Extensions of the files scanned for class tokens
file-extensions:
  - html
  - js
  - jsx
  - ts
  - tsx

# Directories scanned recursively (hidden and .gitignored paths are skipped)
directories:
  - ./src

# CSS files copied verbatim to the top of the output
input: []

output: ./output.css

# Breakpoints for style-<name> attributes, in px
screens:
  sd:
    max: 600
  md:
    min: 600
    max: 1200
  ld:
    min: 1200

# Substituted into the base stylesheet; each also adds color-<name>, bg-<name>, ...
variables: {}
#  $primary: "#3b82f6"
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
