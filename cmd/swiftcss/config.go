package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/swiftcss"
)

const defaultConfigFile = ".swiftcss.yaml"

var (
	k = koanf.New(".")

	// loadedConfigFile is the config file that was read, if any. Watch mode
	// stops when it changes.
	loadedConfigFile string
)

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags that were explicitly set are loaded, so flag defaults never
	// shadow keys from the file or the environment.
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	loadedConfigFile = ""
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
		loadedConfigFile = configPath
	}

	// SWIFTCSS_OUTPUT -> output, SWIFTCSS_FILE_EXTENSIONS -> file-extensions
	if err := k.Load(env.Provider("SWIFTCSS_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "SWIFTCSS_")),
			"_", "-",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// screenSpec is a breakpoint as written in the config file.
type screenSpec struct {
	Min int `koanf:"min"`
	Max int `koanf:"max"`
}

// buildConfig constructs the library's Config from koanf state.
func buildConfig() (swiftcss.Config, error) {
	defaults := swiftcss.DefaultConfig()

	config := swiftcss.Config{
		FileExtensions: getStringsWithFallback("ext", "file-extensions", defaults.FileExtensions),
		Directories:    getStringsWithFallback("dir", "directories", defaults.Directories),
		Input:          getStringsWithFallback("input", "input", nil),
		Output:         getStringWithFallback("output", "output", defaults.Output),
		Screens:        defaults.Screens,
		ConfigFile:     loadedConfigFile,
	}

	if k.Exists("screens") {
		var specs map[string]screenSpec
		if err := k.Unmarshal("screens", &specs); err != nil {
			return config, fmt.Errorf("parsing screens: %w", err)
		}
		config.Screens = screensFromSpecs(specs)
	}

	if k.Exists("variables") {
		config.Variables = k.StringMap("variables")
	}

	return config, nil
}

// screensFromSpecs converts the config map into breakpoints sorted by name.
func screensFromSpecs(specs map[string]screenSpec) []swiftcss.Breakpoint {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	screens := make([]swiftcss.Breakpoint, 0, len(names))
	for _, name := range names {
		s := specs[name]
		screens = append(screens, swiftcss.Breakpoint{Name: name, Min: s.Min, Max: s.Max})
	}
	return screens
}

// newLogger builds the console logger from the verbose and quiet settings.
func newLogger(timestamps bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "swiftcss",
		ReportTimestamp: timestamps,
		TimeFormat:      "15:04:05",
	})
	switch {
	case getBoolWithFallback("quiet", "quiet", false):
		logger.SetLevel(log.ErrorLevel)
	case getBoolWithFallback("verbose", "verbose", false):
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback is getStringWithFallback for lists. Comma-separated
// strings, as set through environment variables, are split.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	for _, key := range []string{flagKey, configKey} {
		var out []string
		for _, item := range k.Strings(key) {
			out = append(out, splitList(item)...)
		}
		if len(out) == 0 {
			out = splitList(k.String(key))
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
