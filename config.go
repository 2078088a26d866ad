package swiftcss

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	core "github.com/yacobolo/swiftcss/internal/swiftcss"
)

// Breakpoint is a named viewport range used by style-<name> attributes.
type Breakpoint = core.Breakpoint

// Mode selects how a run treats its output.
type Mode int

const (
	// ModeBuild optimizes and minifies the output.
	ModeBuild Mode = iota
	// ModeWatch writes readable output and reruns on matching file changes.
	ModeWatch
	// ModeDev writes readable output and reruns on any change in the scanned directories.
	ModeDev
)

func (m Mode) String() string {
	switch m {
	case ModeWatch:
		return "watch"
	case ModeDev:
		return "dev"
	default:
		return "build"
	}
}

// ErrConfigChanged is returned by Watch when the configuration file changes.
var ErrConfigChanged = errors.New("configuration file changed")

// Config holds everything a run needs.
type Config struct {
	FileExtensions []string          // scanned extensions without the dot: "html", "tsx"
	Directories    []string          // roots to scan recursively
	Input          []string          // user CSS files copied to the top of the output
	Output         string            // destination CSS file
	Screens        []Breakpoint      // breakpoints for style-<name> attributes
	Variables      map[string]string // "$name" -> value
	ConfigFile     string            // watched for changes when set
}

// DefaultScreens returns the built-in breakpoints: sd, md and ld.
func DefaultScreens() []Breakpoint {
	return []Breakpoint{
		{Name: "sd", Max: 600},
		{Name: "md", Min: 600, Max: 1200},
		{Name: "ld", Min: 1200},
	}
}

// DefaultConfig returns the configuration used when no file or flags are given.
func DefaultConfig() Config {
	return Config{
		FileExtensions: []string{"html", "js", "jsx", "ts", "tsx"},
		Directories:    []string{"./src"},
		Output:         "./output.css",
		Screens:        DefaultScreens(),
	}
}

// ConfigError describes an invalid configuration value.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}

var breakpointName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// reservedBreakpoints collide with the theme attributes.
var reservedBreakpoints = map[string]bool{"dark": true, "light": true}

// Validate checks the configuration against the file system.
func (c Config) Validate() error {
	if len(c.FileExtensions) == 0 {
		return &ConfigError{Field: "file-extensions", Reason: "at least one extension is required"}
	}
	for _, ext := range c.FileExtensions {
		if strings.TrimPrefix(strings.TrimSpace(ext), ".") == "" {
			return &ConfigError{Field: "file-extensions", Reason: "empty extension"}
		}
	}

	if len(c.Directories) == 0 {
		return &ConfigError{Field: "directories", Reason: "at least one directory is required"}
	}
	for _, dir := range c.Directories {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return &ConfigError{Field: "directories", Reason: fmt.Sprintf("directory %q does not exist", dir)}
		}
	}

	if strings.TrimSpace(c.Output) == "" {
		return &ConfigError{Field: "output", Reason: "output path is empty"}
	}
	outDir := filepath.Dir(c.Output)
	if info, err := os.Stat(outDir); err != nil || !info.IsDir() {
		return &ConfigError{Field: "output", Reason: fmt.Sprintf("output directory %q does not exist", outDir)}
	}

	for _, in := range c.Input {
		info, err := os.Stat(in)
		if err != nil || info.IsDir() {
			return &ConfigError{Field: "input", Reason: fmt.Sprintf("input file %q does not exist", in)}
		}
	}

	seen := make(map[string]bool, len(c.Screens))
	for _, bp := range c.Screens {
		if err := validateBreakpoint(bp); err != nil {
			return err
		}
		if seen[bp.Name] {
			return &ConfigError{Field: "screens", Reason: fmt.Sprintf("breakpoint %q is defined twice", bp.Name)}
		}
		seen[bp.Name] = true
	}

	return nil
}

func validateBreakpoint(bp Breakpoint) error {
	field := "screens." + bp.Name
	switch {
	case !breakpointName.MatchString(bp.Name):
		return &ConfigError{Field: "screens", Reason: fmt.Sprintf("invalid breakpoint name %q", bp.Name)}
	case reservedBreakpoints[bp.Name]:
		return &ConfigError{Field: field, Reason: "name is reserved for themes"}
	case bp.Min < 0 || bp.Max < 0:
		return &ConfigError{Field: field, Reason: "widths must not be negative"}
	case bp.Min == 0 && bp.Max == 0:
		return &ConfigError{Field: field, Reason: "min or max is required"}
	case bp.Max > 0 && bp.Min >= bp.Max:
		return &ConfigError{Field: field, Reason: fmt.Sprintf("min %d must be below max %d", bp.Min, bp.Max)}
	}
	return nil
}

// extensions returns the configured extensions without dots, deduplicated.
func (c Config) extensions() []string {
	seen := make(map[string]bool, len(c.FileExtensions))
	out := make([]string, 0, len(c.FileExtensions))
	for _, ext := range c.FileExtensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" || seen[ext] {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}
	return out
}
