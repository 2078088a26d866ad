package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/swiftcss"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
	loadedConfigFile = ""
}

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".swiftcss.yaml")
	configContent := `
file-extensions: [html, vue]
directories:
  - web
  - templates
input:
  - base.css
output: dist/app.css
screens:
  tablet:
    min: 700
    max: 1000
  phone:
    max: 700
variables:
  $brand: "#ff0000"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	config, err := buildConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"html", "vue"}, config.FileExtensions)
	assert.Equal(t, []string{"web", "templates"}, config.Directories)
	assert.Equal(t, []string{"base.css"}, config.Input)
	assert.Equal(t, "dist/app.css", config.Output)
	assert.Equal(t, []swiftcss.Breakpoint{
		{Name: "phone", Max: 700},
		{Name: "tablet", Min: 700, Max: 1000},
	}, config.Screens)
	assert.Equal(t, map[string]string{"$brand": "#ff0000"}, config.Variables)
	assert.Equal(t, configPath, config.ConfigFile)
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	require.NoError(t, loadConfigFromPath("/nonexistent/.swiftcss.yaml"))

	config, err := buildConfig()
	require.NoError(t, err)
	defaults := swiftcss.DefaultConfig()
	assert.Equal(t, defaults.FileExtensions, config.FileExtensions)
	assert.Equal(t, []string{"./src"}, config.Directories)
	assert.Empty(t, config.Input)
	assert.Equal(t, "./output.css", config.Output)
	assert.Equal(t, swiftcss.DefaultScreens(), config.Screens)
	assert.Empty(t, config.ConfigFile)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".swiftcss.yaml")
	configContent := `
output: from-file.css
directories: [from-file]
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	t.Setenv("SWIFTCSS_OUTPUT", "from-env.css")
	t.Setenv("SWIFTCSS_DIRECTORIES", "a, b")
	t.Setenv("SWIFTCSS_FILE_EXTENSIONS", "svelte")

	require.NoError(t, loadConfigFromPath(configPath))

	config, err := buildConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-env.css", config.Output)
	assert.Equal(t, []string{"a", "b"}, config.Directories)
	assert.Equal(t, []string{"svelte"}, config.FileExtensions)
}

func TestFlagsOverrideEnvAndFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".swiftcss.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output: from-file.css\ndirectories: [from-file]\n"), 0o644))
	t.Setenv("SWIFTCSS_OUTPUT", "from-env.css")

	cmd := &cobra.Command{Use: "test"}
	f := cmd.Flags()
	f.String("config", defaultConfigFile, "")
	f.StringP("output", "o", "", "")
	f.StringSlice("dir", nil, "")
	f.StringSlice("ext", nil, "")
	require.NoError(t, f.Parse([]string{"--config", configPath, "-o", "from-flag.css", "--ext", "html,svelte"}))

	require.NoError(t, loadConfig(cmd))

	config, err := buildConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-flag.css", config.Output)
	assert.Equal(t, []string{"html", "svelte"}, config.FileExtensions)
	// Unset flags do not shadow the file.
	assert.Equal(t, []string{"from-file"}, config.Directories)
}

func TestScreensFromSpecs(t *testing.T) {
	got := screensFromSpecs(map[string]screenSpec{
		"ld": {Min: 1200},
		"md": {Min: 600, Max: 1200},
		"sd": {Max: 600},
	})
	assert.Equal(t, []swiftcss.Breakpoint{
		{Name: "ld", Min: 1200},
		{Name: "md", Min: 600, Max: 1200},
		{Name: "sd", Max: 600},
	}, got)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	resetKoanf()
	chdir(t, t.TempDir())

	rootCmd.SetArgs([]string{"init"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(".swiftcss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "file-extensions:")
	assert.Contains(t, string(data), "screens:")

	// The written file round-trips to the defaults.
	resetKoanf()
	require.NoError(t, loadConfigFromPath(".swiftcss.yaml"))
	config, err := buildConfig()
	require.NoError(t, err)
	defaults := swiftcss.DefaultConfig()
	assert.Equal(t, defaults.FileExtensions, config.FileExtensions)
	assert.Equal(t, defaults.Directories, config.Directories)
	assert.Equal(t, defaults.Output, config.Output)
	assert.ElementsMatch(t, defaults.Screens, config.Screens)
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	resetKoanf()
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile(".swiftcss.yaml", []byte("existing"), 0o644))

	rootCmd.SetArgs([]string{"init"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	resetKoanf()
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile(".swiftcss.yaml", []byte("existing"), 0o644))

	rootCmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(".swiftcss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "output: ./output.css")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "swiftcss dev\n", out.String())
}

func TestBuildAndCheckCommands(t *testing.T) {
	resetKoanf()
	chdir(t, t.TempDir())

	require.NoError(t, os.MkdirAll("src", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("src", "index.html"),
		[]byte(`<div class="flex bg-[#000] nope" style-dark="color-[#fff]"></div>`), 0o644))
	require.NoError(t, os.WriteFile(".swiftcss.yaml", []byte("directories: [src]\noutput: out.css\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	rootCmd.SetArgs([]string{"build", "--quiet"})
	require.NoError(t, rootCmd.Execute())

	css, err := os.ReadFile("out.css")
	require.NoError(t, err)
	assert.Contains(t, string(css), `.bg-\[\#000\]{background:#000}`)
	assert.Contains(t, string(css), `dark.dark,body.dark{[style-dark="color-[#fff]"]{color:#fff}}`)

	resetKoanf()
	out.Reset()
	rootCmd.SetArgs([]string{"check", "--quiet=false", "--output-format", "json"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), `"token": "nope"`)
	assert.Contains(t, out.String(), `"total_issues": 1`)
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("config.key", "from-config"))
	assert.Equal(t, "from-config", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("flag-key", "from-flag"))
	assert.Equal(t, "from-flag", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetStringsWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, []string{"d"}, getStringsWithFallback("flag-key", "config.key", []string{"d"}))

	require.NoError(t, k.Set("config.key", "a,b"))
	assert.Equal(t, []string{"a", "b"}, getStringsWithFallback("flag-key", "config.key", nil))

	require.NoError(t, k.Set("flag-key", []string{"x"}))
	assert.Equal(t, []string{"x"}, getStringsWithFallback("flag-key", "config.key", nil))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}
