package swiftcss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(orig)
	})
}

// writeFiles creates every file below the current directory.
func writeFiles(t *testing.T, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	}
}

func TestGlobPattern(t *testing.T) {
	tests := []struct {
		dir  string
		exts []string
		want string
	}{
		{dir: "src", exts: []string{"html"}, want: filepath.Join("src", "**", "*.html")},
		{dir: "./src/", exts: []string{"html", "tsx"}, want: filepath.Join("src", "**", "*.{html,tsx}")},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, globPattern(tt.dir, tt.exts))
		})
	}
}

func TestDiscoveryFiles(t *testing.T) {
	chdir(t, t.TempDir())
	writeFiles(t, map[string]string{
		".gitignore":             "vendor/\nignored.html\n",
		"src/a.html":             "",
		"src/b/c.tsx":            "",
		"src/d.css":              "",
		"src/.hidden/x.html":     "",
		"src/.dot.html":          "",
		"src/vendor/v.html":      "",
		"src/ignored.html":       "",
		"src/deep/er/page.html":  "",
		"other/not-scanned.html": "",
	})
	require.NoError(t, os.Mkdir(filepath.Join("src", "dir.html"), 0o755))

	d := newDiscovery()
	got, err := d.files([]string{"src", "src/b"}, []string{"html", "tsx"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("src", "a.html"),
		filepath.Join("src", "b", "c.tsx"),
		filepath.Join("src", "deep", "er", "page.html"),
	}, got)
}

func TestDiscoveryWithoutGitignore(t *testing.T) {
	chdir(t, t.TempDir())
	writeFiles(t, map[string]string{"src/vendor/v.html": ""})

	d := newDiscovery()
	assert.False(t, d.ignored("src/vendor/v.html"))
	got, err := d.files([]string{"src"}, []string{"html"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("src", "vendor", "v.html")}, got)

	got, err = d.files([]string{"src"}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		rel  string
		want bool
	}{
		{rel: "a.html", want: false},
		{rel: "a/b/c.html", want: false},
		{rel: ".", want: false},
		{rel: "../src/a.html", want: false},
		{rel: ".git/config", want: true},
		{rel: "a/.cache/b.html", want: true},
		{rel: ".env", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.want, isHidden(tt.rel))
		})
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.css")

	require.NoError(t, writeFileAtomic(path, []byte("a{}")))
	require.NoError(t, writeFileAtomic(path, []byte("b{}")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "b{}", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm()&0o600)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files are left behind")

	err = writeFileAtomic(filepath.Join(dir, "missing", "out.css"), []byte("x"))
	require.Error(t, err)
}
