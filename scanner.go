package swiftcss

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// discovery finds the files a run scans.
type discovery struct {
	gitignore *ignore.GitIgnore
}

// newDiscovery loads .gitignore from the working directory. A missing file is fine.
func newDiscovery() *discovery {
	gi, err := ignore.CompileIgnoreFile(".gitignore")
	if err != nil {
		gi = nil
	}
	return &discovery{gitignore: gi}
}

// globPattern builds "<dir>/**/*.{ext1,ext2}".
func globPattern(dir string, exts []string) string {
	name := "*." + exts[0]
	if len(exts) > 1 {
		name = "*.{" + strings.Join(exts, ",") + "}"
	}
	return filepath.Join(filepath.Clean(dir), "**", name)
}

// files returns every matching file under dirs, deduplicated and sorted.
func (d *discovery) files(dirs, exts []string) ([]string, error) {
	if len(exts) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool)
	var out []string
	for _, dir := range dirs {
		matches, err := doublestar.FilepathGlob(globPattern(dir, exts))
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if seen[match] || d.skip(dir, match) {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			out = append(out, match)
		}
	}
	sort.Strings(out)
	return out, nil
}

// skip reports whether path is hidden below root or ignored by .gitignore.
func (d *discovery) skip(root, path string) bool {
	if rel, err := filepath.Rel(root, path); err == nil && isHidden(rel) {
		return true
	}
	return d.ignored(path)
}

// ignored applies .gitignore to paths inside the working directory only.
func (d *discovery) ignored(path string) bool {
	if d.gitignore == nil {
		return false
	}
	if filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return false
		}
		rel, err := filepath.Rel(wd, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			return false
		}
		path = rel
	}
	return d.gitignore.MatchesPath(filepath.ToSlash(filepath.Clean(path)))
}

// isHidden reports whether any element of a relative path starts with a dot.
func isHidden(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if len(part) > 1 && strings.HasPrefix(part, ".") && part != ".." {
			return true
		}
	}
	return false
}
