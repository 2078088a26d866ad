package swiftcss

import (
	"github.com/google/renameio/v2"
)

// writeFileAtomic replaces path with data through a hidden temp file in the
// same directory, so readers never observe a partial stylesheet.
func writeFileAtomic(path string, data []byte) error {
	return renameio.WriteFile(path, data, 0o644)
}
