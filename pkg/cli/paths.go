package cli

import (
	"path/filepath"
	"strings"
)

// OutputPath derives the output file next to input: the stem gets a "_depth"
// suffix and the extension is kept, so "dir/photo.png" becomes
// "dir/photo_depth.png".
func OutputPath(input string) string {
	dir := filepath.Dir(input)
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		// dotfiles such as ".png" have no extension, only a stem
		stem, ext = base, ""
	}
	return filepath.Join(dir, stem+"_depth"+ext)
}
