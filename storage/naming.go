package storage

import (
	"fmt"
	"imgresize/size"
	"path"
	"path/filepath"
	"strings"
)

// OutputName returns the file name a resized copy of source is stored under:
// "photo.jpg" resized to 200x100 becomes "photo__200x100.jpg". Leading dots do
// not start an extension, so ".hidden" becomes ".hidden__200x100".
func OutputName(source string, s size.Size) string {
	base := path.Base(filepath.ToSlash(source))
	ext := path.Ext(strings.TrimLeft(base, "."))
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s__%dx%d%s", stem, s.Width, s.Height, ext)
}
