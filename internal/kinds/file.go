package kinds

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/alexisbeaulieu97/formkit/internal/field"
)

// StatFunc looks a path up; os.Stat when nil.
type StatFunc func(path string) (fs.FileInfo, error)

// SplitPaths splits a file value into its non-empty, trimmed paths.
func SplitPaths(value string) []string {
	var paths []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// FileValidator checks that every path names an existing regular file and,
// unless multiple is set, that there is at most one.
func FileValidator(multiple bool, stat StatFunc) field.ValidateFunc {
	if stat == nil {
		stat = os.Stat
	}
	return func(value string) string {
		paths := SplitPaths(value)
		if !multiple && len(paths) > 1 {
			return "Only one file can be selected"
		}
		for _, p := range paths {
			info, err := stat(p)
			if err != nil {
				return "File not found: " + p
			}
			if info.IsDir() {
				return "Not a file: " + p
			}
		}
		return ""
	}
}

// Describe renders the selected files with their sizes, e.g.
// "report.pdf (1.2 MiB), notes.txt (512 B)". Paths that cannot be read are
// listed by name only.
func Describe(value string, stat StatFunc) string {
	if stat == nil {
		stat = os.Stat
	}
	paths := SplitPaths(value)
	parts := make([]string, 0, len(paths))
	for _, p := range paths {
		info, err := stat(p)
		if err != nil || info.IsDir() {
			parts = append(parts, p)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", info.Name(), humanize.IBytes(uint64(info.Size()))))
	}
	return strings.Join(parts, ", ")
}
