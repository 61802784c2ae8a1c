package completion

import (
	"os"
	"path/filepath"
	"strings"
)

// CompletePaths lists filesystem entries matching word. Relative words are
// resolved against currentDir (the process working directory when empty).
// Directories get a trailing separator. A missing or unreadable directory
// yields no candidates.
func CompletePaths(word, currentDir string) []Candidate {
	dirPart, base := splitPath(word)

	searchDir := dirPart
	if searchDir == "" {
		searchDir = "."
	}
	if !filepath.IsAbs(searchDir) && currentDir != "" {
		searchDir = filepath.Join(currentDir, searchDir)
	}

	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return []Candidate{}
	}

	showHidden := strings.HasPrefix(base, ".")
	candidates := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		if strings.HasPrefix(name, ".") && !showHidden {
			continue
		}

		value := dirPart + name
		if isDir(filepath.Join(searchDir, name), entry) {
			value += string(filepath.Separator)
		}
		candidates = append(candidates, Candidate{Value: value})
	}

	return candidates
}

// splitPath splits word after its last separator, keeping the separator
// on the directory part so candidates can be rebuilt verbatim
func splitPath(word string) (dir, base string) {
	i := strings.LastIndexByte(word, filepath.Separator)
	if i < 0 {
		return "", word
	}
	return word[:i+1], word[i+1:]
}

// isDir follows symlinks so linked directories complete like directories
func isDir(path string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
