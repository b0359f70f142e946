package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Kind identifies the project toolchain detected at the workspace root.
type Kind string

const (
	KindGo      Kind = "go"
	KindNode    Kind = "node"
	KindRust    Kind = "rust"
	KindMake    Kind = "make"
	KindUnknown Kind = "unknown"
)

// DefaultExcludeDirs are skipped when listing workspace files.
var DefaultExcludeDirs = []string{
	".git",
	"node_modules",
	"vendor",
	"target",
	"dist",
	"build",
	".next",
	".cache",
}

// Project describes the workspace the app was launched in.
type Project struct {
	Root string
	Name string
	Kind Kind
}

// Detect inspects dir and returns the project rooted there. The root is the
// enclosing git repository when one exists, otherwise dir itself.
func Detect(dir string) *Project {
	root := findGitRoot(dir)
	if root == "" {
		root = dir
	}

	return &Project{
		Root: root,
		Name: filepath.Base(root),
		Kind: detectKind(root),
	}
}

// detectKind probes for toolchain marker files in precedence order.
func detectKind(root string) Kind {
	markers := []struct {
		file string
		kind Kind
	}{
		{"go.mod", KindGo},
		{"package.json", KindNode},
		{"Cargo.toml", KindRust},
		{"Makefile", KindMake},
	}

	for _, m := range markers {
		if _, err := os.Stat(filepath.Join(root, m.file)); err == nil {
			return m.kind
		}
	}
	return KindUnknown
}

// BuildCommand returns the build command for the project kind, nil when the
// kind has no conventional build step.
func (p *Project) BuildCommand() []string {
	switch p.Kind {
	case KindGo:
		return []string{"go", "build", "./..."}
	case KindNode:
		return []string{"npm", "run", "build"}
	case KindRust:
		return []string{"cargo", "build"}
	case KindMake:
		return []string{"make"}
	default:
		return nil
	}
}

// TestCommand returns the test command for the project kind.
func (p *Project) TestCommand() []string {
	switch p.Kind {
	case KindGo:
		return []string{"go", "test", "./..."}
	case KindNode:
		return []string{"npm", "test"}
	case KindRust:
		return []string{"cargo", "test"}
	case KindMake:
		return []string{"make", "test"}
	default:
		return nil
	}
}

// ListFiles walks the workspace and returns file paths relative to the root,
// sorted, skipping excluded directories. maxDepth 0 means unlimited;
// extraExcludes extends the default exclude list.
func (p *Project) ListFiles(maxDepth int, extraExcludes []string) ([]string, error) {
	excludes := append(append([]string(nil), DefaultExcludeDirs...), extraExcludes...)

	var files []string
	err := filepath.WalkDir(p.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries
		}

		rel, relErr := filepath.Rel(p.Root, path)
		if relErr != nil || rel == "." {
			return nil
		}

		if d.IsDir() {
			if lo.Contains(excludes, d.Name()) || lo.Contains(excludes, path) {
				return filepath.SkipDir
			}
			if maxDepth > 0 && strings.Count(rel, string(filepath.Separator))+1 > maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// findGitRoot walks up parent directories looking for a .git directory.
func findGitRoot(dir string) string {
	currentDir := dir

	for {
		gitDir := filepath.Join(currentDir, ".git")
		if stat, err := os.Stat(gitDir); err == nil && stat.IsDir() {
			return currentDir
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}
