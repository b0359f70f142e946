package git

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/flowkit-dev/flowkit/pkg/commands"
)

var cmdBuilder *commands.CommandBuilder

func init() {
	platform := commands.NewPlatform()
	cmdBuilder = commands.NewCommandBuilder(platform)
}

// Info holds repository metadata shown in the shell.
type Info struct {
	RepositoryName string
	BranchName     string
	IsRepository   bool
}

// GetInfo returns repository information for the given directory.
func GetInfo(dir string) *Info {
	info := &Info{}

	gitRoot := findGitRoot(dir)
	if gitRoot == "" {
		info.IsRepository = false
		return info
	}

	info.IsRepository = true
	info.RepositoryName = getRepositoryName(gitRoot)
	info.BranchName = getCurrentBranch(gitRoot)

	return info
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

func getRepositoryName(dir string) string {
	cmd := cmdBuilder.New("git", "remote", "get-url", "origin").WithWorkingDir(dir)
	result, err := cmd.RunWithOutput()
	if err == nil && result.Stdout != "" {
		url := strings.TrimSpace(result.Stdout)
		return parseRepoNameFromURL(url)
	}

	// Fallback: use directory name
	return filepath.Base(dir)
}

func getCurrentBranch(dir string) string {
	cmd := cmdBuilder.New("git", "branch", "--show-current").WithWorkingDir(dir)
	result, err := cmd.RunWithOutput()
	if err == nil && result.Stdout != "" {
		return strings.TrimSpace(result.Stdout)
	}

	// Fallback: read .git/HEAD directly, works for detached checkouts too
	headFile := filepath.Join(dir, ".git", "HEAD")
	content, err := os.ReadFile(headFile)
	if err == nil {
		head := strings.TrimSpace(string(content))
		if strings.HasPrefix(head, "ref: refs/heads/") {
			return strings.TrimPrefix(head, "ref: refs/heads/")
		}
	}

	return "unknown"
}

func parseRepoNameFromURL(url string) string {
	url = strings.TrimSuffix(url, ".git")

	parts := strings.Split(url, "/")
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}

	return url
}

// IsFileModified reports whether a file has staged or unstaged changes.
func IsFileModified(dir, filePath string) bool {
	gitRoot := findGitRoot(dir)
	if gitRoot == "" {
		return false
	}

	relPath, err := filepath.Rel(gitRoot, filePath)
	if err != nil {
		return false
	}

	cmd := cmdBuilder.New("git", "status", "--porcelain", relPath).WithWorkingDir(gitRoot)
	result, err := cmd.RunWithOutput()
	if err != nil {
		return false
	}

	return strings.TrimSpace(result.Stdout) != ""
}

// Conflicts returns the paths with unresolved merge conflicts, parsed from
// porcelain status codes.
func Conflicts(dir string) []string {
	gitRoot := findGitRoot(dir)
	if gitRoot == "" {
		return nil
	}

	cmd := cmdBuilder.New("git", "status", "--porcelain").WithWorkingDir(gitRoot)
	result, err := cmd.RunWithOutput()
	if err != nil {
		return nil
	}

	return ParseConflicts(result.Stdout)
}

// ParseConflicts extracts conflicted paths from porcelain status output.
// Unmerged entries carry the codes DD, AU, UD, UA, DU, AA or UU.
func ParseConflicts(porcelain string) []string {
	var conflicted []string
	for _, line := range strings.Split(porcelain, "\n") {
		if len(line) < 4 {
			continue
		}
		code := line[:2]
		switch code {
		case "DD", "AU", "UD", "UA", "DU", "AA", "UU":
			conflicted = append(conflicted, strings.TrimSpace(line[3:]))
		}
	}
	return conflicted
}

// StatusSummary returns the porcelain status output for display in the git
// tab, empty when the directory is not a repository.
func StatusSummary(dir string) string {
	gitRoot := findGitRoot(dir)
	if gitRoot == "" {
		return ""
	}

	cmd := cmdBuilder.New("git", "status", "--porcelain", "--branch").WithWorkingDir(gitRoot)
	result, err := cmd.RunWithOutput()
	if err != nil {
		return ""
	}
	return result.Stdout
}
