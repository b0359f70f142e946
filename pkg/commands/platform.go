package commands

import "runtime"

// Platform carries the shell invocation details for the current OS.
type Platform struct {
	OS       string
	Shell    string
	ShellArg string
}

// NewPlatform detects the running OS and picks its shell.
func NewPlatform() *Platform {
	p := &Platform{OS: runtime.GOOS, Shell: "sh", ShellArg: "-c"}
	if p.OS == "windows" {
		p.Shell = "cmd"
		p.ShellArg = "/c"
	}
	return p
}

// GetShell returns the shell binary and its command argument.
func (p *Platform) GetShell() (string, string) {
	return p.Shell, p.ShellArg
}
