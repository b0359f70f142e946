package app

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jesseduffield/gocui"

	"github.com/flowkit-dev/flowkit/pkg/commands"
	"github.com/flowkit-dev/flowkit/pkg/git"
	"github.com/flowkit-dev/flowkit/pkg/layout"
)

var cmdBuilder *commands.CommandBuilder

func init() {
	platform := commands.NewPlatform()
	cmdBuilder = commands.NewCommandBuilder(platform)
}

// problemPattern matches the file:line[:col]: message shape emitted by most
// compilers and test runners.
var problemPattern = regexp.MustCompile(`^\s*(\S+?\.\w+):(\d+)(?::(\d+))?:\s*(.+)$`)

// RunBuild runs the workspace build command and routes the outcome through
// the trigger rules.
func (a *App) RunBuild() {
	argv := a.project.BuildCommand()
	if len(a.cfg.Build.BuildCommand) > 0 {
		argv = a.cfg.Build.BuildCommand
	}
	a.runToolchain("Build", argv, layout.EventBuildFailed, layout.EventBuildSucceeded)
}

// RunTests runs the workspace test command and routes the outcome through
// the trigger rules.
func (a *App) RunTests() {
	argv := a.project.TestCommand()
	if len(a.cfg.Build.TestCommand) > 0 {
		argv = a.cfg.Build.TestCommand
	}
	a.runToolchain("Test", argv, layout.EventTestsFailed, layout.EventTestsPassed)
}

// runToolchain streams a build or test command into the terminal tab,
// parses diagnostics out of its output and raises the matching workspace
// events when it completes.
func (a *App) runToolchain(name string, argv []string, failEvent, passEvent layout.DomainEventKind) {
	if len(argv) == 0 {
		a.console.LogActionRed(name, "No command configured for this workspace")
		return
	}

	if !a.tryStartCommand(name) {
		a.logCommandBlocked(name)
		return
	}

	a.console.LogAction(name, strings.Join(argv, " "))
	a.console.AppendTerminal(Cyan("$ " + strings.Join(argv, " ")))

	stream := commands.NewStreamHandler(func(line string) {
		a.g.Update(func(g *gocui.Gui) error {
			a.console.AppendTerminal(line)
			return nil
		})
	})

	cmd := cmdBuilder.New(argv...).
		WithWorkingDir(a.project.Root).
		StreamOutput().
		OnStdout(stream.HandleStdout).
		OnStderr(stream.HandleStderr).
		OnComplete(func(exitCode int) {
			a.finishCommand()
			a.g.Update(func(g *gocui.Gui) error {
				a.completeToolchain(name, exitCode, stream.Lines(), failEvent, passEvent)
				return nil
			})
		}).
		OnError(func(err error) {
			a.finishCommand()
			a.g.Update(func(g *gocui.Gui) error {
				a.console.LogActionRed(name, err.Error())
				return nil
			})
		})

	go func() {
		// Exit status reaches OnComplete; a command that never ran
		// reports through OnError
		_ = cmd.RunAndStream()
	}()
}

func (a *App) completeToolchain(name string, exitCode int, lines []string, failEvent, passEvent layout.DomainEventKind) {
	problems := ParseProblems(lines)
	a.console.SetProblems(problems)

	if exitCode == 0 {
		a.console.LogAction(name, Green("Succeeded"))
		a.Notify(name + " succeeded")
		a.HandleDomainEvent(layout.DomainEvent{Kind: passEvent}, layout.ContentOutput, 1)
	} else {
		a.console.LogActionRed(name, fmt.Sprintf("Failed with exit code %d", exitCode))
		a.Notify(name + " failed")
		a.HandleDomainEvent(layout.DomainEvent{Kind: failEvent}, layout.ContentProblems, len(problems))

		if len(problems) > 0 {
			a.HandleDomainEvent(layout.DomainEvent{Kind: layout.EventErrorDetected}, layout.ContentProblems, 0)
		}
	}

	// Unresolved merge conflicts surface the git tab regardless of outcome
	if conflicts := git.Conflicts(a.project.Root); len(conflicts) > 0 {
		a.console.RefreshGitTab()
		a.HandleDomainEvent(layout.DomainEvent{Kind: layout.EventGitConflict}, layout.ContentGit, len(conflicts))
	}
}

// ParseProblems extracts file:line[:col] diagnostics from command output.
func ParseProblems(lines []string) []Problem {
	var out []Problem
	for _, line := range lines {
		m := problemPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		lineNo, _ := strconv.Atoi(m[2])
		col := 0
		if m[3] != "" {
			col, _ = strconv.Atoi(m[3])
		}

		severity := "error"
		if strings.Contains(strings.ToLower(m[4]), "warning") {
			severity = "warning"
		}

		out = append(out, Problem{
			File:     m[1],
			Line:     lineNo,
			Col:      col,
			Message:  strings.TrimSpace(m[4]),
			Severity: severity,
		})
	}
	return out
}

// RequestHelp raises the help event; the default rules open the
// documentation slot when it is not already visible.
func (a *App) RequestHelp() {
	a.HandleDomainEvent(layout.DomainEvent{Kind: layout.EventHelpRequested}, layout.ContentDocumentation, 1)
}
