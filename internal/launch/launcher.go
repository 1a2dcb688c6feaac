// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"rfxboot/internal/pyenv"

	"github.com/charmbracelet/log"
	"github.com/creack/pty"
)

type (
	// Launcher resolves an interpreter and supervises the backend process.
	Launcher struct {
		// Venv is the provisioned environment location (consumed read-only).
		Venv pyenv.VenvPath
		// Candidates are the system interpreter names tried when the venv
		// interpreter is absent. Empty means pyenv.DefaultSystemCandidates.
		Candidates []string
		// LookPath abstracts PATH lookup; nil means exec.LookPath.
		LookPath pyenv.LookPathFunc
		// Logger receives step-level diagnostics. Nil disables logging.
		Logger *log.Logger
	}

	// Options configures a single launch.
	Options struct {
		// EntryPoint is the backend entry-point script passed to the
		// interpreter as its sole script argument.
		EntryPoint string
		// Args are extra arguments appended after the entry point.
		Args []string
		// Detach asks the backend to background itself. It is forwarded to
		// the entry point as --detach; the wrapper still waits for the
		// process it spawned (documented pass-through, not enforced).
		Detach bool
		// Terminal runs the child attached to a pseudo-terminal.
		Terminal bool
		// WorkDir is the child's working directory. Empty means the entry
		// point's directory.
		WorkDir string
		// Stdout, Stderr and Stdin wire the child's standard streams.
		Stdout io.Writer
		Stderr io.Writer
		Stdin  io.Reader
	}
)

// New creates a Launcher for the given venv.
func New(venv pyenv.VenvPath, candidates []string, logger *log.Logger) *Launcher {
	return &Launcher{Venv: venv, Candidates: candidates, Logger: logger}
}

// Launch resolves an interpreter, spawns the backend, blocks until it exits,
// and returns the child's status verbatim. Pre-spawn failures (no
// interpreter) return ExitNoInterpreter with Error set and no child spawned.
func (l *Launcher) Launch(ctx context.Context, opts Options) *Result {
	interp, err := pyenv.Resolve(l.Venv, l.Candidates, l.LookPath)
	if err != nil {
		return NewErrorResult(ExitNoInterpreter, err)
	}

	l.logf("resolved interpreter", "path", interp.Path, "source", interp.Source)

	args := make([]string, 0, 2+len(opts.Args))
	args = append(args, opts.EntryPoint)
	if opts.Detach {
		args = append(args, "--detach")
	}
	args = append(args, opts.Args...)

	cmd := exec.CommandContext(ctx, interp.Path, args...)
	cmd.Dir = l.workDir(opts)
	cmd.Env = l.buildEnv(interp)

	if opts.Terminal {
		if res := l.runInTerminal(cmd, opts, interp); res != nil {
			return res
		}
		// PTY unavailable on this platform; fall through to attached mode.
		l.logf("pty unavailable, running attached")
		cmd = exec.CommandContext(ctx, interp.Path, args...)
		cmd.Dir = l.workDir(opts)
		cmd.Env = l.buildEnv(interp)
	}

	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	cmd.Stdin = opts.Stdin

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return NewExitCodeResult(ExitCode(exitErr.ExitCode()), interp)
		}
		return NewErrorResult(1, fmt.Errorf("failed to launch backend: %w", err))
	}

	return NewSuccessResult(interp)
}

// runInTerminal starts cmd attached to a pseudo-terminal and streams its
// output to opts.Stdout. Returns nil when a PTY could not be allocated so
// the caller can fall back to plain attached execution.
func (l *Launcher) runInTerminal(cmd *exec.Cmd, opts Options, interp *pyenv.Interpreter) *Result {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil
	}
	defer ptmx.Close()

	if opts.Stdin != nil {
		go func() {
			_, _ = io.Copy(ptmx, opts.Stdin)
		}()
	}
	if opts.Stdout != nil {
		// The copy ends with an I/O error when the child exits and the
		// slave side closes; that is the normal termination signal.
		_, _ = io.Copy(opts.Stdout, ptmx)
	}

	if err := cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return NewExitCodeResult(ExitCode(exitErr.ExitCode()), interp)
		}
		return NewErrorResult(1, fmt.Errorf("failed to launch backend: %w", err))
	}
	return NewSuccessResult(interp)
}

// workDir determines the child's working directory.
func (l *Launcher) workDir(opts Options) string {
	if opts.WorkDir != "" {
		return opts.WorkDir
	}
	return filepath.Dir(opts.EntryPoint)
}

// buildEnv returns the child environment. When the venv interpreter is used
// the environment mirrors a venv activation: VIRTUAL_ENV is set and the venv
// binary directory is prepended to PATH so subprocesses of the backend find
// the same interpreter.
func (l *Launcher) buildEnv(interp *pyenv.Interpreter) []string {
	env := os.Environ()
	if interp.Source != pyenv.SourceVenv {
		return env
	}

	binDir := filepath.Dir(l.Venv.Interpreter())
	out := make([]string, 0, len(env)+2)
	out = append(out, "VIRTUAL_ENV="+l.Venv.String())
	pathSeen := false
	for _, kv := range env {
		if strings.HasPrefix(kv, "PATH=") {
			kv = "PATH=" + binDir + string(os.PathListSeparator) + strings.TrimPrefix(kv, "PATH=")
			pathSeen = true
		}
		if strings.HasPrefix(kv, "VIRTUAL_ENV=") {
			continue
		}
		out = append(out, kv)
	}
	if !pathSeen {
		// No inherited PATH; the activation mirror still has to expose the
		// venv binary directory.
		out = append(out, "PATH="+binDir)
	}
	return out
}

// logf logs through the configured logger, if any.
func (l *Launcher) logf(msg string, kv ...any) {
	if l.Logger != nil {
		l.Logger.Debug(msg, kv...)
	}
}
