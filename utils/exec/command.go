// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package exec

//go:generate mockgen -destination=../../mocks/mock_utils/mock_exec/mock_command.go github.com/scaleworks/ebs-autoscaler/utils/exec Command

import (
	"context"
	"os/exec"
	"regexp"
	"strings"
	"time"

	. "github.com/scaleworks/ebs-autoscaler/logging"
	"github.com/scaleworks/ebs-autoscaler/utils/errors"
)

// xtermControlRegex matches escape sequences some tools emit when they believe they write to a terminal.
var xtermControlRegex = regexp.MustCompile(`\x1B\[[0-9;]*[a-zA-Z]`)

// ExitError is implemented by *exec.ExitError; declared here so callers and mocks need not
// depend on os/exec directly.
type ExitError interface {
	error
	ExitCode() int
}

// Command runs external tools on behalf of the autoscaler.
type Command interface {
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)
	ExecuteWithTimeout(
		ctx context.Context, name string, timeout time.Duration, logOutput bool, args ...string,
	) ([]byte, error)
}

type executor func(ctx context.Context, name string, args ...string) *exec.Cmd

type command struct {
	executor executor
}

// NewCommand returns a Command backed by exec.CommandContext.
func NewCommand() Command {
	return &command{
		executor: exec.CommandContext,
	}
}

// Execute invokes an external process and returns its combined output.
func (c *command) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	Logc(ctx).WithFields(LogFields{
		"command": name,
		"args":    args,
	}).Debug(">>>> exec.Execute")
	defer Logc(ctx).Debug("<<<< exec.Execute")

	out, err := c.executor(ctx, name, args...).CombinedOutput()

	Logc(ctx).WithFields(LogFields{
		"command": name,
		"output":  sanitizeExecOutput(string(out)),
		"error":   err,
	}).Debug("Executed command.")

	return out, err
}

// ExecuteWithTimeout invokes an external process with a hard deadline. Output logging can be
// suppressed for chatty tools.
func (c *command) ExecuteWithTimeout(
	ctx context.Context, name string, timeout time.Duration, logOutput bool, args ...string,
) ([]byte, error) {
	logFields := LogFields{
		"command":        name,
		"timeoutSeconds": timeout,
		"args":           args,
	}
	Logc(ctx).WithFields(logFields).Debug(">>>> exec.ExecuteWithTimeout")
	defer Logc(ctx).WithFields(logFields).Debug("<<<< exec.ExecuteWithTimeout")

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		out []byte
		err error
	}
	done := make(chan result, 1)

	cmd := c.executor(timeoutCtx, name, args...)
	go func() {
		out, err := cmd.CombinedOutput()
		done <- result{out: out, err: err}
	}()

	select {
	case <-timeoutCtx.Done():
		Logc(ctx).WithFields(logFields).Error("Process timed out.")
		return nil, errors.TimeoutError("process killed after timeout: %s", name)
	case r := <-done:
		entry := Logc(ctx).WithFields(logFields)
		if logOutput {
			entry = entry.WithField("output", sanitizeExecOutput(string(r.out)))
		}
		entry.WithField("error", r.err).Debug("Executed command.")
		return r.out, r.err
	}
}

// sanitizeExecOutput removes terminal control sequences and a trailing newline from command output.
func sanitizeExecOutput(s string) string {
	s = xtermControlRegex.ReplaceAllString(s, "")
	s = strings.TrimSuffix(s, "\n")
	return s
}
