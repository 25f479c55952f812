// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package exec

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// fakeExecResults drives the fake shell process used by tests in this package and others
// that exercise shelled-out tools.
type fakeExecResults struct {
	out     string
	code    int
	padding int
	delay   time.Duration
}

const (
	fakeOut     = "FAKE_OUTPUT"
	fakeCode    = "FAKE_CODE"
	fakePadding = "FAKE_PADDING"
	fakeDelay   = "FAKE_DELAY"
)

// NewFakeExitError runs the fake shell to manufacture a real *exec.ExitError with the given
// code. The calling package's test binary must define a TestShellProcess that calls
// ShellProcess.
func NewFakeExitError(exitCode int, out string) *exec.ExitError {
	cmd := newFakeExecCommand(fakeExecResults{out: out, code: exitCode})(context.Background(), "false")
	_, err := cmd.CombinedOutput()
	return err.(*exec.ExitError)
}

// newFakeExecCommand returns an executor that re-invokes the test binary, running only
// TestShellProcess, with the desired output and exit code smuggled in via the environment.
func newFakeExecCommand(r fakeExecResults) executor {
	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cs := []string{"-test.run=TestShellProcess", "--", name}
		cs = append(cs, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], cs...)
		cmd.Env = append(os.Environ(),
			"GO_WANT_HELPER_PROCESS=1",
			fmt.Sprintf("%s=%s", fakeOut, r.out),
			fmt.Sprintf("%s=%d", fakeCode, r.code),
			fmt.Sprintf("%s=%d", fakePadding, r.padding),
			fmt.Sprintf("%s=%s", fakeDelay, r.delay.String()),
		)
		return cmd
	}
}

// ShellProcess emits the configured fake output and exits with the configured code. It must
// be called from a test named TestShellProcess guarded by GO_WANT_HELPER_PROCESS.
func ShellProcess() {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	if delay := os.Getenv(fakeDelay); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil {
			time.Sleep(d)
		}
	}

	out := os.Getenv(fakeOut)
	if padding := os.Getenv(fakePadding); padding != "" {
		if n, err := strconv.Atoi(padding); err == nil && n > len(out) {
			out += strings.Repeat(" ", n-len(out))
		}
	}
	fmt.Fprint(os.Stdout, out)

	code, err := strconv.Atoi(os.Getenv(fakeCode))
	if err != nil {
		code = 1
	}
	os.Exit(code)
}
