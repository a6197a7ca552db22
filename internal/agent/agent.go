// Package agent invokes the external code-generation agent as a blocking
// subprocess bounded by a hard timeout. The agent is opaque: it gets one
// prompt string and the workspace root as its working directory, and hands
// back stdout on success or stderr on a non-zero exit.
package agent

import (
	"context"
	osexec "os/exec"
	"time"

	"github.com/rvasay/atelier/internal/errors"
	"github.com/rvasay/atelier/internal/run"
	"github.com/rvasay/atelier/internal/workspace"
)

// Agent describes how to reach the external agent.
type Agent struct {
	Command string
	Timeout time.Duration
	Runner  run.Runner
}

// New creates an Agent with the given command and timeout using the
// OS-backed runner.
func New(command string, timeout time.Duration) *Agent {
	return &Agent{Command: command, Timeout: timeout, Runner: run.NewOSRunner()}
}

// Invoke runs the agent with the prompt, blocking until it finishes or the
// timeout elapses. A non-zero exit is not an invocation failure: the
// agent's stderr becomes the response text, prefixed so callers can tell.
// Only a timeout or a failure to run the process at all returns an error
// (AGENT_TIMEOUT or AGENT_FAILED); there is no retry.
func (a *Agent) Invoke(ctx context.Context, root workspace.Root, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.Timeout)
	defer cancel()

	stdout, stderr, err := a.Runner.RunInDir(ctx, root.Base(), a.Command, prompt)
	if ctx.Err() == context.DeadlineExceeded {
		return "", errors.NewAgentTimeout(int(a.Timeout / time.Second))
	}
	if err != nil {
		if _, exited := err.(*osexec.ExitError); exited {
			return "Error: " + string(stderr), nil
		}
		return "", errors.NewAgentFailed(err)
	}
	return string(stdout), nil
}
