// Package run provides a context-bounded subprocess abstraction so that
// callers never reach for os/exec directly. The external agent and the
// directory-listing collaborator both go through a Runner, which keeps
// them mockable in tests.
package run

import (
	"bytes"
	"context"
	osexec "os/exec"
	"strings"
)

// Runner executes external commands.
type Runner interface {
	// RunInDir executes name with args in dir and returns stdout and
	// stderr separately. The context bounds the call; on cancellation
	// the process is killed and control returns to the caller.
	RunInDir(ctx context.Context, dir, name string, args ...string) (stdout, stderr []byte, err error)
}

// OSRunner implements Runner using os/exec.
type OSRunner struct{}

// NewOSRunner creates an OS-backed runner.
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

// RunInDir executes the command in dir and captures both output streams.
func (r *OSRunner) RunInDir(ctx context.Context, dir, name string, args ...string) ([]byte, []byte, error) {
	cmd := osexec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// MockCall records a single command invocation.
type MockCall struct {
	Name string
	Args []string
	Dir  string
}

// MockResponse defines the canned response for a mocked command.
type MockResponse struct {
	Stdout []byte
	Stderr []byte
	Err    error

	// Block, when set, ignores the canned response and waits for the
	// context to expire, simulating an agent that never returns.
	Block bool
}

// MockRunner implements Runner for tests.
type MockRunner struct {
	Calls     []MockCall
	Responses map[string]MockResponse
}

// NewMockRunner creates a mock runner with no responses registered.
func NewMockRunner() *MockRunner {
	return &MockRunner{Responses: make(map[string]MockResponse)}
}

// AddResponse sets the response for a command name.
func (m *MockRunner) AddResponse(name string, resp MockResponse) {
	m.Responses[name] = resp
}

// CommandLines renders recorded calls as "name arg arg" lines for assertions.
func (m *MockRunner) CommandLines() []string {
	lines := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		lines = append(lines, strings.TrimSpace(c.Name+" "+strings.Join(c.Args, " ")))
	}
	return lines
}

// RunInDir records the call and returns the registered response.
func (m *MockRunner) RunInDir(ctx context.Context, dir, name string, args ...string) ([]byte, []byte, error) {
	m.Calls = append(m.Calls, MockCall{Name: name, Args: args, Dir: dir})

	resp, ok := m.Responses[name]
	if !ok {
		return nil, nil, &osexec.Error{Name: name, Err: osexec.ErrNotFound}
	}
	if resp.Block {
		<-ctx.Done()
		return nil, nil, ctx.Err()
	}
	return resp.Stdout, resp.Stderr, resp.Err
}
