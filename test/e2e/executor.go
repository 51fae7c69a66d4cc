package e2e

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pm-runner/pmrunner/pkg/executor"
	"github.com/pm-runner/pmrunner/pkg/models"
)

// Step is one scripted executor invocation. Files are written under the
// working directory before the result is returned, so verified-file claims
// hold up against the gates' disk checks.
type Step struct {
	Output string
	Status models.ResultStatus // defaults to COMPLETE
	Files  map[string]string   // relative path → content
	Err    error               // returned instead of a result when set
}

// script is an ordered queue of steps for prompts matching one substring.
// The last step repeats when the run outlasts the script.
type script struct {
	match string
	steps []Step
	next  int
}

// ScriptedExecutor routes by prompt content so concurrent subtasks each
// get their own step sequence. It serves both executor roles: the review
// loop's backend and the pool's availability probe.
type ScriptedExecutor struct {
	mu      sync.Mutex
	calls   []executor.ExecuteInput
	scripts []*script

	available atomic.Bool
	authOK    atomic.Bool

	// blockCh, when set, parks every Execute call until the channel is
	// closed or the invocation context dies. Cancellation tests use it to
	// hold a task in flight.
	blockCh chan struct{}
}

// NewScriptedExecutor returns an executor that reports itself available
// and authenticated, with no scripts yet.
func NewScriptedExecutor() *ScriptedExecutor {
	e := &ScriptedExecutor{}
	e.available.Store(true)
	e.authOK.Store(true)
	return e
}

// Script registers the step sequence for prompts containing match.
// Earlier registrations win when several match the same prompt.
func (e *ScriptedExecutor) Script(match string, steps ...Step) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scripts = append(e.scripts, &script{match: match, steps: steps})
}

// Block makes every subsequent Execute call park until Release is called.
func (e *ScriptedExecutor) Block() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.blockCh = make(chan struct{})
}

// Release unparks blocked Execute calls.
func (e *ScriptedExecutor) Release() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.blockCh != nil {
		close(e.blockCh)
		e.blockCh = nil
	}
}

// Execute runs the first matching script's next step. Modification
// prompts embed the original request, so a script keeps matching across
// review iterations.
func (e *ScriptedExecutor) Execute(ctx context.Context, in executor.ExecuteInput) (*models.TaskResult, error) {
	e.mu.Lock()
	e.calls = append(e.calls, in)
	blockCh := e.blockCh
	sc := e.findScript(in.Prompt)
	var step Step
	if sc != nil {
		step = sc.steps[sc.next]
		if sc.next < len(sc.steps)-1 {
			sc.next++
		}
	}
	e.mu.Unlock()

	if blockCh != nil {
		select {
		case <-blockCh:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if sc == nil {
		return nil, fmt.Errorf("no script for prompt %q", in.Prompt)
	}
	if step.Err != nil {
		return nil, step.Err
	}
	return buildResult(in.WorkingDir, step)
}

// IsAvailable implements the availability probe.
func (e *ScriptedExecutor) IsAvailable(context.Context) bool {
	return e.available.Load()
}

// CheckAuth implements the auth probe.
func (e *ScriptedExecutor) CheckAuth(context.Context) models.AuthStatus {
	return models.AuthStatus{OK: e.authOK.Load()}
}

// CallCount returns how many Execute invocations were recorded.
func (e *ScriptedExecutor) CallCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}

// Calls returns a copy of all recorded invocations.
func (e *ScriptedExecutor) Calls() []executor.ExecuteInput {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]executor.ExecuteInput(nil), e.calls...)
}

func (e *ScriptedExecutor) findScript(prompt string) *script {
	for _, sc := range e.scripts {
		if len(sc.steps) > 0 && sc.match != "" && strings.Contains(prompt, sc.match) {
			return sc
		}
	}
	return nil
}

// buildResult writes the step's files into the working directory and
// claims each one as a verified modification.
func buildResult(workingDir string, step Step) (*models.TaskResult, error) {
	status := step.Status
	if status == "" {
		status = models.ResultStatusComplete
	}
	result := &models.TaskResult{
		Executed: true,
		Output:   step.Output,
		Status:   status,
		CWD:      workingDir,
	}

	paths := make([]string, 0, len(step.Files))
	for path := range step.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		full := filepath.Join(workingDir, path)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(full, []byte(step.Files[path]), 0o644); err != nil {
			return nil, err
		}
		result.FilesModified = append(result.FilesModified, path)
		result.VerifiedFiles = append(result.VerifiedFiles, models.VerifiedFile{Path: path, Exists: true})
	}
	return result, nil
}
