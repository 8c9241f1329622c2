// Package scripts runs the automation scripts that do the actual outbound work.
// Each script prints one JSON document on stdout.
package scripts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	appErr "github.com/client-portal/engine/pkg/errors"
	"github.com/client-portal/engine/pkg/logger"
	"go.uber.org/zap"
)

// Script file names under the scripts directory.
const (
	VerifyWorkspace   = "verify_workspace.py"
	RunAdhocWorkflow  = "run_adhoc_workflow.py"
	CheckSheetAccess  = "check_sheet_access.py"
	CreateClientSheet = "create_client_sheet.py"
	DebugCreds        = "debug_creds.py"
	RunDailyCycle     = "run_daily_cycle.py"
)

// Result is the captured output of one script run.
type Result struct {
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// JSON decodes the script's stdout. The whole output is tried first, then the
// last line that parses, so scripts may print progress before their result.
func (r *Result) JSON() (map[string]any, error) {
	var out map[string]any
	trimmed := strings.TrimSpace(r.Stdout)
	if err := json.Unmarshal([]byte(trimmed), &out); err == nil {
		return out, nil
	}
	lines := strings.Split(trimmed, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if err := json.Unmarshal([]byte(line), &out); err == nil {
			return out, nil
		}
	}
	return nil, appErr.New(appErr.CodeUpstream, "script output is not JSON")
}

// Runner executes a named script with arguments.
type Runner interface {
	Run(ctx context.Context, script string, args ...string) (*Result, error)
}

type Options struct {
	Python  string
	Dir     string
	Timeout time.Duration
}

// ExecRunner starts each script as a child process. Arguments are passed as
// argv entries, never through a shell.
type ExecRunner struct {
	python  string
	dir     string
	timeout time.Duration
}

func NewExecRunner(opts Options) *ExecRunner {
	if opts.Python == "" {
		opts.Python = "python3"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Minute
	}
	return &ExecRunner{python: opts.Python, dir: opts.Dir, timeout: opts.Timeout}
}

var _ Runner = (*ExecRunner)(nil)

func (r *ExecRunner) Run(ctx context.Context, script string, args ...string) (*Result, error) {
	if script == "" || strings.ContainsAny(script, `/\`) {
		return nil, appErr.New(appErr.CodeInvalid, "invalid script name")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	path := filepath.Join(r.dir, script)
	cmd := exec.CommandContext(ctx, r.python, append([]string{path}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = 2 * time.Second

	logger.L().Info("running script", zap.String("script", script), zap.Int("args", len(args)))
	start := time.Now()
	err := cmd.Run()
	res := &Result{Stdout: stdout.String(), Stderr: stderr.String(), Duration: time.Since(start)}

	switch {
	case err == nil:
		logger.L().Info("script finished", zap.String("script", script), zap.Duration("duration", res.Duration))
		return res, nil
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		logger.L().Warn("script timed out", zap.String("script", script), zap.Duration("timeout", r.timeout))
		return res, appErr.Wrap(ctx.Err(), appErr.CodeUnavailable, fmt.Sprintf("%s timed out", script))
	default:
		logger.L().Warn("script failed", zap.String("script", script), zap.Error(err), zap.String("stderr", tail(res.Stderr, 512)))
		return res, appErr.Wrap(err, appErr.CodeUpstream, fmt.Sprintf("%s failed", script))
	}
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
