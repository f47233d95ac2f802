// Package hooks runs user scripts at hook points. Scripts are the
// executable files in <hooks_dir>/<point>/, run in name order with the
// event passed through environment variables.
package hooks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cristianoliveira/objlist/internal/config"
	"github.com/cristianoliveira/objlist/internal/listmodel"
	"github.com/cristianoliveira/objlist/internal/logging"
)

// PointSelect runs when the user confirms a selection.
const PointSelect = "select"

// Failure modes.
const (
	// FailureWarn logs a failed script and runs the rest.
	FailureWarn = "warn"
	// FailureAbort stops at the first failed script and returns its error.
	FailureAbort = "abort"
	// FailureIgnore drops failures silently.
	FailureIgnore = "ignore"
)

const defaultTimeout = 30 * time.Second

// Runner executes hook scripts.
type Runner struct {
	dir         string
	failureMode string
	timeout     time.Duration
	output      io.Writer
	logger      logging.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithFailureMode sets how script failures are handled.
func WithFailureMode(mode string) Option {
	return func(r *Runner) { r.failureMode = mode }
}

// WithTimeout bounds each script run.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithOutput receives the combined output of every script.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.output = w }
}

// WithLogger sets the logger. Defaults to the global logger.
func WithLogger(l logging.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// NewRunner returns a runner for scripts under dir.
func NewRunner(dir string, opts ...Option) *Runner {
	r := &Runner{
		dir:         dir,
		failureMode: FailureWarn,
		timeout:     defaultTimeout,
		output:      io.Discard,
		logger:      logging.GetGlobal(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromConfig returns a runner configured by hooks_dir,
// hooks_failure_mode and hooks_timeout_s.
func NewFromConfig(opts ...Option) *Runner {
	base := []Option{
		WithFailureMode(config.Get("hooks_failure_mode", FailureWarn)),
		WithTimeout(time.Duration(config.GetInt("hooks_timeout_s", 30)) * time.Second),
	}
	return NewRunner(config.Get("hooks_dir", ""), append(base, opts...)...)
}

// Scripts lists the executable scripts of a hook point, sorted by name.
// A missing directory has no scripts.
func (r *Runner) Scripts(point string) []string {
	if r.dir == "" {
		return nil
	}
	dir := filepath.Join(r.dir, point)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var scripts []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil || info.Mode()&0o111 == 0 {
			continue
		}
		scripts = append(scripts, filepath.Join(dir, e.Name()))
	}
	sort.Strings(scripts)
	return scripts
}

// Run executes the scripts of point with env added to the process
// environment.
func (r *Runner) Run(ctx context.Context, point string, env map[string]string) error {
	scripts := r.Scripts(point)
	if len(scripts) == 0 {
		return nil
	}

	vars := os.Environ()
	vars = append(vars, "HOOK_POINT="+point, "HOOK_TIMESTAMP="+time.Now().Format(time.RFC3339))
	if exe, err := os.Executable(); err == nil {
		vars = append(vars, "OBJLIST_BINARY="+exe)
	}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		vars = append(vars, k+"="+env[k])
	}

	r.logger.Debug("running hooks", "point", point, "scripts", len(scripts))
	for _, script := range scripts {
		if err := r.runScript(ctx, script, vars); err != nil {
			switch r.failureMode {
			case FailureAbort:
				return err
			case FailureIgnore:
			default:
				r.logger.Warn("hook failed", "script", filepath.Base(script), "error", err)
			}
		}
	}
	return nil
}

func (r *Runner) runScript(ctx context.Context, script string, vars []string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, script)
	cmd.Env = vars
	cmd.Stdout = &out
	cmd.Stderr = &out
	cmd.WaitDelay = time.Second
	err := cmd.Run()
	if out.Len() > 0 {
		_, _ = r.output.Write(out.Bytes())
	}

	name := filepath.Base(script)
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("hook %s timed out after %s", name, r.timeout)
	}
	if err != nil {
		return fmt.Errorf("hook %s failed: %w", name, err)
	}
	r.logger.Debug("hook completed", "script", name, "duration", time.Since(start).String())
	return nil
}

// SelectionEnv describes a confirmed selection to select scripts.
func SelectionEnv(window string, items []listmodel.Item) map[string]string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label()
	}
	return map[string]string{
		"OBJLIST_WINDOW":         window,
		"OBJLIST_SELECTED_COUNT": fmt.Sprint(len(items)),
		"OBJLIST_SELECTED":       strings.Join(labels, "\n"),
	}
}
