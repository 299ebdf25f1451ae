package validator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cssbridge/cssbridge/internal/adapters/outbound/metrics"
	"github.com/cssbridge/cssbridge/internal/domain"
)

// waitDelay bounds how long Run waits for output pipes after the process
// has been killed. The JVM can leave helper processes holding them open.
const waitDelay = 2 * time.Second

// Runner implements domain.ValidatorRunner by executing the validator
// against a temporary copy of the request CSS.
type Runner struct {
	builder *CommandBuilder
	timeout time.Duration
	tempDir string
	logger  *zap.SugaredLogger
}

var _ domain.ValidatorRunner = (*Runner)(nil)

// New creates a Runner from the validator configuration. A zero timeout
// selects domain.DefaultTimeout and an empty TempDir the system default.
func New(cfg domain.ValidatorConfig, logger *zap.SugaredLogger) *Runner {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Runner{
		builder: NewCommandBuilder(cfg.Command, domain.DefaultValidatorOptions()),
		timeout: timeout,
		tempDir: cfg.TempDir,
		logger:  logger.Named("runner"),
	}
}

// Run writes the CSS to a temp file, runs the validator with the configured
// timeout and removes the file before returning, whatever the outcome.
// Cancellation of ctx does not stop the run; only the timeout does.
func (r *Runner) Run(ctx context.Context, req domain.ValidationRequest) domain.ProcessResult {
	if len(r.builder.base) == 0 {
		metrics.ObserveValidatorRun(metrics.RunSpawnError, 0)
		return domain.ProcessResult{SpawnErr: errors.New("validator command is empty")}
	}

	path, err := writeTempCSS(r.tempDir, req.CSS())
	if err != nil {
		metrics.ObserveValidatorRun(metrics.RunSpawnError, 0)
		return domain.ProcessResult{SpawnErr: fmt.Errorf("preparing input file: %w", err)}
	}
	defer r.remove(path)

	args := r.builder.Build(req, path)

	r.logger.Debugw("Running validator",
		"command", strings.Join(args, " "),
		"css", req.CSS(),
	)

	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, args[0], args[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	start := time.Now()
	err = cmd.Run()
	elapsed := time.Since(start)

	if cmd.ProcessState == nil {
		// Never started: missing executable or permission denied.
		r.logger.Errorw("Validator could not be started", "error", err)
		metrics.ObserveValidatorRun(metrics.RunSpawnError, elapsed)
		return domain.ProcessResult{SpawnErr: err, Duration: elapsed}
	}

	result := domain.ProcessResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
		Duration: elapsed,
		TimedOut: errors.Is(runCtx.Err(), context.DeadlineExceeded),
	}

	status := metrics.RunOK
	switch {
	case result.TimedOut:
		status = metrics.RunTimeout
		r.logger.Warnw("Validator timed out", "timeout", r.timeout, "error", err)
	case result.ExitCode != 0:
		status = metrics.RunNonZeroExit
	}
	metrics.ObserveValidatorRun(status, elapsed)

	r.logger.Debugw("Validator finished",
		"exit_code", result.ExitCode,
		"duration", elapsed,
		"stdout", orNone(result.Stdout, "No output"),
		"stderr", orNone(result.Stderr, "No errors"),
	)

	return result
}

func (r *Runner) remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		metrics.IncTempFileCleanupErrors()
		r.logger.Warnw("Failed to remove temporary CSS file", "path", path, "error", err)
	}
}

// writeTempCSS stores css in a new file with a .css extension and returns
// its path. On error no file is left behind.
func writeTempCSS(dir, css string) (string, error) {
	f, err := os.CreateTemp(dir, "css_*.css")
	if err != nil {
		return "", err
	}
	path := f.Name()

	if _, err := f.WriteString(css); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

func orNone(s, none string) string {
	if s == "" {
		return none
	}
	return s
}
