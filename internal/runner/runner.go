package runner

import (
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"strings"

	"legendary/internal/logger"
)

// Outcome classifies how a spawned program ended.
type Outcome int

const (
	// Succeeded means the program ran and exited with status zero.
	Succeeded Outcome = iota
	// Failed means the program ran and exited non-zero, or was killed.
	Failed
	// LaunchFailed means the program could not be started at all.
	LaunchFailed
)

// OK reports whether the outcome counts as success for fallback decisions.
func (o Outcome) OK() bool {
	return o == Succeeded
}

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case LaunchFailed:
		return "launch failed"
	default:
		return "unknown"
	}
}

// Runner spawns one external program and waits for it.
// The returned error is non-nil only for LaunchFailed and describes why the
// program could not be started.
type Runner interface {
	Run(program string, args []string) (Outcome, error)
}

// Exec runs programs with os/exec. The child inherits the parent's standard
// streams; nothing is captured.
type Exec struct{}

// Run starts program with args and blocks until it exits.
// There is no timeout and no cancellation: the child owns its own shutdown.
func (Exec) Run(program string, args []string) (Outcome, error) {
	cmd := exec.Command(program, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))

	if err := cmd.Start(); err != nil {
		logger.Debug("[DEBUG] Could not start %s: %v\n", program, err)
		return LaunchFailed, err
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Debug("[DEBUG] %s exited with code %d\n", program, exitErr.ExitCode())
		} else {
			logger.Debug("[DEBUG] %s wait error: %v\n", program, err)
		}
		return Failed, nil
	}

	return Succeeded, nil
}

// CatchInterrupts keeps SIGINT from terminating this process while a child
// runs. The terminal delivers the interrupt to the child as well, which then
// decides for itself whether to stop; we only report how it ended.
//
// The signal is caught rather than ignored, because an ignored disposition
// would be inherited by every child across exec.
func CatchInterrupts() (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigs:
				logger.Debug("[DEBUG] Received %v, waiting for child to exit\n", sig)
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
