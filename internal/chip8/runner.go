package chip8

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// Execution rates of the scheduler.
const (
	// CyclesPerSecond is the logical instruction rate of the machine.
	CyclesPerSecond = 500

	// TimerFrequency is the countdown rate of the delay and sound timers,
	// independent of the instruction rate.
	TimerFrequency = 60
)

// Target wall-clock durations derived from the execution rates.
const (
	cyclePeriod = time.Second / CyclesPerSecond
	timerPeriod = time.Second / TimerFrequency
)

// FrameSink receives a display snapshot after every cycle that changed the
// display. The host collaborator decides how to render it.
type FrameSink interface {
	RenderFrame(frame Frame) error
}

// RunnerOptions configures a Runner. The zero value free-runs at the
// standard rate with the system clock and discards frames.
type RunnerOptions struct {
	// Stepping pauses after every cycle until the step input confirms:
	// "n" or an empty line advances one cycle, "q" terminates the run.
	Stepping bool

	// StepInput supplies the single-step confirmations, read line by line.
	// Reaching end of input terminates the run. Defaults to stdin when
	// stepping is enabled.
	StepInput io.Reader

	// Frames receives display snapshots, may be nil to discard them.
	Frames FrameSink

	// Clock supplies the wall-clock time, nil selects the system clock.
	Clock Clock
}

// Runner drives a machine through timed fetch-decode-execute cycles at a
// fixed logical rate, with no catch-up of missed cycles, and counts the
// machine timers down at their own rate from the same loop.
type Runner struct {
	logger  *log.Logger
	machine *Machine
	clock   Clock
	frames  FrameSink

	stepping bool
	steps    *bufio.Scanner
}

// NewRunner creates a runner for the given machine.
func NewRunner(logger *log.Logger, machine *Machine, opts RunnerOptions) *Runner {
	clock := opts.Clock
	if clock == nil {
		clock = NewSystemClock()
	}

	stepInput := opts.StepInput
	if opts.Stepping && stepInput == nil {
		stepInput = os.Stdin
	}
	var steps *bufio.Scanner
	if stepInput != nil {
		steps = bufio.NewScanner(stepInput)
	}

	return &Runner{
		logger:   logger,
		machine:  machine,
		clock:    clock,
		frames:   opts.Frames,
		stepping: opts.Stepping,
		steps:    steps,
	}
}

// Run drives the machine until the context is cancelled, a fatal error
// occurs, or the single-step input terminates the run. Cancellation is
// cooperative and only checked at cycle boundaries, a started cycle always
// completes. Running a machine without a loaded ROM fails immediately.
func (r *Runner) Run(ctx context.Context) error {
	if !r.machine.Loaded() {
		return ErrNotLoaded
	}

	r.logger.Info("Starting execution",
		log.Int("cycles_per_second", CyclesPerSecond),
		log.Stringer("dialect", r.machine.dialect))

	var timerElapsed time.Duration

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Execution cancelled")
			return nil
		default:
		}

		start := r.clock.Now()

		if err := r.machine.EmulateCycle(); err != nil {
			return fmt.Errorf("emulating cycle: %w", err)
		}

		if r.machine.ConsumeRedraw() && r.frames != nil {
			if err := r.frames.RenderFrame(r.machine.Frame()); err != nil {
				return fmt.Errorf("rendering frame: %w", err)
			}
		}

		if r.stepping {
			terminate, err := r.awaitStep()
			if err != nil {
				return err
			}
			if terminate {
				r.logger.Info("Execution terminated")
				return nil
			}
			// a machine paused at the step prompt does not count wall time
			// against the timers, stepping follows emulated time
			timerElapsed += cyclePeriod
		} else {
			if busy := r.clock.Now().Sub(start); busy < cyclePeriod {
				r.clock.Sleep(cyclePeriod - busy)
			}
			timerElapsed += r.clock.Now().Sub(start)
		}

		for timerElapsed >= timerPeriod {
			r.machine.TickTimers()
			timerElapsed -= timerPeriod
		}
	}
}

// awaitStep blocks until the next single-step confirmation.
// The returned boolean reports whether the run should terminate.
func (r *Runner) awaitStep() (bool, error) {
	r.logger.Info("[n] next, [q] quit")

	if !r.steps.Scan() {
		if err := r.steps.Err(); err != nil {
			return false, fmt.Errorf("reading step input: %w", err)
		}
		return true, nil // end of input
	}

	switch strings.TrimSpace(r.steps.Text()) {
	case "n", "":
		return false, nil
	case "q":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q, expected n to advance or q to quit",
			ErrInvalidStepInput, r.steps.Text())
	}
}
