package commands

import (
	"fmt"
	"os"

	"github.com/petal-labs/facet/core"
)

// stderrHook logs session progress to stderr so it never mixes with
// command output on stdout.
type stderrHook struct{}

func newStderrHook() core.ProgressHook {
	return stderrHook{}
}

func (stderrHook) OnAttemptStart(e core.AttemptStartEvent) {
	fmt.Fprintf(os.Stderr, "attempt %d/%d\n", e.Attempt, e.Budget)
}

func (stderrHook) OnAttemptEnd(e core.AttemptEndEvent) {
	if e.Err != nil {
		fmt.Fprintf(os.Stderr, "attempt %d failed after %s: %v\n", e.Attempt, e.Duration().Round(timePrecision), e.Err)
		return
	}
	fmt.Fprintf(os.Stderr, "attempt %d done in %s\n", e.Attempt, e.Duration().Round(timePrecision))
}

func (stderrHook) OnRetryWait(e core.RetryWaitEvent) {
	fmt.Fprintf(os.Stderr, "retry %d in %s: %v\n", e.Retry, e.Delay.Round(timePrecision), e.Cause)
}

func (stderrHook) OnImage(e core.ImageEvent) {
	fmt.Fprintf(os.Stderr, "image %d received (%s, %d bytes)\n", e.Index, e.MimeType, e.Size)
}
