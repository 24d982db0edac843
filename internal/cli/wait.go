package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Wait shows a spinner for the given duration. Login and boleto
// lookups use it to simulate backend latency.
func Wait(description string, d time.Duration) {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
	)

	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		_ = bar.Add(1)
		time.Sleep(60 * time.Millisecond)
	}

	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)
}
