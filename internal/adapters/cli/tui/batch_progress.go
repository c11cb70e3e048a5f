package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	spinnerStyle = spinner.Line
)

// maxVisibleResults caps how many recent results stay on screen
const maxVisibleResults = 10

// ItemStatus is one processed item shown in the progress display
type ItemStatus struct {
	Label    string
	Success  bool
	ErrMsg   string
	Attempts int
	Duration time.Duration
}

// BatchProgress renders sequential batch progress on the terminal.
// The batch itself is single-threaded so no locking is needed here.
type BatchProgress struct {
	total    int
	results  []ItemStatus
	failures []ItemStatus
	quiet    bool
	rendered bool
	frame    int
}

// NewBatchProgress creates a new batch progress display
func NewBatchProgress(total int, quiet bool) *BatchProgress {
	if total < 0 {
		total = 0
	}
	return &BatchProgress{total: total, quiet: quiet}
}

// Add records a result and redraws the display
func (bp *BatchProgress) Add(status ItemStatus) {
	bp.results = append(bp.results, status)
	if !status.Success {
		bp.failures = append(bp.failures, status)
	}
	bp.frame++
	bp.render()
}

func (bp *BatchProgress) render() {
	if bp.quiet {
		return
	}

	visible := len(bp.results)
	if visible > maxVisibleResults {
		visible = maxVisibleResults
	}
	if bp.rendered {
		// Move cursor up and clear before redrawing
		fmt.Printf("\033[%dA", 1+visible)
		fmt.Print("\033[J")
	}
	bp.rendered = true

	done := len(bp.results)
	percent := 0
	if bp.total > 0 {
		percent = (done * 100) / bp.total
	}
	frame := spinnerStyle.Frames[bp.frame%len(spinnerStyle.Frames)]
	if done >= bp.total {
		frame = "*"
	}
	fmt.Printf("%s Fetching transcripts %d/%d %s %d%%\n",
		frame, done, bp.total, renderProgressBar(done, bp.total, 20), percent)

	start := len(bp.results) - visible
	for _, res := range bp.results[start:] {
		if res.Success {
			fmt.Printf("  %s %s %s\n",
				okStyle.Render("✓"), res.Label,
				subtleStyle.Render(fmt.Sprintf("(%s)", res.Duration.Round(time.Millisecond))))
		} else {
			fmt.Printf("  %s %s: %s %s\n",
				failStyle.Render("✗"), res.Label, res.ErrMsg,
				subtleStyle.Render(fmt.Sprintf("(attempt %d)", res.Attempts)))
		}
	}
}

// Complete prints the final summary
func (bp *BatchProgress) Complete() {
	if bp.quiet {
		return
	}

	fmt.Println()
	fmt.Printf("Done: %d succeeded, %d failed\n", bp.SuccessCount(), bp.FailureCount())

	if len(bp.failures) > 0 {
		fmt.Println("\nFailed items (kept on the failure list):")
		for _, f := range bp.failures {
			fmt.Printf("  %s %s: %s\n", failStyle.Render("✗"), f.Label, f.ErrMsg)
		}
	}
}

// SuccessCount returns the number of successful results
func (bp *BatchProgress) SuccessCount() int {
	return len(bp.results) - len(bp.failures)
}

// FailureCount returns the number of failed results
func (bp *BatchProgress) FailureCount() int {
	return len(bp.failures)
}

// renderProgressBar creates a text progress bar like [=====>    ]
func renderProgressBar(current, total, width int) string {
	if total <= 0 || width <= 0 {
		return "[" + strings.Repeat(" ", width) + "]"
	}
	if current >= total {
		return "[" + strings.Repeat("=", width) + "]"
	}
	if current <= 0 {
		return "[" + strings.Repeat(" ", width) + "]"
	}

	filled := current * width / total
	if filled >= width {
		filled = width - 1
	}
	return "[" + strings.Repeat("=", filled) + ">" + strings.Repeat(" ", width-filled-1) + "]"
}
