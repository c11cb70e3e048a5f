package tui

import (
	"testing"
)

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		width   int
		want    string
	}{
		{"empty", 0, 10, 10, "[          ]"},
		{"complete", 10, 10, 10, "[==========]"},
		{"half", 5, 10, 10, "[=====>    ]"},
		{"partial", 3, 10, 10, "[===>      ]"},
		{"over total", 15, 10, 10, "[==========]"},
		{"zero total", 0, 0, 10, "[          ]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderProgressBar(tt.current, tt.total, tt.width)
			if got != tt.want {
				t.Errorf("renderProgressBar(%d, %d, %d) = %q, want %q",
					tt.current, tt.total, tt.width, got, tt.want)
			}
			if len([]rune(got)) != tt.width+2 {
				t.Errorf("bar %q has wrong width", got)
			}
		})
	}
}

func TestBatchProgress_Counts(t *testing.T) {
	bp := NewBatchProgress(3, true)

	bp.Add(ItemStatus{Label: "a", Success: true})
	bp.Add(ItemStatus{Label: "b", Success: false, ErrMsg: "boom", Attempts: 1})
	bp.Add(ItemStatus{Label: "c", Success: true})

	if got := bp.SuccessCount(); got != 2 {
		t.Errorf("SuccessCount() = %d, want 2", got)
	}
	if got := bp.FailureCount(); got != 1 {
		t.Errorf("FailureCount() = %d, want 1", got)
	}
}

func TestNewBatchProgress_NegativeTotal(t *testing.T) {
	bp := NewBatchProgress(-1, true)
	if bp.total != 0 {
		t.Errorf("total = %d, want 0", bp.total)
	}
}
