package types

import "testing"

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"Poster", StatusAccepted},
		{"Oral", StatusAccepted},
		{"Spotlight", StatusAccepted},
		{"Accept (poster)", StatusAccepted},
		{"Reject", StatusRejected},
		{"Desk Reject", StatusRejected},
		{"Withdraw", StatusWithdrawn},
		{"NeurIPS 2023 Conference Withdrawn Submission", StatusWithdrawn},
		{"", StatusUnknown},
		{"   ", StatusUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizeStatus(tt.raw); got != tt.want {
				t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
