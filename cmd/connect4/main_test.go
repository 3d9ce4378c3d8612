package main

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-connect4/internal/storage"
)

func TestPort(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:22", "22"},
		{"2222", "2222"},
	}

	for _, tt := range tests {
		if got := port(tt.addr); got != tt.want {
			t.Errorf("port(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestResultsTable(t *testing.T) {
	results := []storage.Result{
		{
			ID:        2,
			SessionID: "s1",
			Outcome:   storage.OutcomeWon,
			Winner:    "b",
			Moves:     8,
			PlayerA:   "Ann",
			PlayerB:   "Bob",
			Duration:  75,
			CreatedAt: time.Now(),
		},
		{
			ID:        1,
			SessionID: "s1",
			Outcome:   storage.OutcomeDrawn,
			Moves:     42,
			PlayerA:   "Ann",
			PlayerB:   "Bob",
			CreatedAt: time.Now(),
		},
	}

	out := resultsTable(results)
	for _, want := range []string{"Session", "Ann vs Bob", "Bob won", "Draw", "1:15", "42"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
