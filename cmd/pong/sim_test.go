package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

func simConfig(seed int64) config.PongConfig {
	cfg := config.DefaultPongConfig()
	cfg.Seed = seed
	cfg.Controls.Player1 = config.ControlCPU
	cfg.Controls.Player2 = config.ControlCPU
	return cfg
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := simConfig(42)
	opts := tui.SessionOptions{Config: cfg, AutoResume: true}

	first, err := simulate(cfg, opts, 20000, 0)
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	second, err := simulate(cfg, opts, 20000, 0)
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}

	if first.Score != second.Score || len(first.Rallies) != len(second.Rallies) {
		t.Errorf("same seed gave %+v and %+v", first.Score, second.Score)
	}
	if got := first.Score.Player1 + first.Score.Player2; got != len(first.Rallies) {
		t.Errorf("score total %d, expected %d rallies", got, len(first.Rallies))
	}
}

func TestSimulateStopsAtTicks(t *testing.T) {
	cfg := simConfig(7)
	report, err := simulate(cfg, tui.SessionOptions{Config: cfg, AutoResume: true}, 100, 0)
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	if report.Ticks != 100 {
		t.Errorf("Ticks = %d, expected 100", report.Ticks)
	}
}

func TestSimulateInvalidField(t *testing.T) {
	cfg := simConfig(1)
	cfg.Field.Height = 2

	if _, err := simulate(cfg, tui.SessionOptions{Config: cfg}, 10, 0); err == nil {
		t.Error("simulate() with a 2-unit field should fail")
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, simReport{Seed: 3, Ticks: 500, Rallies: []int{120, 300}})

	out := buf.String()
	for _, want := range []string{"Pong simulation", "500", "Longest", "300 ticks"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
