package ui

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func testTheme() *Theme {
	th := NewTheme()
	th.NoColor = false
	return th
}

// newTestProgram creates a tea.Program configured for test environments without a TTY.
func newTestProgram(m tea.Model) *tea.Program {
	return tea.NewProgram(m,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)
}

// startTestProgram starts a tea.Program in a goroutine and returns a done channel.
func startTestProgram(p *tea.Program) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Run()
	}()
	// Allow the program goroutine to initialize before sending messages.
	time.Sleep(10 * time.Millisecond)
	return done
}

// waitForProgram waits for the program to exit, failing the test if it exceeds timeout.
func waitForProgram(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("tea.Program did not exit within 2 second timeout")
	}
}

func TestInteractiveSpinner_Stop(t *testing.T) {
	p := newTestProgram(newSpinnerModel(testTheme(), "Reading word lists"))
	s := &interactiveSpinner{program: p, once: sync.Once{}}
	done := startTestProgram(p)

	s.Stop()
	s.Stop() // second call is a no-op

	waitForProgram(t, done)
}

func TestInteractiveProgressBar_IncrementAndDone(t *testing.T) {
	p := newTestProgram(newProgressModel(testTheme(), "Writing datasets", 10, 20))
	b := &interactiveProgressBar{program: p, once: sync.Once{}}
	done := startTestProgram(p)

	b.Increment(4)
	b.SetTitle("Writing dtest.csv")
	b.Done()
	b.Done()

	waitForProgram(t, done)
}

func TestSpinnerModel_Update(t *testing.T) {
	m := newSpinnerModel(testTheme(), "a")

	var next tea.Model = m
	if !strings.Contains(next.View(), "a") {
		t.Errorf("View() = %q, want title", next.View())
	}

	next, cmd := next.Update(spinnerStopMsg{})
	if !next.(spinnerModel).done {
		t.Error("expected done after stop")
	}
	if cmd == nil {
		t.Error("expected quit command after stop")
	}
	if next.View() != "" {
		t.Errorf("View() after stop = %q, want empty", next.View())
	}

	tick, ok := m.spinner.Tick().(spinner.TickMsg)
	if !ok {
		t.Fatal("expected spinner tick message")
	}
	if _, cmd = m.Update(tick); cmd == nil {
		t.Error("expected next tick command")
	}
}

func TestProgressModel_Update(t *testing.T) {
	m := newProgressModel(testTheme(), "Writing", 10, 20)

	next, _ := m.Update(progressIncrMsg(4))
	pm := next.(progressModel)
	if pm.current != 4 {
		t.Errorf("current = %d, want 4", pm.current)
	}
	if !strings.Contains(pm.View(), "[4/10] Writing") {
		t.Errorf("View() = %q", pm.View())
	}

	next, _ = pm.Update(progressIncrMsg(50))
	if got := next.(progressModel).current; got != 10 {
		t.Errorf("current = %d, want clamp to 10", got)
	}

	next, cmd := next.Update(progressDoneMsg{})
	if !next.(progressModel).done || cmd == nil {
		t.Error("expected done with quit command")
	}
}

func TestHeadlessProgressBar(t *testing.T) {
	var buf bytes.Buffer
	b := newHeadlessProgressBar("Writing datasets", 100, &buf)

	for range 10 {
		b.Increment(10)
	}
	b.Done()
	b.Done()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"[30/100] Writing datasets",
		"[50/100] Writing datasets",
		"[80/100] Writing datasets",
		"[100/100] Writing datasets",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestHeadlessProgressBarZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	b := newHeadlessProgressBar("Writing", 0, &buf)
	b.Increment(5)
	b.Done()
	if got := buf.String(); got != "[0/0] Writing\n" {
		t.Errorf("output = %q", got)
	}
}

func TestHeadlessProgressBar_SetTitle(t *testing.T) {
	var buf bytes.Buffer
	b := newHeadlessProgressBar("Writing datasets", 2, &buf)
	b.SetTitle("Writing dtest.csv")
	b.Done()

	if got := buf.String(); got != "[2/2] Writing dtest.csv\n" {
		t.Errorf("output = %q", got)
	}
}

func TestHeadlessSpinner(t *testing.T) {
	var buf bytes.Buffer
	s := newHeadlessSpinner("Reading", &buf)
	s.Stop()

	if got := buf.String(); got != "Reading\n" {
		t.Errorf("output = %q", got)
	}
	if !s.stopped {
		t.Error("expected stopped")
	}
}

func TestProgressHeadlessSelection(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	var buf bytes.Buffer
	p := newProgressImpl(testTheme(), hm, &buf)

	if _, ok := p.Start("x", 1).(*headlessProgressBar); !ok {
		t.Error("expected headless progress bar")
	}
	if _, ok := p.Spinner("x").(*headlessSpinner); !ok {
		t.Error("expected headless spinner")
	}
}

func TestProgressNoColorIsHeadless(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)
	th := testTheme()
	th.NoColor = true

	p := newProgressImpl(th, hm, io.Discard)
	if _, ok := p.Start("x", 1).(*headlessProgressBar); !ok {
		t.Error("expected headless progress bar when colours are disabled")
	}
}

func TestQuietProgress(t *testing.T) {
	p := NewQuietProgress()
	bar := p.Start("x", 10)
	bar.Increment(3)
	bar.SetTitle("y")
	bar.Done()
	p.Spinner("z").Stop()
}

func TestClampWidth(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, minBarWidth},
		{5, minBarWidth},
		{25, 25},
		{200, maxBarWidth},
	}
	for _, tt := range tests {
		if got := clampWidth(tt.in); got != tt.want {
			t.Errorf("clampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
