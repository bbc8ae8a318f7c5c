package observ

import (
	"fmt"
	"io"
	"time"
)

// Phase records the duration of one step of a run.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks the execution time of the decode, tokenize and render phases.
// A nil *Timer is valid and records nothing.
type Timer struct {
	phases []Phase
	now    func() time.Time
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4), now: time.Now} }

func (t *Timer) clock() time.Time {
	if t.now == nil {
		return time.Now()
	}
	return t.now()
}

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(name string) int {
	if t == nil {
		return -1
	}
	t.phases = append(t.phases, Phase{Name: name, Start: t.clock()})
	return len(t.phases) - 1
}

// End finishes a phase by its index.
func (t *Timer) End(idx int, note string) {
	if t == nil || idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = t.clock().Sub(p.Start)
	p.Note = note
}

// Phases returns a copy of the recorded phases.
func (t *Timer) Phases() []Phase {
	if t == nil {
		return nil
	}
	out := make([]Phase, len(t.phases))
	copy(out, t.phases)
	return out
}

// PhaseReport is the condensed form of a phase.
type PhaseReport struct {
	Name       string
	DurationMS float64
	Note       string
}

// Report aggregates all phases.
type Report struct {
	TotalMS float64
	Phases  []PhaseReport
}

// Report формирует срез фаз и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	if t == nil || len(t.phases) == 0 {
		return Report{}
	}
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Note:       phase.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

// WriteSummary prints one line per phase plus a total.
func (t *Timer) WriteSummary(w io.Writer) error {
	report := t.Report()
	if _, err := fmt.Fprintln(w, "timings:"); err != nil {
		return err
	}
	for _, p := range report.Phases {
		line := fmt.Sprintf("  %-12s %9.3f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			line += "  // " + p.Note
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  %-12s %9.3f ms\n", "total", report.TotalMS)
	return err
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
