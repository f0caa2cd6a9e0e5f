package datarecording

import (
	"github.com/rs/xid"

	"github.com/paksafe/paksafe/instrumentation/hooking"
	"github.com/paksafe/paksafe/locker"
	"github.com/paksafe/paksafe/scheduler"
)

// Table names used by TickRecorder.
const (
	RunTable   = "runs"
	TickTable  = "ticks"
	FaultTable = "faults"
)

// RunEntry describes one simulation run.
type RunEntry struct {
	ID       string
	Name     string
	Variant  string
	PeriodMs uint32
}

// TickEntry is the trace of one tick: the sampled inputs and the controller
// state after the step.
type TickEntry struct {
	RunID        string
	Tick         uint64
	Raw          uint8
	Card         bool
	Presence     bool
	Keypad       bool
	Tag          uint8
	State        string
	Display      string
	Message      string
	Latch        bool
	Package      bool
	Level        uint8
	PackageCount uint
}

// FaultEntry is a collaborator error seen during a run.
type FaultEntry struct {
	RunID   string
	Tick    uint64
	Source  string
	Message string
}

// TickRecorder is a hook that writes the trace of every tick. Attach it to
// both the control loop and the controller.
type TickRecorder struct {
	recorder DataRecorder
	runID    string
	sample   scheduler.Sample
	ticks    int
}

// NewTickRecorder creates the missing trace tables and records the run. A
// run without an ID gets a fresh one.
func NewTickRecorder(recorder DataRecorder, run RunEntry) *TickRecorder {
	if run.ID == "" {
		run.ID = xid.New().String()
	}

	createTraceTables(recorder)
	recorder.InsertData(RunTable, run)

	return &TickRecorder{recorder: recorder, runID: run.ID}
}

// createTraceTables creates the tables that recorder does not have yet, so
// several runs can share one recorder.
func createTraceTables(recorder DataRecorder) {
	existing := make(map[string]bool)
	for _, name := range recorder.ListTables() {
		existing[name] = true
	}

	samples := []struct {
		name  string
		entry any
	}{
		{RunTable, RunEntry{}},
		{TickTable, TickEntry{}},
		{FaultTable, FaultEntry{}},
	}

	for _, t := range samples {
		if !existing[t.name] {
			recorder.CreateTable(t.name, t.entry)
		}
	}
}

// RunID returns the ID of the recorded run.
func (h *TickRecorder) RunID() string {
	return h.runID
}

// Ticks returns the number of ticks recorded.
func (h *TickRecorder) Ticks() int {
	return h.ticks
}

// Func records the hook item.
func (h *TickRecorder) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case scheduler.HookPosSample:
		h.sample = ctx.Item.(scheduler.Sample)
	case locker.HookPosAfterStep:
		h.recordTick(ctx.Item.(locker.Snapshot))
	case locker.HookPosFault, scheduler.HookPosFault:
		h.recordFault(ctx)
	}
}

func (h *TickRecorder) recordTick(s locker.Snapshot) {
	h.recorder.InsertData(TickTable, TickEntry{
		RunID:        h.runID,
		Tick:         s.Cycle,
		Raw:          h.sample.Raw,
		Card:         h.sample.Sensors.Card,
		Presence:     h.sample.Sensors.Presence,
		Keypad:       h.sample.Sensors.Keypad,
		Tag:          uint8(s.Tag),
		State:        s.State.String(),
		Display:      s.Display.String(),
		Message:      s.Message,
		Latch:        s.Frame.Latch,
		Package:      s.Frame.Package,
		Level:        s.Frame.Level,
		PackageCount: s.PackageCount,
	})

	h.ticks++
}

func (h *TickRecorder) recordFault(ctx hooking.HookCtx) {
	err, ok := ctx.Item.(error)
	if !ok {
		return
	}

	source := "unknown"
	tick := h.sample.Tick

	switch d := ctx.Domain.(type) {
	case *locker.Controller:
		source = d.Name()
		tick = d.Snapshot().Cycle
	case *scheduler.Loop:
		source = d.Name()
		tick = d.Ticks()
	}

	h.recorder.InsertData(FaultTable, FaultEntry{
		RunID:   h.runID,
		Tick:    tick,
		Source:  source,
		Message: err.Error(),
	})
}
