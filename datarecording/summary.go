package datarecording

import (
	"context"
	"errors"
	"fmt"
)

// ErrRunNotFound is returned when a trace holds no run with the given ID.
var ErrRunNotFound = errors.New("datarecording: run not found")

// RunSummary condenses the trace of one run.
type RunSummary struct {
	RunEntry

	Ticks        int
	Faults       int
	FinalState   string
	PackageCount uint
}

func (s RunSummary) String() string {
	state := s.FinalState
	if state == "" {
		state = "-"
	}

	return fmt.Sprintf("%d ticks, %d faults, final state %s, package count %d",
		s.Ticks, s.Faults, state, s.PackageCount)
}

func mapTraceTables(r DataReader) {
	r.MapTable(RunTable, RunEntry{})
	r.MapTable(TickTable, TickEntry{})
	r.MapTable(FaultTable, FaultEntry{})
}

// ListRuns returns the runs recorded by TickRecorders.
func ListRuns(ctx context.Context, r DataReader) ([]RunEntry, error) {
	mapTraceTables(r)

	rows, err := r.Query(ctx, RunTable, QueryParams{})
	if err != nil {
		return nil, fmt.Errorf("datarecording: list runs: %w", err)
	}

	runs := make([]RunEntry, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, *row.(*RunEntry))
	}

	return runs, nil
}

// Summarize reads back the ticks and faults of run id.
func Summarize(
	ctx context.Context,
	r DataReader,
	id string,
) (RunSummary, error) {
	mapTraceTables(r)

	runs, err := r.Query(ctx, RunTable, QueryParams{
		Where: "ID = ?",
		Args:  []any{id},
		Limit: 1,
	})
	if err != nil {
		return RunSummary{}, fmt.Errorf("datarecording: read run: %w", err)
	}

	if len(runs) == 0 {
		return RunSummary{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	s := RunSummary{RunEntry: *runs[0].(*RunEntry)}

	ticks, err := r.Query(ctx, TickTable, QueryParams{
		Where:   "RunID = ?",
		Args:    []any{id},
		OrderBy: "Tick",
	})
	if err != nil {
		return RunSummary{}, fmt.Errorf("datarecording: read ticks: %w", err)
	}

	s.Ticks = len(ticks)
	if len(ticks) > 0 {
		last := ticks[len(ticks)-1].(*TickEntry)
		s.FinalState = last.State
		s.PackageCount = last.PackageCount
	}

	faults, err := r.Query(ctx, FaultTable, QueryParams{
		Where: "RunID = ?",
		Args:  []any{id},
	})
	if err != nil {
		return RunSummary{}, fmt.Errorf("datarecording: read faults: %w", err)
	}

	s.Faults = len(faults)

	return s, nil
}
