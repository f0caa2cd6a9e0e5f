package logging

import (
	"log"

	"github.com/paksafe/paksafe/instrumentation/hooking"
	"github.com/paksafe/paksafe/locker"
)

// StateLogger prints every lock state change.
type StateLogger struct {
	LogHookBase
}

// NewStateLogger returns a StateLogger that writes into logger.
func NewStateLogger(logger *log.Logger) *StateLogger {
	h := new(StateLogger)
	h.Logger = logger
	return h
}

// Func writes the state change into the logger.
func (h *StateLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos != locker.HookPosStateChange {
		return
	}

	change, ok := ctx.Item.(locker.StateChange)
	if !ok {
		return
	}

	h.Printf("%s: cycle %d, %s -> %s",
		domainName(ctx), change.Cycle, change.From, change.To)
}
