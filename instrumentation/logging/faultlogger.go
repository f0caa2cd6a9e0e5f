package logging

import (
	"log"

	"github.com/paksafe/paksafe/instrumentation/hooking"
	"github.com/paksafe/paksafe/locker"
	"github.com/paksafe/paksafe/scheduler"
)

// FaultLogger prints collaborator errors raised by the controller and the
// control loop.
type FaultLogger struct {
	LogHookBase
}

// NewFaultLogger returns a FaultLogger that writes into logger.
func NewFaultLogger(logger *log.Logger) *FaultLogger {
	h := new(FaultLogger)
	h.Logger = logger
	return h
}

// Func writes the error into the logger.
func (h *FaultLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos != locker.HookPosFault && ctx.Pos != scheduler.HookPosFault {
		return
	}

	err, ok := ctx.Item.(error)
	if !ok {
		return
	}

	h.Printf("%s: fault: %v", domainName(ctx), err)
}
