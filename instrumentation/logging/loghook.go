// Package logging prints controller activity through the standard logger.
package logging

import (
	"log"

	"github.com/paksafe/paksafe/instrumentation/hooking"
)

// A LogHook is a hook that writes what it observes to a logger.
type LogHook interface {
	hooking.Hook
}

// LogHookBase provides the common logic for all LogHooks.
type LogHookBase struct {
	*log.Logger
}

type named interface {
	Name() string
}

func domainName(ctx hooking.HookCtx) string {
	if n, ok := ctx.Domain.(named); ok {
		return n.Name()
	}

	return "?"
}
