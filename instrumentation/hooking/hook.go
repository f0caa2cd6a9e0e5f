// Package hooking lets observers attach to the controller and the scheduler
// without the core depending on any logging or recording back end.
package hooking

// HookPos names a point in a tick where observers are called, such as a
// state change or a fault.
type HookPos struct {
	Name string
}

// HookCtx is passed to every hook call.
type HookCtx struct {
	// Domain is the controller or loop that fired the hook.
	Domain Hookable

	// Pos is the point in the tick that fired.
	Pos *HookPos

	// Item is the payload of the position: a state change, a snapshot, a
	// sensor sample or an error.
	Item any

	// Detail is optional and usually nil.
	Detail any
}

// Hookable is implemented by the controller and the control loop.
type Hookable interface {
	// AcceptHook attaches hook. All hooks are attached before the first tick
	// and stay attached for the life of the object.
	AcceptHook(hook Hook)

	// NumHooks counts the attached hooks.
	NumHooks() int

	// Hooks lists the attached hooks in attach order.
	Hooks() []Hook

	// InvokeHook calls every attached hook with ctx.
	InvokeHook(ctx HookCtx)
}

// Hook observes a Hookable.
type Hook interface {
	Func(ctx HookCtx)
}

// HookFunc adapts a plain function to the Hook interface.
type HookFunc func(ctx HookCtx)

// Func calls f(ctx).
func (f HookFunc) Func(ctx HookCtx) {
	f(ctx)
}

// HookableBase keeps the hook list for types that embed it.
type HookableBase struct {
	hooks []Hook
}

// NewHookableBase creates an empty HookableBase.
func NewHookableBase() *HookableBase {
	return &HookableBase{hooks: make([]Hook, 0)}
}

// NumHooks counts the attached hooks.
func (h *HookableBase) NumHooks() int {
	return len(h.hooks)
}

// Hooks lists the attached hooks.
func (h *HookableBase) Hooks() []Hook {
	return h.hooks
}

// AcceptHook attaches hook. It panics if the same hook value is attached
// twice. Function hooks are not comparable and are never rejected.
//
// The list is read without locking once the loop runs, so hooks are attached
// from the goroutine that configures the controller.
func (h *HookableBase) AcceptHook(hook Hook) {
	if _, isFunc := hook.(HookFunc); !isFunc {
		for _, attached := range h.hooks {
			if attached == hook {
				panic("hooking: hook attached twice")
			}
		}
	}

	h.hooks = append(h.hooks, hook)
}

// InvokeHook calls the attached hooks in order.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hooks {
		hook.Func(ctx)
	}
}

var _ Hookable = (*HookableBase)(nil)
