// Package statemachine implements a small finite state machine.
//
// States and events are anything with a Name method; StringState and
// StringEvent cover the common case. Transitions are registered per
// (state, event) pair and may carry guards, which pick between several
// transitions for the same pair, and actions, which run before the state
// changes and can veto it by returning an error. Observers registered with
// WithObserver see every completed transition.
//
// # Usage
//
//	const (
//		idle       = statemachine.StringState("idle")
//		validating = statemachine.StringState("validating")
//		invalid    = statemachine.StringState("invalid")
//		valid      = statemachine.StringState("valid")
//	)
//
//	sm, err := statemachine.New(idle,
//		statemachine.WithTransition(idle, validating, submit),
//		statemachine.WithTransition(validating, valid, check, statemachine.WithGuard(isValid)),
//		statemachine.WithTransition(validating, invalid, check),
//		statemachine.WithObserver(logTransition),
//	)
//
//	if err := sm.Fire(ctx, check, result); err != nil {
//		// ...
//	}
//
// The first transition whose guards pass wins, so register guarded
// transitions before their fallback.
//
// # Errors
//
// Fire returns a *TransitionError wrapping ErrNoTransition when nothing is
// registered for the pair, or ErrRejected when every guard said no. Action
// errors are wrapped with "action failed".
//
// SimpleStateMachine is safe for concurrent use. Actions run under its lock
// and must not call back into the same machine; observers run after the lock
// is released.
package statemachine
