package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// SimpleStateMachine is a mutex-guarded in-memory state machine.
// Transitions are indexed as [fromState][event][]Transition; for the same
// pair the first one whose guards pass wins.
type SimpleStateMachine struct {
	initialState State
	currentState State
	transitions  map[string]map[string][]Transition
	observers    []Observer
	mu           sync.RWMutex
}

func newSimpleStateMachine(initialState State) *SimpleStateMachine {
	return &SimpleStateMachine{
		initialState: initialState,
		currentState: initialState,
		transitions:  make(map[string]map[string][]Transition),
	}
}

func (sm *SimpleStateMachine) Current() State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.currentState
}

// Is reports whether the machine currently sits in state.
func (sm *SimpleStateMachine) Is(state State) bool {
	if state == nil {
		return false
	}
	return sm.Current().Name() == state.Name()
}

func (sm *SimpleStateMachine) AddTransition(from, to State, event Event, guards []Guard, actions []Action) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	byEvent, ok := sm.transitions[from.Name()]
	if !ok {
		byEvent = make(map[string][]Transition)
		sm.transitions[from.Name()] = byEvent
	}
	byEvent[event.Name()] = append(byEvent[event.Name()], Transition{
		From:    from,
		To:      to,
		Event:   event,
		Guards:  guards,
		Actions: actions,
	})
	return nil
}

// Fire takes the first allowed transition for event. Actions run while the
// machine is locked; observers run after it is unlocked.
func (sm *SimpleStateMachine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	sm.mu.Lock()
	from := sm.currentState

	candidates := sm.transitions[from.Name()][event.Name()]
	if len(candidates) == 0 {
		sm.mu.Unlock()
		return &TransitionError{State: from.Name(), Event: event.Name(), Err: ErrNoTransition}
	}

	t := firstAllowed(ctx, candidates, from, event, data)
	if t == nil {
		sm.mu.Unlock()
		return &TransitionError{State: from.Name(), Event: event.Name(), Err: ErrRejected}
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, from, t.To, event, data); err != nil {
			sm.mu.Unlock()
			return fmt.Errorf("action failed: %w", err)
		}
	}

	sm.currentState = t.To
	observers := sm.observers
	sm.mu.Unlock()

	for _, observe := range observers {
		observe(ctx, from, t.To, event)
	}
	return nil
}

func (sm *SimpleStateMachine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	candidates := sm.transitions[sm.currentState.Name()][event.Name()]
	return firstAllowed(ctx, candidates, sm.currentState, event, data) != nil
}

func (sm *SimpleStateMachine) Reset() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.currentState = sm.initialState
	return nil
}

func firstAllowed(ctx context.Context, candidates []Transition, from State, event Event, data any) *Transition {
	for i := range candidates {
		if guardsPass(ctx, candidates[i].Guards, from, event, data) {
			return &candidates[i]
		}
	}
	return nil
}

func guardsPass(ctx context.Context, guards []Guard, from State, event Event, data any) bool {
	for _, guard := range guards {
		if guard != nil && !guard(ctx, from, event, data) {
			return false
		}
	}
	return true
}
