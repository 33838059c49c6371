package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ecotech/contactform/pkg/logger"
	"github.com/ecotech/contactform/pkg/statemachine"
)

// Submission attempt states.
const (
	StateIdle       = statemachine.StringState("idle")
	StateValidating = statemachine.StringState("validating")
	StateInvalid    = statemachine.StringState("invalid")
	StateValid      = statemachine.StringState("valid")
	StateSubmitting = statemachine.StringState("submitting")
	StateSubmitted  = statemachine.StringState("submitted")
)

// Submission attempt events.
const (
	EventSubmit    = statemachine.StringEvent("submit")
	EventValidated = statemachine.StringEvent("validated")
	EventDismiss   = statemachine.StringEvent("dismiss")
	EventSend      = statemachine.StringEvent("send")
	EventDelivered = statemachine.StringEvent("delivered")
	EventFail      = statemachine.StringEvent("fail")
	EventReset     = statemachine.StringEvent("reset")
)

// ErrNotValidated is returned by Attempt.Submit before a valid Validate.
var ErrNotValidated = errors.New("contact: submission has not been validated")

// Attempt drives one submission through
// idle → validating → {invalid → idle, valid → submitting → submitted → idle}.
// An Attempt is used once per request and is not reused.
type Attempt struct {
	sm        statemachine.StateMachine
	submitter Submitter
	result    Result
}

// NewAttempt creates an attempt in StateIdle. Observers see every transition.
func NewAttempt(submitter Submitter, observers ...statemachine.Observer) *Attempt {
	a := &Attempt{submitter: submitter}

	opts := []statemachine.Option{
		statemachine.WithTransition(StateIdle, StateValidating, EventSubmit),
		statemachine.WithTransition(StateValidating, StateValid, EventValidated, statemachine.WithGuard(resultIsValid)),
		statemachine.WithTransition(StateValidating, StateInvalid, EventValidated),
		statemachine.WithTransition(StateInvalid, StateIdle, EventDismiss),
		statemachine.WithTransition(StateValid, StateSubmitting, EventSend),
		statemachine.WithTransition(StateSubmitting, StateSubmitted, EventDelivered, statemachine.WithAction(a.deliver)),
		statemachine.WithTransition(StateSubmitting, StateIdle, EventFail),
		statemachine.WithTransition(StateSubmitted, StateIdle, EventReset),
	}
	for _, o := range observers {
		opts = append(opts, statemachine.WithObserver(o))
	}
	a.sm = statemachine.MustNew(StateIdle, opts...)
	return a
}

// State returns the current state.
func (a *Attempt) State() statemachine.State {
	return a.sm.Current()
}

// Result returns the last validation result.
func (a *Attempt) Result() Result {
	return a.result
}

// Validate runs the validator. An invalid attempt goes back to idle; a
// valid one waits in StateValid for Submit.
func (a *Attempt) Validate(ctx context.Context, fields Fields, consent bool) (Result, error) {
	if err := a.sm.Fire(ctx, EventSubmit, nil); err != nil {
		return Result{}, err
	}

	a.result = Validate(fields, consent)
	if err := a.sm.Fire(ctx, EventValidated, a.result); err != nil {
		return a.result, err
	}

	if a.sm.Is(StateInvalid) {
		return a.result, a.sm.Fire(ctx, EventDismiss, nil)
	}
	return a.result, nil
}

// Submit delivers the validated submission and returns to idle either way.
// Delivery errors wrap ErrSubmitFailed.
func (a *Attempt) Submit(ctx context.Context) error {
	if !a.sm.Is(StateValid) {
		return ErrNotValidated
	}
	if err := a.sm.Fire(ctx, EventSend, nil); err != nil {
		return err
	}

	if err := a.sm.Fire(ctx, EventDelivered, a.result.Submission); err != nil {
		if failErr := a.sm.Fire(ctx, EventFail, nil); failErr != nil {
			return errors.Join(err, failErr)
		}
		return err
	}
	return a.sm.Fire(ctx, EventReset, nil)
}

func (a *Attempt) deliver(ctx context.Context, _, _ statemachine.State, _ statemachine.Event, data any) error {
	sub, ok := data.(Submission)
	if !ok {
		return fmt.Errorf("%w: unexpected payload %T", ErrSubmitFailed, data)
	}
	if err := a.submitter.Submit(ctx, sub); err != nil {
		if errors.Is(err, ErrSubmitFailed) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	return nil
}

func resultIsValid(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
	r, ok := data.(Result)
	return ok && r.Valid
}

// LogTransitions returns an observer that logs every transition at debug level.
func LogTransitions(log *slog.Logger) statemachine.Observer {
	return func(ctx context.Context, from, to statemachine.State, event statemachine.Event) {
		log.DebugContext(ctx, "submission state changed",
			logger.Component("contact"),
			logger.Event(event.Name()),
			slog.String("from", from.Name()),
			slog.String("to", to.Name()),
		)
	}
}
