// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package features

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"skillsite/internal/ai"
)

// ErrBusy is returned when a request for the same owner and kind is still
// outstanding.
var ErrBusy = errors.New("features: request already in flight")

// Generator produces text for a feature kind. *ai.Generator satisfies it.
type Generator interface {
	Generate(ctx context.Context, kind ai.Kind, userText string) (string, error)
}

// Runner drives one feature through Idle, Validating, Requesting and back
// to Idle.
type Runner struct {
	gen   Generator
	guard *Guard

	// observe, when set, is called on every status transition.
	observe func(kind ai.Kind, s Status)
}

// NewRunner creates a runner. A nil guard gets a fresh one.
func NewRunner(gen Generator, guard *Guard) *Runner {
	if guard == nil {
		guard = NewGuard()
	}
	return &Runner{gen: gen, guard: guard}
}

// Observe registers a hook for status transitions.
func (r *Runner) Observe(fn func(kind ai.Kind, s Status)) {
	r.observe = fn
}

func (r *Runner) transition(st *State, kind ai.Kind, s Status) {
	st.Status = s
	if r.observe != nil {
		r.observe(kind, s)
	}
}

// Commit persists a finished State. Run calls it while the in-flight key
// is still held, so results of one owner and kind are stored in the order
// the requests were admitted.
type Commit func(State)

// Run performs one generation for owner. The returned State always ends
// Idle. ErrBusy means another request for the same owner and kind is in
// flight; a context error means the caller went away and the result must
// be discarded. commit, when non-nil, receives the State of every run that
// reaches Idle without either of those errors.
func (r *Runner) Run(ctx context.Context, owner string, kind ai.Kind, input string, commit Commit) (State, error) {
	if _, ok := ai.ParseKind(string(kind)); !ok {
		return State{Status: StatusIdle}, fmt.Errorf("features: unknown kind %q", kind)
	}
	msgs := MessagesFor(kind)

	release, ok := r.guard.Acquire(owner + ":" + string(kind))
	if !ok {
		return State{Input: input, Err: BusyMessage, Status: StatusIdle}, ErrBusy
	}
	defer release()

	st := State{Input: input}
	r.transition(&st, kind, StatusValidating)

	if err := ai.CheckInput(input); err != nil {
		st.ErrKind = ai.Classify(err)
		st.Err = msgs.Message(st.ErrKind)
		r.transition(&st, kind, StatusIdle)
		r.commit(commit, st)
		return st, nil
	}

	r.transition(&st, kind, StatusRequesting)
	text, err := r.gen.Generate(ctx, kind, input)

	if ctxErr := ctx.Err(); ctxErr != nil {
		r.transition(&st, kind, StatusIdle)
		return st, ctxErr
	}

	if err != nil {
		st.ErrKind = ai.Classify(err)
		st.Err = msgs.Message(st.ErrKind)
		slog.Error("feature generation failed", "kind", kind, "error_kind", st.ErrKind, "error", err)
	} else {
		st.Output = text
		slog.Debug("feature generated", "kind", kind, "chars", len(text))
	}

	r.transition(&st, kind, StatusIdle)
	r.commit(commit, st)
	return st, nil
}

func (r *Runner) commit(fn Commit, st State) {
	if fn != nil {
		fn(st)
	}
}
