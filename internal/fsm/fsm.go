// Package fsm provides a generic fold over a token sequence. Every evict
// command uses the same machine to turn its raw argument list into a
// structured flags value.
package fsm

// Outcome is what a step function returns after consuming one token.
type Outcome[S any] struct {
	state  S
	halted bool
}

// Continue resumes processing with the updated accumulator.
func Continue[S any](state S) Outcome[S] {
	return Outcome[S]{state: state}
}

// Halt freezes the accumulator at the given value; remaining tokens are
// ignored.
func Halt[S any](state S) Outcome[S] {
	return Outcome[S]{state: state, halted: true}
}

// StepFunc consumes the current accumulator and a single token. It must be
// pure: the machine applies it to tokens strictly in input order with no
// lookahead.
type StepFunc[S any] func(state S, token string) Outcome[S]

// StateMachine folds tokens into an accumulator value.
type StateMachine[S any] struct {
	step   StepFunc[S]
	state  S
	halted bool
}

// New builds a machine from a step function and an initial accumulator.
func New[S any](step StepFunc[S], initial S) *StateMachine[S] {
	return &StateMachine[S]{step: step, state: initial}
}

// Process feeds one token to the machine. Tokens arriving after a halt are
// dropped.
func (m *StateMachine[S]) Process(token string) {
	if m.halted {
		return
	}
	out := m.step(m.state, token)
	m.state = out.state
	m.halted = out.halted
}

// Run feeds every token in order.
func (m *StateMachine[S]) Run(tokens []string) {
	for _, tok := range tokens {
		m.Process(tok)
	}
}

// FinalState extracts the accumulator. Whether the result is usable is the
// caller's decision; a missing required flag is a post-fold check, not a
// machine-level error.
func (m *StateMachine[S]) FinalState() S {
	return m.state
}

// Halted reports whether a step function stopped processing early.
func (m *StateMachine[S]) Halted() bool {
	return m.halted
}
