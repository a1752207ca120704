package mcts

// Expansion is a lazy generator of (action, child-state) pairs for a fixed parent state. At most
// one action is ever buffered ahead between Start() and IsFinished; once IsFinished, no further
// pairs can be produced.
type Expansion struct {
	state      State
	actions    []interface{}
	cursor     int
	nextAction interface{}
	isStarted  bool
	isFinished bool
}

// NewExpansion builds an (unstarted) Expansion over state's actions.
func NewExpansion(state State) *Expansion {
	return &Expansion{state: state}
}

// IsStarted reports whether Start has been called.
func (e *Expansion) IsStarted() bool {
	return e.isStarted
}

// IsFinished reports whether all actions have been produced.
func (e *Expansion) IsFinished() bool {
	return e.isFinished
}

// Start caches the state's action list and buffers the first action. It may be called exactly
// once; a second call is a usage error.
func (e *Expansion) Start() {
	if e.isStarted {
		panic(ErrExpansionAlreadyStarted)
	}
	e.isStarted = true
	e.actions = e.state.Actions()
	e.advance()
}

func (e *Expansion) advance() {
	if e.cursor >= len(e.actions) {
		e.nextAction = nil
		e.isFinished = true
		return
	}
	e.nextAction = e.actions[e.cursor]
	e.cursor++
}

// Next produces the next (action, child-state) pair by cloning the parent state and applying the
// currently-buffered action, then advances the buffer. Calling Next before Start, or after
// IsFinished, is a usage error.
func (e *Expansion) Next() (action interface{}, child State) {
	if !e.isStarted {
		panic(ErrExpansionNotStarted)
	}
	if e.isFinished {
		panic(ErrExpansionFinished)
	}
	action = e.nextAction
	child = e.state.Copy()
	child.Apply(action)
	e.advance()
	return action, child
}
