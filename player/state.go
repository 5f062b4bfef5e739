package player

// State is the exclusive movement state of the player. Ground contact and the
// dash capability are tracked separately (Player.grounded, Player.canDash).
type State int

const (
	StateAirborne State = iota
	StateGrounded
	StateJumping
	// StateLanding covers the lookahead window before touchdown and the
	// landing animation after it.
	StateLanding
	StateDashing
	StateDying
)

func (s State) String() string {
	switch s {
	case StateAirborne:
		return "airborne"
	case StateGrounded:
		return "grounded"
	case StateJumping:
		return "jumping"
	case StateLanding:
		return "landing"
	case StateDashing:
		return "dashing"
	case StateDying:
		return "dying"
	}
	return "unknown"
}

// transitions lists every legal state change. Anything else is refused by
// setState.
var transitions = map[State]map[State]bool{
	StateGrounded: {StateAirborne: true, StateJumping: true, StateDashing: true, StateDying: true},
	StateAirborne: {StateGrounded: true, StateLanding: true, StateJumping: true, StateDashing: true, StateDying: true},
	StateJumping:  {StateAirborne: true, StateGrounded: true, StateLanding: true, StateDashing: true, StateDying: true},
	StateLanding:  {StateGrounded: true, StateAirborne: true, StateJumping: true, StateDashing: true, StateDying: true},
	StateDashing:  {StateGrounded: true, StateAirborne: true, StateDying: true},
	StateDying:    {StateAirborne: true},
}

// CanTransition reports whether from -> to is legal.
func CanTransition(from, to State) bool {
	if from == to {
		return true
	}
	return transitions[from][to]
}

// setState moves to s if the transition table allows it.
func (p *Player) setState(s State) bool {
	if !CanTransition(p.state, s) {
		return false
	}
	p.state = s
	return true
}

// settle leaves a timed state (landing, dashing) for whichever of grounded or
// airborne matches the current contact.
func (p *Player) settle() {
	if p.grounded {
		p.setState(StateGrounded)
	} else {
		p.setState(StateAirborne)
	}
}
