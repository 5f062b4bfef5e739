// Package input records per-frame key transitions for the simulation.
package input

// Key is a logical game key; the platform adapter maps physical keys onto it.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
	KeyRun
	KeyDash
	KeyPause
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyJump:
		return "jump"
	case KeyRun:
		return "run"
	case KeyDash:
		return "dash"
	case KeyPause:
		return "pause"
	}
	return "unknown"
}

// State is what the simulation reads each tick. Held is level-triggered;
// Triggered and Released are true only during the frame of the transition.
type State interface {
	Held(k Key) bool
	Triggered(k Key) bool
	Released(k Key) bool
}

// Snapshot collects the transitions of one frame. Only the first transition
// of a key within a frame is kept. Clear must run at the end of every frame.
type Snapshot struct {
	transitions map[Key]bool
	held        map[Key]bool
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		transitions: make(map[Key]bool),
		held:        make(map[Key]bool),
	}
}

// Press records that k went down this frame.
func (s *Snapshot) Press(k Key) {
	if _, ok := s.transitions[k]; !ok {
		s.transitions[k] = true
	}
	s.held[k] = true
}

// Release records that k went up this frame.
func (s *Snapshot) Release(k Key) {
	if _, ok := s.transitions[k]; !ok {
		s.transitions[k] = false
	}
	s.held[k] = false
}

func (s *Snapshot) Triggered(k Key) bool {
	down, ok := s.transitions[k]
	return ok && down
}

func (s *Snapshot) Released(k Key) bool {
	down, ok := s.transitions[k]
	return ok && !down
}

// Held reports the level-triggered state implied by the recorded presses and
// releases. Platform adapters may answer Held from the live device instead.
func (s *Snapshot) Held(k Key) bool {
	return s.held[k]
}

// SetHeld forces the level-triggered state of k without recording a
// transition.
func (s *Snapshot) SetHeld(k Key, down bool) {
	s.held[k] = down
}

// Clear drops this frame's transitions. Held state survives.
func (s *Snapshot) Clear() {
	clear(s.transitions)
}
