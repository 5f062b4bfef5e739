// Package player simulates the player's movement against a level's tile grid:
// input to velocity, axis-separated swept collision, ground and landing
// detection, jump buffering, dash, death and respawn.
package player

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sacredfruit/common"
	"github.com/milk9111/sacredfruit/input"
	"github.com/milk9111/sacredfruit/level"
)

// World is the static geometry the player moves through.
type World interface {
	Tiles() *level.Grid
	// Size is the level extent in tiles.
	Size() (w, h int)
	SpawnPosition() cp.Vector
}

type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

type Player struct {
	tuning Tuning

	// pos is the sprite position; the collision box hangs off it.
	pos       cp.Vector
	vel       cp.Vector
	remainder cp.Vector

	// airborneSpeedX is |vx| when the player last left the ground.
	airborneSpeedX float64
	maxSpeed       float64
	facing         Facing

	state    State
	grounded bool
	canDash  bool

	queue ActionQueue
	anim  animator
}

// New places a player at spawn. It starts airborne; the first Advance finds
// the ground.
func New(spawn cp.Vector, tuning Tuning) *Player {
	return &Player{
		tuning:   tuning,
		pos:      spawn,
		maxSpeed: tuning.MaxSpeedWalking,
		facing:   FacingRight,
		state:    StateAirborne,
		canDash:  true,
	}
}

// Box is the collision box in world pixels.
func (p *Player) Box() common.Rect {
	h := p.tuning.Hitbox
	return common.Rect{X: p.pos.X + h.X, Y: p.pos.Y + h.Y, Width: h.Width, Height: h.Height}
}

func (p *Player) Position() cp.Vector { return p.pos }
func (p *Player) Velocity() cp.Vector { return p.vel }
func (p *Player) State() State        { return p.state }
func (p *Player) Grounded() bool      { return p.grounded }
func (p *Player) CanDash() bool       { return p.canDash }
func (p *Player) Facing() Facing      { return p.facing }
func (p *Player) IsDead() bool        { return p.state == StateDying }
func (p *Player) Queue() *ActionQueue { return &p.queue }
func (p *Player) Tuning() Tuning      { return p.tuning }

// Animation returns the current clip and frame index.
func (p *Player) Animation() (Clip, int) {
	return p.anim.clip, p.anim.frame
}

// SetTuning swaps the movement constants, e.g. after a prefab reload. The
// current motion state is kept.
func (p *Player) SetTuning(t Tuning) {
	p.tuning = t
}

// Kill starts the death animation. The player respawns when it finishes.
func (p *Player) Kill() {
	if p.state == StateDying {
		return
	}
	if !p.setState(StateDying) {
		return
	}
	p.anim.play(ClipDie)
	p.anim.reset()
}

// Advance runs one simulation tick of dt seconds.
func (p *Player) Advance(dt float64, in input.State, world World) {
	if p.state == StateDying {
		if p.anim.advance(dt, p.clip(ClipDie)) {
			p.respawn(world)
		}
		return
	}

	if p.state == StateLanding {
		if p.anim.advance(dt, p.clip(ClipLand)) {
			p.anim.reset()
			p.settle()
		}
	}

	if p.state == StateDashing {
		p.vel.Y = 0
		p.anim.advance(dt, p.clip(ClipDash))
		p.applyFriction(dt, p.tuning.DashFriction)
		if abs(p.vel.X) <= p.tuning.MaxSpeedRunning {
			p.settle()
		}
	}

	if p.state != StateDashing {
		p.steer(dt, in)
	}
	p.handleJump(in)
	p.applyGravity(dt)
	p.capSpeed(in)
	p.handleDash(in)
	p.selectAnimation(dt)

	p.move(world, p.vel.X*dt, p.vel.Y*dt)
	if p.state == StateDying {
		return
	}
	p.detectGround(world)
}

// jump reports whether the player left the ground. A dash refuses it.
func (p *Player) jump() bool {
	if !p.setState(StateJumping) {
		return false
	}
	p.vel.Y = -p.tuning.JumpSpeed
	p.anim.play(ClipRise)
	p.anim.reset()
	return true
}

func (p *Player) respawn(world World) {
	p.vel = cp.Vector{}
	p.remainder = cp.Vector{}
	p.pos = world.SpawnPosition()
	p.facing = FacingRight
	p.queue.Clear()
	p.anim.play(ClipFall)
	p.anim.reset()
	p.grounded = false
	p.airborneSpeedX = 0
	p.setState(StateAirborne)
	p.detectGround(world)
}

func (p *Player) clip(c Clip) ClipDef {
	return p.tuning.Clips[c]
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
