package player

import (
	"math"

	"github.com/milk9111/sacredfruit/input"
)

// steer applies horizontal acceleration from the direction keys. Pushing
// against the current motion brakes harder the faster the player goes.
func (p *Player) steer(dt float64, in input.State) {
	right, left := in.Held(input.KeyRight), in.Held(input.KeyLeft)
	switch {
	case right:
		p.facing = FacingRight
		if !left {
			p.vel.X += p.tuning.AccelerationX * dt
		}
		if p.vel.X < 0 {
			p.applyFriction(dt, abs(p.vel.X)/p.tuning.TurnAssistDivisor)
		}
	case left:
		p.facing = FacingLeft
		p.vel.X -= p.tuning.AccelerationX * dt
		if p.vel.X > 0 {
			p.applyFriction(dt, abs(p.vel.X)/p.tuning.TurnAssistDivisor)
		}
	default:
		p.applyFriction(dt, 1)
	}
}

// applyFriction slows vx toward zero without crossing it.
func (p *Player) applyFriction(dt, factor float64) {
	f := p.tuning.Friction * factor * dt
	if p.vel.X > 0 {
		p.vel.X = math.Max(0, p.vel.X-f)
	} else if p.vel.X < 0 {
		p.vel.X = math.Min(0, p.vel.X+f)
	}
}

func (p *Player) handleJump(in input.State) {
	if in.Triggered(input.KeyJump) {
		switch {
		case p.grounded && p.state != StateDashing:
			p.jump()
		case !p.grounded && p.state == StateLanding:
			if front, ok := p.queue.Peek(); !ok || front != ActionJump {
				p.queue.Push(ActionJump)
			}
		}
	}

	if in.Released(input.KeyJump) && p.state == StateJumping && p.vel.Y < -p.tuning.JumpCutSpeed {
		p.vel.Y = -p.tuning.JumpCutSpeed
	}
}

func (p *Player) applyGravity(dt float64) {
	if p.grounded || p.state == StateDashing {
		return
	}
	scale := p.tuning.FallGravityScale
	if p.vel.Y < 0 {
		scale = p.tuning.RiseGravityScale
	}
	p.vel.Y += scale * p.tuning.Gravity * dt
}

// capSpeed clamps vx. In the air the cap is the speed the player left the
// ground with, bounded by the walking and running caps.
func (p *Player) capSpeed(in input.State) {
	if p.state == StateDashing {
		return
	}
	switch {
	case p.grounded && in.Held(input.KeyRun):
		p.maxSpeed = p.tuning.MaxSpeedRunning
	case p.grounded:
		p.maxSpeed = p.tuning.MaxSpeedWalking
	default:
		p.maxSpeed = math.Max(p.tuning.MaxSpeedWalking, math.Min(p.tuning.MaxSpeedRunning, abs(p.airborneSpeedX)))
	}
	p.vel.X = math.Max(-p.maxSpeed, math.Min(p.maxSpeed, p.vel.X))
}

func (p *Player) handleDash(in input.State) {
	if !in.Triggered(input.KeyDash) || !p.canDash || p.state == StateDashing {
		return
	}
	if !p.setState(StateDashing) {
		return
	}
	p.canDash = false
	p.vel.X = float64(p.facing) * p.tuning.DashSpeed
	p.vel.Y = 0
	p.anim.play(ClipDash)
}

func (p *Player) selectAnimation(dt float64) {
	switch p.state {
	case StateGrounded:
		speed := abs(p.vel.X)
		switch {
		case speed == 0:
			p.anim.play(ClipIdle)
		case speed <= p.tuning.MaxSpeedWalking+p.tuning.RunAnimMargin:
			p.anim.play(ClipWalk)
		default:
			p.anim.play(ClipRun)
		}
		p.anim.advance(dt, p.clip(p.anim.clip))
	case StateAirborne, StateJumping:
		if p.vel.Y < 0 {
			p.anim.play(ClipRise)
			if p.anim.advance(dt, p.clip(ClipRise)) && p.state == StateJumping {
				p.setState(StateAirborne)
			}
			return
		}
		p.anim.play(ClipFall)
		p.anim.advance(dt, p.clip(ClipFall))
		if p.state == StateJumping {
			p.setState(StateAirborne)
		}
	}
}
