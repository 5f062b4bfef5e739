package player

import "github.com/milk9111/sacredfruit/common"

// detectGround updates ground contact from the solid tiles below the box.
// A floor within LandingProbe pixels of a falling player opens the landing
// window; a floor touching the feet grounds the player and fires any
// buffered jump.
func (p *Player) detectGround(world World) {
	grid := world.Tiles()
	box := p.Box()
	feet := box.Offset(0, 1)
	probe := feet.Offset(0, p.tuning.LandingProbe)

	cx, cy := common.Cell(box.X), common.Cell(box.Y)
	for x := cx - 1; x <= cx+1; x++ {
		for y := cy + 2; y <= cy+4; y++ {
			if !grid.InBounds(x, y) {
				continue
			}
			t := grid.At(x, y)
			if !t.Solid {
				continue
			}

			if p.vel.Y >= 0 && !p.grounded && t.Box.Intersects(probe) {
				if p.state == StateLanding || p.setState(StateLanding) {
					p.anim.play(ClipLand)
					p.anim.reset()
				}
			}

			if t.Box.Intersects(feet) {
				p.grounded = true
				if p.state == StateAirborne || p.state == StateJumping {
					p.setState(StateGrounded)
				}
				if p.state != StateDashing {
					p.canDash = true
				}
				// the jump stays queued until a state that allows it
				if front, ok := p.queue.Peek(); ok && front == ActionJump && p.jump() {
					p.queue.Pop()
				}
				return
			}
		}
	}

	p.airborneSpeedX = p.vel.X
	if p.grounded {
		p.anim.reset()
	}
	p.grounded = false
	if p.state == StateGrounded {
		p.setState(StateAirborne)
	}
}
