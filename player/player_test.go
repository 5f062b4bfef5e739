package player

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sacredfruit/input"
	"github.com/milk9111/sacredfruit/level"
)

// flatLevel is a long room with a floor on row 10. The spawn stands on it.
func flatLevel(t *testing.T) *level.Level {
	t.Helper()
	rows := append(emptyRows(10, 40), floorRows(2, 40)...)
	return newTestLevel(t, standingAt(40, 10), rows...)
}

func TestDyingSuspendsThenRespawns(t *testing.T) {
	w := flatLevel(t)
	p := New(w.SpawnPosition(), DefaultTuning())
	settleOnGround(t, p, w)

	in := input.NewSnapshot()
	in.SetHeld(input.KeyRight, true)
	for range 30 {
		tick(p, 1.0/60, in, w)
	}
	in.SetHeld(input.KeyRight, false)

	p.Kill()
	if !p.IsDead() {
		t.Fatalf("Kill should start dying")
	}
	if clip, _ := p.Animation(); clip != ClipDie {
		t.Fatalf("expected die clip, got %s", clip)
	}

	frozen := p.Position()
	for i := range 2 {
		in.Press(input.KeyJump)
		in.Press(input.KeyDash)
		tick(p, 0.2, in, w)
		if !p.IsDead() {
			t.Fatalf("respawned after %d ticks of 0.2s, want 3", i+1)
		}
		if p.Position() != frozen {
			t.Fatalf("dead player moved from %v to %v", frozen, p.Position())
		}
	}

	tick(p, 0.2, in, w)
	if p.IsDead() {
		t.Fatalf("player should respawn once the 0.6s death animation ends")
	}
	if p.Position() != w.SpawnPosition() {
		t.Fatalf("expected respawn at %v, got %v", w.SpawnPosition(), p.Position())
	}
	if p.Velocity() != (cp.Vector{}) {
		t.Fatalf("respawn should zero velocity, got %v", p.Velocity())
	}
	if p.Facing() != FacingRight {
		t.Fatalf("respawn should face right")
	}
	if p.Queue().Len() != 0 {
		t.Fatalf("respawn should clear the action queue")
	}
	if p.State() != StateGrounded || !p.Grounded() {
		t.Fatalf("spawn is on the floor, expected grounded, got %s", p.State())
	}
}

func TestKillWhileDyingIsIgnored(t *testing.T) {
	w := flatLevel(t)
	p := New(w.SpawnPosition(), DefaultTuning())
	p.Kill()
	in := input.NewSnapshot()
	tick(p, 0.2, in, w)
	tick(p, 0.2, in, w)
	p.Kill()
	tick(p, 0.2, in, w)
	if p.IsDead() {
		t.Fatalf("a second Kill must not restart the death animation")
	}
}

func TestJumpBufferFiresOnce(t *testing.T) {
	lvl := newTestLevel(t, cp.Vector{X: 64, Y: 40},
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"##########",
		"##########",
	)
	p := New(lvl.SpawnPosition(), DefaultTuning())
	in := input.NewSnapshot()

	const dt = 1.0 / 60
	buffered := false
	jumps := 0
	wasRising := false
	for i := 0; i < 240; i++ {
		if !buffered && p.State() == StateLanding && !p.Grounded() {
			in.Press(input.KeyJump)
			tick(p, dt, in, lvl)
			if p.Queue().Len() != 1 {
				t.Fatalf("jump pressed in the landing window should be buffered, queue len %d", p.Queue().Len())
			}
			// A second press before touchdown must not queue another jump.
			if p.State() == StateLanding && !p.Grounded() {
				in.Press(input.KeyJump)
				tick(p, dt, in, lvl)
				if p.Queue().Len() > 1 {
					t.Fatalf("jump buffered twice")
				}
			}
			buffered = true
		} else {
			tick(p, dt, in, lvl)
		}

		rising := p.Velocity().Y < 0
		if rising && !wasRising {
			jumps++
		}
		wasRising = rising
	}

	if !buffered {
		t.Fatalf("player never entered the landing window")
	}
	if jumps != 1 {
		t.Fatalf("buffered jump should fire exactly once, fired %d times", jumps)
	}
	if p.Queue().Len() != 0 {
		t.Fatalf("queue should be empty after the buffered jump, len %d", p.Queue().Len())
	}
	if p.State() != StateGrounded {
		t.Fatalf("expected the player back on the ground, got %s", p.State())
	}
}

func TestBufferedJumpSurvivesDash(t *testing.T) {
	w := flatLevel(t)
	p := New(w.SpawnPosition(), DefaultTuning())
	settleOnGround(t, p, w)

	p.Queue().Push(ActionJump)
	in := input.NewSnapshot()
	in.Press(input.KeyDash)
	tick(p, 1.0/60, in, w)
	if p.State() != StateDashing {
		t.Fatalf("expected a dash, got %s", p.State())
	}
	if p.Queue().Len() != 1 {
		t.Fatalf("touching ground mid-dash dropped the buffered jump, queue len %d", p.Queue().Len())
	}

	jumped := false
	for i := 0; i < 240 && !jumped; i++ {
		tick(p, 1.0/60, in, w)
		if p.State() == StateDashing && p.Queue().Len() != 1 {
			t.Fatalf("tick %d: buffered jump lost while dashing", i)
		}
		jumped = p.Velocity().Y < 0
	}
	if !jumped {
		t.Fatalf("buffered jump never fired after the dash, state %s", p.State())
	}
	if p.Queue().Len() != 0 {
		t.Fatalf("queue should be empty once the jump fires, len %d", p.Queue().Len())
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	w := flatLevel(t)
	p := New(w.SpawnPosition(), DefaultTuning())
	settleOnGround(t, p, w)

	in := input.NewSnapshot()
	in.Press(input.KeyJump)
	tick(p, 1.0/60, in, w)
	if p.State() != StateJumping || p.Velocity().Y >= 0 {
		t.Fatalf("expected a jump, got %s vy %g", p.State(), p.Velocity().Y)
	}

	for range 5 {
		tick(p, 1.0/60, in, w)
	}
	vy := p.Velocity().Y
	in.Press(input.KeyJump)
	tick(p, 1.0/60, in, w)
	if p.Velocity().Y < vy-1 {
		t.Fatalf("jump in mid-air should not relaunch, vy %g -> %g", vy, p.Velocity().Y)
	}
}

func TestJumpCut(t *testing.T) {
	w := flatLevel(t)
	p := New(w.SpawnPosition(), DefaultTuning())
	settleOnGround(t, p, w)

	in := input.NewSnapshot()
	in.Press(input.KeyJump)
	tick(p, 1.0/60, in, w)
	tick(p, 1.0/60, in, w)
	in.Release(input.KeyJump)
	tick(p, 1.0/60, in, w)

	cut := DefaultTuning().JumpCutSpeed
	if vy := p.Velocity().Y; vy < -cut {
		t.Fatalf("releasing jump should cap upward speed at %g, got %g", cut, vy)
	}
}

func TestDashGating(t *testing.T) {
	lvl := newTestLevel(t, cp.Vector{X: 32, Y: 16}, append(emptyRows(18, 40), floorRows(2, 40)...)...)
	p := New(lvl.SpawnPosition(), DefaultTuning())
	in := input.NewSnapshot()
	const dt = 1.0 / 60

	in.Press(input.KeyDash)
	tick(p, dt, in, lvl)
	if p.State() != StateDashing || p.CanDash() {
		t.Fatalf("first dash should start, state %s canDash %v", p.State(), p.CanDash())
	}
	if p.Velocity().X != DefaultTuning().DashSpeed {
		t.Fatalf("dash should face right at %g, got %g", DefaultTuning().DashSpeed, p.Velocity().X)
	}
	if p.Velocity().Y != 0 {
		t.Fatalf("dash should hold altitude, vy %g", p.Velocity().Y)
	}

	for i := 0; p.State() == StateDashing; i++ {
		if i > 60 {
			t.Fatalf("dash never ended")
		}
		if p.Velocity().Y != 0 {
			t.Fatalf("vy should stay zero while dashing, got %g", p.Velocity().Y)
		}
		tick(p, dt, in, lvl)
	}
	if p.Velocity().X > DefaultTuning().MaxSpeedRunning {
		t.Fatalf("dash should end at or below running speed, vx %g", p.Velocity().X)
	}

	in.Press(input.KeyDash)
	tick(p, dt, in, lvl)
	if p.State() == StateDashing {
		t.Fatalf("second dash before touching ground should be refused")
	}

	for i := 0; !p.Grounded(); i++ {
		if i > 600 {
			t.Fatalf("player never landed")
		}
		tick(p, dt, in, lvl)
	}
	if !p.CanDash() {
		t.Fatalf("touching ground should restore the dash")
	}

	in.SetHeld(input.KeyLeft, true)
	tick(p, dt, in, lvl)
	in.SetHeld(input.KeyLeft, false)
	in.Press(input.KeyDash)
	tick(p, dt, in, lvl)
	if p.State() != StateDashing || p.Velocity().X != -DefaultTuning().DashSpeed {
		t.Fatalf("expected a leftward dash, state %s vx %g", p.State(), p.Velocity().X)
	}
}

func TestSpeedCap(t *testing.T) {
	cases := []struct {
		name string
		run  bool
		want float64
	}{
		{"walking", false, 125},
		{"running", true, 200},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := flatLevel(t)
			p := New(w.SpawnPosition(), DefaultTuning())
			settleOnGround(t, p, w)

			in := input.NewSnapshot()
			in.SetHeld(input.KeyRight, true)
			in.SetHeld(input.KeyRun, c.run)
			for range 8 {
				tick(p, 0.125, in, w)
			}
			if got := p.Velocity().X; got != c.want {
				t.Fatalf("after 1s of acceleration vx = %g, want %g", got, c.want)
			}
			if !p.Grounded() {
				t.Fatalf("player left the floor")
			}
		})
	}
}

func TestDangerKills(t *testing.T) {
	cases := []struct {
		name string
		row  string
	}{
		{"spike", "^^^^^^^^"},
		{"solid_spike", "XXXXXXXX"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl := newTestLevel(t, cp.Vector{X: 40, Y: 16},
				"........",
				"........",
				"........",
				"........",
				"........",
				c.row,
				"########",
			)
			p := New(lvl.SpawnPosition(), DefaultTuning())
			in := input.NewSnapshot()
			for i := 0; !p.IsDead(); i++ {
				if i > 120 {
					t.Fatalf("player landed on %s without dying", c.name)
				}
				tick(p, 1.0/60, in, lvl)
			}
			if tile, ok := overlapsSolid(lvl.Tiles(), p.Box()); ok {
				t.Fatalf("dead player overlaps tile (%d, %d)", tile.X, tile.Y)
			}
		})
	}
}

func TestFallingOutKills(t *testing.T) {
	lvl := newTestLevel(t, cp.Vector{X: 16, Y: 0}, emptyRows(6, 4)...)
	p := New(lvl.SpawnPosition(), DefaultTuning())
	in := input.NewSnapshot()
	for i := 0; !p.IsDead(); i++ {
		if i > 120 {
			t.Fatalf("player should die after falling out of the level")
		}
		tick(p, 1.0/60, in, lvl)
	}
	_, h := lvl.PixelSize()
	if p.Box().Bottom() > h {
		t.Fatalf("box left the level: bottom %g > %g", p.Box().Bottom(), h)
	}
}

// idleSnapshot is everything an idle tick must leave unchanged.
type idleSnapshot struct {
	pos, vel, rem     cp.Vector
	state             State
	grounded, canDash bool
}

func snapshotOf(p *Player) idleSnapshot {
	return idleSnapshot{
		pos:      p.Position(),
		vel:      p.Velocity(),
		rem:      p.remainder,
		state:    p.State(),
		grounded: p.Grounded(),
		canDash:  p.CanDash(),
	}
}

func TestIdleRoundTrip(t *testing.T) {
	// rem, when non-zero, is forced into the remainder once stopped.
	cases := []struct {
		name string
		dt   float64
		walk int
		rem  cp.Vector
	}{
		{name: "60hz", dt: 1.0 / 60, walk: 20},
		{name: "64hz", dt: 1.0 / 64, walk: 24},
		{name: "8hz", dt: 0.125, walk: 8},
		{name: "half_pixel_right", dt: 1.0 / 60, walk: 20, rem: cp.Vector{X: 0.5}},
		{name: "half_pixel_left", dt: 1.0 / 60, walk: 20, rem: cp.Vector{X: -0.5}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := flatLevel(t)
			p := New(w.SpawnPosition(), DefaultTuning())
			settleOnGround(t, p, w)

			in := input.NewSnapshot()
			in.SetHeld(input.KeyRight, true)
			for range c.walk {
				tick(p, c.dt, in, w)
			}
			if clip, _ := p.Animation(); clip != ClipWalk {
				t.Fatalf("expected walk clip while moving, got %s", clip)
			}

			in.SetHeld(input.KeyRight, false)
			for i := 0; p.Velocity().X != 0; i++ {
				if i > 240 {
					t.Fatalf("friction never stopped the player, vx %g", p.Velocity().X)
				}
				tick(p, c.dt, in, w)
			}
			tick(p, c.dt, in, w)
			if c.rem != (cp.Vector{}) {
				p.remainder = c.rem
			}

			if p.State() != StateGrounded {
				t.Fatalf("expected grounded, got %s", p.State())
			}
			if clip, frame := p.Animation(); clip != ClipIdle || frame != 0 {
				t.Fatalf("expected idle frame 0, got %s %d", clip, frame)
			}

			before := snapshotOf(p)
			if before.vel != (cp.Vector{}) {
				t.Fatalf("expected zero velocity, got %v", before.vel)
			}
			for i := 0; i < 120; i++ {
				tick(p, c.dt, in, w)
				if got := snapshotOf(p); got != before {
					t.Fatalf("idle tick %d changed the player:\n got %+v\nwant %+v", i, got, before)
				}
			}
		})
	}
}

func emptyRows(n, width int) []string {
	return repeatRow(n, width, '.')
}

func floorRows(n, width int) []string {
	return repeatRow(n, width, '#')
}

func repeatRow(n, width int, ch byte) []string {
	row := make([]byte, width)
	for i := range row {
		row[i] = ch
	}
	rows := make([]string, n)
	for i := range rows {
		rows[i] = string(row)
	}
	return rows
}
