package player

import (
	"fmt"

	"github.com/milk9111/sacredfruit/common"
	"github.com/milk9111/sacredfruit/prefabs"
)

// Tuning holds the movement constants. Speeds are in pixels per second,
// accelerations in pixels per second squared.
type Tuning struct {
	AccelerationX     float64
	Gravity           float64
	Friction          float64
	MaxSpeedWalking   float64
	MaxSpeedRunning   float64
	RunAnimMargin     float64
	TurnAssistDivisor float64
	JumpSpeed         float64
	// JumpCutSpeed is the upward speed kept when jump is released early.
	JumpCutSpeed     float64
	RiseGravityScale float64
	FallGravityScale float64
	DashSpeed        float64
	// DashFriction multiplies Friction while dashing.
	DashFriction float64
	// LandingProbe is how far below the feet a floor starts the landing window.
	LandingProbe float64
	// Hitbox is relative to the sprite position.
	Hitbox common.Rect
	Clips  map[Clip]ClipDef
}

func DefaultTuning() Tuning {
	return Tuning{
		AccelerationX:     300,
		Gravity:           1000,
		Friction:          600,
		MaxSpeedWalking:   125,
		MaxSpeedRunning:   200,
		RunAnimMargin:     25,
		TurnAssistDivisor: 40,
		JumpSpeed:         375,
		JumpCutSpeed:      50,
		RiseGravityScale:  1.0,
		FallGravityScale:  1.5,
		DashSpeed:         450,
		DashFriction:      4,
		LandingProbe:      48,
		Hitbox:            common.Rect{X: 10, Y: 4, Width: 10, Height: 28},
		Clips: map[Clip]ClipDef{
			ClipIdle: {Frames: 1, FrameTime: 0.1, Loop: true},
			ClipWalk: {Frames: 4, FrameTime: 0.1, Loop: true},
			ClipRun:  {Frames: 8, FrameTime: 0.1, Loop: true},
			ClipRise: {Frames: 5, FrameTime: 0.2},
			ClipFall: {Frames: 1, FrameTime: 0.2},
			ClipLand: {Frames: 4, FrameTime: 0.1},
			ClipDash: {Frames: 3, FrameTime: 0.05, Loop: true},
			ClipDie:  {Frames: 3, FrameTime: 0.2},
		},
	}
}

// TuningFromSpec overlays the non-zero fields of spec on DefaultTuning.
func TuningFromSpec(spec *prefabs.PlayerSpec) (Tuning, error) {
	t := DefaultTuning()
	if spec == nil {
		return t, nil
	}
	set := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	set(&t.AccelerationX, spec.AccelerationX)
	set(&t.Gravity, spec.Gravity)
	set(&t.Friction, spec.Friction)
	set(&t.MaxSpeedWalking, spec.MaxSpeedWalking)
	set(&t.MaxSpeedRunning, spec.MaxSpeedRunning)
	set(&t.RunAnimMargin, spec.RunAnimMargin)
	set(&t.TurnAssistDivisor, spec.TurnAssistDivisor)
	set(&t.JumpSpeed, spec.JumpSpeed)
	set(&t.JumpCutSpeed, spec.JumpCutSpeed)
	set(&t.RiseGravityScale, spec.RiseGravityScale)
	set(&t.FallGravityScale, spec.FallGravityScale)
	set(&t.DashSpeed, spec.DashSpeed)
	set(&t.DashFriction, spec.DashFriction)
	set(&t.LandingProbe, spec.LandingProbe)
	set(&t.Hitbox.X, spec.Collider.OffsetX)
	set(&t.Hitbox.Y, spec.Collider.OffsetY)
	set(&t.Hitbox.Width, spec.Collider.Width)
	set(&t.Hitbox.Height, spec.Collider.Height)

	for name, def := range spec.Animation {
		clip, ok := clipByName(name)
		if !ok {
			return Tuning{}, fmt.Errorf("player: unknown animation %q", name)
		}
		t.Clips[clip] = ClipDef{Frames: def.FrameCount, FrameTime: def.FrameTime, Loop: def.Loop}
	}

	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuning reads prefabs/player.yaml.
func LoadTuning() (Tuning, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return Tuning{}, err
	}
	return TuningFromSpec(spec)
}

// Validate rejects tunings the resolver cannot honor. The hitbox must fit in
// one column and two rows so the 3x4 collision neighborhood covers it, and
// be taller than one row so the ground scan reaches the floor under it.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"acceleration_x", t.AccelerationX},
		{"gravity", t.Gravity},
		{"friction", t.Friction},
		{"max_speed_walking", t.MaxSpeedWalking},
		{"max_speed_running", t.MaxSpeedRunning},
		{"turn_assist_divisor", t.TurnAssistDivisor},
		{"jump_speed", t.JumpSpeed},
		{"rise_gravity_scale", t.RiseGravityScale},
		{"fall_gravity_scale", t.FallGravityScale},
		{"dash_friction", t.DashFriction},
		{"landing_probe", t.LandingProbe},
		{"collider.width", t.Hitbox.Width},
		{"collider.height", t.Hitbox.Height},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("player: %s must be positive, got %g", p.name, p.v)
		}
	}
	if t.MaxSpeedRunning < t.MaxSpeedWalking {
		return fmt.Errorf("player: max_speed_running %g below max_speed_walking %g", t.MaxSpeedRunning, t.MaxSpeedWalking)
	}
	if t.DashSpeed <= t.MaxSpeedRunning {
		return fmt.Errorf("player: dash_speed %g must exceed max_speed_running %g", t.DashSpeed, t.MaxSpeedRunning)
	}
	if t.JumpCutSpeed < 0 || t.JumpCutSpeed > t.JumpSpeed {
		return fmt.Errorf("player: jump_cut_speed %g outside [0, %g]", t.JumpCutSpeed, t.JumpSpeed)
	}
	if t.Hitbox.Width > common.TileSize || t.Hitbox.Height > 2*common.TileSize {
		return fmt.Errorf("player: collider %gx%g larger than %dx%d", t.Hitbox.Width, t.Hitbox.Height, common.TileSize, 2*common.TileSize)
	}
	if t.Hitbox.Height <= common.TileSize {
		return fmt.Errorf("player: collider height %g must exceed %d", t.Hitbox.Height, common.TileSize)
	}
	for clip := ClipIdle; clip <= ClipDie; clip++ {
		def, ok := t.Clips[clip]
		if !ok {
			return fmt.Errorf("player: missing animation %s", clip)
		}
		if def.Frames < 1 || def.FrameTime <= 0 {
			return fmt.Errorf("player: animation %s needs frames >= 1 and frame_time > 0", clip)
		}
	}
	return nil
}
