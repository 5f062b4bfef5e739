package player

// Clip names an animation of the player sprite. The renderer maps clips to
// sprite-sheet rows; the simulation only needs their timing.
type Clip int

const (
	ClipIdle Clip = iota
	ClipWalk
	ClipRun
	ClipRise
	ClipFall
	ClipLand
	ClipDash
	ClipDie
)

var clipNames = map[Clip]string{
	ClipIdle: "idle",
	ClipWalk: "walk",
	ClipRun:  "run",
	ClipRise: "rise",
	ClipFall: "fall",
	ClipLand: "land",
	ClipDash: "dash",
	ClipDie:  "die",
}

func (c Clip) String() string {
	if n, ok := clipNames[c]; ok {
		return n
	}
	return "unknown"
}

func clipByName(name string) (Clip, bool) {
	for c, n := range clipNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

type ClipDef struct {
	Frames    int
	FrameTime float64
	Loop      bool
}

// Duration is the time one pass of the clip takes.
func (d ClipDef) Duration() float64 {
	return float64(d.Frames) * d.FrameTime
}

// animEpsilon absorbs float drift when summing frame deltas.
const animEpsilon = 1e-9

type animator struct {
	clip       Clip
	frame      int
	frameTimer float64
	totalTimer float64
}

func (a *animator) reset() {
	a.frame = 0
	a.frameTimer = 0
	a.totalTimer = 0
}

// play switches to c, restarting only when the clip changes.
func (a *animator) play(c Clip) {
	if a.clip == c {
		return
	}
	a.clip = c
	a.reset()
}

// advance moves the current clip forward by dt and reports whether a
// non-looping clip has finished.
func (a *animator) advance(dt float64, def ClipDef) bool {
	a.frameTimer += dt
	a.totalTimer += dt

	if a.totalTimer >= def.Duration()-animEpsilon {
		a.totalTimer = 0
		if !def.Loop {
			return true
		}
	}

	if a.frameTimer > def.FrameTime {
		a.frame = (a.frame + 1) % def.Frames
		a.frameTimer = 0
	}
	return false
}
