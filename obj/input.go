package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/sacredfruit/input"
)

// binding maps one logical key onto keyboard keys and a gamepad button.
type binding struct {
	key     input.Key
	keys    []ebiten.Key
	gamepad ebiten.StandardGamepadButton
	// axis is -1 or +1 for directions also read from the left stick.
	axis int
}

var bindings = []binding{
	{key: input.KeyLeft, keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}, gamepad: ebiten.StandardGamepadButtonLeftLeft, axis: -1},
	{key: input.KeyRight, keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}, gamepad: ebiten.StandardGamepadButtonLeftRight, axis: 1},
	{key: input.KeyJump, keys: []ebiten.Key{ebiten.KeySpace}, gamepad: ebiten.StandardGamepadButtonRightBottom},
	{key: input.KeyRun, keys: []ebiten.Key{ebiten.KeyShiftLeft}, gamepad: ebiten.StandardGamepadButtonFrontBottomRight},
	{key: input.KeyDash, keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyK}, gamepad: ebiten.StandardGamepadButtonRightLeft},
	{key: input.KeyPause, keys: []ebiten.Key{ebiten.KeyEscape}, gamepad: ebiten.StandardGamepadButtonCenterRight},
}

const stickDeadzone = 0.3

// Keyboard feeds ebiten keyboard and gamepad state into an input.Snapshot.
// Held is answered from the live devices; transitions come from inpututil.
type Keyboard struct {
	*input.Snapshot

	gamepad ebiten.GamepadID
	hasPad  bool
	// stick remembers which stick directions were active last frame so they
	// produce press/release transitions like buttons do.
	stick map[input.Key]bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{Snapshot: input.NewSnapshot(), stick: map[input.Key]bool{}}
}

// Poll records this frame's transitions. Call once per Update before the
// simulation reads the snapshot, and Clear after it.
func (k *Keyboard) Poll() {
	ids := ebiten.AppendGamepadIDs(nil)
	k.hasPad = len(ids) > 0
	if k.hasPad {
		k.gamepad = ids[0]
	}

	for _, b := range bindings {
		pressed, released := false, false
		for _, key := range b.keys {
			pressed = pressed || inpututil.IsKeyJustPressed(key)
			released = released || inpututil.IsKeyJustReleased(key)
		}
		if k.hasPad {
			pressed = pressed || inpututil.IsStandardGamepadButtonJustPressed(k.gamepad, b.gamepad)
			released = released || inpututil.IsStandardGamepadButtonJustReleased(k.gamepad, b.gamepad)
			if b.axis != 0 {
				active := k.stickActive(b.axis)
				pressed = pressed || (active && !k.stick[b.key])
				released = released || (!active && k.stick[b.key])
				k.stick[b.key] = active
			}
		}

		if pressed {
			k.Press(b.key)
		} else if released {
			k.Release(b.key)
		}
	}
}

// Held reports the live device state of key.
func (k *Keyboard) Held(key input.Key) bool {
	for _, b := range bindings {
		if b.key != key {
			continue
		}
		for _, ek := range b.keys {
			if ebiten.IsKeyPressed(ek) {
				return true
			}
		}
		if k.hasPad {
			if ebiten.IsStandardGamepadButtonPressed(k.gamepad, b.gamepad) {
				return true
			}
			if b.axis != 0 && k.stickActive(b.axis) {
				return true
			}
		}
	}
	return false
}

func (k *Keyboard) stickActive(dir int) bool {
	x := ebiten.StandardGamepadAxisValue(k.gamepad, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if dir < 0 {
		return x < -stickDeadzone
	}
	return x > stickDeadzone
}
