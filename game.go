package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sacredfruit/assets"
	"github.com/milk9111/sacredfruit/common"
	"github.com/milk9111/sacredfruit/input"
	"github.com/milk9111/sacredfruit/levels"
	"github.com/milk9111/sacredfruit/obj"
	"github.com/milk9111/sacredfruit/player"
	"github.com/milk9111/sacredfruit/prefabs"
	"github.com/milk9111/sacredfruit/session"
	"github.com/milk9111/sacredfruit/tileset"
	"golang.org/x/image/colornames"
)

const (
	cameraZoom   = 2
	cameraSmooth = 0.15
	fadeSeconds  = 0.4
	endingText   = "You found the sacred fruit!"
	firstLevel   = "forest_1"
)

var skyColor = color.RGBA{R: 0x1b, G: 0x26, B: 0x33, A: 0xff}

type Game struct {
	debug    bool
	paused   bool
	quit     bool
	complete bool
	wasDead  bool
	clock    frameClock

	// previous tick's player status, for sound cues
	prevState    player.State
	prevGrounded bool

	tileset  *tileset.Tileset
	keyboard *obj.Keyboard
	session  *session.Session

	levelView      *obj.LevelView
	entityView     *obj.EntityView
	playerView     *obj.PlayerView
	collisionWorld *obj.CollisionWorld

	camera     *obj.Camera
	transition *obj.Transition
	pauseUI    *ebitenui.UI
	watcher    *prefabs.Watcher
	sounds     *assets.Sounds
}

type Options struct {
	// Level is an embedded level name or a .lvl path.
	Level   string
	Tileset string
	Debug   bool
	Mute    bool
}

func NewGame(opts Options) (*Game, error) {
	ts, err := tileset.Load(opts.Tileset)
	if err != nil {
		return nil, fmt.Errorf("tileset %s: %w", opts.Tileset, err)
	}

	g := &Game{
		debug:      opts.Debug,
		tileset:    ts,
		keyboard:   obj.NewKeyboard(),
		camera:     obj.NewCamera(common.BaseWidth, common.BaseHeight, cameraZoom),
		transition: obj.NewTransition(fadeSeconds),
		sounds:     assets.NewSounds(),
	}
	g.sounds.SetMuted(opts.Mute)
	g.camera.SetSmooth(cameraSmooth)
	g.transition.OnMidpoint = func(target string) {
		if err := g.loadLevel(target); err != nil {
			log.Printf("failed to load level %s: %v", target, err)
		}
	}
	g.pauseUI = NewPauseUI(g)

	levelName := opts.Level
	if levelName == "" {
		levelName = firstLevel
	}
	if err := g.loadLevel(levelName); err != nil {
		return nil, err
	}

	if opts.Debug && prefabs.DiskDir() != "" {
		w, err := prefabs.NewWatcher(prefabs.DiskDir(), filepath.Join(prefabs.DiskDir(), "scripts"))
		if err != nil {
			log.Printf("prefab hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) loadLevel(name string) error {
	s, err := session.Load(name, g.tileset)
	if err != nil {
		return err
	}
	g.session = s
	g.complete = false
	g.wasDead = false
	g.prevState = s.Player.State()
	g.prevGrounded = s.Player.Grounded()
	g.levelView = obj.NewLevelView(s.Level)
	g.entityView = obj.NewEntityView(s.Entities)
	g.playerView = obj.NewPlayerView(s.Player)
	g.collisionWorld = obj.NewCollisionWorld(s.Level)

	w, h := s.Level.PixelSize()
	g.camera.SetWorldBounds(w, h)
	g.camera.SnapTo(g.cameraTarget())
	log.Printf("loaded level %s (%dx%d tiles, %d entities)", s.Level.Name, s.Level.Width, s.Level.Height, len(s.Level.Entities))
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// Resume closes the pause menu.
func (g *Game) Resume() { g.paused = false }

// Restart kills the player so they respawn at the level start.
func (g *Game) Restart() {
	g.paused = false
	g.session.Restart()
}

// Quit ends the game after the current frame.
func (g *Game) Quit() { g.quit = true }

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	defer g.keyboard.Clear()

	dt := g.clock.step(time.Now(), 1.0/float64(ebiten.TPS()))
	g.keyboard.Poll()
	g.reloadPrefabs()

	if g.keyboard.Triggered(input.KeyPause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.transition.Active() {
		g.transition.Update(dt)
		return nil
	}

	g.session.Tick(dt, g.keyboard)
	g.playCues()
	if g.session.Finished() && !g.complete {
		g.sounds.Play(assets.SoundFruit)
		if next := levels.Next(g.session.Level.Name); next != "" {
			g.transition.Enter(next)
		} else {
			g.complete = true
		}
	}

	dead := g.session.Player.IsDead()
	if g.wasDead && !dead {
		g.camera.SnapTo(g.cameraTarget())
	} else {
		g.camera.Update(g.cameraTarget())
	}
	g.wasDead = dead

	if g.debug {
		g.collisionWorld.SyncPlayer(g.session.Player.Box())
	}
	return nil
}

// playCues plays a sound for each player state change of the last tick.
func (g *Game) playCues() {
	p := g.session.Player
	state, grounded := p.State(), p.Grounded()
	if state != g.prevState {
		switch state {
		case player.StateJumping:
			g.sounds.Play(assets.SoundJump)
		case player.StateDashing:
			g.sounds.Play(assets.SoundDash)
		case player.StateDying:
			g.sounds.Play(assets.SoundDie)
		}
	}
	if grounded && !g.prevGrounded && state != player.StateDying {
		g.sounds.Play(assets.SoundLand)
	}
	g.prevState, g.prevGrounded = state, grounded
}

// frameClock measures the real time between updates. The simulation gets the
// raw delta, however long the frame was.
type frameClock struct {
	last time.Time
}

// step returns the seconds since the previous call, or first on the first
// call.
func (c *frameClock) step(now time.Time, first float64) float64 {
	if c.last.IsZero() {
		c.last = now
		return first
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}

// reloadPrefabs applies prefab edits picked up by the watcher.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	for _, c := range g.watcher.Drain() {
		var err error
		switch {
		case c.Kind == prefabs.ChangeSpec && c.Name == "player.yaml":
			err = g.session.ReloadTuning()
		case c.Kind == prefabs.ChangeSpec && c.Name == "entities.yaml", c.Kind == prefabs.ChangeScript:
			if err = g.session.ReloadEntities(); err == nil {
				g.entityView = obj.NewEntityView(g.session.Entities)
			}
		default:
			continue
		}
		if err != nil {
			log.Printf("reload %s: %v", c.Name, err)
			continue
		}
		log.Printf("reloaded %s", c.Name)
	}
}

func (g *Game) cameraTarget() cp.Vector {
	box := g.session.Player.Box()
	return cp.Vector{X: box.X + box.Width/2, Y: box.Y + box.Height/2}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	camX, camY := g.camera.ViewTopLeft()
	zoom := g.camera.Zoom()

	g.levelView.Draw(screen, camX, camY, zoom)
	g.entityView.Draw(screen, camX, camY, zoom)
	g.playerView.Draw(screen, camX, camY, zoom)

	if g.debug {
		g.collisionWorld.DebugDraw(screen, camX, camY, zoom)
		g.entityView.DrawDebug(screen, camX, camY, zoom)
		g.playerView.DrawDebug(screen, camX, camY, zoom)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.2f  FPS: %.2f  level: %s", ebiten.ActualTPS(), ebiten.ActualFPS(), g.session.Level.Name))
	}

	obj.DrawText(screen, g.session.Text(), 40, colornames.White)
	if g.complete {
		obj.DrawText(screen, endingText, common.BaseHeight/2, colornames.Gold)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
	g.transition.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
