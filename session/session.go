// Package session ties one loaded level to the player and its entities. It
// has no rendering dependency so tools and tests can drive it headless.
package session

import (
	"fmt"
	"log"

	"github.com/milk9111/sacredfruit/entity"
	"github.com/milk9111/sacredfruit/input"
	"github.com/milk9111/sacredfruit/level"
	"github.com/milk9111/sacredfruit/levels"
	"github.com/milk9111/sacredfruit/player"
	"github.com/milk9111/sacredfruit/prefabs"
	"github.com/milk9111/sacredfruit/tileset"
)

type Session struct {
	Level    *level.Level
	Player   *player.Player
	Entities *entity.Set

	text     string
	finished bool
	ticks    int
}

// New starts a session on lvl with the player standing at its spawn.
func New(lvl *level.Level, tuning player.Tuning, specs *prefabs.EntitiesSpec) (*Session, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	set, err := entity.NewSet(lvl, specs)
	if err != nil {
		return nil, fmt.Errorf("session: level %s: %w", lvl.Name, err)
	}
	return &Session{
		Level:    lvl,
		Player:   player.New(lvl.SpawnPosition(), tuning),
		Entities: set,
	}, nil
}

// Load reads the named level (a path on disk or an embedded level name) along
// with the player tuning and entity prefabs.
func Load(name string, ts *tileset.Tileset) (*Session, error) {
	lvl, err := levels.Load(name, ts)
	if err != nil {
		return nil, fmt.Errorf("session: load level %s: %w", name, err)
	}
	tuning, err := player.LoadTuning()
	if err != nil {
		return nil, err
	}
	specs, err := prefabs.LoadEntitiesSpec()
	if err != nil {
		return nil, err
	}
	return New(lvl, tuning, specs)
}

// Tick advances the player and then the entities by dt seconds. Text shown
// by a script lasts until the next tick.
func (s *Session) Tick(dt float64, in input.State) {
	s.ticks++
	s.Player.Advance(dt, in, s.Level)
	s.text = ""
	s.Entities.Update(dt, s.Player.Box(), s)
}

func (s *Session) Ticks() int { return s.ticks }

// Text is the message raised by a touched entity this tick, if any.
func (s *Session) Text() string { return s.text }

// Finished reports whether the player has reached the level's goal.
func (s *Session) Finished() bool { return s.finished }

// ShowText is called from entity scripts.
func (s *Session) ShowText(text string) {
	s.text = text
}

// FinishLevel is called from entity scripts.
func (s *Session) FinishLevel() {
	if !s.finished {
		log.Printf("session: level %s finished after %d ticks", s.Level.Name, s.ticks)
	}
	s.finished = true
}

// Restart kills the player, who respawns once the death animation ends.
func (s *Session) Restart() {
	s.Player.Kill()
}

// ReloadTuning re-reads player.yaml. An invalid file keeps the old tuning.
func (s *Session) ReloadTuning() error {
	tuning, err := player.LoadTuning()
	if err != nil {
		return err
	}
	s.Player.SetTuning(tuning)
	return nil
}

// ReloadEntities rebuilds the entity set from entities.yaml and recompiles
// the scripts.
func (s *Session) ReloadEntities() error {
	specs, err := prefabs.LoadEntitiesSpec()
	if err != nil {
		return err
	}
	set, err := entity.NewSet(s.Level, specs)
	if err != nil {
		return fmt.Errorf("session: level %s: %w", s.Level.Name, err)
	}
	s.Entities = set
	return nil
}
