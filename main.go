package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sacredfruit/common"
	"github.com/milk9111/sacredfruit/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlays and prefab hot reload")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "embedded level name or path to a .lvl file")
	tilesetName := flag.String("tileset", "forest", "tileset prefab name")
	mute := flag.Bool("mute", false, "disable sound effects")
	prefabDir := flag.String("prefabs", "prefabs", "directory checked for prefabs before the embedded copies (empty disables)")
	flag.Parse()

	prefabs.SetDiskDir(*prefabDir)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth*2, common.BaseHeight*2)
	ebiten.SetWindowTitle("sacred fruit")

	opts := Options{
		Level:   *levelName,
		Tileset: *tilesetName,
		Debug:   *debug,
		Mute:    *mute,
	}
	game, err := NewGame(opts)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
