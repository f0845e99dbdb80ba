package main

import (
	"flag"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/slingshot/internal/application/game"
	"github.com/younwookim/slingshot/internal/application/replay"
	"github.com/younwookim/slingshot/internal/application/scene/playing"
	"github.com/younwookim/slingshot/internal/infrastructure/audio"
	"github.com/younwookim/slingshot/internal/infrastructure/config"
)

func main() {
	levelFlag := flag.String("level", "demo", "Level to load from configs/levels")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record run.msgpack)")
	replayFlag := flag.String("replay", "", "Play back a recorded file instead of reading the mouse")
	exitFlag := flag.Bool("replay-exit", false, "Quit when the replay has finished")
	seedFlag := flag.Int64("seed", 0, "Bird queue seed (0 picks one from the clock)")
	debugFlag := flag.Bool("debug", false, "Verbose logging and body outlines")
	muteFlag := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	if *debugFlag {
		log.SetLevel(log.DebugLevel)
	}

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatal("failed to get config subfs", "err", err)
	}
	loader := config.NewFSLoader(fsys, "configs")

	opts := playing.Options{
		Seed:       *seedFlag,
		RecordPath: *recordFlag,
		Debug:      *debugFlag,
		ExitAfter:  *exitFlag,
	}

	level := *levelFlag
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatal("failed to load replay", "path", *replayFlag, "err", err)
		}
		if data.Level != "" {
			level = data.Level
		}
		opts.Replay = data
	}

	cfg, err := loader.LoadAll(level)
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}

	sounds := audio.NewManager(*muteFlag)
	if err := sounds.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing muted", "err", err)
	}
	defer sounds.Cleanup()
	opts.Audio = sounds

	display := cfg.Physics.Display
	g := game.New(playing.New(cfg, opts), display.ScreenWidth, display.ScreenHeight)
	g.SetDT(cfg.Physics.Physics.Timestep)

	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal("game stopped", "err", err)
	}
}
