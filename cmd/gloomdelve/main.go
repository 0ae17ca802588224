// gloomdelve is a terminal dungeon crawl. Build:
//
//	go build -o gloomdelve ./cmd/gloomdelve
//
// Usage:
//
//	./gloomdelve [--seed 12345]
//
// Arrows/hjkl move by compass; wasd steers relative to facing. Enter or e
// interacts, space waits, f fires the weapon special, 1-9 use inventory
// slots, r restarts, q quits.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"gloomdelve/internal/engine"
	"gloomdelve/internal/logging"
	"gloomdelve/internal/render"
	"gloomdelve/internal/telemetry"
)

func main() {
	seed := flag.Int64("seed", 0, "RNG seed (0 picks one from the clock)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		// Not fatal, env vars may be set directly.
		log.Printf("note: .env file not loaded: %v", err)
	}
	logging.Init()

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("warning: telemetry setup failed, running without it: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("error shutting down telemetry: %v", err)
			}
		}()
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	eng := engine.NewSeeded(*seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal setup failed: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init failed: %v", err)
	}
	defer screen.Fini()

	run(screen, eng)
}

// run is the blocking input/draw loop. The engine is synchronous: one key,
// one Apply, one frame.
func run(screen tcell.Screen, eng *engine.Engine) {
	r := render.NewRenderer(screen)
	r.DrawFrame(eng.Snapshot())

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			r.DrawFrame(eng.Snapshot())

		case *tcell.EventKey:
			cmd, quit := render.KeyToCommand(ev)
			if quit {
				return
			}
			if cmd.Kind == engine.CmdNone {
				continue
			}
			eng.Apply(cmd)
			r.DrawFrame(eng.Snapshot())
		}
	}
}
