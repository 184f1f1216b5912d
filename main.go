package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"SketchBoard/internal/state"
	"SketchBoard/internal/ui"

	"github.com/gogpu/gg"
)

func main() {
	debug := flag.Bool("debug", false, "log rasterizer diagnostics to stderr")
	legacy := flag.Bool("legacy-history", false, "keep the original asymmetric undo/redo behaviour")
	flag.Parse()

	if *debug {
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	policy := state.DefaultPolicy()
	if *legacy {
		policy = state.LegacyPolicy()
		log.Println("Using legacy history policy")
	}

	log.Println("Starting Sketch Board")
	ui.RunApp(policy)
}
