//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"uncurl/internal/app"
	"uncurl/internal/curve"
	"uncurl/internal/grid"

	"github.com/hajimehoshi/ebiten/v2"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [option]... <input path>\n", os.Args[0])
	fmt.Fprintln(flag.CommandLine.Output(), "Input must be an RGB byte stream, 3 bytes per pixel (R0,G0,B0,R1,G1,...); \"-\" reads stdin.")
	fmt.Fprintln(flag.CommandLine.Output(), "Pan with RMB drag, zoom with the mouse wheel, pick with LMB, Home resets the view, P writes a PNG snapshot.")
	fmt.Fprintln(flag.CommandLine.Output(), "Options:")
	flag.PrintDefaults()
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	cfg.Input = flag.Arg(0)

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	family, err := curve.ParseFamily(cfg.Curve)
	if err != nil {
		log.Fatal(err)
	}

	records, err := app.LoadRecords(cfg.Input)
	if err != nil {
		log.Fatal(err)
	}

	g, err := grid.Build(records, family)
	if err != nil {
		// A Build failure means the curve construction is broken, not
		// that the input was bad. Nothing to recover.
		log.Fatalf("map records: %v", err)
	}

	game := app.New(g, cfg)

	ebiten.SetWindowTitle("uncurl")
	ebiten.SetWindowSize(cfg.Window, cfg.Window)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
