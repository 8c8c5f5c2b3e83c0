//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/Flokey82/gencoastline"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	seed       int64  = 42
	width      int    = 256
	height     int    = 256
	scale      int    = 3
	noiseKind  string = "perlin"
	preset     string = "fixed"
	resolution int    = 256
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the initial terrain seed")
	flag.IntVar(&width, "width", width, "heightmap width")
	flag.IntVar(&height, "height", height, "heightmap height")
	flag.IntVar(&scale, "scale", scale, "window pixels per cell")
	flag.StringVar(&noiseKind, "noise", noiseKind, "noise source (perlin, opensimplex, flat)")
	flag.StringVar(&preset, "preset", preset, "paint preset (fixed, waterlevel, simple)")
	flag.IntVar(&resolution, "resolution", resolution, "material map resolution")
}

func main() {
	flag.Parse()

	cfg := gencoastline.NewConfig()
	cfg.Coast.Noise = noiseKind
	cfg.Preset = preset
	cfg.Resolution = resolution

	v, err := newViewer(cfg, seed, width, height)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("gencoastline")
	ebiten.SetWindowSize(width*scale, height*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Println("Closed viewer after", time.Since(v.started).String())
}
