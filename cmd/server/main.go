package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/Flokey82/gencoastline"
)

var (
	addr       string  = ":3333"
	noiseKind  string  = "perlin"
	preset     string  = "fixed"
	waterLevel float64 = 0.3
	resolution int     = 256
	maxSize    int     = 2048
	cacheSize  int     = 16
)

func init() {
	flag.StringVar(&addr, "addr", addr, "listen address")
	flag.StringVar(&noiseKind, "noise", noiseKind, "noise source (perlin, opensimplex, flat)")
	flag.StringVar(&preset, "preset", preset, "paint preset (fixed, waterlevel, simple)")
	flag.Float64Var(&waterLevel, "water_level", waterLevel, "water level for the waterlevel preset")
	flag.IntVar(&resolution, "resolution", resolution, "material map resolution")
	flag.IntVar(&maxSize, "max_size", maxSize, "largest accepted width or height")
	flag.IntVar(&cacheSize, "cache", cacheSize, "number of generated terrains to keep")
}

func main() {
	flag.Parse()

	// Initialize the config.
	cfg := gencoastline.NewConfig()
	cfg.Coast.Noise = noiseKind
	cfg.Preset = preset
	cfg.WaterLevel = waterLevel
	cfg.Resolution = resolution

	// Make sure the config is usable before we start serving.
	if _, err := gencoastline.NewTerrainFromConfig(0, 2, 2, cfg); err != nil {
		log.Fatal(err)
	}

	srv := newServer(cfg, maxSize, cacheSize)
	log.Println("Listening on", addr)
	log.Fatal(http.ListenAndServe(addr, srv.router()))
}
