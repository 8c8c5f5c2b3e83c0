package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/Flokey82/gencoastline"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

var (
	seed       int64   = 42
	width      int     = 241
	height     int     = 241
	noiseKind  string  = "perlin"
	preset     string  = "fixed"
	waterLevel float64 = 0.3
	resolution int     = 512
	lod        int     = 0
	heightMult float64 = 20
	mode       string  = gencoastline.DisplayRamp
	overlay    bool    = false
	out        string  = "coastline"
	exportPNG  bool    = true
	exportOBJ  bool    = false
	exportJSON bool    = false
	exportRaw  bool    = false
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the terrain seed")
	flag.IntVar(&width, "width", width, "heightmap width")
	flag.IntVar(&height, "height", height, "heightmap height")
	flag.StringVar(&noiseKind, "noise", noiseKind, "noise source (perlin, opensimplex, flat)")
	flag.StringVar(&preset, "preset", preset, "paint preset (fixed, waterlevel, simple)")
	flag.Float64Var(&waterLevel, "water_level", waterLevel, "water level for the waterlevel preset")
	flag.IntVar(&resolution, "resolution", resolution, "material map resolution")
	flag.IntVar(&lod, "lod", lod, "mesh level of detail")
	flag.Float64Var(&heightMult, "height_multiplier", heightMult, "mesh height multiplier")
	flag.StringVar(&mode, "mode", mode, "png display mode (noisemap, normalized, ramp, materials)")
	flag.BoolVar(&overlay, "overlay", overlay, "draw the coastline and barrier centerlines")
	flag.StringVar(&out, "out", out, "output file prefix")
	flag.BoolVar(&exportPNG, "png", exportPNG, "export PNG")
	flag.BoolVar(&exportOBJ, "obj", exportOBJ, "export OBJ mesh")
	flag.BoolVar(&exportJSON, "geojson", exportJSON, "export coastline GeoJSON")
	flag.BoolVar(&exportRaw, "raw", exportRaw, "export raw float32 elevation")
}

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg := gencoastline.NewConfig()
	cfg.Coast.Noise = noiseKind
	cfg.Preset = preset
	cfg.WaterLevel = waterLevel
	cfg.Resolution = resolution
	cfg.LevelOfDetail = lod
	cfg.HeightMultiplier = heightMult

	t, err := gencoastline.NewTerrainFromConfig(seed, width, height, cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Zones:", t.ZoneCounts())

	if exportPNG {
		if err := t.ExportPng(out+".png", mode, overlay); err != nil {
			log.Fatal(err)
		}
	}
	if exportOBJ {
		if err := t.ExportOBJ(out + ".obj"); err != nil {
			log.Fatal(err)
		}
	}
	if exportJSON {
		if err := t.ExportGeoJSON(out + ".geojson"); err != nil {
			log.Fatal(err)
		}
	}
	if exportRaw {
		if err := t.ExportRaw(out + ".raw"); err != nil {
			log.Fatal(err)
		}
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
