//go:build ebiten

package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/Flokey82/gencoastline"
	"github.com/Flokey82/gencoastline/coast"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var modes = []string{
	gencoastline.DisplayRamp,
	gencoastline.DisplayNormalized,
	gencoastline.DisplayNoiseMap,
	gencoastline.DisplayMaterials,
}

// viewer shows a terrain and regenerates it on demand.
type viewer struct {
	cfg           *gencoastline.Config
	width, height int
	terrain       *gencoastline.Terrain
	image         *ebiten.Image

	mode    int
	overlay bool
	started time.Time
}

func newViewer(cfg *gencoastline.Config, seed int64, width, height int) (*viewer, error) {
	v := &viewer{
		cfg:     cfg,
		width:   width,
		height:  height,
		started: time.Now(),
	}
	if err := v.reset(seed); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *viewer) reset(seed int64) error {
	t, err := gencoastline.NewTerrainFromConfig(seed, v.width, v.height, v.cfg)
	if err != nil {
		return err
	}
	v.terrain = t
	return v.refresh()
}

func (v *viewer) refresh() error {
	img, err := v.terrain.Image(modes[v.mode], v.overlay)
	if err != nil {
		return err
	}
	v.image = ebiten.NewImageFromImage(img)
	return nil
}

// Update handles key presses.
func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return v.reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.mode = (v.mode + 1) % len(modes)
		return v.refresh()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		v.overlay = !v.overlay
		return v.refresh()
	}
	return nil
}

// Draw scales the terrain image to fill the screen and prints the HUD.
func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	iw, ih := v.image.Bounds().Dx(), v.image.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(iw), float64(sh)/float64(ih))
	screen.DrawImage(v.image, op)

	counts := v.terrain.ZoneCounts()
	face := basicfont.Face7x13
	lines := []string{
		fmt.Sprintf("seed %d  mode %s  overlay %t", v.terrain.Seed, modes[v.mode], v.overlay),
		fmt.Sprintf("mainland %d  barrier %d  sound %d  ocean %d",
			counts[coast.ZoneMainland], counts[coast.ZoneBarrier], counts[coast.ZoneSound], counts[coast.ZoneOcean]),
		"R reseed  Space mode  O overlay  Q quit",
	}
	for i, l := range lines {
		text.Draw(screen, l, face, 8, 16+i*15, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}

// Layout renders at the heightmap's native resolution times two.
func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width * 2, v.height * 2
}
