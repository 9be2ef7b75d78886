package squish

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

const (
	overlayFadeDuration = 0.25 // seconds
	overlayRefresh      = 0.5  // seconds between text redraws
)

// Overlay is a togglable debug readout showing FPS, TPS, the live entity
// count, and the total number of spawns. It fades in and out with a short
// tween and redraws its text every ~0.5 seconds.
type Overlay struct {
	world donburi.World
	img   *ebiten.Image

	visible bool
	alpha   float64
	tween   *gween.Tween

	spawned int
	elapsed float64
}

// NewOverlay creates a hidden overlay that counts spawns on the given world.
func NewOverlay(w donburi.World) *Overlay {
	o := &Overlay{
		world:   w,
		img:     ebiten.NewImage(140, 64),
		elapsed: overlayRefresh, // redraw on first visible frame
	}
	SpawnEvent.Subscribe(w, func(_ donburi.World, _ SpawnInfo) {
		o.spawned++
	})
	return o
}

// Toggle flips visibility and starts a fade from the current alpha, so
// rapid toggling never pops.
func (o *Overlay) Toggle() {
	o.visible = !o.visible
	target := float32(0)
	if o.visible {
		target = 1
	}
	o.tween = gween.New(float32(o.alpha), target, overlayFadeDuration, ease.OutQuad)
}

// Update advances the fade tween and refreshes the readout text.
func (o *Overlay) Update(dt float64) {
	if o.tween != nil {
		v, done := o.tween.Update(float32(dt))
		o.alpha = float64(v)
		if done {
			o.tween = nil
		}
	}
	if o.alpha <= 0 {
		return
	}

	o.elapsed += dt
	if o.elapsed < overlayRefresh {
		return
	}
	o.elapsed = 0

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf(
		"FPS: %.1f\nTPS: %.1f\nLive: %d\nSpawned: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), spriteQuery.Count(o.world), o.spawned))
}

// Draw composites the overlay onto the screen at its current fade alpha.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.alpha <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleAlpha(float32(o.alpha))
	screen.DrawImage(o.img, &op)
}
