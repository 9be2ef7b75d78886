// Squish opens a 1280x720 window; pressing any letter key spawns a wobbling,
// fading sprite. F1 toggles a debug overlay. Closing the window exits.
package main

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/squish"
)

const (
	windowTitle = "Squish"
	screenW     = 1280
	screenH     = 720
	texturePath = "kirb.png"
)

func main() {
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

	game, err := squish.NewGame(squish.Config{
		Title:       windowTitle,
		Width:       screenW,
		Height:      screenH,
		TexturePath: texturePath,
	}, rng)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
