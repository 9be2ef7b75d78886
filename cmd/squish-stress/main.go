// Squish-stress drives the squish and fade systems headless under a
// profiler. It spawns a batch of sprite entities sharing one texture, runs a
// fixed number of simulated frames, and reports how many entities survived.
//
// Profiling:
//
//	go build ./cmd/squish-stress
//	./squish-stress -entities 50000 -frames 600 -memprofile
//	go tool pprof -http=":8000" squish-stress mem.pprof
package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/squish"
)

const (
	frameDt = 1.0 / 60.0
	width   = 1280
	height  = 720
)

func main() {
	entities := flag.Int("entities", 10000, "number of entities to spawn")
	frames := flag.Int("frames", 600, "number of simulated frames to run")
	mem := flag.Bool("memprofile", false, "write an allocation profile instead of a CPU profile")
	flag.Parse()

	mode := profile.CPUProfile
	if *mem {
		mode = profile.MemProfileAllocs
	}
	p := profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook)
	defer p.Stop()

	world := donburi.NewWorld()
	tex := squish.NewTexture(ebiten.NewImage(1, 1))
	rng := rand.New(rand.NewPCG(1, 2))

	log.Printf("spawning %d entities", *entities)
	for range *entities {
		pos := squish.Vec2{X: float64(rng.IntN(width)), Y: float64(rng.IntN(height))}
		envelope := squish.Vec2{X: 0.1 + rng.Float64()*0.1, Y: 0.1 + rng.Float64()*0.1}
		freq := float64(5 + rng.IntN(11))
		squish.SpawnSprite(world, tex, pos, envelope, freq)
	}
	squish.SpawnEvent.ProcessEvents(world)

	log.Printf("running %d frames", *frames)
	start := time.Now()
	for range *frames {
		squish.UpdateSquish(world, frameDt)
		squish.UpdateFade(world)
	}
	elapsed := time.Since(start)

	log.Printf("done: %d entities alive after %d frames in %v (%.2f us/frame)",
		world.Len(), *frames, elapsed, float64(elapsed.Microseconds())/float64(*frames))
}
