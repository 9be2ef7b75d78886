package squish

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
)

// Spawn parameter ranges. Positions stay inside a fixed inset of the window;
// envelopes and frequencies are integer-grained uniform draws.
const (
	spawnInset = 100

	spawnEnvelopeMin = 100 // millesimal scale, 0.100
	spawnEnvelopeMax = 200 // millesimal scale, 0.200

	spawnFrequencyMin = 5
	spawnFrequencyMax = 15
)

// Config describes the demo window and its one texture. There is no runtime
// configuration surface beyond this struct; the demo binary hardcodes it.
type Config struct {
	Title       string
	Width       int
	Height      int
	TexturePath string
}

// Game is the demo's ebiten.Game implementation. It owns the entity world,
// the shared texture handle, the random source for spawn parameters, and the
// debug overlay.
type Game struct {
	cfg      Config
	world    donburi.World
	textures *TextureStore
	texture  *Texture
	rng      *rand.Rand
	overlay  *Overlay

	keys []ebiten.Key // scratch buffer for the per-frame key scan
}

// NewGame loads the configured texture and prepares an empty world. The
// random source is passed in, seeded once by the caller.
func NewGame(cfg Config, rng *rand.Rand) (*Game, error) {
	store := NewTextureStore()
	tex, err := store.Acquire(cfg.TexturePath)
	if err != nil {
		return nil, err
	}

	world := donburi.NewWorld()
	return &Game{
		cfg:      cfg,
		world:    world,
		textures: store,
		texture:  tex,
		rng:      rng,
		overlay:  NewOverlay(world),
	}, nil
}

// World exposes the entity store.
func (g *Game) World() donburi.World {
	return g.world
}

// Update runs one simulation tick: key scan and spawning, then the squish and
// fade systems in fixed order, then the event pump and overlay. Rendering
// happens in Draw, after all of these, so a freshly spawned sprite is never
// drawn before its first squish update.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	g.spawnFromKeys()
	UpdateSquish(g.world, dt)
	UpdateFade(g.world)
	SpawnEvent.ProcessEvents(g.world)

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay.Toggle()
	}
	g.overlay.Update(dt)

	return nil
}

// Draw renders all sprites and then the overlay. The screen arrives cleared
// to black each frame.
func (g *Game) Draw(screen *ebiten.Image) {
	DrawSprites(g.world, screen)
	g.overlay.Draw(screen)
}

// Layout reports the fixed logical screen size; the window is not resizable.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// spawnFromKeys spawns one sprite for every letter key with a key-down edge
// this frame. Edge-triggered: holding a key does not repeat, and several
// keys pressed in the same frame each spawn independently.
func (g *Game) spawnFromKeys() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if k < ebiten.KeyA || k > ebiten.KeyZ {
			continue
		}
		pos, envelope, freq := randomSpawnParams(g.rng, g.cfg.Width, g.cfg.Height)
		SpawnSprite(g.world, g.texture, pos, envelope, freq)
	}
}

// randomSpawnParams draws a spawn position within the window inset, a scale
// envelope, and an oscillation frequency from the uniform integer ranges
// above.
func randomSpawnParams(rng *rand.Rand, width, height int) (pos, envelope Vec2, freq float64) {
	pos = Vec2{
		X: float64(spawnInset + rng.IntN(width-2*spawnInset+1)),
		Y: float64(spawnInset + rng.IntN(height-2*spawnInset+1)),
	}
	envelope = Vec2{
		X: float64(spawnEnvelopeMin+rng.IntN(spawnEnvelopeMax-spawnEnvelopeMin+1)) / 1000,
		Y: float64(spawnEnvelopeMin+rng.IntN(spawnEnvelopeMax-spawnEnvelopeMin+1)) / 1000,
	}
	freq = float64(spawnFrequencyMin + rng.IntN(spawnFrequencyMax-spawnFrequencyMin+1))
	return pos, envelope, freq
}
