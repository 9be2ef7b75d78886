package squish

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SpawnInfo describes a sprite entity that was just created.
type SpawnInfo struct {
	Entity   donburi.Entity
	Position Vec2
}

// SpawnEvent is published once per SpawnSprite call. Subscribers run when the
// game pumps the world's event queue at the end of each update.
var SpawnEvent = events.NewEventType[SpawnInfo]()

// SpawnSprite creates one sprite entity at pos with an identity transform, an
// opaque white center-anchored sprite sharing tex, and a squish state with
// the given scale envelope and oscillation frequency. The texture handle is
// retained; the matching release happens when the fade system destroys the
// entity.
//
// Inputs are not validated. Non-positive or extreme envelopes and frequencies
// produce degenerate but safe motion.
func SpawnSprite(w donburi.World, tex *Texture, pos Vec2, envelope Vec2, freq float64) donburi.Entity {
	tex.Retain()

	e := w.Create(Transform, Sprite, Squish)
	entry := w.Entry(e)

	Transform.SetValue(entry, TransformData{
		Translation: Vec3{pos.X, pos.Y, 0},
		Rotation:    QuatIdentity(),
		Scale:       Vec3{1, 1, 1},
	})
	Sprite.SetValue(entry, SpriteData{
		Texture: tex,
		Tint:    ColorWhite,
		Anchor:  Anchor{Type: AnchorCenter},
	})
	Squish.SetValue(entry, SquishData{
		Scale:     envelope,
		Timer:     0,
		Frequency: freq,
	})

	SpawnEvent.Publish(w, SpawnInfo{Entity: e, Position: pos})
	return e
}
