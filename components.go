package squish

import "github.com/yohamta/donburi"

// TransformData holds an entity's placement. Scale starts at (1, 1, 1); the
// squish system rewrites X and Y every frame and leaves Z alone.
type TransformData struct {
	Translation Vec3
	Rotation    Quat
	Scale       Vec3
}

var Transform = donburi.NewComponentType[TransformData]()

// SpriteData is the visual component: a shared texture handle, a tint, and
// the anchor used as draw origin and rotation pivot.
type SpriteData struct {
	Texture *Texture
	Tint    Color
	Anchor  Anchor
}

var Sprite = donburi.NewComponentType[SpriteData]()

// SquishData drives the periodic non-uniform scale animation. Timer is in
// seconds and wraps at 2π; Frequency is in radians per second.
type SquishData struct {
	Scale     Vec2 // target scale envelope
	Timer     float64
	Frequency float64
}

var Squish = donburi.NewComponentType[SquishData]()
