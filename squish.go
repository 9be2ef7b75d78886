package squish

// Vec2 is a 2D vector used for positions, offsets, sizes, and scale
// envelopes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector. Transforms are 3D even though the demo only draws in
// two dimensions; the Z components ride along untouched.
type Vec3 struct {
	X, Y, Z float64
}

// Color represents an RGBA color with components on a 0–255 scale. Channels
// are float64 so that sub-integer alpha decay accumulates across frames
// instead of truncating.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default sprite tint (no color modification, fully opaque).
var ColorWhite = Color{255, 255, 255, 255}
