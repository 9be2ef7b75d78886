package squish

// AnchorType selects one of the nine named anchor points within a texture,
// or Custom for an explicit pixel offset.
type AnchorType uint8

const (
	AnchorTopLeft AnchorType = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorCenterLeft
	AnchorCenter
	AnchorCenterRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
	AnchorCustom
)

// Anchor is the reference point within a sprite's texture used as both the
// rotation pivot and the position origin. The zero value is TopLeft.
type Anchor struct {
	Type   AnchorType
	Custom Vec2 // used only when Type is AnchorCustom
}

// Resolve maps the anchor to a pixel offset for a texture of the given
// dimensions. Unknown anchor types resolve to the top-left corner.
func (a Anchor) Resolve(dims Vec2) Vec2 {
	switch a.Type {
	case AnchorTopLeft:
		return Vec2{0, 0}
	case AnchorTopCenter:
		return Vec2{dims.X / 2, 0}
	case AnchorTopRight:
		return Vec2{dims.X, 0}
	case AnchorCenterLeft:
		return Vec2{0, dims.Y / 2}
	case AnchorCenter:
		return Vec2{dims.X / 2, dims.Y / 2}
	case AnchorCenterRight:
		return Vec2{dims.X, dims.Y / 2}
	case AnchorBottomLeft:
		return Vec2{0, dims.Y}
	case AnchorBottomCenter:
		return Vec2{dims.X / 2, dims.Y}
	case AnchorBottomRight:
		return Vec2{dims.X, dims.Y}
	case AnchorCustom:
		return a.Custom
	default:
		return Vec2{0, 0}
	}
}
