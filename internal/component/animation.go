// internal/component/animation.go
package component

import "github.com/yohamta/donburi"

// SpriteKind selects how the renderer draws an entity.
type SpriteKind int

const (
	SpritePlane SpriteKind = iota
	SpriteEnemy
	SpriteShot
	SpriteCoin
	SpriteExplosion
)

// SpriteData is what the renderer needs: the kind and the frame to show.
type SpriteData struct {
	Kind   SpriteKind
	Frame  int
	Size   float64
	Shadow bool
}

var Sprite = donburi.NewComponentType[SpriteData]()

// FrameAnimationData steps a sprite through Frames every FrameDuration seconds.
// A non-looping animation removes its entity after the last frame.
type FrameAnimationData struct {
	Frames        []int
	Current       int
	FrameDuration float64
	Timer         float64
	Looping       bool
	Driven        bool // frame chosen by a controller instead of the clock
}

var FrameAnimation = donburi.NewComponentType[FrameAnimationData]()
