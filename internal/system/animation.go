// internal/system/animation.go
package system

import (
	"go-planes/internal/component"
	"go-planes/internal/entity"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var animationQuery = donburi.NewQuery(filter.Contains(component.Sprite, component.FrameAnimation))

// AnimationSystem steps frame animations. One-shot animations remove their
// entity once the last frame has been shown for a full frame duration.
type AnimationSystem struct {
	ecs *entity.ECS
}

func NewAnimationSystem(ecs *entity.ECS) *AnimationSystem {
	return &AnimationSystem{ecs: ecs}
}

func (s *AnimationSystem) Update(deltaTime float64) {
	var finished []donburi.Entity
	animationQuery.Each(s.ecs.World, func(entry *donburi.Entry) {
		anim := component.FrameAnimation.Get(entry)
		sprite := component.Sprite.Get(entry)
		if len(anim.Frames) == 0 {
			return
		}
		if anim.Driven || anim.FrameDuration <= 0 {
			sprite.Frame = anim.Frames[clampIndex(anim.Current, len(anim.Frames))]
			return
		}

		anim.Timer += deltaTime
		for anim.Timer >= anim.FrameDuration {
			anim.Timer -= anim.FrameDuration
			anim.Current++
			if anim.Current < len(anim.Frames) {
				continue
			}
			if !anim.Looping {
				finished = append(finished, entry.Entity())
				return
			}
			anim.Current = 0
		}
		sprite.Frame = anim.Frames[anim.Current]
	})
	despawnAll(s.ecs, finished)
}
