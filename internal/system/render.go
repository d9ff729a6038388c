// internal/system/render.go
package system

import (
	"image/color"
	"math"
	"sort"

	"go-planes/internal/component"
	"go-planes/internal/config"
	"go-planes/internal/entity"
	"go-planes/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var spriteQuery = donburi.NewQuery(filter.Contains(component.Position, component.Sprite))

const (
	groundStripe  = 64.0
	shadowOffsetX = 6.0
	shadowOffsetY = 8.0
)

type drawable struct {
	pos     geom.Vec3
	sprite  component.SpriteData
	shot    component.Faction
	flashed bool
}

// RenderSystem рисует мир: фон, затем спрайты по возрастанию Z
type RenderSystem struct {
	ecs   *entity.ECS
	batch []drawable
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

// ToScreen maps world coordinates (Y up) to screen pixels (Y down).
func (s *RenderSystem) ToScreen(p geom.Vec2) (float32, float32) {
	half := s.ecs.ViewHalfSize()
	x := p.X - s.ecs.Camera.X + half.X
	y := half.Y - (p.Y - s.ecs.Camera.Y)
	return float32(x), float32(y)
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.drawGround(screen)

	s.batch = s.batch[:0]
	spriteQuery.Each(s.ecs.World, func(entry *donburi.Entry) {
		d := drawable{pos: *component.Position.Get(entry), sprite: *component.Sprite.Get(entry)}
		if entry.HasComponent(component.Projectile) {
			d.shot = component.Projectile.Get(entry).Faction
		}
		d.flashed = entry.HasComponent(component.DamageFlash)
		s.batch = append(s.batch, d)
	})
	sort.SliceStable(s.batch, func(i, j int) bool { return s.batch[i].pos.Z < s.batch[j].pos.Z })

	for _, d := range s.batch {
		if d.sprite.Shadow {
			s.drawShadow(screen, d)
		}
	}
	for _, d := range s.batch {
		s.drawSprite(screen, d)
	}
}

// drawGround scrolls horizontal bands with the camera so movement is visible.
func (s *RenderSystem) drawGround(screen *ebiten.Image) {
	width := float32(s.ecs.Config.ScreenWidth())
	height := s.ecs.Config.General.ScreenHeight
	offset := math.Mod(s.ecs.Camera.Y, groundStripe*2)
	for y := -groundStripe*2 + offset; y < height; y += groundStripe * 2 {
		vector.DrawFilledRect(screen, 0, float32(y), width, groundStripe, config.GroundColor, false)
	}
}

func (s *RenderSystem) drawShadow(screen *ebiten.Image, d drawable) {
	x, y := s.ToScreen(d.pos.XY())
	size := float32(d.sprite.Size)
	vector.DrawFilledRect(screen, x-size/2+shadowOffsetX, y-size/4+shadowOffsetY, size, size/2, config.ShadowColor, true)
}

func (s *RenderSystem) drawSprite(screen *ebiten.Image, d drawable) {
	x, y := s.ToScreen(d.pos.XY())
	size := float32(d.sprite.Size)
	switch d.sprite.Kind {
	case component.SpritePlane:
		clr := config.PlayerColor
		wing := size
		if d.sprite.Frame == 1 {
			clr = config.PlayerBankColor
			wing = size * 0.7
		}
		drawPlane(screen, x, y, size, wing, flashed(d, clr), -1)
	case component.SpriteEnemy:
		wing := size
		if d.sprite.Frame == 1 {
			wing = size * 0.85
		}
		drawPlane(screen, x, y, size, wing, flashed(d, config.EnemyColor), 1)
	case component.SpriteShot:
		clr := config.PlayerShotColor
		if d.shot == component.FactionEnemy {
			clr = config.EnemyShotColor
		}
		vector.DrawFilledCircle(screen, x, y, size, clr, true)
	case component.SpriteCoin:
		clr := config.CollectableColors[d.sprite.Frame%len(config.CollectableColors)]
		vector.DrawFilledCircle(screen, x, y, size/2, clr, true)
	case component.SpriteExplosion:
		frame := d.sprite.Frame % len(config.ExplosionColors)
		radius := size / 2 * float32(frame+1) / float32(len(config.ExplosionColors))
		vector.DrawFilledCircle(screen, x, y, radius, config.ExplosionColors[frame], true)
	}
}

func flashed(d drawable, clr color.RGBA) color.RGBA {
	if d.flashed {
		return config.FlashColor
	}
	return clr
}

// drawPlane draws a fuselage and wings; nose is -1 for up, 1 for down on screen.
func drawPlane(screen *ebiten.Image, x, y, length, wing float32, clr color.Color, nose float32) {
	vector.DrawFilledRect(screen, x-length/8, y-length/2, length/4, length, clr, true)
	vector.DrawFilledRect(screen, x-wing/2, y+nose*length/8-length/10, wing, length/5, clr, true)
	vector.DrawFilledRect(screen, x-length/4, y-nose*length/2.5, length/2, length/10, clr, true)
}
