// internal/input/input.go
package input

import (
	"go-planes/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a logical control the game reacts to.
type Action int

const (
	MoveUp Action = iota
	MoveDown
	MoveLeft
	MoveRight
	Shoot
	Pause
	Confirm
)

// ActionMap binds each action to the keys that trigger it.
type ActionMap map[Action][]ebiten.Key

// DefaultActionMap: WASD or arrows to fly, space to shoot.
func DefaultActionMap() ActionMap {
	return ActionMap{
		MoveUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
		MoveDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
		MoveLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
		MoveRight: {ebiten.KeyD, ebiten.KeyArrowRight},
		Shoot:     {ebiten.KeySpace},
		Pause:     {ebiten.KeyEscape, ebiten.KeyP},
		Confirm:   {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	}
}

// Intent is the player's input for one tick. Move is not normalized and
// points up for positive Y.
type Intent struct {
	Move    geom.Vec2
	Shoot   bool // held
	Pause   bool // just pressed
	Confirm bool // just pressed
}

// Source yields the intent for the current tick.
type Source interface {
	Intent() Intent
}

// Keyboard reads intents from ebiten's keyboard state.
type Keyboard struct {
	Actions ActionMap
}

func NewKeyboard(actions ActionMap) *Keyboard {
	return &Keyboard{Actions: actions}
}

func (k *Keyboard) Intent() Intent {
	var in Intent
	if k.pressed(MoveUp) {
		in.Move.Y++
	}
	if k.pressed(MoveDown) {
		in.Move.Y--
	}
	if k.pressed(MoveLeft) {
		in.Move.X--
	}
	if k.pressed(MoveRight) {
		in.Move.X++
	}
	in.Shoot = k.pressed(Shoot)
	in.Pause = k.justPressed(Pause)
	in.Confirm = k.justPressed(Confirm)
	return in
}

func (k *Keyboard) pressed(a Action) bool {
	for _, key := range k.Actions[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func (k *Keyboard) justPressed(a Action) bool {
	for _, key := range k.Actions[a] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// Fixed always returns the same intent. Used by tests and demos.
type Fixed Intent

func (f Fixed) Intent() Intent { return Intent(f) }
