package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one top-level screen. It is built when its state is entered
// and dropped when the state is left.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}
