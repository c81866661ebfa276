package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SplashPhase is the stage of the title card.
type SplashPhase int

const (
	SplashFadeIn SplashPhase = iota
	SplashHold
	SplashFadeOut
	SplashDone
)

// SplashData drives the title card's alpha.
type SplashData struct {
	Phase SplashPhase
	Tween *gween.Tween
	Alpha float32
}

var Splash = donburi.NewComponentType[SplashData]()
