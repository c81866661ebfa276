package systems

import (
	"image/color"

	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/fonts"
	"github.com/automoto/tilestep/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// NewSplash returns the title card state, fading in.
func NewSplash() components.SplashData {
	return components.SplashData{
		Phase: components.SplashFadeIn,
		Tween: gween.New(0, 1, cfg.Splash.FadeSeconds, ease.OutQuad),
	}
}

// AdvanceSplash steps the title card by dt seconds and reports whether it
// has finished.
func AdvanceSplash(s *components.SplashData, dt float32) bool {
	if s.Phase == components.SplashDone {
		return true
	}
	alpha, finished := s.Tween.Update(dt)
	s.Alpha = alpha
	if !finished {
		return false
	}

	switch s.Phase {
	case components.SplashFadeIn:
		s.Phase = components.SplashHold
		s.Tween = gween.New(1, 1, cfg.Splash.HoldSeconds, ease.Linear)
	case components.SplashHold:
		s.Phase = components.SplashFadeOut
		s.Tween = gween.New(1, 0, cfg.Splash.FadeSeconds, ease.InQuad)
	case components.SplashFadeOut:
		s.Phase = components.SplashDone
		return true
	}
	return false
}

// NewUpdateSplash plays the title card and moves to the lobby when it ends
// or when any device presses Select or Back.
func NewUpdateSplash(hub *Hub, splash *components.SplashData, nav Navigator) ecs.System {
	dt := float32(1) / float32(cfg.C.TPS)
	return func(e *ecs.ECS) {
		skip := hub.Menu.JustPressed(input.Select) || hub.Menu.JustPressed(input.Back)
		if AdvanceSplash(splash, dt) || skip {
			splash.Phase = components.SplashDone
			nav.Request(cfg.StateLobby)
		}
	}
}

// NewDrawSplash renders the title with the current fade alpha.
func NewDrawSplash(splash *components.SplashData) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())
		vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Splash.BackgroundColor, false)

		c := cfg.Splash.TitleColor
		a := clampUnit(splash.Alpha)
		faded := color.RGBA{
			R: uint8(float32(c.R) * a),
			G: uint8(float32(c.G) * a),
			B: uint8(float32(c.B) * a),
			A: uint8(float32(c.A) * a),
		}
		drawCentered(screen, cfg.Splash.Title, fonts.Title, width, int(height/2), faded)
	}
}

func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
