package app

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// pointer animates the wind-up wobble with an underdamped spring so the
// pointer overshoots a little on the way back to rest.
type pointer struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newPointer(frame time.Duration) pointer {
	fps := int(time.Second / frame)
	if fps < 1 {
		fps = 1
	}
	return pointer{spring: harmonica.NewSpring(harmonica.FPS(fps), 18.0, 0.35)}
}

// step advances one frame toward target and returns the new deflection.
func (p *pointer) step(target float64) float64 {
	p.pos, p.vel = p.spring.Update(p.pos, p.vel, target)
	return p.pos
}

func (p *pointer) reset() {
	p.pos, p.vel = 0, 0
}
