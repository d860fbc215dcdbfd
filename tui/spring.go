package tui

import "github.com/charmbracelet/harmonica"

// Spring slots for the eased preview viewport.
const (
	slotScale = iota
	slotCX
	slotCY
	slotCount
)

// viewSpring eases the preview viewport toward its target fit, one slot
// per animated quantity, so mode and parameter jumps glide instead of snap.
type viewSpring struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

func newViewSpring(fps int, frequency, damping float64) viewSpring {
	return viewSpring{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		pos:    make([]float64, slotCount),
		vel:    make([]float64, slotCount),
	}
}

func (s *viewSpring) step(i int, target float64) float64 {
	p, v := s.spring.Update(s.pos[i], s.vel[i], target)
	s.pos[i] = p
	s.vel[i] = v
	return p
}

// snap jumps a slot straight to target with no residual velocity.
func (s *viewSpring) snap(i int, target float64) {
	s.pos[i] = target
	s.vel[i] = 0
}
