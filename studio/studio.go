// Package studio wires the geometry generators, the AI collaborators, and
// the session state into one orchestrator shared by the CLI and the
// terminal UI.
package studio

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/scottkirkwood/forma"
	"github.com/scottkirkwood/forma/fractal"
	"github.com/scottkirkwood/forma/genai"
	"github.com/scottkirkwood/forma/render"
	"github.com/scottkirkwood/forma/superformula"
)

// Studio holds exactly one parameter set and one growth state per view.
// Every mutation happens on the tick consumer, so there are no locks.
type Studio struct {
	Mode   Mode
	Shape  superformula.Params
	Tree   fractal.Params
	Growth *fractal.GrowthState
	Hist   History

	rng    *rand.Rand
	vector genai.VectorGenerator
	editor genai.ImageEditor
}

// New builds a studio seeded for reproducible randomize operations. AI
// collaborators start unset; install them with SetCollaborators.
func New(seed forma.Seed) *Studio {
	tree := fractal.DefaultParams()
	return &Studio{
		Shape:  superformula.DefaultParams(),
		Tree:   tree,
		Growth: fractal.NewGrowthState(tree.Depth),
		rng:    seed.NewRand(),
	}
}

// SetCollaborators installs the AI backends. Either may be nil; the
// matching mode then yields placeholders or errors.
func (s *Studio) SetCollaborators(v genai.VectorGenerator, e genai.ImageEditor) {
	s.vector = v
	s.editor = e
}

// Advance runs one animation tick in the fixed order: structural sync
// (depth changes re-zero growth before anything renders), growth advance,
// wind clock, then a full recompute. It returns fresh segments for the
// renderer. dt is the seconds since the previous tick.
func (s *Studio) Advance(dt float64) []fractal.Segment {
	s.Growth.SyncDepth(s.Tree.Depth)
	s.Growth.Tick(dt)
	return fractal.Generate(s.Growth.Frame(s.Tree))
}

// SetShape clamps and installs new curve parameters.
func (s *Studio) SetShape(p superformula.Params) {
	s.Shape = p.Clamped()
}

// SetTree clamps and installs new tree parameters. A depth change takes
// effect on the next tick, where it re-zeros the growth ramp.
func (s *Studio) SetTree(p fractal.Params) {
	s.Tree = p.Clamped()
}

// RandomizeShape rolls new curve parameters from the studio's seeded rng.
func (s *Studio) RandomizeShape() superformula.Params {
	s.Shape = s.Shape.Randomize(s.rng)
	return s.Shape
}

// ResetGrowth restarts the tree animation from zero.
func (s *Studio) ResetGrowth() {
	s.Growth.Reset()
}

// ToggleWind flips the sway clock and reports the new state.
func (s *Studio) ToggleWind() bool {
	s.Growth.Wind = !s.Growth.Wind
	return s.Growth.Wind
}

// ToggleAnimating pauses or resumes the growth ramp.
func (s *Studio) ToggleAnimating() bool {
	s.Growth.Animating = !s.Growth.Animating
	return s.Growth.Animating
}

// CurvePoints evaluates the current shape in world space.
func (s *Studio) CurvePoints() []forma.Pt {
	return superformula.Eval(s.Shape, forma.Pt{}, 1)
}

// SnapshotShape renders the current curve to a document and records it.
func (s *Studio) SnapshotShape() Entry {
	e := Entry{
		Mode:  Shape,
		Label: fmt.Sprintf("m=%d n1=%.2f n2=%.2f n3=%.2f", s.Shape.M, s.Shape.N1, s.Shape.N2, s.Shape.N3),
		SVG:   string(render.CurveSVG(s.Shape)),
		At:    time.Now(),
	}
	s.Hist.Add(e)
	return e
}

// SnapshotTree renders the tree at its present growth and records it.
func (s *Studio) SnapshotTree() Entry {
	e := Entry{
		Mode:  Tree,
		Label: fmt.Sprintf("depth=%d angle=%.0f branches=%d", s.Tree.Depth, s.Tree.Angle, s.Tree.BranchCount),
		SVG:   string(render.TreeSVG(s.Growth.Frame(s.Tree))),
		At:    time.Now(),
	}
	s.Hist.Add(e)
	return e
}

// CallVector runs the vector collaborator. It touches no studio state, so
// callers may invoke it off the tick consumer and feed the result back in
// through RecordArt.
func (s *Studio) CallVector(ctx context.Context, prompt string) (string, error) {
	if s.vector == nil {
		return "", errors.New("no vector model configured")
	}
	return s.vector.GenerateVector(ctx, prompt)
}

// RecordArt records a vector generation outcome. Failures record a
// placeholder document instead of surfacing, so the gallery always gains
// an entry the preview can show.
func (s *Studio) RecordArt(prompt, doc string, err error) Entry {
	if err != nil {
		doc = genai.Placeholder(err.Error())
	}
	e := Entry{Mode: Generate, Label: prompt, SVG: doc, At: time.Now()}
	s.Hist.Add(e)
	return e
}

// GenerateArt asks the vector collaborator for artwork and records the
// outcome in one step. Callers off the tick consumer use the
// CallVector/RecordArt pair instead.
func (s *Studio) GenerateArt(ctx context.Context, prompt string) Entry {
	doc, err := s.CallVector(ctx, prompt)
	return s.RecordArt(prompt, doc, err)
}

// CallEditor runs the image collaborator over raw image bytes. Like
// CallVector it leaves studio state alone.
func (s *Studio) CallEditor(ctx context.Context, img []byte, mime, prompt string) ([]byte, error) {
	if s.editor == nil {
		return nil, errors.New("no image model configured")
	}
	out, err := s.editor.EditImage(ctx, img, mime, prompt)
	if err != nil {
		return nil, fmt.Errorf("editing image: %w", err)
	}
	return out, nil
}

// RecordEdit records an edited PNG in the gallery.
func (s *Studio) RecordEdit(prompt string, png []byte) Entry {
	e := Entry{Mode: Edit, Label: prompt, PNG: png, At: time.Now()}
	s.Hist.Add(e)
	return e
}

// EditImage runs the image collaborator and records the edited PNG. Unlike
// vector generation there is no meaningful raster placeholder, so failures
// return to the caller with nothing recorded.
func (s *Studio) EditImage(ctx context.Context, img []byte, mime, prompt string) (Entry, error) {
	out, err := s.CallEditor(ctx, img, mime, prompt)
	if err != nil {
		return Entry{}, err
	}
	return s.RecordEdit(prompt, out), nil
}
