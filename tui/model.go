package tui

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"math"
	"strings"
	"time"

	_ "image/jpeg" // the editor may hand back JPEG despite asking for PNG

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottkirkwood/forma"
	"github.com/scottkirkwood/forma/fractal"
	"github.com/scottkirkwood/forma/render"
	"github.com/scottkirkwood/forma/studio"
	"github.com/scottkirkwood/forma/superformula"
)

const (
	tickRate = 60 // animation frames per second

	defaultCanvasW = 60 // character cells
	defaultCanvasH = 26
	sideWidth      = 44 // stats pane columns

	profileSamples = 64  // radius chart resolution
	growthPlotCap  = 240 // growth samples kept for the chart

	gifFrames = 80
	gifSize   = 250

	// exactBoundsDepth is the deepest tree regenerated in full to size the
	// preview viewport; past it a reach bound stands in for millions of
	// segments.
	exactBoundsDepth = 12
)

type TickMsg time.Time

// artMsg re-enters the tick consumer with a vector generation outcome.
type artMsg struct {
	prompt string
	doc    string
	err    error
}

// editMsg re-enters the tick consumer with an image edit outcome.
type editMsg struct {
	prompt string
	png    []byte
	err    error
}

// editField says where typed text lands while preparing an image edit.
type editField int

const (
	fieldPrompt editField = iota
	fieldPath
)

// param is one tunable slot in the side panel. lo and hi only scale the
// display bar; the studio setters do the real clamping.
type param struct {
	name   string
	step   float64
	lo, hi float64
	get    func(s *studio.Studio) float64
	set    func(s *studio.Studio, v float64)
}

var shapeParams = []param{
	{"m", 1, 0, 32,
		func(s *studio.Studio) float64 { return float64(s.Shape.M) },
		func(s *studio.Studio, v float64) { p := s.Shape; p.M = int(math.Round(v)); s.SetShape(p) }},
	{"n1", 0.1, 0, 10,
		func(s *studio.Studio) float64 { return s.Shape.N1 },
		func(s *studio.Studio, v float64) { p := s.Shape; p.N1 = v; s.SetShape(p) }},
	{"n2", 0.1, 0, 10,
		func(s *studio.Studio) float64 { return s.Shape.N2 },
		func(s *studio.Studio, v float64) { p := s.Shape; p.N2 = v; s.SetShape(p) }},
	{"n3", 0.1, 0, 10,
		func(s *studio.Studio) float64 { return s.Shape.N3 },
		func(s *studio.Studio, v float64) { p := s.Shape; p.N3 = v; s.SetShape(p) }},
	{"a", 0.05, 0, 3,
		func(s *studio.Studio) float64 { return s.Shape.A },
		func(s *studio.Studio, v float64) { p := s.Shape; p.A = v; s.SetShape(p) }},
	{"b", 0.05, 0, 3,
		func(s *studio.Studio) float64 { return s.Shape.B },
		func(s *studio.Studio, v float64) { p := s.Shape; p.B = v; s.SetShape(p) }},
}

var treeParams = []param{
	{"angle", 1, 0, fractal.MaxAngle,
		func(s *studio.Studio) float64 { return s.Tree.Angle },
		func(s *studio.Studio, v float64) { p := s.Tree; p.Angle = v; s.SetTree(p) }},
	{"depth", 1, fractal.MinDepth, fractal.MaxDepth,
		func(s *studio.Studio) float64 { return float64(s.Tree.Depth) },
		func(s *studio.Studio, v float64) { p := s.Tree; p.Depth = int(math.Round(v)); s.SetTree(p) }},
	{"length", 0.01, 0, 1,
		func(s *studio.Studio) float64 { return s.Tree.LengthMultiplier },
		func(s *studio.Studio, v float64) { p := s.Tree; p.LengthMultiplier = v; s.SetTree(p) }},
	{"branches", 1, 2, 3,
		func(s *studio.Studio) float64 { return float64(s.Tree.BranchCount) },
		func(s *studio.Studio, v float64) { p := s.Tree; p.BranchCount = int(math.Round(v)); s.SetTree(p) }},
}

// Model is the bubbletea state machine for one studio session. The Update
// goroutine is the only mutator of the studio; AI replies re-enter it as
// messages.
type Model struct {
	studio *studio.Studio
	seed   forma.Seed
	ctx    context.Context

	canvas *Canvas
	spring viewSpring

	segs       []fractal.Segment // last generated tree frame
	treeBounds forma.Bounds      // stable viewport box for the tree
	curve      []forma.Pt        // cached shape outline
	crossed    bool              // curve self-intersection flag
	profile    []float64         // radius chart samples
	growthHist []float64         // growth fraction per tick

	selected int // parameter cursor within the active mode
	typing   bool
	field    editField
	prompt   string
	imgPath  string

	busy       bool // one AI request in flight at a time
	cancel     context.CancelFunc
	galleryImg image.Image // decoded preview of the last edit

	status        string
	showHelp      bool
	width, height int
}

// New builds the studio UI. ctx bounds every AI request the session makes.
func New(ctx context.Context, st *studio.Studio, seed forma.Seed) Model {
	m := Model{
		studio:     st,
		seed:       seed,
		ctx:        ctx,
		canvas:     NewCanvas(defaultCanvasW, defaultCanvasH),
		spring:     newViewSpring(tickRate, 5.0, 0.9),
		growthHist: make([]float64, 0, growthPlotCap),
	}
	m.refreshShape()
	m.refreshTree()
	m.segs = fractal.Generate(st.Growth.Frame(st.Tree))
	target := fitDots(forma.BoundsOf(m.curve), m.canvas.DotWidth(), m.canvas.DotHeight())
	m.spring.snap(slotScale, target.scale)
	m.spring.snap(slotCX, target.center.X)
	m.spring.snap(slotCY, target.center.Y)
	m.draw()
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input, tick, and AI reply messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		m.step()
		return m, tick()
	case artMsg:
		m.busy = false
		m.releaseRequest()
		m.studio.RecordArt(msg.prompt, msg.doc, msg.err)
		if msg.err != nil {
			m.status = "generation failed, placeholder recorded: " + msg.err.Error()
		} else {
			m.status = "artwork recorded, press s to export it"
		}
	case editMsg:
		m.busy = false
		m.releaseRequest()
		if msg.err != nil {
			m.status = "edit failed: " + msg.err.Error()
			break
		}
		m.studio.RecordEdit(msg.prompt, msg.png)
		if img, _, err := image.Decode(bytes.NewReader(msg.png)); err == nil {
			m.galleryImg = img
		}
		m.status = "edit recorded, press p to export it"
	}
	return m, nil
}

// step runs one animation tick. Only the tree view advances the studio;
// the other modes keep their last geometry and just repaint, which lets
// the viewport spring settle.
func (m *Model) step() {
	if m.studio.Mode == studio.Tree {
		m.segs = m.studio.Advance(1.0 / tickRate)
		m.growthHist = append(m.growthHist, m.studio.Growth.Growth)
		if len(m.growthHist) > growthPlotCap {
			m.growthHist = m.growthHist[1:]
		}
	}
	m.draw()
}

// draw repaints the canvas from the active mode's geometry.
func (m *Model) draw() {
	m.canvas.Clear()
	switch m.studio.Mode {
	case studio.Shape:
		m.drawCurve()
	case studio.Tree:
		m.drawTree()
	case studio.Edit:
		if m.galleryImg != nil {
			m.drawImage(m.galleryImg)
			return
		}
		m.drawIdleFrame()
	default:
		m.drawIdleFrame()
	}
}

func (m *Model) drawCurve() {
	view := m.easedView(forma.BoundsOf(m.curve))
	var lastX, lastY int
	for i, p := range m.curve {
		x, y := view.dot(p)
		if i > 0 {
			m.canvas.DrawLine(lastX, lastY, x, y)
		}
		lastX, lastY = x, y
	}
}

func (m *Model) drawTree() {
	view := m.easedView(m.treeBounds)
	for _, s := range m.segs {
		x0, y0 := view.dot(s.From)
		x1, y1 := view.dot(s.To)
		m.canvas.DrawLine(x0, y0, x1, y1)
	}
}

// drawIdleFrame marks the canvas corners while an AI mode has nothing to
// show; generated vectors live in the gallery and the export files.
func (m *Model) drawIdleFrame() {
	dw, dh := m.canvas.DotWidth(), m.canvas.DotHeight()
	for x := 0; x < dw; x += 3 {
		m.canvas.Set(x, 0)
		m.canvas.Set(x, dh-1)
	}
	for y := 0; y < dh; y += 3 {
		m.canvas.Set(0, y)
		m.canvas.Set(dw-1, y)
	}
}

// drawImage thresholds img onto the dot grid, dark pixels becoming dots.
func (m *Model) drawImage(img image.Image) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	dw, dh := m.canvas.DotWidth(), m.canvas.DotHeight()
	s := math.Max(float64(b.Dx())/float64(dw), float64(b.Dy())/float64(dh))
	offX := (float64(dw) - float64(b.Dx())/s) / 2
	offY := (float64(dh) - float64(b.Dy())/s) / 2
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			px := b.Min.X + int((float64(x)-offX)*s)
			py := b.Min.Y + int((float64(y)-offY)*s)
			if px < b.Min.X || px >= b.Max.X || py < b.Min.Y || py >= b.Max.Y {
				continue
			}
			r, g, bl, _ := img.At(px, py).RGBA()
			if (299*r+587*g+114*bl)/1000 < 0x8000 {
				m.canvas.Set(x, y)
			}
		}
	}
}

// easedView springs the dot viewport toward the fit for b.
func (m *Model) easedView(b forma.Bounds) dotView {
	target := fitDots(b, m.canvas.DotWidth(), m.canvas.DotHeight())
	return dotView{
		scale: m.spring.step(slotScale, target.scale),
		center: forma.Pt{
			X: m.spring.step(slotCX, target.center.X),
			Y: m.spring.step(slotCY, target.center.Y),
		},
		dw: target.dw,
		dh: target.dh,
	}
}

// refreshShape re-derives everything cached off the curve parameters.
func (m *Model) refreshShape() {
	m.curve = m.studio.CurvePoints()
	m.crossed = forma.SelfIntersects(m.curve)
	m.profile = superformula.Profile(m.studio.Shape, profileSamples)
}

// refreshTree re-derives the stable preview box from a fully grown,
// wind-still tree, so growth and sway never pump the zoom.
func (m *Model) refreshTree() {
	m.treeBounds = treeBoundsFor(m.studio.Tree)
}

// treeBoundsFor fits the fully grown tree for p. Deep trees are fitted
// with the geometric series reach bound instead of regenerating millions
// of segments on every parameter nudge.
func treeBoundsFor(p fractal.Params) forma.Bounds {
	if p.Depth <= exactBoundsDepth {
		full := fractal.Generate(fractal.Frame{Params: p, Growth: 1})
		return render.SegmentsBounds(full)
	}
	reach := fractal.BaseLength * float64(p.Depth+1)
	if p.LengthMultiplier < 1 {
		reach = fractal.BaseLength * (1 - math.Pow(p.LengthMultiplier, float64(p.Depth+1))) / (1 - p.LengthMultiplier)
	}
	b := forma.EmptyBounds()
	b.Extend(forma.Pt{X: -reach, Y: 0})
	b.Extend(forma.Pt{X: reach, Y: reach})
	return b
}

// resize refits the canvas cells to the terminal.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	cw := forma.ClampInt(w-sideWidth-6, 20, 120)
	ch := forma.ClampInt(h-4, 10, 60)
	m.canvas = NewCanvas(cw, ch)
	m.draw()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.typing {
		return m.handleTyping(msg)
	}
	switch msg.String() {
	case "q", "ctrl+c":
		return m.quit()
	case "1":
		m.switchMode(studio.Shape)
	case "2":
		m.switchMode(studio.Tree)
	case "3":
		m.switchMode(studio.Generate)
	case "4":
		m.switchMode(studio.Edit)
	case "tab":
		if m.studio.Mode == studio.Edit {
			m.toggleField()
		} else {
			m.cycleParam(1)
		}
	case "shift+tab":
		m.cycleParam(-1)
	case "up", "k":
		m.adjustParam(1)
	case "down", "j":
		m.adjustParam(-1)
	case " ":
		if m.studio.Mode == studio.Tree {
			if m.studio.ToggleAnimating() {
				m.status = "growing"
			} else {
				m.status = "paused"
			}
		}
	case "w":
		if m.studio.ToggleWind() {
			m.status = "wind on"
		} else {
			m.status = "wind off"
		}
	case "r":
		switch m.studio.Mode {
		case studio.Shape:
			p := m.studio.RandomizeShape()
			m.refreshShape()
			m.status = fmt.Sprintf("rolled m=%d n1=%.1f", p.M, p.N1)
		case studio.Tree:
			m.studio.ResetGrowth()
			m.status = "regrowing from the trunk"
		}
	case "s":
		m.exportSVG()
	case "p":
		m.exportPNG()
	case "g":
		m.exportGIF()
	case "enter":
		if m.studio.Mode == studio.Generate || m.studio.Mode == studio.Edit {
			m.typing = true
		}
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// handleTyping routes keys into the focused text field. Only escape,
// enter, and ctrl+c keep their control meaning while typing.
func (m Model) handleTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m.quit()
	case tea.KeyEsc:
		m.typing = false
	case tea.KeyEnter:
		var cmd tea.Cmd
		if m.studio.Mode == studio.Edit {
			cmd = m.submitEdit()
		} else {
			cmd = m.submitGenerate()
		}
		return m, cmd
	case tea.KeyTab:
		if m.studio.Mode == studio.Edit {
			m.toggleField()
		}
	case tea.KeyBackspace:
		buf := m.activeInput()
		if r := []rune(*buf); len(r) > 0 {
			*buf = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		*m.activeInput() += " "
	case tea.KeyRunes:
		*m.activeInput() += string(msg.Runes)
	}
	return m, nil
}

// activeInput picks the buffer keys land in: the edit mode path field or
// the prompt everywhere else.
func (m *Model) activeInput() *string {
	if m.studio.Mode == studio.Edit && m.field == fieldPath {
		return &m.imgPath
	}
	return &m.prompt
}

func (m *Model) toggleField() {
	if m.field == fieldPrompt {
		m.field = fieldPath
	} else {
		m.field = fieldPrompt
	}
}

// switchMode changes the active view. Entering an AI mode focuses its
// input line; escape blurs it so the single-key controls work again.
func (m *Model) switchMode(mode studio.Mode) {
	if m.studio.Mode == mode {
		return
	}
	m.studio.Mode = mode
	m.selected = 0
	m.typing = mode == studio.Generate || mode == studio.Edit
	m.field = fieldPrompt
	m.status = ""
	m.draw()
}

func (m *Model) modeParams() []param {
	switch m.studio.Mode {
	case studio.Shape:
		return shapeParams
	case studio.Tree:
		return treeParams
	}
	return nil
}

func (m *Model) cycleParam(dir int) {
	ps := m.modeParams()
	if len(ps) == 0 {
		return
	}
	m.selected = (m.selected + dir + len(ps)) % len(ps)
}

// adjustParam nudges the selected parameter one step in dir; the studio
// setters clamp at the control bounds.
func (m *Model) adjustParam(dir float64) {
	ps := m.modeParams()
	if len(ps) == 0 {
		return
	}
	p := ps[m.selected]
	p.set(m.studio, p.get(m.studio)+dir*p.step)
	switch m.studio.Mode {
	case studio.Shape:
		m.refreshShape()
	case studio.Tree:
		m.refreshTree()
	}
	m.draw()
}

// submitGenerate fires the vector request as a command; the reply comes
// back to Update as an artMsg. One request runs at a time.
func (m *Model) submitGenerate() tea.Cmd {
	if m.busy {
		m.status = "model is busy, wait for the current request"
		return nil
	}
	prompt := strings.TrimSpace(m.prompt)
	if prompt == "" {
		m.status = "type a prompt first"
		return nil
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.busy = true
	m.status = "asking the model..."
	st := m.studio
	return func() tea.Msg {
		doc, err := st.CallVector(ctx, prompt)
		return artMsg{prompt: prompt, doc: doc, err: err}
	}
}

// submitEdit reads the image off disk and fires the edit request as a
// command; the reply comes back to Update as an editMsg.
func (m *Model) submitEdit() tea.Cmd {
	if m.busy {
		m.status = "model is busy, wait for the current request"
		return nil
	}
	path := strings.TrimSpace(m.imgPath)
	prompt := strings.TrimSpace(m.prompt)
	if path == "" {
		m.status = "set an image path first (tab switches fields)"
		return nil
	}
	if prompt == "" {
		m.status = "type an edit instruction first"
		return nil
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.busy = true
	m.status = "editing..."
	st := m.studio
	return func() tea.Msg {
		img, mime, err := forma.ReadImageFile(path)
		if err != nil {
			return editMsg{prompt: prompt, err: err}
		}
		out, err := st.CallEditor(ctx, img, mime, prompt)
		return editMsg{prompt: prompt, png: out, err: err}
	}
}

// releaseRequest frees the context of a finished AI call.
func (m *Model) releaseRequest() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	return m, tea.Quit
}

// exportSVG writes the active mode's vector document next to the binary,
// named by the session seed.
func (m *Model) exportSVG() {
	var doc string
	switch m.studio.Mode {
	case studio.Shape:
		doc = m.studio.SnapshotShape().SVG
	case studio.Tree:
		doc = m.studio.SnapshotTree().SVG
	default:
		latest, ok := m.studio.Hist.Latest()
		if !ok || latest.SVG == "" {
			m.status = "nothing in the gallery to export"
			return
		}
		doc = latest.SVG
	}
	m.writeExport([]byte(doc), ".svg")
}

// exportPNG rasters the active mode's geometry, or saves the latest
// edited image.
func (m *Model) exportPNG() {
	var img image.Image
	switch m.studio.Mode {
	case studio.Shape:
		img = render.RasterCurve(m.studio.Shape, render.FrameSize, true, m.seed.GetSeed())
	case studio.Tree:
		img = render.RasterTree(m.studio.Growth.Frame(m.studio.Tree), render.FrameSize, true, m.seed.GetSeed())
	default:
		latest, ok := m.studio.Hist.Latest()
		if !ok || len(latest.PNG) == 0 {
			m.status = "nothing rastered in the gallery yet"
			return
		}
		m.writeExport(latest.PNG, ".png")
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		m.status = "export failed: " + err.Error()
		return
	}
	m.writeExport(buf.Bytes(), ".png")
}

// exportGIF renders the growth animation, tree mode only.
func (m *Model) exportGIF() {
	if m.studio.Mode != studio.Tree {
		m.status = "growth gifs come from the tree view"
		return
	}
	anim := render.GrowthGIF(m.studio.Tree, gifFrames, gifSize, m.studio.Growth.Wind)
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		m.status = "export failed: " + err.Error()
		return
	}
	m.writeExport(buf.Bytes(), ".gif")
}

func (m *Model) writeExport(data []byte, ext string) {
	name, err := m.seed.SafeWriteBytes(data, "forma-", ext)
	if err != nil {
		m.status = "export failed: " + err.Error()
		return
	}
	m.status = "wrote " + name
}
