// Forma renders supershape curves, fractal trees, and AI assisted artwork
// from the command line, or opens the interactive terminal studio.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottkirkwood/forma"
	"github.com/scottkirkwood/forma/fractal"
	"github.com/scottkirkwood/forma/genai"
	"github.com/scottkirkwood/forma/render"
	"github.com/scottkirkwood/forma/studio"
	"github.com/scottkirkwood/forma/superformula"
	"github.com/scottkirkwood/forma/tui"
)

var (
	paper = color.RGBA{R: 0xfd, G: 0xfd, B: 0xf8, A: 0xff}
	ink   = color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}
)

func main() {
	cfg := newConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("forma: %v", err)
	}
}

func run(cfg *config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seed, err := forma.Init(cfg.Seed)
	if err != nil {
		return fmt.Errorf("setting seed: %w", err)
	}
	mode, err := studio.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	st := studio.New(seed)
	st.Mode = mode
	st.SetShape(cfg.shapeParams())
	st.SetTree(cfg.treeParams())
	if cfg.Random {
		p := st.RandomizeShape()
		fmt.Printf("Rolled m=%d n1=%.2f n2=%.2f n3=%.2f\n", p.M, p.N1, p.N2, p.N3)
	}
	if cfg.APIKey != "" {
		client := genai.NewClient(cfg.APIKey)
		st.SetCollaborators(client, client)
	}

	if cfg.Interactive {
		return runStudio(ctx, st, seed)
	}

	switch mode {
	case studio.Shape:
		return writeShape(cfg, st, seed)
	case studio.Tree:
		return writeTree(cfg, st, seed)
	case studio.Generate:
		return writeGenerated(ctx, cfg, st, seed)
	case studio.Edit:
		return writeEdited(ctx, cfg, st, seed)
	}
	return fmt.Errorf("mode %v has no renderer", mode)
}

func runStudio(ctx context.Context, st *studio.Studio, seed forma.Seed) error {
	p := tea.NewProgram(tui.New(ctx, st, seed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// writeShape renders the curve one-shot in the requested format.
func writeShape(cfg *config, st *studio.Studio, seed forma.Seed) error {
	switch cfg.Format {
	case "svg":
		_, err := seed.SafeWriteBytes(render.CurveSVG(st.Shape), cfg.prefix(), ".svg")
		return err
	case "png":
		data, err := encodePNG(render.RasterCurve(st.Shape, render.FrameSize, cfg.Grain, seed.GetSeed()))
		if err != nil {
			return err
		}
		_, err = seed.SafeWriteBytes(data, cfg.prefix(), ".png")
		return err
	case "pdf":
		return seed.SafeWrite(curveContext(st.Shape), cfg.prefix(), ".pdf")
	}
	return fmt.Errorf("unknown format %q", cfg.Format)
}

// writeTree renders the tree one-shot, or the whole growth animation when
// -gif asks for frames.
func writeTree(cfg *config, st *studio.Studio, seed forma.Seed) error {
	if cfg.Frames > 0 {
		anim := render.GrowthGIF(st.Tree, cfg.Frames, render.FrameSize, cfg.Wind)
		var buf bytes.Buffer
		if err := gif.EncodeAll(&buf, anim); err != nil {
			return fmt.Errorf("encoding gif: %w", err)
		}
		_, err := seed.SafeWriteBytes(buf.Bytes(), cfg.prefix(), ".gif")
		return err
	}

	frame := fractal.Frame{
		Params: st.Tree,
		Growth: forma.Clamp(cfg.Growth, 0, 1),
		Wind:   cfg.Wind,
		Time:   cfg.Time,
	}
	switch cfg.Format {
	case "svg":
		_, err := seed.SafeWriteBytes(render.TreeSVG(frame), cfg.prefix(), ".svg")
		return err
	case "png":
		data, err := encodePNG(render.RasterTree(frame, render.FrameSize, cfg.Grain, seed.GetSeed()))
		if err != nil {
			return err
		}
		_, err = seed.SafeWriteBytes(data, cfg.prefix(), ".png")
		return err
	case "pdf":
		return seed.SafeWrite(treeContext(frame), cfg.prefix(), ".pdf")
	}
	return fmt.Errorf("unknown format %q", cfg.Format)
}

// writeGenerated asks the vector model for artwork. Failures still leave a
// placeholder document behind, matching the studio gallery behavior.
func writeGenerated(ctx context.Context, cfg *config, st *studio.Studio, seed forma.Seed) error {
	if cfg.Prompt == "" {
		return errors.New("generate mode needs -prompt")
	}
	if cfg.APIKey == "" {
		return errors.New("generate mode needs -api-key or GEMINI_API_KEY")
	}
	entry := st.GenerateArt(ctx, cfg.Prompt)
	_, err := seed.SafeWriteBytes([]byte(entry.SVG), cfg.prefix(), ".svg")
	return err
}

func writeEdited(ctx context.Context, cfg *config, st *studio.Studio, seed forma.Seed) error {
	if cfg.Image == "" {
		return errors.New("edit mode needs -image")
	}
	if cfg.Prompt == "" {
		return errors.New("edit mode needs -prompt")
	}
	if cfg.APIKey == "" {
		return errors.New("edit mode needs -api-key or GEMINI_API_KEY")
	}
	img, mime, err := forma.ReadImageFile(cfg.Image)
	if err != nil {
		return err
	}
	entry, err := st.EditImage(ctx, img, mime, cfg.Prompt)
	if err != nil {
		return err
	}
	_, err = seed.SafeWriteBytes(entry.PNG, cfg.prefix(), ".png")
	return err
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// curveContext lays the curve into a print context for PDF output. That
// canvas is y-up, so the document fit flips back.
func curveContext(p superformula.Params) *forma.Context {
	pts := superformula.Eval(p, forma.Pt{}, 1)
	vp := render.FitBounds(forma.BoundsOf(pts), render.FrameSize, render.FrameMargin)
	ctx := forma.NewContext(render.FrameSize, render.FrameSize)
	ctx.SetFillColor(paper)
	ctx.FillRect(0, 0, render.FrameSize, render.FrameSize)
	ctx.SetStrokeColor(ink)
	ctx.SetStrokeWidth(2)
	flipped := vp.ApplyAll(pts)
	for i := range flipped {
		flipped[i].Y = render.FrameSize - flipped[i].Y
	}
	ctx.DrawPolyline(flipped)
	return ctx
}

func treeContext(f fractal.Frame) *forma.Context {
	segs := fractal.Generate(f)
	vp := render.TreeViewport(f.Params, render.FrameSize, render.FrameMargin)
	ctx := forma.NewContext(render.FrameSize, render.FrameSize)
	ctx.SetFillColor(paper)
	ctx.FillRect(0, 0, render.FrameSize, render.FrameSize)
	for _, s := range segs {
		a, b := vp.Apply(s.From), vp.Apply(s.To)
		a.Y = render.FrameSize - a.Y
		b.Y = render.FrameSize - b.Y
		ctx.SetStrokeColor(s.Color)
		ctx.SetStrokeWidth(s.Width)
		ctx.DrawSegment(a, b)
	}
	return ctx
}
