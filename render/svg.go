package render

import (
	"bytes"
	"fmt"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/scottkirkwood/forma"
	"github.com/scottkirkwood/forma/fractal"
	"github.com/scottkirkwood/forma/superformula"
)

const (
	paperColor = "#fdfdf8"
	inkColor   = "#1a2b3c"

	curveStrokeWidth = 2 // document units
)

// CurveSVG renders a superformula curve as a closed path in the standard
// document frame.
func CurveSVG(p superformula.Params) []byte {
	pts := superformula.Eval(p, forma.Pt{}, 1)
	v := FitBounds(forma.BoundsOf(pts), FrameSize, FrameMargin)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(FrameSize, FrameSize)
	canvas.Title("supershape")
	canvas.Rect(0, 0, FrameSize, FrameSize, "fill:"+paperColor)
	canvas.Path(pathData(v.ApplyAll(pts), true),
		fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d;stroke-linejoin:round", inkColor, curveStrokeWidth))
	canvas.End()
	return buf.Bytes()
}

// TreeSVG renders one tree frame. Segments of a depth share color and
// width, so each level becomes one styled group holding a single
// multi-segment path.
func TreeSVG(f fractal.Frame) []byte {
	segs := fractal.Generate(f)
	v := TreeViewport(f.Params, FrameSize, FrameMargin)

	maxDepth := 0
	for _, s := range segs {
		if s.Depth > maxDepth {
			maxDepth = s.Depth
		}
	}
	byDepth := make([][]fractal.Segment, maxDepth+1)
	for _, s := range segs {
		byDepth[s.Depth] = append(byDepth[s.Depth], s)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(FrameSize, FrameSize)
	canvas.Title("fractal tree")
	canvas.Rect(0, 0, FrameSize, FrameSize, "fill:"+paperColor)
	for _, group := range byDepth {
		if len(group) == 0 {
			continue
		}
		canvas.Gstyle(fmt.Sprintf(
			"stroke:%s;stroke-width:%.2f;stroke-linecap:round;fill:none",
			group[0].Color.Hex(), group[0].Width))
		var sb strings.Builder
		for _, s := range group {
			a, b := v.Apply(s.From), v.Apply(s.To)
			fmt.Fprintf(&sb, "M%.2f %.2f L%.2f %.2f ", a.X, a.Y, b.X, b.Y)
		}
		canvas.Path(strings.TrimSpace(sb.String()))
		canvas.Gend()
	}
	canvas.End()
	return buf.Bytes()
}

// pathData builds a path d attribute from document points.
func pathData(pts []forma.Pt, closed bool) string {
	var sb strings.Builder
	for i, p := range pts {
		if i == 0 {
			fmt.Fprintf(&sb, "M%.2f %.2f", p.X, p.Y)
		} else {
			fmt.Fprintf(&sb, " L%.2f %.2f", p.X, p.Y)
		}
	}
	if closed {
		sb.WriteString(" Z")
	}
	return sb.String()
}
