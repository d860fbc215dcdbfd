package render

import (
	"strings"
	"testing"

	"github.com/scottkirkwood/forma"
	"github.com/scottkirkwood/forma/fractal"
	"github.com/scottkirkwood/forma/superformula"
)

func TestCurveSVGDocument(t *testing.T) {
	doc := string(CurveSVG(superformula.DefaultParams()))
	for _, want := range []string{"<svg", `width="500"`, `height="500"`, "<path", "fill:none", "</svg>"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if strings.Contains(doc, "NaN") {
		t.Errorf("document contains NaN coordinates")
	}
	if !strings.Contains(doc, "Z") {
		t.Errorf("curve path should close explicitly")
	}
}

func TestTreeSVGDepthGroups(t *testing.T) {
	p := fractal.DefaultParams()
	p.Depth = 3
	doc := string(TreeSVG(fractal.Frame{Params: p, Growth: 1}))
	if got := strings.Count(doc, "<g style="); got != 4 {
		t.Errorf("got %d depth groups, want 4 (depths 0..3)", got)
	}
	if got := strings.Count(doc, "<path"); got != 4 {
		t.Errorf("got %d paths, want one per depth group", got)
	}
	if strings.Contains(doc, "NaN") {
		t.Errorf("document contains NaN coordinates")
	}
}

func TestTreeSVGDegenerateGrowth(t *testing.T) {
	// Growth 0 collapses the whole tree onto the origin; the document must
	// still be well formed.
	doc := string(TreeSVG(fractal.Frame{Params: fractal.DefaultParams()}))
	if !strings.Contains(doc, "</svg>") {
		t.Errorf("degenerate tree did not produce a complete document")
	}
	if strings.Contains(doc, "NaN") {
		t.Errorf("degenerate tree leaked NaN coordinates")
	}
}

func TestPathData(t *testing.T) {
	pts := []forma.Pt{{X: 1, Y: 2}, {X: 3.456, Y: 7.891}}
	if got, want := pathData(pts, false), "M1.00 2.00 L3.46 7.89"; got != want {
		t.Errorf("pathData = %q, want %q", got, want)
	}
	if got := pathData(pts, true); !strings.HasSuffix(got, " Z") {
		t.Errorf("closed pathData should end with Z, got %q", got)
	}
}
