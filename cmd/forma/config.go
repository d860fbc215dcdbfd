package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/scottkirkwood/forma/fractal"
	"github.com/scottkirkwood/forma/superformula"
)

// config carries every command line knob. Defaults mirror the parameters
// the studio opens with.
type config struct {
	Mode        string
	Interactive bool
	Seed        string
	Random      bool
	Format      string
	Out         string
	Grain       bool

	M          int
	N1, N2, N3 float64
	A, B       float64
	Resolution int

	Angle    float64
	Depth    int
	Length   float64
	Branches int
	Growth   float64
	Wind     bool
	Time     float64
	Frames   int

	Prompt string
	Image  string
	APIKey string
}

// newConfig returns a config populated with the studio defaults.
func newConfig() *config {
	shape := superformula.DefaultParams()
	tree := fractal.DefaultParams()
	return &config{
		Mode:       "shape",
		Format:     "svg",
		Grain:      true,
		M:          shape.M,
		N1:         shape.N1,
		N2:         shape.N2,
		N3:         shape.N3,
		A:          shape.A,
		B:          shape.B,
		Resolution: shape.Resolution,
		Angle:      tree.Angle,
		Depth:      tree.Depth,
		Length:     tree.LengthMultiplier,
		Branches:   tree.BranchCount,
		Growth:     1,
		APIKey:     os.Getenv("GEMINI_API_KEY"),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Mode, "mode", c.Mode, "view to render: shape, tree, generate, edit")
	fs.BoolVar(&c.Interactive, "i", c.Interactive, "open the interactive terminal studio")
	fs.StringVar(&c.Seed, "seed", c.Seed, "hex value for the seed to use")
	fs.BoolVar(&c.Random, "random", c.Random, "roll random shape parameters before rendering")
	fs.StringVar(&c.Format, "format", c.Format, "one-shot output format: svg, png, pdf")
	fs.StringVar(&c.Out, "out", c.Out, "directory for exported files")
	fs.BoolVar(&c.Grain, "grain", c.Grain, "paper grain texture on raster output")

	fs.IntVar(&c.M, "m", c.M, "shape symmetry count")
	fs.Float64Var(&c.N1, "n1", c.N1, "first shape exponent")
	fs.Float64Var(&c.N2, "n2", c.N2, "second shape exponent")
	fs.Float64Var(&c.N3, "n3", c.N3, "third shape exponent")
	fs.Float64Var(&c.A, "a", c.A, "first scale denominator")
	fs.Float64Var(&c.B, "b", c.B, "second scale denominator")
	fs.IntVar(&c.Resolution, "res", c.Resolution, "curve samples over the full turn")

	fs.Float64Var(&c.Angle, "angle", c.Angle, "branch spread in degrees")
	fs.IntVar(&c.Depth, "depth", c.Depth, "tree recursion depth")
	fs.Float64Var(&c.Length, "length", c.Length, "child branch length multiplier")
	fs.IntVar(&c.Branches, "branches", c.Branches, "children per branch, 2 or 3")
	fs.Float64Var(&c.Growth, "growth", c.Growth, "growth fraction 0..1 for one-shot tree renders")
	fs.BoolVar(&c.Wind, "wind", c.Wind, "apply wind sway")
	fs.Float64Var(&c.Time, "time", c.Time, "wind clock seconds for one-shot tree renders")
	fs.IntVar(&c.Frames, "gif", c.Frames, "growth animation frame count, 0 disables")

	fs.StringVar(&c.Prompt, "prompt", c.Prompt, "AI prompt for generate and edit modes")
	fs.StringVar(&c.Image, "image", c.Image, "input image path for edit mode")
	fs.StringVar(&c.APIKey, "api-key", c.APIKey, "generative API key (defaults to GEMINI_API_KEY)")
}

func (c *config) shapeParams() superformula.Params {
	return superformula.Params{
		M:          c.M,
		N1:         c.N1,
		N2:         c.N2,
		N3:         c.N3,
		A:          c.A,
		B:          c.B,
		Resolution: c.Resolution,
	}
}

func (c *config) treeParams() fractal.Params {
	return fractal.Params{
		Angle:            c.Angle,
		Depth:            c.Depth,
		LengthMultiplier: c.Length,
		BranchCount:      c.Branches,
	}
}

// prefix is where exports land; the seed naming appends hash and hex.
func (c *config) prefix() string {
	return filepath.Join(c.Out, "forma-")
}
