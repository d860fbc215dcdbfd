package genai

import (
	"bytes"
	"strings"

	svg "github.com/ajstarks/svgo"
)

var msgEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Placeholder synthesizes the SVG document shown when generation fails, so
// the history and preview always hold something renderable.
func Placeholder(msg string) string {
	if r := []rune(msg); len(r) > 64 {
		msg = string(r[:61]) + "..."
	}
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(500, 500)
	canvas.Title("generation failed")
	canvas.Rect(0, 0, 500, 500, "fill:#f8f4f0")
	canvas.Circle(250, 220, 64, "fill:none;stroke:#c0b8b0;stroke-width:3;stroke-dasharray:9 7")
	canvas.Line(205, 265, 295, 175, "stroke:#c0b8b0;stroke-width:3;stroke-linecap:round")
	canvas.Text(250, 340, msgEscaper.Replace(msg),
		"text-anchor:middle;font-family:monospace;font-size:14px;fill:#847c74")
	canvas.End()
	return buf.String()
}
