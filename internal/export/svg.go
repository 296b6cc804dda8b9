package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/spinlab/internal/shell"
	"github.com/san-kum/spinlab/internal/sweep"
	"github.com/san-kum/spinlab/internal/viz"
)

// CanvasToSVG draws every lit braille dot as a circle, scale pixels apart.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	w, h := canvas.Dims()
	width := float64(w) * scale
	height := float64(h) * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#ffd700">
`, width, height, width, height)

	dotRadius := scale * 0.4
	canvas.Dots(func(x, y int) {
		cx := float64(x)*scale + scale/2
		cy := float64(y)*scale + scale/2
		fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius)
	})

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// AtomSVG renders the shell diagram of cfg, with the given electron selected
// (-1 for none).
func AtomSVG(cfg shell.Configuration, selected int, width, height int, scale float64) string {
	canvas := viz.NewCanvas(width, height)
	viz.DrawAtom(canvas, cfg, selected, math.Pi/2)
	return CanvasToSVG(canvas, scale)
}

// SeriesToSVG plots one column of a sweep as a polyline. Non-finite samples
// break the line.
func SeriesToSVG(result *sweep.Result, column string, width, height int, strokeColor string) (string, error) {
	values, ok := result.Column(column)
	if !ok {
		return "", fmt.Errorf("unknown column: %s", column)
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	points := 0
	for i, y := range values {
		x := result.X[i]
		if !isFinite(x) || !isFinite(y) {
			continue
		}
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		points++
	}
	if points < 2 {
		return "", fmt.Errorf("column %s has fewer than two finite samples", column)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="`,
		width, height, width, height, strokeColor)

	pen, first := "M", true
	for i, y := range values {
		x := result.X[i]
		if !isFinite(x) || !isFinite(y) {
			pen = "M"
			continue
		}
		px := (x - minX) / rangeX * float64(width)
		py := float64(height) - (y-minY)/rangeY*float64(height)
		if !first {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s%.1f,%.1f", pen, px, py)
		pen, first = "L", false
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String(), nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
