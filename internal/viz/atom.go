package viz

import (
	"math"

	"github.com/san-kum/spinlab/internal/shell"
)

const (
	nucleusRadius  = 2
	electronRadius = 1
	spinArrow      = 7
)

// DrawAtom renders the shell diagram of cfg centred on the canvas. The
// electron at index selected of shell.Electrons(cfg) is ringed and carries a
// spin arrow at spinAngle radians; pass -1 to select nothing.
func DrawAtom(c *Canvas, cfg shell.Configuration, selected int, spinAngle float64) {
	w, h := c.Dims()
	cx, cy := w/2, h/2
	c.FillDisc(cx, cy, nucleusRadius)

	if len(cfg) == 0 {
		return
	}

	maxR := float64(min(w, h))/2 - float64(electronRadius) - 2
	step := (maxR - nucleusRadius - 2) / float64(len(cfg))

	slot := 0
	for s, count := range cfg {
		r := float64(nucleusRadius+2) + step*float64(s+1)
		c.DrawCircle(cx, cy, int(math.Round(r)))

		for e := 0; e < count; e++ {
			x, y := orbitPoint(cx, cy, r, e, count, s)
			c.FillDisc(x, y, electronRadius)

			if slot == selected {
				c.DrawCircle(x, y, electronRadius+2)
				ax := x + int(math.Round(spinArrow*math.Cos(spinAngle)))
				ay := y - int(math.Round(spinArrow*math.Sin(spinAngle)))
				c.DrawLine(x, y, ax, ay)
			}
			slot++
		}
	}
}

// orbitPoint spaces count electrons evenly on a ring, offsetting alternate
// shells so neighbours do not line up.
func orbitPoint(cx, cy int, r float64, e, count, s int) (int, int) {
	theta := 2*math.Pi*float64(e)/float64(count) + float64(s)*math.Pi/7
	return cx + int(math.Round(r*math.Cos(theta))), cy + int(math.Round(r*math.Sin(theta)))
}
