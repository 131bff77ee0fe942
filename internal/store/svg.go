package store

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
)

var svgColors = map[sorting.Kind]string{
	sorting.KindCompare: "#00ffff",
	sorting.KindSwap:    "#00ff88",
	sorting.KindInsert:  "#ffff00",
}

// BarsToSVG draws one snapshot as vertical bars, highlighting the indices the
// operation touched.
func BarsToSVG(nums []int, op sorting.Operation, scale float64) string {
	if len(nums) == 0 {
		return ""
	}

	highest := 1
	for _, v := range nums {
		if v > highest {
			highest = v
		}
	}

	width := float64(len(nums)) * scale
	height := float64(highest) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	op = op.Adjusted()
	marked := make(map[int]bool)
	for _, i := range op.Indices() {
		marked[i] = true
	}

	for i, v := range nums {
		fill := "#d0d0d0"
		if marked[i] {
			fill = svgColors[op.Kind]
		}
		h := float64(v) * scale
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(i)*scale, height-h, scale*0.9, h, fill))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// CurveToSVG plots a series as a polyline scaled to fill the canvas.
func CurveToSVG(points []float64, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	minY, maxY := points[0], points[0]
	for _, p := range points {
		minY = min(minY, p)
		maxY = max(maxY, p)
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	rangeX := float64(len(points) - 1)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (p-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// WriteSVG writes the inversion curve of the whole trace, or the bars of a
// single step when step is not negative.
func WriteSVG(w io.Writer, res *experiment.Result, step int) error {
	var out string
	switch {
	case step < 0:
		out = CurveToSVG(metrics.InversionSeries(res.Steps, -1), 640, 240, "#00ff88")
	case step < len(res.Steps):
		s := res.Steps[step]
		out = BarsToSVG(s.Snapshot, s.Op, 10)
	default:
		return fmt.Errorf("step %d out of range (trace has %d steps)", step, len(res.Steps))
	}
	if out == "" {
		return fmt.Errorf("nothing to draw for %s", res.Algorithm)
	}
	_, err := io.WriteString(w, out)
	return err
}
