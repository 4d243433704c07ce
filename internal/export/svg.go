// Package export renders recorded traces to standalone SVG documents.
package export

import (
	"fmt"
	"strings"
)

// TraceToSVG plots a scalar trace against its tick index as an SVG polyline.
func TraceToSVG(trace []float64, width, height int, strokeColor string) string {
	if len(trace) < 2 {
		return ""
	}

	minY, maxY := trace[0], trace[0]
	for _, v := range trace {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range trace {
		x := float64(i) / float64(len(trace)-1) * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)
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
