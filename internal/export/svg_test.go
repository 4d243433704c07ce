package export

import (
	"strings"
	"testing"
)

func TestTraceToSVG(t *testing.T) {
	svg := TraceToSVG([]float64{27.0, 27.2, 26.9, 27.1}, 640, 240, "#00ff00")

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(svg, `width="640" height="240"`) {
		t.Error("missing dimensions")
	}
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("missing stroke color")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated document")
	}
}

func TestTraceToSVGFlatTrace(t *testing.T) {
	if svg := TraceToSVG([]float64{5, 5, 5}, 100, 100, "#fff"); svg == "" {
		t.Error("flat trace should still render")
	}
}

func TestTraceToSVGTooShort(t *testing.T) {
	if svg := TraceToSVG([]float64{1}, 100, 100, "#fff"); svg != "" {
		t.Error("expected empty output for single-point trace")
	}
}
