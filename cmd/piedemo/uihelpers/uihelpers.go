package uihelpers

import "strings"

// ComputeChartSize applies the width/height clamp rules used for exported
// chart frames. Zero or negative inputs fall back to the 640x640 default;
// anything else clamps into [320, 2048] per axis.
func ComputeChartSize(rawW, rawH int) (int, int) {
	return clampEdge(rawW), clampEdge(rawH)
}

func clampEdge(v int) int {
	if v <= 0 {
		return 640
	}
	if v < 320 {
		return 320
	}
	if v > 2048 {
		return 2048
	}
	return v
}

// ClampRenderScale keeps an export pixel scale within a sane range.
// Rules: non-positive (or unset) falls back to 1; otherwise clamped to [0.5, 4].
func ClampRenderScale(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	if raw < 0.5 {
		return 0.5
	}
	if raw > 4 {
		return 4
	}
	return raw
}

// SafeFileName lowers a dataset name into a filesystem-friendly stem:
// spaces and path separators become underscores, anything outside
// [a-z0-9_-] is dropped. An empty result falls back to "chart".
func SafeFileName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ', r == '/', r == '\\':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "chart"
	}
	return b.String()
}
