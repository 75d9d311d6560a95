package radial

// lerpChannel interpolates one 8-bit channel, truncating toward zero like
// the integer conversion callers expect. The mask keeps wrapped values in
// range when the ratio extrapolates.
func lerpChannel(from, to uint32, ratio float64) uint32 {
	v := int32(float64(from) + ratio*(float64(to)-float64(from)))
	return uint32(v) & 0xFF
}

// Lerp linearly interpolates between two 24-bit RGB colors. Each channel is
// computed as from + ratio*(to-from) and truncated to an integer. The ratio
// is not clamped: callers are expected to pass ratio in [0,1] (the slice
// color ramp always passes index/survivorCount), and out-of-range ratios
// extrapolate.
func Lerp(from, to uint32, ratio float64) uint32 {
	r := lerpChannel((from>>16)&0xFF, (to>>16)&0xFF, ratio)
	g := lerpChannel((from>>8)&0xFF, (to>>8)&0xFF, ratio)
	b := lerpChannel(from&0xFF, to&0xFF, ratio)
	return r<<16 | g<<8 | b
}
