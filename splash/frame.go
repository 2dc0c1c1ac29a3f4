package splash

// Frame composition. All functions here are pure; the Renderer feeds
// them the per-frame viewport so live resizes take effect on the next
// frame without any shared state.

// effectiveGap widens the configured minimum gap so that when the
// viewport is wider than the image, exactly one copy is visible at the
// resting offset. Holds gap >= min and gap >= viewWidth-imageWidth.
func effectiveGap(min, imageWidth, viewWidth int) int {
	if g := viewWidth - imageWidth; g > min {
		return g
	}
	return min
}

// sliceFrom returns rs[start:], or nil when start is past the end.
// Out-of-range starts are a normal condition near the end of a pass
// (the tiling step fills the remainder), so this clamps instead of
// panicking.
func sliceFrom(rs []rune, start int) []rune {
	if start < 0 {
		start = 0
	}
	if start >= len(rs) {
		return nil
	}
	return rs[start:]
}

// composeLine builds one displayed line of the marquee: the image line
// padded to the full cycle width (imageWidth+gap), shifted left by
// offset, then tiled until it covers the viewport and cut to exactly
// viewWidth runes.
func composeLine(line []rune, imageWidth, gap, offset, viewWidth int) string {
	if viewWidth <= 0 {
		return ""
	}

	cycle := imageWidth + gap
	padded := make([]rune, cycle)
	copy(padded, line)
	for i := len(line); i < cycle; i++ {
		padded[i] = ' '
	}

	// Degenerate cycle (empty image line set with zero gap): nothing
	// to tile, emit blanks so the printed width invariant still holds.
	if cycle == 0 {
		return spaces(viewWidth)
	}

	out := make([]rune, 0, viewWidth+cycle)
	out = append(out, sliceFrom(padded, offset)...)
	for len(out) <= viewWidth {
		out = append(out, padded...)
	}
	return string(out[:viewWidth])
}

// spaces returns n blanks, or the empty string for n <= 0.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
