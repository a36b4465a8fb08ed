package gamemath

// WindowTimer records when an input last changed state. Progress through the
// window is recomputed from the clock every tick instead of being accumulated,
// so dropped ticks or a paused clock never leave it out of step.
type WindowTimer struct {
	Start float64
}

// Restart moves the window start to now.
func (w *WindowTimer) Restart(now float64) {
	w.Start = now
}

// Elapsed returns the time since the window started.
func (w WindowTimer) Elapsed(now float64) float64 {
	return now - w.Start
}

// Fraction returns clamp01((now - start) * speed).
func (w WindowTimer) Fraction(now, speed float64) float64 {
	return Clamp01(w.Elapsed(now) * speed)
}
