package host

// DeltaSource supplies the seconds elapsed between frames. Next returns false
// once the source is exhausted.
type DeltaSource interface {
	Next() (dt float64, ok bool)
}

// FixedStep yields DT for Frames frames. Frames <= 0 never runs out.
type FixedStep struct {
	DT     float64
	Frames int

	served int
}

// NewFixedStep returns a source of fps-based deltas covering seconds of
// simulated time.
func NewFixedStep(fps int, seconds float64) *FixedStep {
	if fps <= 0 {
		fps = 60
	}
	frames := int(seconds*float64(fps) + 0.5)
	if frames <= 0 {
		frames = 1
	}
	return &FixedStep{DT: 1 / float64(fps), Frames: frames}
}

// Next implements DeltaSource.
func (f *FixedStep) Next() (float64, bool) {
	if f.Frames > 0 && f.served >= f.Frames {
		return 0, false
	}
	f.served++
	return f.DT, true
}

// Reset rewinds the source to its first frame.
func (f *FixedStep) Reset() { f.served = 0 }
