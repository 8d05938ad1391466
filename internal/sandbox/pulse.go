package sandbox

// Pulse bounces a value between 0 and 1 by a fixed step per frame.
// The value may overshoot the range by less than one step before turning.
type Pulse struct {
	Value float32
	Step  float32
}

// NewPulse starts at zero and rises by step.
func NewPulse(step float32) *Pulse {
	return &Pulse{Step: step}
}

// Next advances the pulse one frame and returns the new value.
func (p *Pulse) Next() float32 {
	if p.Value > 1 {
		p.Step = -abs(p.Step)
	} else if p.Value < 0 {
		p.Step = abs(p.Step)
	}
	p.Value += p.Step
	return p.Value
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
