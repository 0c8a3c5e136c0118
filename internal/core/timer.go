package core

import "time"

// Pacer throttles generation advances to a fixed rate. A Pacer with a
// non-positive rate is always due.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer allowing perSecond advances each second. The
// first call to Due reports true.
func NewPacer(perSecond int) *Pacer {
	p := &Pacer{}
	p.SetRate(perSecond)
	p.accumulator = p.step
	return p
}

// SetRate changes the advance rate.
func (p *Pacer) SetRate(perSecond int) {
	if perSecond <= 0 {
		p.step = 0
		return
	}
	p.step = time.Second / time.Duration(perSecond)
}

// Rate returns the configured advances per second, 0 meaning unthrottled.
func (p *Pacer) Rate() int {
	if p.step <= 0 {
		return 0
	}
	return int(time.Second / p.step)
}

// Due reports whether a generation may advance at now. At most one advance is
// granted per call; surplus time carries over to later calls.
func (p *Pacer) Due(now time.Time) bool {
	if p.step <= 0 {
		return true
	}
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		if p.accumulator > p.step {
			p.accumulator = p.step
		}
		return true
	}
	return false
}
