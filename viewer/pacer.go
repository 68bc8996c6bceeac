package viewer

import "time"

// FrameBudget is the target frame interval, about 58.8 Hz.
const FrameBudget = 17 * time.Millisecond

// Pacer holds each frame to at least Budget. It only ever adds delay; a
// slow frame is not made up for later.
type Pacer struct {
	Budget time.Duration

	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

func NewPacer(budget time.Duration) *Pacer {
	return newPacer(budget, time.Now, time.Sleep)
}

func newPacer(budget time.Duration, now func() time.Time, sleep func(time.Duration)) *Pacer {
	return &Pacer{
		Budget: budget,
		last:   now(),
		now:    now,
		sleep:  sleep,
	}
}

// Wait blocks until Budget has passed since the previous call returned,
// and reports how long it slept.
func (p *Pacer) Wait() time.Duration {
	elapsed := p.now().Sub(p.last)

	var slept time.Duration
	if elapsed < p.Budget {
		slept = p.Budget - elapsed
		p.sleep(slept)
	}

	p.last = p.now()
	return slept
}
