package timer

import (
	"time"

	"msp430hal/pac"
	"msp430hal/x/timex"
)

// Parts is the periodic view: the main timer owns TB0CCR0 and the counter
// mode, each sub-timer owns one more compare channel.
type Parts struct {
	Timer *Timer
	Sub1  *SubTimer
	Sub2  *SubTimer
}

// ToPeriodic commits the clock setup and returns the periodic view.
func (c *Config) ToPeriodic() *Parts {
	c.spend("timer.ToPeriodic")
	c.commit()
	return &Parts{
		Timer: &Timer{tb: c.tb, hz: c.TickHz()},
		Sub1:  &SubTimer{tb: c.tb, n: 1},
		Sub2:  &SubTimer{tb: c.tb, n: 2},
	}
}

type Timer struct {
	tb *pac.TB0_Type
	hz uint32
}

// Start (re)starts the counter in up mode with a period of ticks. A running
// counter is stopped first; pending overflow is cleared.
func (t *Timer) Start(ticks uint16) {
	ctl := t.tb.TB0CTL.Get()
	if ctl&pac.TB0_TB0CTL_MC_Msk != pac.TB0_TB0CTL_MC_STOP {
		t.tb.TB0CTL.Set(ctl &^ pac.TB0_TB0CTL_MC_Msk)
	}
	t.tb.TB0CCR[0].Set(ticks)
	t.tb.TB0CTL.Set(ctl&^(pac.TB0_TB0CTL_MC_Msk|pac.TB0_TB0CTL_TBIFG) |
		pac.TB0_TB0CTL_TBCLR | pac.TB0_TB0CTL_MC_UP)
}

// StartAfter starts the counter with the period closest to d, saturating at
// the 16-bit limit. It needs an ACLK or SMCLK source.
func (t *Timer) StartAfter(d time.Duration) {
	t.Start(timex.Ticks(t.hz, d))
}

// Wait reports whether a period has elapsed, clearing TBIFG if so. It always
// returns false before Start.
func (t *Timer) Wait() bool {
	ctl := t.tb.TB0CTL.Get()
	if ctl&pac.TB0_TB0CTL_TBIFG == 0 {
		return false
	}
	t.tb.TB0CTL.Set(ctl &^ pac.TB0_TB0CTL_TBIFG)
	return true
}

// Cancel stops the counter, or fails with ErrAlreadyStopped.
func (t *Timer) Cancel() error {
	ctl := t.tb.TB0CTL.Get()
	if ctl&pac.TB0_TB0CTL_MC_Msk == pac.TB0_TB0CTL_MC_STOP {
		return ErrAlreadyStopped
	}
	t.tb.TB0CTL.Set(ctl &^ pac.TB0_TB0CTL_MC_Msk)
	return nil
}

// SubTimer fires when the counter passes its compare value within each period
// of the main timer.
type SubTimer struct {
	tb *pac.TB0_Type
	n  int
}

func (s *SubTimer) SetCount(ticks uint16) {
	s.tb.TB0CCR[s.n].Set(ticks)
	s.tb.TB0CCTL[s.n].ClearBits(pac.TB0_TB0CCTL_CCIFG)
}

func (s *SubTimer) Wait() bool {
	cctl := &s.tb.TB0CCTL[s.n]
	v := cctl.Get()
	if v&pac.TB0_TB0CCTL_CCIFG == 0 {
		return false
	}
	cctl.Set(v &^ pac.TB0_TB0CCTL_CCIFG)
	return true
}
