package timer

import "msp430hal/pac"

const (
	outmodToggle   = 0b100
	outmodResetSet = 0b111
)

// Pwms is the PWM view. TB0CCR0 sets the period; the two outputs on CCR1 and
// CCR2 are reset/set, so their duty is the compare value. OUT0 toggles each
// period.
type Pwms struct {
	tb   *pac.TB0_Type
	Pwm1 *Pwm
	Pwm2 *Pwm
}

// ToPwm commits the clock setup and configures the output modes. The counter
// stays stopped until Enable.
func (c *Config) ToPwm() *Pwms {
	c.spend("timer.ToPwm")
	c.commit()
	c.tb.TB0CCTL[0].Set(outmodToggle << pac.TB0_TB0CCTL_OUTMOD_Pos)
	c.tb.TB0CCTL[1].Set(outmodResetSet << pac.TB0_TB0CCTL_OUTMOD_Pos)
	c.tb.TB0CCTL[2].Set(outmodResetSet << pac.TB0_TB0CCTL_OUTMOD_Pos)
	return &Pwms{
		tb:   c.tb,
		Pwm1: &Pwm{tb: c.tb, n: 1},
		Pwm2: &Pwm{tb: c.tb, n: 2},
	}
}

func (p *Pwms) SetPeriod(ticks uint16) { p.tb.TB0CCR[0].Set(ticks) }

// Enable restarts the counter from zero in up mode.
func (p *Pwms) Enable() {
	ctl := p.tb.TB0CTL.Get()
	p.tb.TB0CTL.Set(ctl&^(pac.TB0_TB0CTL_MC_Msk|pac.TB0_TB0CTL_TBIFG) |
		pac.TB0_TB0CTL_TBCLR | pac.TB0_TB0CTL_MC_UP)
}

func (p *Pwms) Disable() {
	p.tb.TB0CTL.ClearBits(pac.TB0_TB0CTL_MC_Msk)
}

type Pwm struct {
	tb *pac.TB0_Type
	n  int
}

// SetDuty sets the high time in ticks. A duty at or above the period keeps the
// output high.
func (p *Pwm) SetDuty(ticks uint16) { p.tb.TB0CCR[p.n].Set(ticks) }
